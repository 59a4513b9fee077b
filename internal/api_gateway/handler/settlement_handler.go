package handler

import (
	"errors"
	"log/slog"
	"time"

	"github.com/easyxpense-ledger/internal/api_gateway/middleware"
	"github.com/easyxpense-ledger/internal/api_gateway/service"
	"github.com/easyxpense-ledger/internal/domain/member"
	"github.com/easyxpense-ledger/internal/domain/money"
	"github.com/easyxpense-ledger/internal/domain/settlement"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SettlementHandler handles HTTP requests for settlement record operations
type SettlementHandler struct {
	settlementService service.SettlementService
	logger            *slog.Logger
}

// NewSettlementHandler creates a new settlement handler
func NewSettlementHandler(logger *slog.Logger, settlementService service.SettlementService) *SettlementHandler {
	return &SettlementHandler{
		settlementService: settlementService,
		logger:            logger,
	}
}

// Create records a repayment between two members
func (h *SettlementHandler) Create(c *gin.Context) {
	var req CreateSettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	amount, err := money.ParseExpenseAmount(req.Amount)
	if err != nil {
		if errors.Is(err, money.ErrAmountTooLarge) {
			RespondUnprocessable(c, err.Error())
			return
		}
		RespondBadRequest(c, err.Error())
		return
	}

	fromID, err := uuid.Parse(req.FromID)
	if err != nil {
		RespondBadRequest(c, "Invalid payer member ID")
		return
	}
	toID, err := uuid.Parse(req.ToID)
	if err != nil {
		RespondBadRequest(c, "Invalid recipient member ID")
		return
	}

	correlationID := middleware.GetCorrelationID(c)
	st, err := h.settlementService.CreateSettlement(c.Request.Context(), fromID, toID, amount, correlationID)
	if err != nil {
		var memberNotFound member.ErrMemberNotFound
		if errors.As(err, &memberNotFound) {
			RespondBadRequest(c, "Unknown member: "+memberNotFound.MemberID.String())
			return
		}
		if errors.Is(err, settlement.ErrSelfSettlement) || errors.Is(err, money.ErrInvalidAmount) {
			RespondBadRequest(c, err.Error())
			return
		}
		h.logger.Error("Failed to create settlement", "error", err)
		RespondInternalError(c)
		return
	}

	RespondCreated(c, mapSettlementToResponse(st))
}

// GetByID retrieves a settlement record by its ID, returning 404 if not found
func (h *SettlementHandler) GetByID(c *gin.Context) {
	idParam := c.Param("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		h.logger.Error("Invalid settlement ID", "id", idParam, "error", err)
		RespondBadRequest(c, "Invalid settlement ID")
		return
	}

	st, err := h.settlementService.GetSettlementByID(c.Request.Context(), id)
	if err != nil {
		var settlementNotFound settlement.ErrSettlementNotFound
		if errors.As(err, &settlementNotFound) {
			RespondNotFound(c, "Settlement not found")
			return
		}
		h.logger.Error("Failed to get settlement", "id", idParam, "error", err)
		RespondInternalError(c)
		return
	}

	RespondOK(c, mapSettlementToResponse(st))
}

// List returns all settlement records, newest first
func (h *SettlementHandler) List(c *gin.Context) {
	settlements, err := h.settlementService.ListSettlements(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list settlements", "error", err)
		RespondInternalError(c)
		return
	}

	responses := make([]SettlementResponse, 0, len(settlements))
	for _, st := range settlements {
		responses = append(responses, mapSettlementToResponse(st))
	}
	RespondOK(c, responses)
}

// mapSettlementToResponse maps a settlement entity to a settlement response DTO
func mapSettlementToResponse(st *settlement.Settlement) SettlementResponse {
	return SettlementResponse{
		ID:          st.ID.String(),
		FromID:      st.FromID.String(),
		ToID:        st.ToID.String(),
		Amount:      st.Amount.String(),
		AmountMinor: st.Amount.MinorUnits(),
		CreatedAt:   st.CreatedAt.Format(time.RFC3339),
	}
}
