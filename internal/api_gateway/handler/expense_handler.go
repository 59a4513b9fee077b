package handler

import (
	"errors"
	"log/slog"
	"time"

	"github.com/easyxpense-ledger/internal/api_gateway/middleware"
	"github.com/easyxpense-ledger/internal/api_gateway/service"
	"github.com/easyxpense-ledger/internal/domain/expense"
	"github.com/easyxpense-ledger/internal/domain/member"
	"github.com/easyxpense-ledger/internal/domain/money"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ExpenseHandler handles HTTP requests for expense record operations
type ExpenseHandler struct {
	expenseService service.ExpenseService
	logger         *slog.Logger
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(logger *slog.Logger, expenseService service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
		logger:         logger,
	}
}

// Create records a shared expense. The amount arrives as a decimal string
// and is parsed into minor units before it reaches the service layer.
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req CreateExpenseRequest
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

	payerID, err := uuid.Parse(req.PayerID)
	if err != nil {
		RespondBadRequest(c, "Invalid payer ID")
		return
	}

	participantIDs := make([]uuid.UUID, 0, len(req.ParticipantIDs))
	for _, raw := range req.ParticipantIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			RespondBadRequest(c, "Invalid participant ID: "+raw)
			return
		}
		participantIDs = append(participantIDs, id)
	}

	correlationID := middleware.GetCorrelationID(c)
	e, err := h.expenseService.CreateExpense(c.Request.Context(), req.Description, amount, payerID, participantIDs, correlationID)
	if err != nil {
		var memberNotFound member.ErrMemberNotFound
		if errors.As(err, &memberNotFound) {
			RespondBadRequest(c, "Unknown member: "+memberNotFound.MemberID.String())
			return
		}
		if errors.Is(err, expense.ErrEmptyDescription) || errors.Is(err, expense.ErrDescriptionTooLong) ||
			errors.Is(err, expense.ErrInvalidParticipants) || errors.Is(err, expense.ErrTooManyParticipants) ||
			errors.Is(err, money.ErrInvalidAmount) {
			RespondBadRequest(c, err.Error())
			return
		}
		h.logger.Error("Failed to create expense", "error", err)
		RespondInternalError(c)
		return
	}

	RespondCreated(c, mapExpenseToResponse(e))
}

// GetByID retrieves an expense record by its ID, returning 404 if not found
func (h *ExpenseHandler) GetByID(c *gin.Context) {
	idParam := c.Param("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		h.logger.Error("Invalid expense ID", "id", idParam, "error", err)
		RespondBadRequest(c, "Invalid expense ID")
		return
	}

	e, err := h.expenseService.GetExpenseByID(c.Request.Context(), id)
	if err != nil {
		var expenseNotFound expense.ErrExpenseNotFound
		if errors.As(err, &expenseNotFound) {
			RespondNotFound(c, "Expense not found")
			return
		}
		h.logger.Error("Failed to get expense", "id", idParam, "error", err)
		RespondInternalError(c)
		return
	}

	RespondOK(c, mapExpenseToResponse(e))
}

// List returns all expense records, newest first
func (h *ExpenseHandler) List(c *gin.Context) {
	expenses, err := h.expenseService.ListExpenses(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list expenses", "error", err)
		RespondInternalError(c)
		return
	}

	responses := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		responses = append(responses, mapExpenseToResponse(e))
	}
	RespondOK(c, responses)
}

// mapExpenseToResponse maps an expense entity to an expense response DTO
func mapExpenseToResponse(e *expense.Expense) ExpenseResponse {
	participantIDs := make([]string, 0, len(e.ParticipantIDs))
	for _, id := range e.ParticipantIDs {
		participantIDs = append(participantIDs, id.String())
	}

	return ExpenseResponse{
		ID:             e.ID.String(),
		Description:    e.Description,
		Amount:         e.Amount.String(),
		AmountMinor:    e.Amount.MinorUnits(),
		PayerID:        e.PayerID.String(),
		ParticipantIDs: participantIDs,
		CreatedAt:      e.CreatedAt.Format(time.RFC3339),
	}
}
