package handler

import (
	"errors"
	"log/slog"
	"sort"

	"github.com/easyxpense-ledger/internal/api_gateway/service"
	"github.com/easyxpense-ledger/internal/domain/member"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BalanceHandler handles HTTP requests for balance queries
type BalanceHandler struct {
	balanceService service.BalanceService
	memberService  service.MemberService
	logger         *slog.Logger
}

// NewBalanceHandler creates a new balance handler
func NewBalanceHandler(logger *slog.Logger, balanceService service.BalanceService, memberService service.MemberService) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
		memberService:  memberService,
		logger:         logger,
	}
}

// List returns the net position of every member who is not settled up.
// Members whose balance rounds to zero are omitted from the response.
func (h *BalanceHandler) List(c *gin.Context) {
	balances, err := h.balanceService.AllBalances(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to compute balances", "error", err)
		RespondInternalError(c)
		return
	}

	members, err := h.memberService.ListMembers(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list members", "error", err)
		RespondInternalError(c)
		return
	}
	names := make(map[uuid.UUID]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
	}

	responses := make([]BalanceResponse, 0, len(balances))
	for id, amount := range balances {
		responses = append(responses, BalanceResponse{
			MemberID:    id.String(),
			Name:        names[id],
			Amount:      amount.String(),
			AmountMinor: amount.MinorUnits(),
		})
	}
	// Map iteration order is random; sort for a stable response
	sort.Slice(responses, func(i, j int) bool {
		return responses[i].MemberID < responses[j].MemberID
	})

	RespondOK(c, BalanceListResponse{Balances: responses})
}

// GetByMemberID returns one member's net position, settled or not
func (h *BalanceHandler) GetByMemberID(c *gin.Context) {
	idParam := c.Param("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		h.logger.Error("Invalid member ID", "id", idParam, "error", err)
		RespondBadRequest(c, "Invalid member ID")
		return
	}

	balance, err := h.balanceService.BalanceFor(c.Request.Context(), id)
	if err != nil {
		var memberNotFound member.ErrMemberNotFound
		if errors.As(err, &memberNotFound) {
			RespondNotFound(c, "Member not found")
			return
		}
		h.logger.Error("Failed to compute balance", "id", idParam, "error", err)
		RespondInternalError(c)
		return
	}

	RespondOK(c, BalanceResponse{
		MemberID:    id.String(),
		Amount:      balance.String(),
		AmountMinor: balance.MinorUnits(),
	})
}

// GetPair returns the net position between two members, from the first
// member's point of view
func (h *BalanceHandler) GetPair(c *gin.Context) {
	idParam := c.Param("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		h.logger.Error("Invalid member ID", "id", idParam, "error", err)
		RespondBadRequest(c, "Invalid member ID")
		return
	}

	otherParam := c.Param("other_id")
	otherID, err := uuid.Parse(otherParam)
	if err != nil {
		h.logger.Error("Invalid member ID", "id", otherParam, "error", err)
		RespondBadRequest(c, "Invalid member ID")
		return
	}

	balance, err := h.balanceService.PairBalance(c.Request.Context(), id, otherID)
	if err != nil {
		var memberNotFound member.ErrMemberNotFound
		if errors.As(err, &memberNotFound) {
			RespondNotFound(c, "Member not found")
			return
		}
		h.logger.Error("Failed to compute pair balance", "id", idParam, "other_id", otherParam, "error", err)
		RespondInternalError(c)
		return
	}

	RespondOK(c, PairBalanceResponse{
		MemberID:    id.String(),
		OtherID:     otherID.String(),
		Amount:      balance.String(),
		AmountMinor: balance.MinorUnits(),
	})
}
