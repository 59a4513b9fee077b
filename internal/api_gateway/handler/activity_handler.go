package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/easyxpense-ledger/internal/api_gateway/service"
	"github.com/easyxpense-ledger/internal/domain/activity"
	"github.com/easyxpense-ledger/internal/domain/money"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ActivityHandler handles HTTP requests for the payment-history feed
type ActivityHandler struct {
	activityService service.ActivityService
	logger          *slog.Logger
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(logger *slog.Logger, activityService service.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
		logger:          logger,
	}
}

// List returns a page of feed entries, newest first
func (h *ActivityHandler) List(c *gin.Context) {
	var params PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.logger.Error("Invalid pagination parameters", "error", err)
		RespondBadRequest(c, "Invalid pagination parameters: "+err.Error())
		return
	}

	entries, total, err := h.activityService.ListActivity(c.Request.Context(), params.Page, params.PerPage)
	if err != nil {
		h.logger.Error("Failed to list activity", "error", err)
		RespondInternalError(c)
		return
	}

	responses := make([]ActivityEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, mapEntryToResponse(entry))
	}

	RespondWithPaginatedData(c, http.StatusOK, responses, params.Page, params.PerPage, int(total))
}

// mapEntryToResponse maps an activity entry to a feed response DTO
func mapEntryToResponse(entry *activity.Entry) ActivityEntryResponse {
	resp := ActivityEntryResponse{
		EventID:     entry.EventID.String(),
		Kind:        string(entry.Kind),
		RecordID:    entry.RecordID.String(),
		Description: entry.Description,
		Amount:      money.Money(entry.Amount).String(),
		AmountMinor: entry.Amount,
		ActorID:     entry.ActorID.String(),
		OccurredAt:  entry.OccurredAt.Format(time.RFC3339),
	}
	if entry.CounterpartyID != uuid.Nil {
		resp.CounterpartyID = entry.CounterpartyID.String()
	}
	for _, id := range entry.ParticipantIDs {
		resp.ParticipantIDs = append(resp.ParticipantIDs, id.String())
	}
	return resp
}
