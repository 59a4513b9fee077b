package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/easyxpense-ledger/internal/activity_processor/service"
	"github.com/easyxpense-ledger/internal/domain/shared"
	"github.com/easyxpense-ledger/internal/platform/messaging/producers"
)

// ActivityEventHandler handles incoming record event messages from Kafka
type ActivityEventHandler struct {
	projectionService service.ProjectionService
	producer          producers.DeadLetterPublisher
	logger            *slog.Logger
}

// NewActivityEventHandler creates a new handler
func NewActivityEventHandler(
	logger *slog.Logger,
	projectionService service.ProjectionService,
	producer producers.DeadLetterPublisher,
) *ActivityEventHandler {
	return &ActivityEventHandler{
		projectionService: projectionService,
		producer:          producer,
		logger:            logger,
	}
}

// HandleMessage processes Kafka messages
func (h *ActivityEventHandler) HandleMessage(ctx context.Context, key []byte, value []byte) error {
	var event shared.RecordEvent
	if err := json.Unmarshal(value, &event); err != nil {
		unmarshalErrorMsg := "Failed to unmarshal record event from Kafka message"
		h.logger.Error(unmarshalErrorMsg,
			"error", err,
			"message_key", string(key),
		)

		// Send to DLQ if available
		if h.producer != nil {
			dlqReason := fmt.Sprintf("%s: %s", unmarshalErrorMsg, err.Error())
			if dlqErr := h.producer.PublishToDLQ(ctx, string(key), value, dlqReason); dlqErr != nil {
				h.logger.Error("Failed to publish message to DLQ after unmarshal error",
					"dlq_error", dlqErr,
					"original_error", err,
					"message_key", string(key),
				)
			} else {
				h.logger.Info("Successfully published unprocessable message to DLQ", "message_key", string(key), "reason", dlqReason)
				// Message handled, commit offset
				return nil
			}
		}
		// Allow Kafka retries
		return fmt.Errorf("failed to unmarshal message value: %w", err)
	}

	logger := h.logger
	if event.CorrelationID != "" {
		logger = h.logger.With("correlation_id", event.CorrelationID)
	}

	logger.Info("Received record event for projection",
		"event_id", event.EventID.String(),
		"record_id", event.RecordID.String(),
		"kind", event.Kind,
		"amount", event.Amount,
	)

	if err := h.projectionService.ProjectEvent(ctx, &event); err != nil {
		logger.Error("Failed to project record event",
			"event_id", event.EventID.String(),
			"record_id", event.RecordID.String(),
			"error", err,
		)
		return fmt.Errorf("projecting event %s failed: %w", event.EventID.String(), err)
	}

	logger.Info("Successfully projected record event", "event_id", event.EventID.String())
	return nil // Success, commit offset
}
