package outbox_poller

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/easyxpense-ledger/internal/domain/outbox"
	"github.com/easyxpense-ledger/internal/domain/shared"
	"github.com/easyxpense-ledger/internal/platform/messaging/producers"
)

// EventPublisher pushes outbox messages onto the record event topic
type EventPublisher interface {
	PublishEvent(ctx context.Context, message *outbox.Message) error
}

// EventPublisherImpl implements EventPublisher
type EventPublisherImpl struct {
	outboxRepo outbox.Repository
	producer   producers.MessagePublisher
	logger     *slog.Logger
}

// NewEventPublisher creates a new publisher
func NewEventPublisher(
	outboxRepo outbox.Repository,
	producer producers.MessagePublisher,
	logger *slog.Logger,
) EventPublisher {
	return &EventPublisherImpl{
		outboxRepo: outboxRepo,
		producer:   producer,
		logger:     logger,
	}
}

// PublishEvent publishes a stored record event to Kafka and marks the
// outbox message as processed. A payload that cannot be decoded is marked
// FAILED_TO_PUBLISH immediately: retrying cannot fix it.
func (p *EventPublisherImpl) PublishEvent(ctx context.Context, message *outbox.Message) error {
	event, err := message.GetRecordEvent()
	if err != nil {
		p.logger.Error("Failed to unmarshal record event from outbox payload",
			"outbox_id", message.ID, "event_id", message.EventID.String(), "error", err,
		)
		if updateErr := p.outboxRepo.UpdateStatus(ctx, message.ID, shared.OutboxStatusFailedToPublish); updateErr != nil {
			p.logger.Error("Also failed to update outbox status to FAILED_TO_PUBLISH after unmarshal error", "outbox_id", message.ID, "update_error", updateErr)
		}
		return fmt.Errorf("unmarshal payload for outbox %d failed: %w", message.ID, err)
	}

	logger := p.logger
	if event.CorrelationID != "" {
		logger = p.logger.With("correlation_id", event.CorrelationID)
	}

	logger.Info("Attempting to publish outbox message to record event topic",
		"outbox_id", message.ID, "event_id", event.EventID.String(), "kind", event.Kind)

	if err := p.producer.Publish(ctx, event.EventID.String(), event); err != nil {
		logger.Error("Failed to publish record event", "outbox_id", message.ID, "event_id", event.EventID.String(), "error", err)
		return fmt.Errorf("failed to publish record event %s: %w", event.EventID.String(), err)
	}

	// Mark outbox message as processed
	if err := p.outboxRepo.UpdateStatus(ctx, message.ID, shared.OutboxStatusProcessed); err != nil {
		logger.Error("Failed to update outbox message status to PROCESSED",
			"outbox_id", message.ID, "event_id", event.EventID.String(), "error", err,
		)
		return fmt.Errorf("event %s published, but failed to mark outbox %d as PROCESSED: %w", event.EventID.String(), message.ID, err)
	}

	logger.Info("Outbox message successfully published and marked as PROCESSED", "outbox_id", message.ID, "event_id", event.EventID.String())
	return nil
}
