package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/easyxpense-ledger/internal/domain/activity"
	"github.com/easyxpense-ledger/internal/domain/shared"
)

// ProjectionServiceImpl writes record events into the MongoDB activity
// feed. The projection is idempotent: a redelivered event is detected by
// its event ID and acknowledged without a second write.
type ProjectionServiceImpl struct {
	activityRepo activity.Repository
	logger       *slog.Logger
}

func NewProjectionService(activityRepo activity.Repository, logger *slog.Logger) ProjectionService {
	return &ProjectionServiceImpl{
		activityRepo: activityRepo,
		logger:       logger,
	}
}

// ProjectEvent converts a record event into a feed entry and stores it
func (s *ProjectionServiceImpl) ProjectEvent(ctx context.Context, event *shared.RecordEvent) error {
	logger := s.logger
	if event.CorrelationID != "" {
		logger = s.logger.With("correlation_id", event.CorrelationID)
	}

	logger.Info("Projecting record event into activity feed",
		"event_id", event.EventID.String(),
		"record_id", event.RecordID.String(),
		"kind", event.Kind,
	)

	entry := activity.NewEntry(event)
	if err := s.activityRepo.Create(ctx, entry); err != nil {
		if errors.Is(err, activity.ErrDuplicateEntry{}) {
			logger.Info("Activity entry already exists, skipping", "event_id", event.EventID.String())
			return nil
		}
		logger.Error("Failed to create activity entry",
			"event_id", event.EventID.String(), "error", err)
		return fmt.Errorf("create activity entry for event %s: %w", event.EventID.String(), err)
	}

	logger.Info("Activity entry recorded", "event_id", event.EventID.String())
	return nil
}
