package service

import (
	"context"
	"log/slog"

	"github.com/easyxpense-ledger/internal/domain/activity"
)

// ActivityServiceImpl implements the ActivityService interface
type ActivityServiceImpl struct {
	activityRepo activity.Repository
	logger       *slog.Logger
}

// NewActivityService creates a new activity feed service
func NewActivityService(logger *slog.Logger, activityRepo activity.Repository) ActivityService {
	return &ActivityServiceImpl{
		activityRepo: activityRepo,
		logger:       logger,
	}
}

// ListActivity retrieves a page of feed entries, newest first, together
// with the total entry count
func (s *ActivityServiceImpl) ListActivity(ctx context.Context, page, perPage int) ([]*activity.Entry, int64, error) {
	offset := (page - 1) * perPage

	entries, err := s.activityRepo.List(ctx, perPage, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.activityRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
