package service

import (
	"context"

	"github.com/easyxpense-ledger/internal/domain/shared"
)

// ProjectionService applies record events to the activity feed projection.
type ProjectionService interface {
	ProjectEvent(ctx context.Context, event *shared.RecordEvent) error
}
