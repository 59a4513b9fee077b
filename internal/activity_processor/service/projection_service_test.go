package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"log/slog"

	"github.com/easyxpense-ledger/internal/domain/activity"
	"github.com/easyxpense-ledger/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockActivityRepo mocks the activity.Repository interface
type MockActivityRepo struct {
	mock.Mock
}

func (m *MockActivityRepo) Create(ctx context.Context, entry *activity.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockActivityRepo) GetByEventID(ctx context.Context, eventID uuid.UUID) (*activity.Entry, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*activity.Entry), args.Error(1)
}

func (m *MockActivityRepo) List(ctx context.Context, limit, offset int) ([]*activity.Entry, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*activity.Entry), args.Error(1)
}

func (m *MockActivityRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func newTestEvent() *shared.RecordEvent {
	payerID := uuid.New()
	return &shared.RecordEvent{
		EventID:        uuid.New(),
		Kind:           shared.EventKindExpenseCreated,
		RecordID:       uuid.New(),
		Description:    "Dinner",
		Amount:         3000,
		ActorID:        payerID,
		ParticipantIDs: []uuid.UUID{payerID, uuid.New()},
		CorrelationID:  "corr-1",
		OccurredAt:     time.Now().UTC(),
	}
}

func TestProjectionServiceImpl_ProjectEvent(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	t.Run("creates feed entry from event", func(t *testing.T) {
		mockRepo := &MockActivityRepo{}
		service := NewProjectionService(mockRepo, logger)
		event := newTestEvent()

		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(entry *activity.Entry) bool {
			return entry.EventID == event.EventID &&
				entry.Kind == event.Kind &&
				entry.RecordID == event.RecordID &&
				entry.Amount == event.Amount &&
				entry.ActorID == event.ActorID
		})).Return(nil).Once()

		err := service.ProjectEvent(ctx, event)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("duplicate event acknowledged without error", func(t *testing.T) {
		mockRepo := &MockActivityRepo{}
		service := NewProjectionService(mockRepo, logger)
		event := newTestEvent()

		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*activity.Entry")).
			Return(activity.ErrDuplicateEntry{EventID: event.EventID}).Once()

		err := service.ProjectEvent(ctx, event)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("repository error surfaces for retry", func(t *testing.T) {
		mockRepo := &MockActivityRepo{}
		service := NewProjectionService(mockRepo, logger)
		event := newTestEvent()
		dbErr := errors.New("mongo connection failed")

		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*activity.Entry")).Return(dbErr).Once()

		err := service.ProjectEvent(ctx, event)

		assert.ErrorIs(t, err, dbErr)
		mockRepo.AssertExpectations(t)
	})
}
