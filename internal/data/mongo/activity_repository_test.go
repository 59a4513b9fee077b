package mongo

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
	"go.mongodb.org/mongo-driver/mongo"
)

type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Create(ctx context.Context, entry *activity.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockActivityRepository) GetByEventID(ctx context.Context, eventID uuid.UUID) (*activity.Entry, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*activity.Entry), args.Error(1)
}

func (m *MockActivityRepository) List(ctx context.Context, limit, offset int) ([]*activity.Entry, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*activity.Entry), args.Error(1)
}

func (m *MockActivityRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestNewActivityRepository(t *testing.T) {
	db := &mongo.Database{}
	logger := slog.Default()

	repo := NewActivityRepository(logger, db)

	assert.NotNil(t, repo)
	assert.IsType(t, &ActivityRepository{}, repo)
}

func TestActivityRepository_Create(t *testing.T) {
	eventID := uuid.New()
	entry := &activity.Entry{
		EventID:     eventID,
		Kind:        shared.EventKindExpenseCreated,
		RecordID:    uuid.New(),
		Description: "Dinner",
		Amount:      4500,
		ActorID:     uuid.New(),
		OccurredAt:  time.Now(),
		RecordedAt:  time.Now(),
	}

	tests := []struct {
		name          string
		setupMocks    func(mockRepo *MockActivityRepository)
		expectedError error
	}{
		{
			name: "successful creation",
			setupMocks: func(mockRepo *MockActivityRepository) {
				mockRepo.On("Create", mock.Anything, entry).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "duplicate entry",
			setupMocks: func(mockRepo *MockActivityRepository) {
				mockRepo.On("Create", mock.Anything, entry).Return(activity.ErrDuplicateEntry{EventID: eventID})
			},
			expectedError: activity.ErrDuplicateEntry{EventID: eventID},
		},
		{
			name: "database error",
			setupMocks: func(mockRepo *MockActivityRepository) {
				mockRepo.On("Create", mock.Anything, entry).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &MockActivityRepository{}
			tt.setupMocks(mockRepo)

			ctx := context.Background()
			err := mockRepo.Create(ctx, entry)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestActivityRepository_GetByEventID(t *testing.T) {
	eventID := uuid.New()
	entry := &activity.Entry{
		EventID:    eventID,
		Kind:       shared.EventKindSettlementCreated,
		RecordID:   uuid.New(),
		Amount:     2500,
		ActorID:    uuid.New(),
		OccurredAt: time.Now(),
		RecordedAt: time.Now(),
	}

	tests := []struct {
		name          string
		setupMocks    func(mockRepo *MockActivityRepository)
		expectedEntry *activity.Entry
		expectedError error
	}{
		{
			name: "entry found",
			setupMocks: func(mockRepo *MockActivityRepository) {
				mockRepo.On("GetByEventID", mock.Anything, eventID).Return(entry, nil)
			},
			expectedEntry: entry,
			expectedError: nil,
		},
		{
			name: "entry not found",
			setupMocks: func(mockRepo *MockActivityRepository) {
				mockRepo.On("GetByEventID", mock.Anything, eventID).Return(nil, activity.ErrEntryNotFound{EventID: eventID})
			},
			expectedEntry: nil,
			expectedError: activity.ErrEntryNotFound{EventID: eventID},
		},
		{
			name: "database error",
			setupMocks: func(mockRepo *MockActivityRepository) {
				mockRepo.On("GetByEventID", mock.Anything, eventID).Return(nil, errors.New("db error"))
			},
			expectedEntry: nil,
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &MockActivityRepository{}
			tt.setupMocks(mockRepo)

			ctx := context.Background()
			result, err := mockRepo.GetByEventID(ctx, eventID)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError.Error())
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedEntry, result)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestActivityRepository_List(t *testing.T) {
	entries := []*activity.Entry{
		{EventID: uuid.New(), Kind: shared.EventKindExpenseCreated, Amount: 4500, OccurredAt: time.Now()},
		{EventID: uuid.New(), Kind: shared.EventKindSettlementCreated, Amount: 2500, OccurredAt: time.Now().Add(-time.Hour)},
	}

	t.Run("paginated list", func(t *testing.T) {
		mockRepo := &MockActivityRepository{}
		mockRepo.On("List", mock.Anything, 10, 0).Return(entries, nil)
		mockRepo.On("Count", mock.Anything).Return(int64(2), nil)

		ctx := context.Background()
		result, err := mockRepo.List(ctx, 10, 0)
		assert.NoError(t, err)
		assert.Equal(t, entries, result)

		count, err := mockRepo.Count(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), count)

		mockRepo.AssertExpectations(t)
	})

	t.Run("database error", func(t *testing.T) {
		mockRepo := &MockActivityRepository{}
		mockRepo.On("List", mock.Anything, 10, 0).Return(nil, errors.New("db error"))

		result, err := mockRepo.List(context.Background(), 10, 0)
		assert.Error(t, err)
		assert.Nil(t, result)

		mockRepo.AssertExpectations(t)
	})
}
