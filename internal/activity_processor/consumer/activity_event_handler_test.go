package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"log/slog"

	"github.com/easyxpense-ledger/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProjectionService mocks the ProjectionService interface
type MockProjectionService struct {
	mock.Mock
}

func (m *MockProjectionService) ProjectEvent(ctx context.Context, event *shared.RecordEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockDLQProducer mocks the DeadLetterPublisher interface
type MockDLQProducer struct {
	mock.Mock
}

func (m *MockDLQProducer) PublishToDLQ(ctx context.Context, key string, originalMessageValue []byte, reason string) error {
	args := m.Called(ctx, key, originalMessageValue, reason)
	return args.Error(0)
}

func (m *MockDLQProducer) Close() error {
	args := m.Called()
	return args.Error(0)
}

func TestActivityEventHandler_HandleMessage(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	event := &shared.RecordEvent{
		EventID:       uuid.New(),
		Kind:          shared.EventKindExpenseCreated,
		RecordID:      uuid.New(),
		Description:   "Dinner",
		Amount:        3000,
		ActorID:       uuid.New(),
		CorrelationID: "corr-1",
		OccurredAt:    time.Now().UTC(),
	}
	eventJSON, err := json.Marshal(event)
	assert.NoError(t, err)
	key := []byte(event.EventID.String())

	t.Run("valid message projected and committed", func(t *testing.T) {
		mockService := &MockProjectionService{}
		mockDLQ := &MockDLQProducer{}
		handler := NewActivityEventHandler(logger, mockService, mockDLQ)

		mockService.On("ProjectEvent", mock.Anything, mock.MatchedBy(func(e *shared.RecordEvent) bool {
			return e.EventID == event.EventID && e.Kind == event.Kind
		})).Return(nil).Once()

		err := handler.HandleMessage(ctx, key, eventJSON)

		assert.NoError(t, err)
		mockService.AssertExpectations(t)
		mockDLQ.AssertNotCalled(t, "PublishToDLQ")
	})

	t.Run("poison message routed to DLQ and committed", func(t *testing.T) {
		mockService := &MockProjectionService{}
		mockDLQ := &MockDLQProducer{}
		handler := NewActivityEventHandler(logger, mockService, mockDLQ)
		poison := []byte("not json")

		mockDLQ.On("PublishToDLQ", mock.Anything, string(key), poison, mock.AnythingOfType("string")).Return(nil).Once()

		err := handler.HandleMessage(ctx, key, poison)

		assert.NoError(t, err)
		mockDLQ.AssertExpectations(t)
		mockService.AssertNotCalled(t, "ProjectEvent")
	})

	t.Run("poison message retried when DLQ publish fails", func(t *testing.T) {
		mockService := &MockProjectionService{}
		mockDLQ := &MockDLQProducer{}
		handler := NewActivityEventHandler(logger, mockService, mockDLQ)
		poison := []byte("not json")

		mockDLQ.On("PublishToDLQ", mock.Anything, string(key), poison, mock.AnythingOfType("string")).
			Return(errors.New("kafka unavailable")).Once()

		err := handler.HandleMessage(ctx, key, poison)

		assert.Error(t, err)
		mockDLQ.AssertExpectations(t)
	})

	t.Run("poison message retried when no DLQ configured", func(t *testing.T) {
		mockService := &MockProjectionService{}
		handler := NewActivityEventHandler(logger, mockService, nil)

		err := handler.HandleMessage(ctx, key, []byte("not json"))

		assert.Error(t, err)
		mockService.AssertNotCalled(t, "ProjectEvent")
	})

	t.Run("projection failure returned for retry", func(t *testing.T) {
		mockService := &MockProjectionService{}
		mockDLQ := &MockDLQProducer{}
		handler := NewActivityEventHandler(logger, mockService, mockDLQ)
		projErr := errors.New("mongo connection failed")

		mockService.On("ProjectEvent", mock.Anything, mock.AnythingOfType("*shared.RecordEvent")).Return(projErr).Once()

		err := handler.HandleMessage(ctx, key, eventJSON)

		assert.ErrorIs(t, err, projErr)
		mockService.AssertExpectations(t)
	})
}
