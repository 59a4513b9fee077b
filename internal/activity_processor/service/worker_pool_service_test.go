package service

import (
	"context"
	"errors"
	"sync"
	"testing"

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

func TestWorkerPoolProjectionService_ProjectEvent(t *testing.T) {
	mockBaseService := &MockProjectionService{}
	logger := slog.Default()

	event := &shared.RecordEvent{
		EventID:       uuid.New(),
		Kind:          shared.EventKindExpenseCreated,
		RecordID:      uuid.New(),
		Amount:        3000,
		ActorID:       uuid.New(),
		CorrelationID: "corr-1",
	}

	workerPoolService, err := NewWorkerPoolProjectionService(
		mockBaseService,
		WorkerPoolConfig{
			Size: 2,
		},
		logger,
	)
	assert.NoError(t, err)
	defer workerPoolService.Shutdown()

	tests := []struct {
		name          string
		setupMocks    func()
		expectedError error
	}{
		{
			name: "successful projection through the pool",
			setupMocks: func() {
				mockBaseService.On("ProjectEvent", mock.Anything, mock.AnythingOfType("*shared.RecordEvent")).Return(nil).Once()
			},
			expectedError: nil,
		},
		{
			name: "base service error propagates to the caller",
			setupMocks: func() {
				mockBaseService.On("ProjectEvent", mock.Anything, mock.AnythingOfType("*shared.RecordEvent")).
					Return(errors.New("mongo connection failed")).Once()
			},
			expectedError: errors.New("mongo connection failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			err := workerPoolService.ProjectEvent(context.Background(), event)

			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}
			mockBaseService.AssertExpectations(t)
		})
	}
}

func TestWorkerPoolProjectionService_ConcurrentEvents(t *testing.T) {
	mockBaseService := &MockProjectionService{}

	const eventCount = 20
	mockBaseService.On("ProjectEvent", mock.Anything, mock.AnythingOfType("*shared.RecordEvent")).
		Return(nil).Times(eventCount)

	workerPoolService, err := NewWorkerPoolProjectionService(
		mockBaseService,
		WorkerPoolConfig{Size: 4},
		slog.Default(),
	)
	assert.NoError(t, err)
	defer workerPoolService.Shutdown()

	var wg sync.WaitGroup
	errs := make(chan error, eventCount)
	for i := 0; i < eventCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			event := &shared.RecordEvent{
				EventID:  uuid.New(),
				Kind:     shared.EventKindSettlementCreated,
				RecordID: uuid.New(),
				Amount:   100,
				ActorID:  uuid.New(),
			}
			errs <- workerPoolService.ProjectEvent(context.Background(), event)
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	mockBaseService.AssertExpectations(t)
}

func TestWorkerPoolProjectionService_Capacity(t *testing.T) {
	workerPoolService, err := NewWorkerPoolProjectionService(
		&MockProjectionService{},
		WorkerPoolConfig{Size: 3},
		slog.Default(),
	)
	assert.NoError(t, err)
	defer workerPoolService.Shutdown()

	assert.Equal(t, 3, workerPoolService.Capacity())
	assert.Equal(t, 0, workerPoolService.Running())
}
