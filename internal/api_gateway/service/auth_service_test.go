package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/easyxpense-ledger/internal/config"
	"github.com/easyxpense-ledger/internal/domain/user"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func testAuthConfig() *config.AuthConfig {
	return &config.AuthConfig{
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
	}
}

func TestAuthServiceImpl_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewAuthService(newTestLogger(), testAuthConfig(), mockRepo)

		mockRepo.On("GetByEmail", ctx, "alice@example.com").Return(nil, nil).Once()
		mockRepo.On("Create", ctx, mock.AnythingOfType("*user.User")).Return(nil).Once()

		u, token, err := service.Register(ctx, "Alice", "Alice@Example.com", "hunter2-hunter2")

		assert.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, "Alice", u.Name)
		assert.Equal(t, "alice@example.com", u.Email)
		assert.NotEqual(t, uuid.Nil, u.ID)
		assert.NotEmpty(t, token)

		claims := &jwt.RegisteredClaims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		require.NoError(t, err)
		assert.True(t, parsed.Valid)
		assert.Equal(t, u.ID.String(), claims.Subject)
		mockRepo.AssertExpectations(t)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewAuthService(newTestLogger(), testAuthConfig(), mockRepo)
		existing := &user.User{ID: uuid.New(), Email: "alice@example.com"}

		mockRepo.On("GetByEmail", ctx, "alice@example.com").Return(existing, nil).Once()

		u, token, err := service.Register(ctx, "Alice", "alice@example.com", "hunter2-hunter2")

		assert.ErrorIs(t, err, user.ErrDuplicateEmail{Email: "alice@example.com"})
		assert.Nil(t, u)
		assert.Empty(t, token)
		mockRepo.AssertExpectations(t)
	})

	t.Run("RepositoryError", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewAuthService(newTestLogger(), testAuthConfig(), mockRepo)
		dbErr := errors.New("database connection failed")

		mockRepo.On("GetByEmail", ctx, "alice@example.com").Return(nil, nil).Once()
		mockRepo.On("Create", ctx, mock.AnythingOfType("*user.User")).Return(dbErr).Once()

		u, _, err := service.Register(ctx, "Alice", "alice@example.com", "hunter2-hunter2")

		assert.ErrorIs(t, err, dbErr)
		assert.Nil(t, u)
		mockRepo.AssertExpectations(t)
	})
}

func TestAuthServiceImpl_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewAuthService(newTestLogger(), testAuthConfig(), mockRepo)
		u, err := user.NewUser("Alice", "alice@example.com", "hunter2-hunter2")
		require.NoError(t, err)

		mockRepo.On("GetByEmail", ctx, "alice@example.com").Return(u, nil).Once()

		got, token, err := service.Login(ctx, "alice@example.com", "hunter2-hunter2")

		assert.NoError(t, err)
		assert.Equal(t, u, got)
		assert.NotEmpty(t, token)
		mockRepo.AssertExpectations(t)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewAuthService(newTestLogger(), testAuthConfig(), mockRepo)

		mockRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, nil).Once()

		got, token, err := service.Login(ctx, "nobody@example.com", "hunter2-hunter2")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Nil(t, got)
		assert.Empty(t, token)
		mockRepo.AssertExpectations(t)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		service := NewAuthService(newTestLogger(), testAuthConfig(), mockRepo)
		u, err := user.NewUser("Alice", "alice@example.com", "hunter2-hunter2")
		require.NoError(t, err)

		mockRepo.On("GetByEmail", ctx, "alice@example.com").Return(u, nil).Once()

		got, _, err := service.Login(ctx, "alice@example.com", "not-the-password")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Nil(t, got)
		mockRepo.AssertExpectations(t)
	})
}

func TestAuthServiceImpl_GetUserByID(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	service := NewAuthService(newTestLogger(), testAuthConfig(), mockRepo)
	userID := uuid.New()
	u := &user.User{ID: userID, Name: "Alice", Email: "alice@example.com"}

	mockRepo.On("GetByID", ctx, userID).Return(u, nil).Once()

	got, err := service.GetUserByID(ctx, userID)

	assert.NoError(t, err)
	assert.Equal(t, u, got)
	mockRepo.AssertExpectations(t)
}
