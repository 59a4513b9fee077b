package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/easyxpense-ledger/internal/domain/user"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	logger := newTestLogger()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &UserRepository{querier: mock, logger: logger}
	now := time.Now()

	u := &user.User{
		ID:           uuid.New(),
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: []byte("$2a$10$abcdefghijklmnopqrstuv"),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	query := `
		INSERT INTO users \(id, name, email, password_hash, created_at, updated_at\)
		VALUES \(\$1, \$2, \$3, \$4, \$5, \$6\)
	`

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(u.ID, u.Name, u.Email, u.PasswordHash, u.CreatedAt, u.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.Create(ctx, u)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(u.ID, u.Name, u.Email, u.PasswordHash, u.CreatedAt, u.UpdatedAt).
			WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})

		err := repo.Create(ctx, u)
		assert.Error(t, err)
		var dupErr user.ErrDuplicateEmail
		assert.ErrorAs(t, err, &dupErr)
		assert.Equal(t, u.Email, dupErr.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failure", func(t *testing.T) {
		expectedErr := errors.New("db error")
		mock.ExpectExec(query).
			WithArgs(u.ID, u.Name, u.Email, u.PasswordHash, u.CreatedAt, u.UpdatedAt).
			WillReturnError(expectedErr)

		err := repo.Create(ctx, u)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create user")
		assert.ErrorIs(t, err, expectedErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	logger := newTestLogger()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &UserRepository{querier: mock, logger: logger}
	userID := uuid.New()
	now := time.Now()

	expectedUser := &user.User{
		ID:           userID,
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: []byte("$2a$10$abcdefghijklmnopqrstuv"),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	query := `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM users
		WHERE id = \$1
	`
	rows := pgxmock.NewRows([]string{"id", "name", "email", "password_hash", "created_at", "updated_at"}).
		AddRow(expectedUser.ID, expectedUser.Name, expectedUser.Email, expectedUser.PasswordHash, expectedUser.CreatedAt, expectedUser.UpdatedAt)

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID).WillReturnRows(rows)

		u, err := repo.GetByID(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, expectedUser, u)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID).WillReturnError(pgx.ErrNoRows)

		u, err := repo.GetByID(ctx, userID)
		assert.Error(t, err)
		assert.Nil(t, u)
		var notFoundErr user.ErrUserNotFound
		assert.ErrorAs(t, err, &notFoundErr)
		assert.Equal(t, userID, notFoundErr.UserID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		dbErr := errors.New("some db error")
		mock.ExpectQuery(query).WithArgs(userID).WillReturnError(dbErr)

		u, err := repo.GetByID(ctx, userID)
		assert.Error(t, err)
		assert.Nil(t, u)
		assert.Contains(t, err.Error(), "failed to get user")
		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_GetByEmail(t *testing.T) {
	ctx := context.Background()
	logger := newTestLogger()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &UserRepository{querier: mock, logger: logger}
	email := "alice@example.com"
	now := time.Now()

	expectedUser := &user.User{
		ID:           uuid.New(),
		Name:         "Alice",
		Email:        email,
		PasswordHash: []byte("$2a$10$abcdefghijklmnopqrstuv"),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	query := `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM users
		WHERE email = \$1
	`
	rows := pgxmock.NewRows([]string{"id", "name", "email", "password_hash", "created_at", "updated_at"}).
		AddRow(expectedUser.ID, expectedUser.Name, expectedUser.Email, expectedUser.PasswordHash, expectedUser.CreatedAt, expectedUser.UpdatedAt)

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(email).WillReturnRows(rows)

		u, err := repo.GetByEmail(ctx, email)
		assert.NoError(t, err)
		assert.Equal(t, expectedUser, u)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(email).WillReturnError(pgx.ErrNoRows)

		u, err := repo.GetByEmail(ctx, email)
		assert.NoError(t, err) // No error, just nil user
		assert.Nil(t, u)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		dbErr := errors.New("some db error")
		mock.ExpectQuery(query).WithArgs(email).WillReturnError(dbErr)

		u, err := repo.GetByEmail(ctx, email)
		assert.Error(t, err)
		assert.Nil(t, u)
		assert.Contains(t, err.Error(), "failed to get user by email")
		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
