// Package postgres provides PostgreSQL implementations of the domain
// repositories. It handles all database operations while maintaining
// transaction safety and proper error handling for the expense ledger.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/easyxpense-ledger/internal/domain/member"
	"github.com/easyxpense-ledger/internal/platform/persistence"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// MemberRepository implements the member.Repository interface for PostgreSQL
type MemberRepository struct {
	querier persistence.Querier // Can be *pgxpool.Pool or pgx.Tx
	logger  *slog.Logger
}

// NewMemberRepository creates a new PostgreSQL member repository.
// It expects db.Pool() to satisfy persistence.Querier.
func NewMemberRepository(logger *slog.Logger, db *persistence.PostgresDB) member.Repository {
	return &MemberRepository{
		querier: db.Pool(),
		logger:  logger,
	}
}

// Create stores a new member. A unique constraint on email maps to
// member.ErrDuplicateEmail.
func (r *MemberRepository) Create(ctx context.Context, m *member.Member) error {
	query := `
		INSERT INTO members (id, name, email, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.querier.Exec(ctx, query,
		m.ID,
		m.Name,
		m.Email,
		m.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return member.ErrDuplicateEmail{Email: m.Email}
		}
		r.logger.Error("Failed to create member", "error", err)
		return fmt.Errorf("failed to create member: %w", err)
	}

	return nil
}

// GetByID retrieves a member by its ID
func (r *MemberRepository) GetByID(ctx context.Context, id uuid.UUID) (*member.Member, error) {
	query := `
		SELECT id, name, email, created_at
		FROM members
		WHERE id = $1
	`

	var m member.Member
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&m.ID,
		&m.Name,
		&m.Email,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, member.ErrMemberNotFound{MemberID: id}
		}
		r.logger.Error("Failed to get member", "id", id.String(), "error", err)
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return &m, nil
}

// GetByEmail retrieves a member by email
func (r *MemberRepository) GetByEmail(ctx context.Context, email string) (*member.Member, error) {
	query := `
		SELECT id, name, email, created_at
		FROM members
		WHERE email = $1
	`

	var m member.Member
	err := r.querier.QueryRow(ctx, query, email).Scan(
		&m.ID,
		&m.Name,
		&m.Email,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Return nil, nil when no member is found with the given email
		}
		r.logger.Error("Failed to get member by email", "email", email, "error", err)
		return nil, fmt.Errorf("failed to get member by email: %w", err)
	}

	return &m, nil
}

// List returns all registered members ordered by registration time
func (r *MemberRepository) List(ctx context.Context) ([]*member.Member, error) {
	query := `
		SELECT id, name, email, created_at
		FROM members
		ORDER BY created_at ASC
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list members", "error", err)
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*member.Member
	for rows.Next() {
		var m member.Member
		err := rows.Scan(
			&m.ID,
			&m.Name,
			&m.Email,
			&m.CreatedAt,
		)
		if err != nil {
			r.logger.Error("Failed to scan member", "error", err)
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Error iterating over members", "error", err)
		return nil, fmt.Errorf("error iterating over members: %w", err)
	}

	return members, nil
}
