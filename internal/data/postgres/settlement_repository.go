package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/easyxpense-ledger/internal/domain/money"
	"github.com/easyxpense-ledger/internal/domain/settlement"
	"github.com/easyxpense-ledger/internal/platform/persistence"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SettlementRepository implements the settlement.Repository interface for PostgreSQL
type SettlementRepository struct {
	querier persistence.Querier
	logger  *slog.Logger
}

// NewSettlementRepository creates a new PostgreSQL settlement repository
func NewSettlementRepository(logger *slog.Logger, db *persistence.PostgresDB) settlement.Repository {
	return &SettlementRepository{
		querier: db.Pool(),
		logger:  logger,
	}
}

// WithTx wraps the repository with a transaction so the settlement row and
// the outbox message can be written atomically.
func (r *SettlementRepository) WithTx(tx pgx.Tx) settlement.Repository {
	return &SettlementRepository{
		querier: tx,
		logger:  r.logger,
	}
}

// Create stores a new settlement record
func (r *SettlementRepository) Create(ctx context.Context, s *settlement.Settlement) error {
	query := `
		INSERT INTO settlements (id, from_id, to_id, amount, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.querier.Exec(ctx, query,
		s.ID,
		s.FromID,
		s.ToID,
		s.Amount.MinorUnits(),
		s.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to create settlement", "error", err)
		return fmt.Errorf("failed to create settlement: %w", err)
	}

	return nil
}

// GetByID retrieves a settlement record by its ID
func (r *SettlementRepository) GetByID(ctx context.Context, id uuid.UUID) (*settlement.Settlement, error) {
	query := `
		SELECT id, from_id, to_id, amount, created_at
		FROM settlements
		WHERE id = $1
	`

	var s settlement.Settlement
	var amount int64
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&s.ID,
		&s.FromID,
		&s.ToID,
		&amount,
		&s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, settlement.ErrSettlementNotFound{SettlementID: id}
		}
		r.logger.Error("Failed to get settlement", "id", id.String(), "error", err)
		return nil, fmt.Errorf("failed to get settlement: %w", err)
	}
	s.Amount = money.Money(amount)

	return &s, nil
}

// List returns all settlement records, newest first
func (r *SettlementRepository) List(ctx context.Context) ([]*settlement.Settlement, error) {
	query := `
		SELECT id, from_id, to_id, amount, created_at
		FROM settlements
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list settlements", "error", err)
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	defer rows.Close()

	var settlements []*settlement.Settlement
	for rows.Next() {
		var s settlement.Settlement
		var amount int64
		err := rows.Scan(
			&s.ID,
			&s.FromID,
			&s.ToID,
			&amount,
			&s.CreatedAt,
		)
		if err != nil {
			r.logger.Error("Failed to scan settlement", "error", err)
			return nil, fmt.Errorf("failed to scan settlement: %w", err)
		}
		s.Amount = money.Money(amount)
		settlements = append(settlements, &s)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Error iterating over settlements", "error", err)
		return nil, fmt.Errorf("error iterating over settlements: %w", err)
	}

	return settlements, nil
}
