package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/easyxpense-ledger/internal/domain/expense"
	"github.com/easyxpense-ledger/internal/domain/money"
	"github.com/easyxpense-ledger/internal/platform/persistence"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ExpenseRepository implements the expense.Repository interface for PostgreSQL.
// Participants live in a separate expense_participants table and are loaded
// alongside the expense rows.
type ExpenseRepository struct {
	querier persistence.Querier
	logger  *slog.Logger
}

// NewExpenseRepository creates a new PostgreSQL expense repository
func NewExpenseRepository(logger *slog.Logger, db *persistence.PostgresDB) expense.Repository {
	return &ExpenseRepository{
		querier: db.Pool(),
		logger:  logger,
	}
}

// WithTx wraps the repository with a transaction, allowing the expense row,
// its participant rows and the outbox message to be written atomically.
func (r *ExpenseRepository) WithTx(tx pgx.Tx) expense.Repository {
	return &ExpenseRepository{
		querier: tx,
		logger:  r.logger,
	}
}

// Create stores a new expense record and its participant set
func (r *ExpenseRepository) Create(ctx context.Context, e *expense.Expense) error {
	query := `
		INSERT INTO expenses (id, description, amount, payer_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.querier.Exec(ctx, query,
		e.ID,
		e.Description,
		e.Amount.MinorUnits(),
		e.PayerID,
		e.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to create expense", "error", err)
		return fmt.Errorf("failed to create expense: %w", err)
	}

	participantQuery := `
		INSERT INTO expense_participants (expense_id, member_id)
		VALUES ($1, $2)
	`
	for _, participantID := range e.ParticipantIDs {
		if _, err := r.querier.Exec(ctx, participantQuery, e.ID, participantID); err != nil {
			r.logger.Error("Failed to create expense participant",
				"expense_id", e.ID.String(),
				"member_id", participantID.String(),
				"error", err,
			)
			return fmt.Errorf("failed to create expense participant: %w", err)
		}
	}

	return nil
}

// GetByID retrieves an expense record with its participants
func (r *ExpenseRepository) GetByID(ctx context.Context, id uuid.UUID) (*expense.Expense, error) {
	query := `
		SELECT id, description, amount, payer_id, created_at
		FROM expenses
		WHERE id = $1
	`

	var e expense.Expense
	var amount int64
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&e.ID,
		&e.Description,
		&amount,
		&e.PayerID,
		&e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, expense.ErrExpenseNotFound{ExpenseID: id}
		}
		r.logger.Error("Failed to get expense", "id", id.String(), "error", err)
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	e.Amount = money.Money(amount)

	participants, err := r.loadParticipants(ctx, []uuid.UUID{e.ID})
	if err != nil {
		return nil, err
	}
	e.ParticipantIDs = participants[e.ID]

	return &e, nil
}

// List returns all expense records with participants, newest first
func (r *ExpenseRepository) List(ctx context.Context) ([]*expense.Expense, error) {
	query := `
		SELECT id, description, amount, payer_id, created_at
		FROM expenses
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list expenses", "error", err)
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*expense.Expense
	var ids []uuid.UUID
	for rows.Next() {
		var e expense.Expense
		var amount int64
		err := rows.Scan(
			&e.ID,
			&e.Description,
			&amount,
			&e.PayerID,
			&e.CreatedAt,
		)
		if err != nil {
			r.logger.Error("Failed to scan expense", "error", err)
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		e.Amount = money.Money(amount)
		expenses = append(expenses, &e)
		ids = append(ids, e.ID)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Error iterating over expenses", "error", err)
		return nil, fmt.Errorf("error iterating over expenses: %w", err)
	}

	if len(expenses) == 0 {
		return expenses, nil
	}

	participants, err := r.loadParticipants(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, e := range expenses {
		e.ParticipantIDs = participants[e.ID]
	}

	return expenses, nil
}

// loadParticipants fetches participant member IDs for the given expenses,
// grouped by expense. Ordering matches the stored sort order.
func (r *ExpenseRepository) loadParticipants(ctx context.Context, expenseIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	query := `
		SELECT expense_id, member_id
		FROM expense_participants
		WHERE expense_id = ANY($1)
		ORDER BY expense_id, member_id::text
	`

	rows, err := r.querier.Query(ctx, query, expenseIDs)
	if err != nil {
		r.logger.Error("Failed to load expense participants", "error", err)
		return nil, fmt.Errorf("failed to load expense participants: %w", err)
	}
	defer rows.Close()

	participants := make(map[uuid.UUID][]uuid.UUID, len(expenseIDs))
	for rows.Next() {
		var expenseID, memberID uuid.UUID
		if err := rows.Scan(&expenseID, &memberID); err != nil {
			r.logger.Error("Failed to scan expense participant", "error", err)
			return nil, fmt.Errorf("failed to scan expense participant: %w", err)
		}
		participants[expenseID] = append(participants[expenseID], memberID)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Error iterating over expense participants", "error", err)
		return nil, fmt.Errorf("error iterating over expense participants: %w", err)
	}

	return participants, nil
}
