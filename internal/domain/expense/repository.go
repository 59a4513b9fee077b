package expense

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Repository manages expense record persistence. Records are append-only:
// there is no update or delete operation by design.
type Repository interface {
	Create(ctx context.Context, e *Expense) error
	GetByID(ctx context.Context, id uuid.UUID) (*Expense, error)

	// List returns all expense records, newest first
	List(ctx context.Context) ([]*Expense, error)
	WithTx(tx pgx.Tx) Repository
}

// ErrExpenseNotFound indicates missing expense record
type ErrExpenseNotFound struct {
	ExpenseID uuid.UUID
}

func (e ErrExpenseNotFound) Error() string {
	return "expense not found: " + e.ExpenseID.String()
}

// Is implements the errors.Is interface for ErrExpenseNotFound
func (e ErrExpenseNotFound) Is(target error) bool {
	t, ok := target.(ErrExpenseNotFound)
	if !ok {
		return false
	}
	if t.ExpenseID == uuid.Nil {
		return true
	}
	return e.ExpenseID == t.ExpenseID
}
