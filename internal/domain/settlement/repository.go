package settlement

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Repository manages settlement record persistence. Records are
// append-only: there is no update or delete operation by design.
type Repository interface {
	Create(ctx context.Context, s *Settlement) error
	GetByID(ctx context.Context, id uuid.UUID) (*Settlement, error)

	// List returns all settlement records, newest first
	List(ctx context.Context) ([]*Settlement, error)
	WithTx(tx pgx.Tx) Repository
}

// ErrSettlementNotFound indicates missing settlement record
type ErrSettlementNotFound struct {
	SettlementID uuid.UUID
}

func (e ErrSettlementNotFound) Error() string {
	return "settlement not found: " + e.SettlementID.String()
}

// Is implements the errors.Is interface for ErrSettlementNotFound
func (e ErrSettlementNotFound) Is(target error) bool {
	t, ok := target.(ErrSettlementNotFound)
	if !ok {
		return false
	}
	if t.SettlementID == uuid.Nil {
		return true
	}
	return e.SettlementID == t.SettlementID
}
