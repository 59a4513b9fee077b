// Package settlement defines the immutable settlement record: a direct
// repayment from one member to another that cancels debt in the direction
// paid.
package settlement

import (
	"errors"
	"time"

	"github.com/easyxpense-ledger/internal/domain/money"
	"github.com/google/uuid"
)

// ErrSelfSettlement indicates an attempt to settle with oneself
var ErrSelfSettlement = errors.New("cannot settle with yourself")

// Settlement is an immutable fact: From paid To the given amount directly.
// Invariants: From != To, Amount > 0.
type Settlement struct {
	ID        uuid.UUID   `json:"id"`
	FromID    uuid.UUID   `json:"from_id"`
	ToID      uuid.UUID   `json:"to_id"`
	Amount    money.Money `json:"amount"`
	CreatedAt time.Time   `json:"created_at"`
}

// NewSettlement validates and creates a settlement record
func NewSettlement(fromID, toID uuid.UUID, amount money.Money) (*Settlement, error) {
	if fromID == uuid.Nil || toID == uuid.Nil {
		return nil, errors.New("from and to members are required")
	}
	if fromID == toID {
		return nil, ErrSelfSettlement
	}
	if err := money.ValidateExpenseAmount(amount); err != nil {
		return nil, err
	}

	return &Settlement{
		ID:        uuid.New(),
		FromID:    fromID,
		ToID:      toID,
		Amount:    amount,
		CreatedAt: time.Now(),
	}, nil
}

// Touches reports whether the member is either side of this settlement.
func (s *Settlement) Touches(id uuid.UUID) bool {
	return s.FromID == id || s.ToID == id
}
