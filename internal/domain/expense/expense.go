// Package expense defines the immutable expense record: one member paid an
// amount that is shared equally among a set of participants. Records are
// validated at construction and never mutated or deleted afterwards; all
// balance state is derived from the record history.
package expense

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/easyxpense-ledger/internal/domain/money"
	"github.com/google/uuid"
)

// MaxDescriptionLen caps the free-text description.
const MaxDescriptionLen = 200

// MaxParticipants caps the participant set size.
const MaxParticipants = 50

// Common errors
var (
	ErrEmptyDescription    = errors.New("description is required")
	ErrDescriptionTooLong  = errors.New("description too long")
	ErrInvalidParticipants = errors.New("at least one participant is required")
	ErrTooManyParticipants = errors.New("too many participants")
)

// Expense is an immutable fact: payer paid Amount on behalf of the
// participant set. Invariants held after construction: Amount > 0,
// ParticipantIDs is non-empty, deduplicated, sorted by key and contains
// the payer.
type Expense struct {
	ID             uuid.UUID   `json:"id"`
	Description    string      `json:"description"`
	Amount         money.Money `json:"amount"`
	PayerID        uuid.UUID   `json:"payer_id"`
	ParticipantIDs []uuid.UUID `json:"participant_ids"`
	CreatedAt      time.Time   `json:"created_at"`
}

// NewExpense validates and creates an expense record. The payer is added
// to the participant set when missing, and duplicates are removed; the
// stored set is sorted by member key so share allocation is reproducible.
func NewExpense(description string, amount money.Money, payerID uuid.UUID, participantIDs []uuid.UUID) (*Expense, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}
	if len(description) > MaxDescriptionLen {
		return nil, ErrDescriptionTooLong
	}
	if err := money.ValidateExpenseAmount(amount); err != nil {
		return nil, err
	}
	if payerID == uuid.Nil {
		return nil, errors.New("payer is required")
	}
	if len(participantIDs) == 0 {
		return nil, ErrInvalidParticipants
	}

	participants := normalizeParticipants(payerID, participantIDs)
	if len(participants) > MaxParticipants {
		return nil, ErrTooManyParticipants
	}

	return &Expense{
		ID:             uuid.New(),
		Description:    description,
		Amount:         amount,
		PayerID:        payerID,
		ParticipantIDs: participants,
		CreatedAt:      time.Now(),
	}, nil
}

// normalizeParticipants dedupes the set, ensures the payer is present and
// sorts by member key.
func normalizeParticipants(payerID uuid.UUID, ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids)+1)
	out := make([]uuid.UUID, 0, len(ids)+1)
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	if _, ok := seen[payerID]; !ok {
		out = append(out, payerID)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].String() < out[j].String()
	})
	return out
}

// HasParticipant reports whether the member shares in this expense.
func (e *Expense) HasParticipant(id uuid.UUID) bool {
	for _, p := range e.ParticipantIDs {
		if p == id {
			return true
		}
	}
	return false
}
