package expense

import (
	"sort"
	"strings"
	"testing"

	"github.com/easyxpense-ledger/internal/domain/money"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExpense(t *testing.T) {
	payer := uuid.New()
	other := uuid.New()

	t.Run("Success", func(t *testing.T) {
		e, err := NewExpense("Dinner", money.Money(30000), payer, []uuid.UUID{payer, other})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, e.ID)
		assert.Equal(t, "Dinner", e.Description)
		assert.Equal(t, money.Money(30000), e.Amount)
		assert.Equal(t, payer, e.PayerID)
		assert.Len(t, e.ParticipantIDs, 2)
		assert.False(t, e.CreatedAt.IsZero())
	})

	t.Run("PayerAddedWhenMissing", func(t *testing.T) {
		e, err := NewExpense("Groceries", money.Money(5000), payer, []uuid.UUID{other})
		require.NoError(t, err)
		assert.True(t, e.HasParticipant(payer))
		assert.True(t, e.HasParticipant(other))
	})

	t.Run("DuplicatesRemoved", func(t *testing.T) {
		e, err := NewExpense("Taxi", money.Money(1200), payer, []uuid.UUID{other, other, payer, payer})
		require.NoError(t, err)
		assert.Len(t, e.ParticipantIDs, 2)
	})

	t.Run("ParticipantsSortedByKey", func(t *testing.T) {
		ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
		e, err := NewExpense("Rent", money.Money(90000), ids[0], ids)
		require.NoError(t, err)
		sorted := sort.SliceIsSorted(e.ParticipantIDs, func(i, j int) bool {
			return e.ParticipantIDs[i].String() < e.ParticipantIDs[j].String()
		})
		assert.True(t, sorted)
	})

	t.Run("EmptyDescription", func(t *testing.T) {
		_, err := NewExpense("   ", money.Money(100), payer, []uuid.UUID{payer})
		assert.ErrorIs(t, err, ErrEmptyDescription)
	})

	t.Run("DescriptionTooLong", func(t *testing.T) {
		_, err := NewExpense(strings.Repeat("x", MaxDescriptionLen+1), money.Money(100), payer, []uuid.UUID{payer})
		assert.ErrorIs(t, err, ErrDescriptionTooLong)
	})

	t.Run("NonPositiveAmount", func(t *testing.T) {
		_, err := NewExpense("Dinner", money.Money(0), payer, []uuid.UUID{payer})
		assert.ErrorIs(t, err, money.ErrInvalidAmount)

		_, err = NewExpense("Dinner", money.Money(-500), payer, []uuid.UUID{payer})
		assert.ErrorIs(t, err, money.ErrInvalidAmount)
	})

	t.Run("AmountOverCeiling", func(t *testing.T) {
		_, err := NewExpense("Villa", money.MaxExpense+1, payer, []uuid.UUID{payer})
		assert.ErrorIs(t, err, money.ErrAmountTooLarge)
	})

	t.Run("NoParticipants", func(t *testing.T) {
		_, err := NewExpense("Dinner", money.Money(100), payer, nil)
		assert.ErrorIs(t, err, ErrInvalidParticipants)
	})

	t.Run("TooManyParticipants", func(t *testing.T) {
		ids := make([]uuid.UUID, MaxParticipants+1)
		for i := range ids {
			ids[i] = uuid.New()
		}
		_, err := NewExpense("Festival", money.Money(100000), ids[0], ids)
		assert.ErrorIs(t, err, ErrTooManyParticipants)
	})
}
