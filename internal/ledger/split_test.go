package ledger

import (
	"sort"
	"testing"

	"github.com/easyxpense-ledger/internal/domain/money"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocate_EvenSplit(t *testing.T) {
	participants := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	shares, err := Allocate(money.Money(30000), participants)
	require.NoError(t, err)

	require.Len(t, shares, 3)
	for _, id := range participants {
		assert.Equal(t, money.Money(10000), shares[id])
	}
}

func TestAllocate_RemainderGoesToFirstByKey(t *testing.T) {
	participants := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	// 100.00 over three participants: base 33.33, one spare paisa.
	shares, err := Allocate(money.Money(10000), participants)
	require.NoError(t, err)

	ordered := make([]uuid.UUID, len(participants))
	copy(ordered, participants)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].String() < ordered[j].String()
	})

	assert.Equal(t, money.Money(3334), shares[ordered[0]])
	assert.Equal(t, money.Money(3333), shares[ordered[1]])
	assert.Equal(t, money.Money(3333), shares[ordered[2]])
}

func TestAllocate_SumEqualsAmount(t *testing.T) {
	amounts := []money.Money{1, 2, 99, 100, 101, 3333, 10000, 99999, 1000001}
	for n := 1; n <= 7; n++ {
		participants := make([]uuid.UUID, n)
		for i := range participants {
			participants[i] = uuid.New()
		}
		for _, amount := range amounts {
			shares, err := Allocate(amount, participants)
			require.NoError(t, err)
			require.Len(t, shares, n)

			var sum money.Money
			for _, s := range shares {
				sum = sum.Add(s)
			}
			assert.Equal(t, amount, sum, "amount=%d n=%d", amount, n)
		}
	}
}

func TestAllocate_SingleParticipant(t *testing.T) {
	only := uuid.New()
	shares, err := Allocate(money.Money(4242), []uuid.UUID{only})
	require.NoError(t, err)
	assert.Equal(t, money.Money(4242), shares[only])
}

func TestAllocate_Deterministic(t *testing.T) {
	participants := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()}
	reversed := []uuid.UUID{participants[3], participants[2], participants[1], participants[0]}

	first, err := Allocate(money.Money(1003), participants)
	require.NoError(t, err)
	second, err := Allocate(money.Money(1003), reversed)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAllocate_EmptyParticipants(t *testing.T) {
	_, err := Allocate(money.Money(100), nil)
	assert.ErrorIs(t, err, ErrNoParticipants)
}
