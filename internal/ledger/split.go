// Package ledger implements the balance/netting engine for the group
// ledger: equal-split share allocation with exact remainder handling, and
// the fold of expense and settlement records into per-member net balances.
// The engine is a pure function over an immutable record snapshot; it does
// no I/O and may be invoked concurrently.
package ledger

import (
	"errors"
	"sort"

	"github.com/easyxpense-ledger/internal/domain/money"
	"github.com/google/uuid"
)

// ErrNoParticipants indicates an allocation request over an empty set.
// Expense construction rejects empty participant sets, so reaching this
// from a stored record means the record bypassed validation.
var ErrNoParticipants = errors.New("cannot allocate over empty participant set")

// Allocate computes each participant's exact share of an amount under the
// equal-split rule. Every participant receives amount div n minor units;
// the remaining amount mod n minor units are distributed one each to the
// first participants in ascending member-key order. The shares always sum
// to the amount exactly, so no minor unit is lost or gained to rounding.
func Allocate(amount money.Money, participants []uuid.UUID) (map[uuid.UUID]money.Money, error) {
	n := int64(len(participants))
	if n == 0 {
		return nil, ErrNoParticipants
	}

	// Fixed deterministic order: sorted by member key. The input is not
	// mutated.
	ordered := make([]uuid.UUID, len(participants))
	copy(ordered, participants)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].String() < ordered[j].String()
	})

	base := amount.MinorUnits() / n
	remainder := amount.MinorUnits() % n

	shares := make(map[uuid.UUID]money.Money, n)
	for i, id := range ordered {
		share := base
		if int64(i) < remainder {
			share++
		}
		shares[id] = money.FromMinorUnits(share)
	}
	return shares, nil
}
