package ledger

import (
	"github.com/easyxpense-ledger/internal/domain/expense"
	"github.com/easyxpense-ledger/internal/domain/money"
	"github.com/easyxpense-ledger/internal/domain/settlement"
	"github.com/google/uuid"
)

// SettledThreshold is the magnitude at or below which a net balance is
// treated as settled and excluded from the all-balances view. One minor
// unit absorbs rounding left over from equal splits.
const SettledThreshold = money.Money(1)

// Balances maps each member to their signed net balance: positive means
// the member is owed money by the group, negative means the member owes.
type Balances map[uuid.UUID]money.Money

// Sum returns the total of all net balances. For any valid record set it
// is exactly zero (money is conserved within the group).
func (b Balances) Sum() money.Money {
	var total money.Money
	for _, v := range b {
		total = total.Add(v)
	}
	return total
}

// NonZero returns the balances whose magnitude exceeds SettledThreshold.
func (b Balances) NonZero() Balances {
	out := make(Balances)
	for id, v := range b {
		if v.Abs() > SettledThreshold {
			out[id] = v
		}
	}
	return out
}

// ErrUnknownMember indicates a record referencing a member absent from the
// known-member set. This is a data-integrity error: it means a record
// bypassed construction-time validation or a member row was removed out
// of band.
type ErrUnknownMember struct {
	MemberID uuid.UUID
}

func (e ErrUnknownMember) Error() string {
	return "record references unknown member: " + e.MemberID.String()
}

// Is implements the errors.Is interface for ErrUnknownMember
func (e ErrUnknownMember) Is(target error) bool {
	t, ok := target.(ErrUnknownMember)
	if !ok {
		return false
	}
	if t.MemberID == uuid.Nil {
		return true
	}
	return e.MemberID == t.MemberID
}

// ErrShareSumMismatch indicates allocator output that does not sum to the
// expense amount. Unreachable while the allocator is correct; reported as
// fatal rather than silently corrected.
type ErrShareSumMismatch struct {
	ExpenseID uuid.UUID
	Amount    money.Money
	ShareSum  money.Money
}

func (e ErrShareSumMismatch) Error() string {
	return "share sum " + e.ShareSum.String() + " does not match expense amount " +
		e.Amount.String() + " for expense " + e.ExpenseID.String()
}

// ComputeBalances folds the full record history into net balances per
// member. Accumulation is commutative and exact, so the result is
// identical under any permutation of the inputs.
//
// Per expense: the payer is credited amount - share(payer) (what the other
// participants owe them) and every other participant is debited their
// share. Per settlement: the paying member is credited the amount and the
// receiving member debited, cancelling debt in the direction paid.
//
// Any record referencing a member outside memberIDs aborts the
// computation with ErrUnknownMember; partial results are never returned.
func ComputeBalances(memberIDs []uuid.UUID, expenses []*expense.Expense, settlements []*settlement.Settlement) (Balances, error) {
	known := make(map[uuid.UUID]struct{}, len(memberIDs))
	balances := make(Balances, len(memberIDs))
	for _, id := range memberIDs {
		known[id] = struct{}{}
		balances[id] = 0
	}

	for _, e := range expenses {
		shares, err := Allocate(e.Amount, e.ParticipantIDs)
		if err != nil {
			return nil, err
		}

		var shareSum money.Money
		for _, s := range shares {
			shareSum = shareSum.Add(s)
		}
		if shareSum != e.Amount {
			return nil, ErrShareSumMismatch{ExpenseID: e.ID, Amount: e.Amount, ShareSum: shareSum}
		}

		if _, ok := known[e.PayerID]; !ok {
			return nil, ErrUnknownMember{MemberID: e.PayerID}
		}
		for id, share := range shares {
			if _, ok := known[id]; !ok {
				return nil, ErrUnknownMember{MemberID: id}
			}
			if id == e.PayerID {
				balances[id] = balances[id].Add(e.Amount.Sub(share))
			} else {
				balances[id] = balances[id].Sub(share)
			}
		}
	}

	for _, s := range settlements {
		if _, ok := known[s.FromID]; !ok {
			return nil, ErrUnknownMember{MemberID: s.FromID}
		}
		if _, ok := known[s.ToID]; !ok {
			return nil, ErrUnknownMember{MemberID: s.ToID}
		}
		balances[s.FromID] = balances[s.FromID].Add(s.Amount)
		balances[s.ToID] = balances[s.ToID].Sub(s.Amount)
	}

	return balances, nil
}

// ComputePairBalance restricts the accumulation to the records touching
// only the given pair: expenses paid by one of the two in which the other
// participates, and settlements strictly between them. The result is the
// net amount member a is owed by (positive) or owes to (negative) member
// b. This is a true pairwise ledger between a and b, not the
// member-vs-whole-group net used by ComputeBalances.
func ComputePairBalance(a, b uuid.UUID, expenses []*expense.Expense, settlements []*settlement.Settlement) (money.Money, error) {
	var net money.Money

	for _, e := range expenses {
		if !e.HasParticipant(a) || !e.HasParticipant(b) {
			continue
		}
		shares, err := Allocate(e.Amount, e.ParticipantIDs)
		if err != nil {
			return 0, err
		}
		switch e.PayerID {
		case a:
			net = net.Add(shares[b])
		case b:
			net = net.Sub(shares[a])
		}
	}

	for _, s := range settlements {
		switch {
		case s.FromID == a && s.ToID == b:
			net = net.Add(s.Amount)
		case s.FromID == b && s.ToID == a:
			net = net.Sub(s.Amount)
		}
	}

	return net, nil
}
