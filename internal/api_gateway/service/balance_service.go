package service

import (
	"context"
	"log/slog"

	"github.com/easyxpense-ledger/internal/domain/expense"
	"github.com/easyxpense-ledger/internal/domain/member"
	"github.com/easyxpense-ledger/internal/domain/money"
	"github.com/easyxpense-ledger/internal/domain/settlement"
	"github.com/easyxpense-ledger/internal/ledger"
	"github.com/google/uuid"
)

// BalanceServiceImpl implements the BalanceService interface. Balances are
// never stored; every query replays the full record history through the
// netting engine so the numbers cannot drift from the records.
type BalanceServiceImpl struct {
	memberRepo     member.Repository
	expenseRepo    expense.Repository
	settlementRepo settlement.Repository
	logger         *slog.Logger
}

// NewBalanceService creates a new balance service
func NewBalanceService(logger *slog.Logger, memberRepo member.Repository, expenseRepo expense.Repository, settlementRepo settlement.Repository) BalanceService {
	return &BalanceServiceImpl{
		memberRepo:     memberRepo,
		expenseRepo:    expenseRepo,
		settlementRepo: settlementRepo,
		logger:         logger,
	}
}

func (s *BalanceServiceImpl) loadHistory(ctx context.Context) ([]*member.Member, []*expense.Expense, []*settlement.Settlement, error) {
	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	expenses, err := s.expenseRepo.List(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	settlements, err := s.settlementRepo.List(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	return members, expenses, settlements, nil
}

// AllBalances returns the net position of every member, filtered to those
// meaningfully different from zero
func (s *BalanceServiceImpl) AllBalances(ctx context.Context) (ledger.Balances, error) {
	members, expenses, settlements, err := s.loadHistory(ctx)
	if err != nil {
		return nil, err
	}

	memberIDs := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		memberIDs = append(memberIDs, m.ID)
	}

	balances, err := ledger.ComputeBalances(memberIDs, expenses, settlements)
	if err != nil {
		return nil, err
	}
	return balances.NonZero(), nil
}

// BalanceFor returns one member's net position, settled or not.
// Returns ErrMemberNotFound for an unknown member.
func (s *BalanceServiceImpl) BalanceFor(ctx context.Context, memberID uuid.UUID) (money.Money, error) {
	if _, err := s.memberRepo.GetByID(ctx, memberID); err != nil {
		return 0, err
	}

	members, expenses, settlements, err := s.loadHistory(ctx)
	if err != nil {
		return 0, err
	}

	memberIDs := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		memberIDs = append(memberIDs, m.ID)
	}

	balances, err := ledger.ComputeBalances(memberIDs, expenses, settlements)
	if err != nil {
		return 0, err
	}
	return balances[memberID], nil
}

// PairBalance returns the net position between two members, from the first
// member's point of view. Only records involving both members count.
func (s *BalanceServiceImpl) PairBalance(ctx context.Context, memberID, otherID uuid.UUID) (money.Money, error) {
	if _, err := s.memberRepo.GetByID(ctx, memberID); err != nil {
		return 0, err
	}
	if _, err := s.memberRepo.GetByID(ctx, otherID); err != nil {
		return 0, err
	}

	expenses, err := s.expenseRepo.List(ctx)
	if err != nil {
		return 0, err
	}
	settlements, err := s.settlementRepo.List(ctx)
	if err != nil {
		return 0, err
	}

	return ledger.ComputePairBalance(memberID, otherID, expenses, settlements)
}
