package service

import (
	"context"
	"log/slog"

	"github.com/easyxpense-ledger/internal/domain/expense"
	"github.com/easyxpense-ledger/internal/domain/member"
	"github.com/easyxpense-ledger/internal/domain/money"
	"github.com/easyxpense-ledger/internal/domain/outbox"
	"github.com/easyxpense-ledger/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ExpenseServiceImpl implements the ExpenseService interface
type ExpenseServiceImpl struct {
	txRunner    TxRunner
	expenseRepo expense.Repository
	outboxRepo  outbox.Repository
	memberRepo  member.Repository
	logger      *slog.Logger
}

// NewExpenseService creates a new expense service
func NewExpenseService(logger *slog.Logger, txRunner TxRunner, expenseRepo expense.Repository, outboxRepo outbox.Repository, memberRepo member.Repository) ExpenseService {
	return &ExpenseServiceImpl{
		txRunner:    txRunner,
		expenseRepo: expenseRepo,
		outboxRepo:  outboxRepo,
		memberRepo:  memberRepo,
		logger:      logger,
	}
}

// CreateExpense records a shared expense. The expense row and its outbox
// event are written in a single transaction so the activity feed cannot
// miss a record. An empty participant list means the expense is shared by
// every current member.
func (s *ExpenseServiceImpl) CreateExpense(ctx context.Context, description string, amount money.Money, payerID uuid.UUID, participantIDs []uuid.UUID, correlationID string) (*expense.Expense, error) {
	if _, err := s.memberRepo.GetByID(ctx, payerID); err != nil {
		return nil, err
	}

	if len(participantIDs) == 0 {
		members, err := s.memberRepo.List(ctx)
		if err != nil {
			return nil, err
		}
		participantIDs = make([]uuid.UUID, 0, len(members))
		for _, m := range members {
			participantIDs = append(participantIDs, m.ID)
		}
	} else {
		for _, id := range participantIDs {
			if id == payerID {
				continue
			}
			if _, err := s.memberRepo.GetByID(ctx, id); err != nil {
				return nil, err
			}
		}
	}

	e, err := expense.NewExpense(description, amount, payerID, participantIDs)
	if err != nil {
		return nil, err
	}

	event := shared.NewExpenseCreatedEvent(e, correlationID)
	message, err := outbox.NewMessage(event)
	if err != nil {
		return nil, err
	}

	err = s.txRunner.ExecuteTx(ctx, func(tx pgx.Tx) error {
		if err := s.expenseRepo.WithTx(tx).Create(ctx, e); err != nil {
			return err
		}
		return s.outboxRepo.WithTx(tx).Create(ctx, message)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Expense recorded",
		"expense_id", e.ID.String(),
		"amount", e.Amount.String(),
		"participants", len(e.ParticipantIDs))
	return e, nil
}

// GetExpenseByID retrieves an expense record, returns ErrExpenseNotFound if not found
func (s *ExpenseServiceImpl) GetExpenseByID(ctx context.Context, id uuid.UUID) (*expense.Expense, error) {
	return s.expenseRepo.GetByID(ctx, id)
}

// ListExpenses returns all expense records, newest first
func (s *ExpenseServiceImpl) ListExpenses(ctx context.Context) ([]*expense.Expense, error) {
	return s.expenseRepo.List(ctx)
}
