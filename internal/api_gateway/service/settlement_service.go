package service

import (
	"context"
	"log/slog"

	"github.com/easyxpense-ledger/internal/domain/member"
	"github.com/easyxpense-ledger/internal/domain/money"
	"github.com/easyxpense-ledger/internal/domain/outbox"
	"github.com/easyxpense-ledger/internal/domain/settlement"
	"github.com/easyxpense-ledger/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SettlementServiceImpl implements the SettlementService interface
type SettlementServiceImpl struct {
	txRunner       TxRunner
	settlementRepo settlement.Repository
	outboxRepo     outbox.Repository
	memberRepo     member.Repository
	logger         *slog.Logger
}

// NewSettlementService creates a new settlement service
func NewSettlementService(logger *slog.Logger, txRunner TxRunner, settlementRepo settlement.Repository, outboxRepo outbox.Repository, memberRepo member.Repository) SettlementService {
	return &SettlementServiceImpl{
		txRunner:       txRunner,
		settlementRepo: settlementRepo,
		outboxRepo:     outboxRepo,
		memberRepo:     memberRepo,
		logger:         logger,
	}
}

// CreateSettlement records a repayment between two members. The settlement
// row and its outbox event are written in a single transaction.
func (s *SettlementServiceImpl) CreateSettlement(ctx context.Context, fromID, toID uuid.UUID, amount money.Money, correlationID string) (*settlement.Settlement, error) {
	if _, err := s.memberRepo.GetByID(ctx, fromID); err != nil {
		return nil, err
	}
	if _, err := s.memberRepo.GetByID(ctx, toID); err != nil {
		return nil, err
	}

	st, err := settlement.NewSettlement(fromID, toID, amount)
	if err != nil {
		return nil, err
	}

	event := shared.NewSettlementCreatedEvent(st, correlationID)
	message, err := outbox.NewMessage(event)
	if err != nil {
		return nil, err
	}

	err = s.txRunner.ExecuteTx(ctx, func(tx pgx.Tx) error {
		if err := s.settlementRepo.WithTx(tx).Create(ctx, st); err != nil {
			return err
		}
		return s.outboxRepo.WithTx(tx).Create(ctx, message)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Settlement recorded",
		"settlement_id", st.ID.String(),
		"from_id", st.FromID.String(),
		"to_id", st.ToID.String(),
		"amount", st.Amount.String())
	return st, nil
}

// GetSettlementByID retrieves a settlement record, returns ErrSettlementNotFound if not found
func (s *SettlementServiceImpl) GetSettlementByID(ctx context.Context, id uuid.UUID) (*settlement.Settlement, error) {
	return s.settlementRepo.GetByID(ctx, id)
}

// ListSettlements returns all settlement records, newest first
func (s *SettlementServiceImpl) ListSettlements(ctx context.Context) ([]*settlement.Settlement, error) {
	return s.settlementRepo.List(ctx)
}
