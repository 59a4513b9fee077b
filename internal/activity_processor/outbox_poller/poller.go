package outbox_poller

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/easyxpense-ledger/internal/config"
	"github.com/easyxpense-ledger/internal/domain/outbox"
	"github.com/easyxpense-ledger/internal/domain/shared"
)

// Poller drains pending outbox messages into the event publisher on a
// fixed interval. Messages that keep failing are parked as
// FAILED_TO_PUBLISH once the retry budget runs out.
type Poller struct {
	outboxRepo       outbox.Repository
	eventPublisher   EventPublisher
	logger           *slog.Logger
	pollInterval     time.Duration
	batchSize        int
	maxRetryAttempts int
}

func NewPoller(
	cfg *config.OutboxConfig,
	outboxRepo outbox.Repository,
	eventPublisher EventPublisher,
	logger *slog.Logger,
) *Poller {
	return &Poller{
		outboxRepo:       outboxRepo,
		eventPublisher:   eventPublisher,
		logger:           logger,
		pollInterval:     cfg.PollingInterval,
		batchSize:        cfg.BatchSize,
		maxRetryAttempts: cfg.MaxRetryAttempts,
	}
}

// Start runs the polling loop until ctx is canceled.
func (p *Poller) Start(ctx context.Context) {
	p.logger.Info("outbox poller running",
		"poll_interval", p.pollInterval.String(),
		"batch_size", p.batchSize,
		"max_retry_attempts", p.maxRetryAttempts,
	)
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("outbox poller stopped")
			return
		case <-ticker.C:
			if err := p.processPendingMessages(ctx); err != nil {
				p.logger.Error("outbox batch failed", "error", err)
			}
		}
	}
}

func (p *Poller) processPendingMessages(ctx context.Context) error {
	messages, err := p.outboxRepo.GetPending(ctx, p.batchSize)
	if err != nil {
		return fmt.Errorf("failed to get pending outbox messages: %w", err)
	}
	if len(messages) == 0 {
		return nil
	}

	p.logger.Debug("draining outbox batch", "count", len(messages))
	for _, msg := range messages {
		p.deliver(ctx, msg)
	}
	return nil
}

// deliver publishes a single message, tracking attempts on failure.
func (p *Poller) deliver(ctx context.Context, msg *outbox.Message) {
	logger := p.logger.With("outbox_id", msg.ID, "event_id", msg.EventID.String())
	if event, err := msg.GetRecordEvent(); err == nil && event.CorrelationID != "" {
		logger = logger.With("correlation_id", event.CorrelationID)
	}

	if err := p.eventPublisher.PublishEvent(ctx, msg); err != nil {
		logger.Error("outbox publish failed", "attempts", msg.Attempts, "error", err)
		if errInc := p.outboxRepo.IncrementAttempts(ctx, msg.ID); errInc != nil {
			// Leave the row untouched; the next tick retries it.
			logger.Error("could not record outbox attempt", "error", errInc)
			return
		}
		if msg.Attempts+1 >= p.maxRetryAttempts {
			logger.Warn("outbox retry budget exhausted, parking message", "attempts", msg.Attempts+1)
			if errUpdate := p.outboxRepo.UpdateStatus(ctx, msg.ID, shared.OutboxStatusFailedToPublish); errUpdate != nil {
				logger.Error("could not park outbox message", "error", errUpdate)
			}
		}
		return
	}

	logger.Info("outbox message published")
}
