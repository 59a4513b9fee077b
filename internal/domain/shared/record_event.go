package shared

import (
	"time"

	"github.com/easyxpense-ledger/internal/domain/expense"
	"github.com/easyxpense-ledger/internal/domain/settlement"
	"github.com/google/uuid"
)

// EventKind identifies the record type behind an event
type EventKind string

const (
	EventKindExpenseCreated    EventKind = "EXPENSE_CREATED"
	EventKindSettlementCreated EventKind = "SETTLEMENT_CREATED"
)

// OutboxStatus defines message publishing states
type OutboxStatus string

const (
	OutboxStatusPending         OutboxStatus = "PENDING"
	OutboxStatusProcessed       OutboxStatus = "PROCESSED"
	OutboxStatusFailedToPublish OutboxStatus = "FAILED_TO_PUBLISH"
)

// RecordEvent is the message published for every created ledger record.
// It flows from the transactional outbox through Kafka into the activity
// feed projection. Amounts travel as integer minor units, never floats.
type RecordEvent struct {
	EventID        uuid.UUID   `json:"event_id"`
	Kind           EventKind   `json:"kind"`
	RecordID       uuid.UUID   `json:"record_id"`
	Description    string      `json:"description,omitempty"`
	Amount         int64       `json:"amount"`
	ActorID        uuid.UUID   `json:"actor_id"`
	CounterpartyID uuid.UUID   `json:"counterparty_id,omitempty"`
	ParticipantIDs []uuid.UUID `json:"participant_ids,omitempty"`
	CorrelationID  string      `json:"correlation_id,omitempty"`
	OccurredAt     time.Time   `json:"occurred_at"`
}

// NewExpenseCreatedEvent builds the event for a freshly created expense
func NewExpenseCreatedEvent(e *expense.Expense, correlationID string) *RecordEvent {
	return &RecordEvent{
		EventID:        uuid.New(),
		Kind:           EventKindExpenseCreated,
		RecordID:       e.ID,
		Description:    e.Description,
		Amount:         e.Amount.MinorUnits(),
		ActorID:        e.PayerID,
		ParticipantIDs: e.ParticipantIDs,
		CorrelationID:  correlationID,
		OccurredAt:     e.CreatedAt,
	}
}

// NewSettlementCreatedEvent builds the event for a freshly created settlement
func NewSettlementCreatedEvent(s *settlement.Settlement, correlationID string) *RecordEvent {
	return &RecordEvent{
		EventID:        uuid.New(),
		Kind:           EventKindSettlementCreated,
		RecordID:       s.ID,
		Amount:         s.Amount.MinorUnits(),
		ActorID:        s.FromID,
		CounterpartyID: s.ToID,
		CorrelationID:  correlationID,
		OccurredAt:     s.CreatedAt,
	}
}
