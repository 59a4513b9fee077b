package activity

import (
	"time"

	"github.com/easyxpense-ledger/internal/domain/shared"
	"github.com/google/uuid"
)

// Entry is one row of the payment-history feed: a projection of a record
// event into the read model served by the API. Amounts are integer minor
// units.
type Entry struct {
	EventID        uuid.UUID        `json:"event_id" bson:"event_id"`
	Kind           shared.EventKind `json:"kind" bson:"kind"`
	RecordID       uuid.UUID        `json:"record_id" bson:"record_id"`
	Description    string           `json:"description,omitempty" bson:"description,omitempty"`
	Amount         int64            `json:"amount" bson:"amount"`
	ActorID        uuid.UUID        `json:"actor_id" bson:"actor_id"`
	CounterpartyID uuid.UUID        `json:"counterparty_id,omitempty" bson:"counterparty_id,omitempty"`
	ParticipantIDs []uuid.UUID      `json:"participant_ids,omitempty" bson:"participant_ids,omitempty"`
	CorrelationID  string           `json:"correlation_id,omitempty" bson:"correlation_id,omitempty"`
	OccurredAt     time.Time        `json:"occurred_at" bson:"occurred_at"`
	RecordedAt     time.Time        `json:"recorded_at" bson:"recorded_at"`
}

// NewEntry projects a record event into a feed entry
func NewEntry(event *shared.RecordEvent) *Entry {
	return &Entry{
		EventID:        event.EventID,
		Kind:           event.Kind,
		RecordID:       event.RecordID,
		Description:    event.Description,
		Amount:         event.Amount,
		ActorID:        event.ActorID,
		CounterpartyID: event.CounterpartyID,
		ParticipantIDs: event.ParticipantIDs,
		CorrelationID:  event.CorrelationID,
		OccurredAt:     event.OccurredAt,
		RecordedAt:     time.Now(),
	}
}
