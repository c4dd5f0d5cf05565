package contracts

import (
	"time"
)

// Outbox statuses.
const (
	OutboxStatusPending = "pending"
)

// OutboxEvent is the application-level representation of an event persisted
// to the outbox table in the same transaction as the product change.
type OutboxEvent struct {
	EventID      string
	EventType    string
	AggregateID  string
	PayloadJSON  string
	Status       string
	CreatedAtUTC time.Time
}
