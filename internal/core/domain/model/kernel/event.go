package kernel

import "time"

// DomainEvent is a fact recorded by an aggregate. Events are serialised to
// JSON into the outbox inside the transaction that changed the aggregate.
type DomainEvent interface {
	EventID() UUID
	EventName() string
	AggregateID() UUID
	OccurredAt() time.Time
}

// EventSource is implemented by aggregates that record domain events.
type EventSource interface {
	DomainEvents() []DomainEvent
	ClearDomainEvents()
}
