package ports

import (
	"context"
	"time"

	"messdelivery/internal/core/domain/model/kernel"
)

// OutboxMessage is a domain event stored in the same transaction as the
// change that raised it.
type OutboxMessage struct {
	ID          kernel.UUID
	AggregateID kernel.UUID
	EventName   string
	Payload     []byte
	OccurredAt  time.Time
	Attempts    int
}

// OutboxRepository gives the relay access to pending messages.
type OutboxRepository interface {
	Add(ctx context.Context, messages ...OutboxMessage) error

	// FetchPending locks up to limit unprocessed messages with fewer than
	// maxAttempts attempts, oldest first. Rows locked by another relay are
	// skipped.
	FetchPending(ctx context.Context, limit, maxAttempts int) ([]OutboxMessage, error)

	MarkProcessed(ctx context.Context, id kernel.UUID, at time.Time) error
	MarkFailed(ctx context.Context, id kernel.UUID, cause error) error
}

// EventPublisher hands an outbox message to a broker. Delivery is at least
// once; consumers deduplicate by message id.
type EventPublisher interface {
	Publish(ctx context.Context, msg OutboxMessage) error
}
