package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Domain events recorded on
// aggregates saved through its repositories are written to the outbox when
// Commit runs.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	DeliveryRepository() DeliveryRepository
	SubscriptionRepository() SubscriptionRepository
	ProfileRepository() ProfileRepository
	MessRepository() MessRepository
	NotificationRepository() NotificationRepository
	OutboxRepository() OutboxRepository
}
