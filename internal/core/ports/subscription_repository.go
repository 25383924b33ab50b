package ports

import (
	"context"

	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/core/domain/model/subscription"
)

// SubscriptionRepository defines the persistence contract for subscriptions.
type SubscriptionRepository interface {
	Add(ctx context.Context, aggregate *subscription.Subscription) error
	Update(ctx context.Context, aggregate *subscription.Subscription) error
	Get(ctx context.Context, id kernel.UUID) (*subscription.Subscription, error)
}
