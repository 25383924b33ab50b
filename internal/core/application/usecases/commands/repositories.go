// Package commands contains the write side of the service. Each command is
// a validated value object; its handler opens a unit of work, loads the
// aggregates it needs, applies domain behaviour and commits.
package commands

import (
	"context"

	"messdelivery/internal/core/ports"
)

// Unit of Work views narrowed to what each handler touches.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	SubscriptionRepoFactory interface {
		SubscriptionRepository() ports.SubscriptionRepository
	}

	ProfileRepoFactory interface {
		ProfileRepository() ports.ProfileRepository
	}

	MessRepoFactory interface {
		MessRepository() ports.MessRepository
	}

	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// DeliveryUoW serves the delivery lifecycle commands, which read the
	// owning mess, subscription and staff profile alongside the delivery.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
		SubscriptionRepoFactory
		ProfileRepoFactory
		MessRepoFactory
	}

	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	SubscriptionUoW interface {
		TxManager
		SubscriptionRepoFactory
		MessRepoFactory
	}

	SubscriptionUoWFactory interface {
		Create() SubscriptionUoW
	}

	StaffUoW interface {
		TxManager
		ProfileRepoFactory
		MessRepoFactory
	}

	StaffUoWFactory interface {
		Create() StaffUoW
	}

	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	NotificationUoWFactory interface {
		Create() NotificationUoW
	}

	// RelayUoW serves the outbox relay: it drains the outbox and writes the
	// notifications each event produces in one transaction.
	RelayUoW interface {
		TxManager
		OutboxRepoFactory
		SubscriptionRepoFactory
		NotificationRepoFactory
	}

	RelayUoWFactory interface {
		Create() RelayUoW
	}
)
