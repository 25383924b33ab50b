package postgres

import (
	"messdelivery/internal/adapters/out/postgres/credentialrepo"
	"messdelivery/internal/adapters/out/postgres/deliveryrepo"
	"messdelivery/internal/adapters/out/postgres/notificationrepo"
	"messdelivery/internal/adapters/out/postgres/outboxrepo"
	"messdelivery/internal/adapters/out/postgres/profilerepo"
	"messdelivery/internal/adapters/out/postgres/subscriptionrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&profilerepo.ProfileDTO{},
		&profilerepo.MessDTO{},
		&subscriptionrepo.SubscriptionDTO{},
		&deliveryrepo.DeliveryDTO{},
		&notificationrepo.NotificationDTO{},
		&outboxrepo.MessageDTO{},
		&credentialrepo.CredentialDTO{},
	)
}
