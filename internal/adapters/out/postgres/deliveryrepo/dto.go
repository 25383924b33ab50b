// Package deliveryrepo persists delivery aggregates with GORM.
package deliveryrepo

import (
	"time"

	"messdelivery/internal/core/domain/model/delivery"
	"messdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UniqueDayIndex enforces one delivery per subscription and date.
const UniqueDayIndex = "idx_deliveries_subscription_date"

// DeliveryDTO is the deliveries row. Proof columns keep the names the
// dashboards already query.
type DeliveryDTO struct {
	ID                    uuid.UUID      `gorm:"type:uuid;primaryKey"`
	SubscriptionID        uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_deliveries_subscription_date"`
	MessID                uuid.UUID      `gorm:"type:uuid;not null;index"`
	DeliveryPersonID      *uuid.UUID     `gorm:"type:uuid;index"`
	Status                string         `gorm:"type:text;not null;index"`
	DeliveryDate          datatypes.Date `gorm:"not null;uniqueIndex:idx_deliveries_subscription_date"`
	PickupMessPhotoURL    *string        `gorm:"type:text"`
	PickupFoodPhotoURL    *string        `gorm:"type:text"`
	DeliveryHousePhotoURL *string        `gorm:"type:text"`
	DeliveryFoodPhotoURL  *string        `gorm:"type:text"`
	CreatedAt             time.Time      `gorm:"not null;autoCreateTime:false"`
	UpdatedAt             time.Time      `gorm:"not null;autoUpdateTime:false"`
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	var personID *uuid.UUID
	if id := d.DeliveryPerson(); id != nil {
		raw := id.Bytes()
		personID = &raw
	}

	proofs := d.Proofs()
	return DeliveryDTO{
		ID:                    d.ID().Bytes(),
		SubscriptionID:        d.SubscriptionID().Bytes(),
		MessID:                d.MessID().Bytes(),
		DeliveryPersonID:      personID,
		Status:                d.Status().String(),
		DeliveryDate:          datatypes.Date(d.DeliveryDate().Time()),
		PickupMessPhotoURL:    nullable(proofs.PickupLocation),
		PickupFoodPhotoURL:    nullable(proofs.PickupFood),
		DeliveryHousePhotoURL: nullable(proofs.DropoffLocation),
		DeliveryFoodPhotoURL:  nullable(proofs.DropoffFood),
		CreatedAt:             d.CreatedAt(),
		UpdatedAt:             d.UpdatedAt(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	subscriptionID, err := kernel.UUIDFromGoogle(dto.SubscriptionID)
	if err != nil {
		return nil, err
	}
	messID, err := kernel.UUIDFromGoogle(dto.MessID)
	if err != nil {
		return nil, err
	}

	var personID *kernel.UUID
	if dto.DeliveryPersonID != nil {
		p, err := kernel.UUIDFromGoogle(*dto.DeliveryPersonID)
		if err != nil {
			return nil, err
		}
		personID = &p
	}

	status, err := delivery.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	proofs := delivery.Proofs{
		PickupLocation:  deref(dto.PickupMessPhotoURL),
		PickupFood:      deref(dto.PickupFoodPhotoURL),
		DropoffLocation: deref(dto.DeliveryHousePhotoURL),
		DropoffFood:     deref(dto.DeliveryFoodPhotoURL),
	}

	return delivery.RestoreDelivery(
		id, subscriptionID, messID, personID, status,
		kernel.DateOf(time.Time(dto.DeliveryDate)),
		proofs, dto.CreatedAt, dto.UpdatedAt,
	)
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
