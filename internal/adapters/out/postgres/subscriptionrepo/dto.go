// Package subscriptionrepo persists subscription aggregates with GORM.
package subscriptionrepo

import (
	"time"

	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/core/domain/model/subscription"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SubscriptionDTO struct {
	ID                             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	StudentID                      uuid.UUID      `gorm:"type:uuid;not null;index"`
	MessID                         uuid.UUID      `gorm:"type:uuid;not null;index"`
	Status                         string         `gorm:"type:text;not null"`
	StartDate                      datatypes.Date `gorm:"not null"`
	EndDate                        datatypes.Date `gorm:"not null"`
	PaymentScreenshotURL           string         `gorm:"type:text;not null"`
	OwnerConfirmationScreenshotURL *string        `gorm:"type:text"`
	CreatedAt                      time.Time      `gorm:"not null;autoCreateTime:false"`
	UpdatedAt                      time.Time      `gorm:"not null;autoUpdateTime:false"`
}

func (SubscriptionDTO) TableName() string {
	return "subscriptions"
}

func fromDomain(s *subscription.Subscription) SubscriptionDTO {
	var confirmation *string
	if c := s.ConfirmationProof(); c != "" {
		confirmation = &c
	}

	return SubscriptionDTO{
		ID:                             s.ID().Bytes(),
		StudentID:                      s.StudentID().Bytes(),
		MessID:                         s.MessID().Bytes(),
		Status:                         s.Status().String(),
		StartDate:                      datatypes.Date(s.StartDate().Time()),
		EndDate:                        datatypes.Date(s.EndDate().Time()),
		PaymentScreenshotURL:           s.PaymentProof(),
		OwnerConfirmationScreenshotURL: confirmation,
		CreatedAt:                      s.CreatedAt(),
		UpdatedAt:                      s.UpdatedAt(),
	}
}

func toDomain(dto SubscriptionDTO) (*subscription.Subscription, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	studentID, err := kernel.UUIDFromGoogle(dto.StudentID)
	if err != nil {
		return nil, err
	}
	messID, err := kernel.UUIDFromGoogle(dto.MessID)
	if err != nil {
		return nil, err
	}
	status, err := subscription.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var confirmation string
	if dto.OwnerConfirmationScreenshotURL != nil {
		confirmation = *dto.OwnerConfirmationScreenshotURL
	}

	return subscription.RestoreSubscription(
		id, studentID, messID, status,
		kernel.DateOf(time.Time(dto.StartDate)),
		kernel.DateOf(time.Time(dto.EndDate)),
		dto.PaymentScreenshotURL, confirmation,
		dto.CreatedAt, dto.UpdatedAt,
	)
}
