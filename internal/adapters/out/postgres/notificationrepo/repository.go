// Package notificationrepo persists delivery notifications with GORM.
package notificationrepo

import (
	"context"
	"errors"
	"time"

	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/core/domain/model/notification"
	"messdelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeliveryID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index:idx_delivery_notifications_user_created"`
	Message    string    `gorm:"type:text;not null"`
	Status     string    `gorm:"type:text"`
	IsRead     bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime:false;index:idx_delivery_notifications_user_created,sort:desc"`
}

func (NotificationDTO) TableName() string {
	return "delivery_notifications"
}

type GormNotificationRepository struct {
	db *gorm.DB
}

func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

func (r *GormNotificationRepository) Add(ctx context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormNotificationRepository) Update(ctx context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&NotificationDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Update("is_read", aggregate.IsRead())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto NotificationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("notification", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func fromDomain(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:         n.ID().Bytes(),
		DeliveryID: n.DeliveryID().Bytes(),
		UserID:     n.UserID().Bytes(),
		Message:    n.Message(),
		Status:     n.Status(),
		IsRead:     n.IsRead(),
		CreatedAt:  n.CreatedAt(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	deliveryID, err := kernel.UUIDFromGoogle(dto.DeliveryID)
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromGoogle(dto.UserID)
	if err != nil {
		return nil, err
	}
	return notification.RestoreNotification(id, deliveryID, userID, dto.Message, dto.Status, dto.IsRead, dto.CreatedAt)
}
