package deliveryrepo

import (
	"context"
	"errors"
	"fmt"

	"messdelivery/internal/adapters/out/postgres/pgerr"
	"messdelivery/internal/core/domain/model/delivery"
	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

var errStatusChanged = errors.New("status changed concurrently")

type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err, UniqueDayIndex) {
			return errs.NewObjectAlreadyExistsErrorWithCause(
				"delivery for subscription and date",
				fmt.Sprintf("%s/%s", aggregate.SubscriptionID(), aggregate.DeliveryDate()),
				err,
			)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormDeliveryRepository) UpdateStatus(ctx context.Context, aggregate *delivery.Delivery, expected delivery.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("id = ? AND status = ?", dto.ID, expected.String()).
		Updates(map[string]any{
			"status":     dto.Status,
			"updated_at": dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		if err := r.mustExist(ctx, aggregate.ID()); err != nil {
			return err
		}
		return errs.NewInvalidTransitionErrorWithCause(expected.String(), aggregate.Status().String(), errStatusChanged)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormDeliveryRepository) SaveProof(ctx context.Context, aggregate *delivery.Delivery, slot delivery.ProofSlot) error {
	column, err := proofColumn(slot)
	if err != nil {
		return err
	}
	ref := aggregate.Proofs().Get(slot)
	if ref == "" {
		return errs.NewValueIsRequiredError("proof reference")
	}

	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("id = ? AND status NOT IN ?", aggregate.ID().Bytes(),
			[]string{delivery.Delivered.String(), delivery.Failed.String()}).
		Updates(map[string]any{
			column:       ref,
			"updated_at": aggregate.UpdatedAt(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		if err = r.mustExist(ctx, aggregate.ID()); err != nil {
			return err
		}
		return errs.NewInvalidTransitionErrorWithCause(aggregate.Status().String(), aggregate.Status().String(), errStatusChanged)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormDeliveryRepository) ClaimFromPool(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if dto.DeliveryPersonID == nil {
		return errs.NewValueIsRequiredError("deliveryPersonId")
	}

	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("id = ? AND delivery_person_id IS NULL AND status = ?", dto.ID, delivery.PendingAssignment.String()).
		Updates(map[string]any{
			"delivery_person_id": dto.DeliveryPersonID,
			"status":             dto.Status,
			"updated_at":         dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		if err := r.mustExist(ctx, aggregate.ID()); err != nil {
			return err
		}
		return errs.NewAlreadyClaimedError("delivery", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormDeliveryRepository) mustExist(ctx context.Context, id kernel.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&DeliveryDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("delivery", id.String())
	}
	return nil
}

func proofColumn(slot delivery.ProofSlot) (string, error) {
	switch slot {
	case delivery.PickupLocation:
		return "pickup_mess_photo_url", nil
	case delivery.PickupFood:
		return "pickup_food_photo_url", nil
	case delivery.DropoffLocation:
		return "delivery_house_photo_url", nil
	case delivery.DropoffFood:
		return "delivery_food_photo_url", nil
	default:
		return "", errs.NewValueIsInvalidError("slot")
	}
}
