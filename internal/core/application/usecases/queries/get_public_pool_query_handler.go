package queries

import (
	"context"

	"messdelivery/internal/core/domain/model/delivery"
	"messdelivery/internal/core/domain/model/profile"
	"messdelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetPublicPoolQueryHandler returns pending deliveries without a delivery
// person, oldest first, so the longest-waiting order is offered first.
type GetPublicPoolQueryHandler struct {
	db *gorm.DB
}

func NewGetPublicPoolQueryHandler(db *gorm.DB) GetPublicPoolQueryHandler {
	return GetPublicPoolQueryHandler{db: db}
}

func (h GetPublicPoolQueryHandler) Handle(ctx context.Context, query GetPublicPoolQuery) ([]DeliveryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if !query.Caller().Is(profile.DeliveryPersonnel) {
		return nil, errs.NewAccessDeniedError("delivery personnel")
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT`+deliveryColumns+`
		FROM deliveries d
		WHERE d.status = ?
			AND d.delivery_person_id IS NULL
		ORDER BY d.created_at, d.id
	`, delivery.PendingAssignment.String()).Rows()
	if err != nil {
		return nil, err
	}

	return scanDeliveries(rows)
}
