package queries

import (
	"context"

	"messdelivery/internal/core/domain/model/delivery"

	"gorm.io/gorm"
)

// GetAssignedDeliveriesQueryHandler returns the caller's work queue, oldest
// first. Failed deliveries stay in the list so the person sees them.
type GetAssignedDeliveriesQueryHandler struct {
	db *gorm.DB
}

func NewGetAssignedDeliveriesQueryHandler(db *gorm.DB) GetAssignedDeliveriesQueryHandler {
	return GetAssignedDeliveriesQueryHandler{db: db}
}

func (h GetAssignedDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetAssignedDeliveriesQuery,
) ([]DeliveryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT`+deliveryColumns+`
		FROM deliveries d
		WHERE d.delivery_person_id = ?
			AND d.status <> ?
		ORDER BY d.created_at, d.id
	`, query.Caller().ID().Bytes(), delivery.Delivered.String()).Rows()
	if err != nil {
		return nil, err
	}

	return scanDeliveries(rows)
}
