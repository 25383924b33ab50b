package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetMessDeliveriesQueryHandler struct {
	db *gorm.DB
}

func NewGetMessDeliveriesQueryHandler(db *gorm.DB) GetMessDeliveriesQueryHandler {
	return GetMessDeliveriesQueryHandler{db: db}
}

func (h GetMessDeliveriesQueryHandler) Handle(ctx context.Context, query GetMessDeliveriesQuery) ([]DeliveryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := requireMessOwner(ctx, h.db, query.Caller(), query.MessID()); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT`+deliveryColumns+`
		FROM deliveries d
		WHERE d.mess_id = ?
			AND d.delivery_date = ?
		ORDER BY d.created_at, d.id
	`, query.MessID().Bytes(), query.Date().String()).Rows()
	if err != nil {
		return nil, err
	}

	return scanDeliveries(rows)
}
