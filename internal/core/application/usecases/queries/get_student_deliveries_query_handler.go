package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetStudentDeliveriesQueryHandler returns the newest delivery date first.
type GetStudentDeliveriesQueryHandler struct {
	db *gorm.DB
}

func NewGetStudentDeliveriesQueryHandler(db *gorm.DB) GetStudentDeliveriesQueryHandler {
	return GetStudentDeliveriesQueryHandler{db: db}
}

func (h GetStudentDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetStudentDeliveriesQuery,
) ([]DeliveryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT`+deliveryColumns+`
		FROM deliveries d
		JOIN subscriptions s ON s.id = d.subscription_id
		WHERE s.student_id = ?
		ORDER BY d.delivery_date DESC, d.created_at DESC
	`, query.Caller().ID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}

	return scanDeliveries(rows)
}
