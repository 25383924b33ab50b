package queries

import (
	"context"
	"database/sql"

	"messdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetNotificationsQueryHandler struct {
	db *gorm.DB
}

func NewGetNotificationsQueryHandler(db *gorm.DB) GetNotificationsQueryHandler {
	return GetNotificationsQueryHandler{db: db}
}

// Handle returns the newest notifications first.
func (h GetNotificationsQueryHandler) Handle(ctx context.Context, query GetNotificationsQuery) ([]NotificationView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			delivery_id,
			message,
			status,
			is_read,
			created_at
		FROM delivery_notifications
		WHERE user_id = ?
		ORDER BY created_at DESC, id
		LIMIT ?
	`, query.Caller().ID().Bytes(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]NotificationView, 0)
	for rows.Next() {
		var (
			view           NotificationView
			id, deliveryID uuid.UUID
			status         sql.NullString
		)
		if err = rows.Scan(&id, &deliveryID, &view.Message, &status, &view.IsRead, &view.CreatedAt); err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		if view.DeliveryID, err = kernel.UUIDFromGoogle(deliveryID); err != nil {
			return nil, err
		}
		view.Status = status.String
		notifications = append(notifications, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}
