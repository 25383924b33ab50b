package queries

import (
	"database/sql"
	"time"

	"messdelivery/internal/core/domain/model/delivery"
	"messdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryView is the row every delivery listing returns.
type DeliveryView struct {
	ID               kernel.UUID
	SubscriptionID   kernel.UUID
	MessID           kernel.UUID
	DeliveryPersonID *kernel.UUID
	Status           delivery.Status
	DeliveryDate     kernel.Date
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// deliveryColumns matches the scan order of scanDeliveries. Listings that
// join other tables alias deliveries as d.
const deliveryColumns = `
	d.id,
	d.subscription_id,
	d.mess_id,
	d.delivery_person_id,
	d.status,
	d.delivery_date,
	d.created_at,
	d.updated_at`

func scanDeliveries(rows *sql.Rows) ([]DeliveryView, error) {
	defer rows.Close()

	views := make([]DeliveryView, 0)
	for rows.Next() {
		var (
			view              DeliveryView
			id, subID, messID uuid.UUID
			personID          uuid.NullUUID
			status            string
			deliveryDate      time.Time
		)

		err := rows.Scan(
			&id,
			&subID,
			&messID,
			&personID,
			&status,
			&deliveryDate,
			&view.CreatedAt,
			&view.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		if view.SubscriptionID, err = kernel.UUIDFromGoogle(subID); err != nil {
			return nil, err
		}
		if view.MessID, err = kernel.UUIDFromGoogle(messID); err != nil {
			return nil, err
		}
		if personID.Valid {
			person, personErr := kernel.UUIDFromGoogle(personID.UUID)
			if personErr != nil {
				return nil, personErr
			}
			view.DeliveryPersonID = &person
		}
		if view.Status, err = delivery.ParseStatus(status); err != nil {
			return nil, err
		}
		view.DeliveryDate = kernel.DateOf(deliveryDate)

		views = append(views, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
