package services

import (
	"fmt"
	"time"

	"messdelivery/internal/core/domain/model/delivery"
	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/core/domain/model/notification"
)

var statusLabels = map[string]string{
	"pending_assignment": "Order Received",
	"assigned":           "Assigned",
	"food_preparing":     "Preparing",
	"food_ready":         "Ready",
	"picked_up":          "Picked Up",
	"out_for_delivery":   "On the Way",
	"delivered":          "Delivered",
	"failed":             "Failed",
}

// NotificationComposer builds the notifications a delivery event produces.
// The student always hears about it; the delivery person does too, unless
// they caused the event by uploading a proof.
type NotificationComposer struct{}

func NewNotificationComposer() NotificationComposer {
	return NotificationComposer{}
}

func (NotificationComposer) Compose(
	e delivery.Event,
	studentID kernel.UUID,
	now time.Time,
) ([]*notification.Notification, error) {
	var studentMsg, staffMsg string
	switch e.Name {
	case delivery.EventCreated:
		studentMsg = "Your delivery has been scheduled."
		staffMsg = "A new delivery has been assigned to you."
	case delivery.EventAccepted:
		studentMsg = "A delivery person has accepted your delivery."
		staffMsg = "You accepted a delivery from the public pool."
	case delivery.EventStatusChanged:
		studentMsg = fmt.Sprintf("Your delivery status is now: %s.", label(e.Status))
		staffMsg = fmt.Sprintf("Delivery status changed to: %s.", label(e.Status))
	case delivery.EventProofAttached:
		studentMsg = fmt.Sprintf("A %s photo was added to your delivery.", e.Slot)
	default:
		return nil, nil
	}

	out := make([]*notification.Notification, 0, 2)
	n, err := notification.NewNotification(kernel.NewUUID(), e.DeliveryID, studentID, studentMsg, e.Status, now)
	if err != nil {
		return nil, err
	}
	out = append(out, n)

	if staffMsg != "" && e.DeliveryPersonID != nil {
		n, err := notification.NewNotification(kernel.NewUUID(), e.DeliveryID, *e.DeliveryPersonID, staffMsg, e.Status, now)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func label(status string) string {
	if l, ok := statusLabels[status]; ok {
		return l
	}
	return status
}
