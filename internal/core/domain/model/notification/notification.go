// Package notification holds the per-user messages produced when a delivery
// changes. Rows are written by the outbox relay and read by the recipient.
package notification

import (
	"errors"
	"time"

	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/pkg/errs"
)

var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification or RestoreNotification")

type Notification struct {
	id         kernel.UUID
	deliveryID kernel.UUID
	userID     kernel.UUID
	message    string
	status     string
	isRead     bool
	createdAt  time.Time

	isConstructed bool
}

// NewNotification creates an unread message for userID. status is the
// delivery status the message refers to.
func NewNotification(id, deliveryID, userID kernel.UUID, message, status string, now time.Time) (*Notification, error) {
	return RestoreNotification(id, deliveryID, userID, message, status, false, now)
}

func RestoreNotification(
	id, deliveryID, userID kernel.UUID,
	message, status string,
	isRead bool,
	createdAt time.Time,
) (*Notification, error) {
	if err := errors.Join(
		wrapInvalid("id", id.Validate()),
		wrapInvalid("deliveryId", deliveryID.Validate()),
		wrapInvalid("userId", userID.Validate()),
	); err != nil {
		return nil, err
	}
	if message == "" {
		return nil, errs.NewValueIsRequiredError("message")
	}
	return &Notification{
		id:            id,
		deliveryID:    deliveryID,
		userID:        userID,
		message:       message,
		status:        status,
		isRead:        isRead,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

func wrapInvalid(param string, err error) error {
	if err == nil {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(param, err)
}

func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

func (n *Notification) ID() kernel.UUID {
	return n.id
}

func (n *Notification) DeliveryID() kernel.UUID {
	return n.deliveryID
}

func (n *Notification) UserID() kernel.UUID {
	return n.userID
}

func (n *Notification) Message() string {
	return n.message
}

func (n *Notification) Status() string {
	return n.status
}

func (n *Notification) IsRead() bool {
	return n.isRead
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// MarkRead marks the notification read on behalf of readerID, who must be
// its recipient. Marking twice is a no-op.
func (n *Notification) MarkRead(readerID kernel.UUID) error {
	if !n.userID.IsEqual(readerID) {
		return errs.NewAccessDeniedError("notification recipient")
	}
	n.isRead = true
	return nil
}
