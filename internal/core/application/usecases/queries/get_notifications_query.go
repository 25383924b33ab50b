package queries

import (
	"errors"
	"fmt"
	"time"

	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/core/domain/model/profile"
	"messdelivery/internal/pkg/errs"
	"messdelivery/internal/pkg/guard"
)

// DefaultNotificationsLimit is the page size of the notifications screen.
const DefaultNotificationsLimit = 50

var ErrGetNotificationsQueryIsNotConstructed = errors.New(
	"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
)

// GetNotificationsQuery lists the caller's latest notifications.
type GetNotificationsQuery struct {
	caller profile.Caller
	limit  int

	guard guard.ConstructorGuard
}

// NewGetNotificationsQuery falls back to DefaultNotificationsLimit when limit
// is zero.
func NewGetNotificationsQuery(caller profile.Caller, limit int) (GetNotificationsQuery, error) {
	if limit == 0 {
		limit = DefaultNotificationsLimit
	}

	var limitErr error
	if limit < 0 || limit > DefaultNotificationsLimit {
		limitErr = errs.NewValueIsInvalidErrorWithCause(
			"limit", fmt.Errorf("%d is outside 1..%d", limit, DefaultNotificationsLimit),
		)
	}

	if err := errors.Join(caller.Validate(), limitErr); err != nil {
		return GetNotificationsQuery{}, err
	}

	return GetNotificationsQuery{caller: caller, limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

func (q GetNotificationsQuery) Caller() profile.Caller {
	return q.caller
}

func (q GetNotificationsQuery) Limit() int {
	return q.limit
}

type NotificationView struct {
	ID         kernel.UUID
	DeliveryID kernel.UUID
	Message    string
	Status     string
	IsRead     bool
	CreatedAt  time.Time
}
