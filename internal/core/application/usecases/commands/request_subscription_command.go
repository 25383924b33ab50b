package commands

import (
	"errors"
	"fmt"

	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/core/domain/model/profile"
	"messdelivery/internal/pkg/errs"
	"messdelivery/internal/pkg/guard"
)

var ErrRequestSubscriptionCommandIsNotConstructed = errors.New(
	"RequestSubscriptionCommand must be created via NewRequestSubscriptionCommand constructor",
)

// RequestSubscriptionCommand is a student's request to join a mess, with the
// screenshot of their payment.
type RequestSubscriptionCommand struct { //nolint:recvcheck //using for validation
	caller         profile.Caller
	subscriptionID kernel.UUID
	messID         kernel.UUID
	startDate      kernel.Date
	endDate        kernel.Date
	payment        Upload

	guard guard.ConstructorGuard
}

func NewRequestSubscriptionCommand(
	caller profile.Caller,
	subscriptionID, messID kernel.UUID,
	startDate, endDate kernel.Date,
	payment Upload,
) (RequestSubscriptionCommand, error) {
	var dateErr error
	switch {
	case startDate.Validate() != nil:
		dateErr = errs.NewValueIsRequiredError("start_date")
	case endDate.Validate() != nil:
		dateErr = errs.NewValueIsRequiredError("end_date")
	case endDate.Before(startDate):
		dateErr = errs.NewValueIsInvalidErrorWithCause("end_date", fmt.Errorf("%s is before %s", endDate, startDate))
	}

	if err := errors.Join(
		caller.Validate(),
		requireID("subscriptionId", subscriptionID),
		requireID("mess_id", messID),
		dateErr,
		payment.validate("payment_screenshot"),
	); err != nil {
		return RequestSubscriptionCommand{}, err
	}

	return RequestSubscriptionCommand{
		caller:         caller,
		subscriptionID: subscriptionID,
		messID:         messID,
		startDate:      startDate,
		endDate:        endDate,
		payment:        payment,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c RequestSubscriptionCommand) Validate() error {
	return c.guard.Validate(ErrRequestSubscriptionCommandIsNotConstructed)
}

func (c RequestSubscriptionCommand) Caller() profile.Caller {
	return c.caller
}

func (c RequestSubscriptionCommand) SubscriptionID() kernel.UUID {
	return c.subscriptionID
}

func (c RequestSubscriptionCommand) MessID() kernel.UUID {
	return c.messID
}

func (c RequestSubscriptionCommand) StartDate() kernel.Date {
	return c.startDate
}

func (c RequestSubscriptionCommand) EndDate() kernel.Date {
	return c.endDate
}

func (c RequestSubscriptionCommand) Payment() Upload {
	return c.payment
}

// BlobPath is "{subscriptionId}/payment.{ext}".
func (c RequestSubscriptionCommand) BlobPath() string {
	return c.payment.blobPath(c.subscriptionID, "payment")
}
