package commands

import (
	"errors"

	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/core/domain/model/profile"
	"messdelivery/internal/pkg/errs"
	"messdelivery/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand asks a mess owner's mess to deliver one day of a
// subscription. Without an assignee the delivery goes to the public pool.
//
// Example:
//
//	cmd, err := NewCreateDeliveryCommand(caller, kernel.NewUUID(), subID, messID, &staffID, nil)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	caller         profile.Caller
	deliveryID     kernel.UUID
	subscriptionID kernel.UUID
	messID         kernel.UUID
	assignee       *kernel.UUID
	date           *kernel.Date

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand validates the request. A nil date means the
// current calendar date at handling time.
func NewCreateDeliveryCommand(
	caller profile.Caller,
	deliveryID, subscriptionID, messID kernel.UUID,
	assignee *kernel.UUID,
	date *kernel.Date,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		caller:         caller,
		deliveryID:     deliveryID,
		subscriptionID: subscriptionID,
		messID:         messID,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		caller.Validate(),
		requireID("deliveryId", deliveryID),
		requireID("subscriptionId", subscriptionID),
		requireID("messId", messID),
		cmd.setAssignee(assignee),
		cmd.setDate(date),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

func (c CreateDeliveryCommand) Caller() profile.Caller {
	return c.caller
}

func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c CreateDeliveryCommand) SubscriptionID() kernel.UUID {
	return c.subscriptionID
}

func (c CreateDeliveryCommand) MessID() kernel.UUID {
	return c.messID
}

// Assignee is nil for a public pool delivery.
func (c CreateDeliveryCommand) Assignee() *kernel.UUID {
	return c.assignee
}

// Date is nil when the delivery is for today.
func (c CreateDeliveryCommand) Date() *kernel.Date {
	return c.date
}

func (c *CreateDeliveryCommand) setAssignee(assignee *kernel.UUID) error {
	if assignee == nil {
		return nil
	}
	if err := assignee.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("assignee", err)
	}
	a := *assignee
	c.assignee = &a
	return nil
}

func (c *CreateDeliveryCommand) setDate(date *kernel.Date) error {
	if date == nil {
		return nil
	}
	if err := date.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("deliveryDate", err)
	}
	d := *date
	c.date = &d
	return nil
}

func requireID(param string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(param, err)
	}
	return nil
}
