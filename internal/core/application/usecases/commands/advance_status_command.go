package commands

import (
	"errors"

	"messdelivery/internal/core/domain/model/delivery"
	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/core/domain/model/profile"
	"messdelivery/internal/pkg/errs"
	"messdelivery/internal/pkg/guard"
)

var ErrAdvanceStatusCommandIsNotConstructed = errors.New(
	"AdvanceStatusCommand must be created via NewAdvanceStatusCommand constructor",
)

// AdvanceStatusCommand moves a delivery forward, or to failed.
type AdvanceStatusCommand struct { //nolint:recvcheck //using for validation
	caller     profile.Caller
	deliveryID kernel.UUID
	status     delivery.Status

	guard guard.ConstructorGuard
}

func NewAdvanceStatusCommand(
	caller profile.Caller,
	deliveryID kernel.UUID,
	status delivery.Status,
) (AdvanceStatusCommand, error) {
	var statusErr error
	if err := status.Validate(); err != nil {
		statusErr = errs.NewValueIsInvalidErrorWithCause("status", err)
	}

	if err := errors.Join(caller.Validate(), requireID("deliveryId", deliveryID), statusErr); err != nil {
		return AdvanceStatusCommand{}, err
	}

	return AdvanceStatusCommand{
		caller:     caller,
		deliveryID: deliveryID,
		status:     status,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AdvanceStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceStatusCommandIsNotConstructed)
}

func (c AdvanceStatusCommand) Caller() profile.Caller {
	return c.caller
}

func (c AdvanceStatusCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c AdvanceStatusCommand) Status() delivery.Status {
	return c.status
}
