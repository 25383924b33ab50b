package commands

import (
	"errors"

	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/core/domain/model/profile"
	"messdelivery/internal/pkg/guard"
)

var ErrAcceptFromPoolCommandIsNotConstructed = errors.New(
	"AcceptFromPoolCommand must be created via NewAcceptFromPoolCommand constructor",
)

// AcceptFromPoolCommand claims an unassigned delivery for the caller.
type AcceptFromPoolCommand struct { //nolint:recvcheck //using for validation
	caller     profile.Caller
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAcceptFromPoolCommand(caller profile.Caller, deliveryID kernel.UUID) (AcceptFromPoolCommand, error) {
	if err := errors.Join(caller.Validate(), requireID("deliveryId", deliveryID)); err != nil {
		return AcceptFromPoolCommand{}, err
	}

	return AcceptFromPoolCommand{
		caller:     caller,
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AcceptFromPoolCommand) Validate() error {
	return c.guard.Validate(ErrAcceptFromPoolCommandIsNotConstructed)
}

func (c AcceptFromPoolCommand) Caller() profile.Caller {
	return c.caller
}

func (c AcceptFromPoolCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}
