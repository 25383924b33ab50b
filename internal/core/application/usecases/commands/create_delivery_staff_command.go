package commands

import (
	"errors"

	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/core/domain/model/profile"
	"messdelivery/internal/pkg/errs"
	"messdelivery/internal/pkg/guard"
)

var ErrCreateDeliveryStaffCommandIsNotConstructed = errors.New(
	"CreateDeliveryStaffCommand must be created via NewCreateDeliveryStaffCommand constructor",
)

// CreateDeliveryStaffCommand creates a login for a delivery person and binds
// them to the caller's mess. phoneNumber is optional.
type CreateDeliveryStaffCommand struct { //nolint:recvcheck //using for validation
	caller      profile.Caller
	email       string
	password    string
	fullName    string
	phoneNumber string
	messID      kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateDeliveryStaffCommand(
	caller profile.Caller,
	email, password, fullName, phoneNumber string,
	messID kernel.UUID,
) (CreateDeliveryStaffCommand, error) {
	if err := errors.Join(
		caller.Validate(),
		requireText("email", email),
		requireText("password", password),
		requireText("full_name", fullName),
		requireID("mess_id", messID),
	); err != nil {
		return CreateDeliveryStaffCommand{}, err
	}

	return CreateDeliveryStaffCommand{
		caller:      caller,
		email:       email,
		password:    password,
		fullName:    fullName,
		phoneNumber: phoneNumber,
		messID:      messID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateDeliveryStaffCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryStaffCommandIsNotConstructed)
}

func (c CreateDeliveryStaffCommand) Caller() profile.Caller {
	return c.caller
}

func (c CreateDeliveryStaffCommand) Email() string {
	return c.email
}

func (c CreateDeliveryStaffCommand) Password() string {
	return c.password
}

func (c CreateDeliveryStaffCommand) FullName() string {
	return c.fullName
}

func (c CreateDeliveryStaffCommand) PhoneNumber() string {
	return c.phoneNumber
}

func (c CreateDeliveryStaffCommand) MessID() kernel.UUID {
	return c.messID
}

func requireText(param, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}
