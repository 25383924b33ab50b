package queries

import (
	"errors"

	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/core/domain/model/profile"
	"messdelivery/internal/pkg/errs"
	"messdelivery/internal/pkg/guard"
)

var ErrGetMessDeliveriesQueryIsNotConstructed = errors.New(
	"GetMessDeliveriesQuery must be created via NewGetMessDeliveriesQuery constructor",
)

// GetMessDeliveriesQuery lists one day's deliveries of a mess for its owner.
type GetMessDeliveriesQuery struct {
	caller profile.Caller
	messID kernel.UUID
	date   kernel.Date

	guard guard.ConstructorGuard
}

func NewGetMessDeliveriesQuery(caller profile.Caller, messID kernel.UUID, date kernel.Date) (GetMessDeliveriesQuery, error) {
	var dateErr error
	if date.Validate() != nil {
		dateErr = errs.NewValueIsRequiredError("date")
	}

	var messErr error
	if messID.Validate() != nil {
		messErr = errs.NewValueIsRequiredError("messId")
	}

	if err := errors.Join(caller.Validate(), messErr, dateErr); err != nil {
		return GetMessDeliveriesQuery{}, err
	}

	return GetMessDeliveriesQuery{
		caller: caller,
		messID: messID,
		date:   date,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetMessDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetMessDeliveriesQueryIsNotConstructed)
}

func (q GetMessDeliveriesQuery) Caller() profile.Caller {
	return q.caller
}

func (q GetMessDeliveriesQuery) MessID() kernel.UUID {
	return q.messID
}

func (q GetMessDeliveriesQuery) Date() kernel.Date {
	return q.date
}
