package queries

import (
	"errors"

	"messdelivery/internal/core/domain/model/profile"
	"messdelivery/internal/pkg/guard"
)

var ErrGetStudentDeliveriesQueryIsNotConstructed = errors.New(
	"GetStudentDeliveriesQuery must be created via NewGetStudentDeliveriesQuery constructor",
)

// GetStudentDeliveriesQuery lists deliveries of every subscription the
// calling student holds.
type GetStudentDeliveriesQuery struct {
	caller profile.Caller

	guard guard.ConstructorGuard
}

func NewGetStudentDeliveriesQuery(caller profile.Caller) (GetStudentDeliveriesQuery, error) {
	if err := caller.Validate(); err != nil {
		return GetStudentDeliveriesQuery{}, err
	}
	return GetStudentDeliveriesQuery{caller: caller, guard: guard.NewConstructorGuard()}, nil
}

func (q GetStudentDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetStudentDeliveriesQueryIsNotConstructed)
}

func (q GetStudentDeliveriesQuery) Caller() profile.Caller {
	return q.caller
}
