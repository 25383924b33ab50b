package queries

import (
	"errors"

	"messdelivery/internal/core/domain/model/profile"
	"messdelivery/internal/pkg/guard"
)

var ErrGetAssignedDeliveriesQueryIsNotConstructed = errors.New(
	"GetAssignedDeliveriesQuery must be created via NewGetAssignedDeliveriesQuery constructor",
)

// GetAssignedDeliveriesQuery lists the caller's own deliveries that are not
// delivered yet.
type GetAssignedDeliveriesQuery struct {
	caller profile.Caller

	guard guard.ConstructorGuard
}

func NewGetAssignedDeliveriesQuery(caller profile.Caller) (GetAssignedDeliveriesQuery, error) {
	if err := caller.Validate(); err != nil {
		return GetAssignedDeliveriesQuery{}, err
	}
	return GetAssignedDeliveriesQuery{caller: caller, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAssignedDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignedDeliveriesQueryIsNotConstructed)
}

func (q GetAssignedDeliveriesQuery) Caller() profile.Caller {
	return q.caller
}
