package queries

import (
	"errors"

	"messdelivery/internal/core/domain/model/profile"
	"messdelivery/internal/pkg/guard"
)

var ErrGetPublicPoolQueryIsNotConstructed = errors.New(
	"GetPublicPoolQuery must be created via NewGetPublicPoolQuery constructor",
)

// GetPublicPoolQuery lists deliveries nobody has claimed yet.
//
// Example:
//
//	query, err := NewGetPublicPoolQuery(caller)
//	if err != nil {
//	    return err
//	}
//
//	pool, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//
//	for _, d := range pool {
//	    fmt.Printf("%s for %s\n", d.ID, d.DeliveryDate)
//	}
type GetPublicPoolQuery struct {
	caller profile.Caller

	guard guard.ConstructorGuard
}

func NewGetPublicPoolQuery(caller profile.Caller) (GetPublicPoolQuery, error) {
	if err := caller.Validate(); err != nil {
		return GetPublicPoolQuery{}, err
	}
	return GetPublicPoolQuery{caller: caller, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPublicPoolQuery) Validate() error {
	return q.guard.Validate(ErrGetPublicPoolQueryIsNotConstructed)
}

func (q GetPublicPoolQuery) Caller() profile.Caller {
	return q.caller
}
