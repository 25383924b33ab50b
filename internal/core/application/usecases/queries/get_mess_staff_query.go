package queries

import (
	"errors"
	"time"

	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/core/domain/model/profile"
	"messdelivery/internal/pkg/errs"
	"messdelivery/internal/pkg/guard"
)

var ErrGetMessStaffQueryIsNotConstructed = errors.New(
	"GetMessStaffQuery must be created via NewGetMessStaffQuery constructor",
)

// GetMessStaffQuery lists the delivery personnel bound to a mess. The owner
// picks an assignee from it when creating a delivery.
type GetMessStaffQuery struct {
	caller profile.Caller
	messID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetMessStaffQuery(caller profile.Caller, messID kernel.UUID) (GetMessStaffQuery, error) {
	var messErr error
	if messID.Validate() != nil {
		messErr = errs.NewValueIsRequiredError("messId")
	}

	if err := errors.Join(caller.Validate(), messErr); err != nil {
		return GetMessStaffQuery{}, err
	}

	return GetMessStaffQuery{caller: caller, messID: messID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetMessStaffQuery) Validate() error {
	return q.guard.Validate(ErrGetMessStaffQueryIsNotConstructed)
}

func (q GetMessStaffQuery) Caller() profile.Caller {
	return q.caller
}

func (q GetMessStaffQuery) MessID() kernel.UUID {
	return q.messID
}

type StaffMemberView struct {
	ID          kernel.UUID
	FullName    string
	PhoneNumber string
	CreatedAt   time.Time
}
