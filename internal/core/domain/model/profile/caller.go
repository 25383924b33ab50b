package profile

import (
	"errors"

	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/pkg/errs"
)

// Caller is the authenticated identity on whose behalf an operation runs.
// It is resolved once per request and passed explicitly to every command and
// query that makes an authorization decision.
type Caller struct {
	id   kernel.UUID
	role Role
}

func NewCaller(id kernel.UUID, role Role) (Caller, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Caller{}, errs.NewValueIsInvalidErrorWithCause("caller", err)
	}
	return Caller{id: id, role: role}, nil
}

func (c Caller) ID() kernel.UUID {
	return c.id
}

func (c Caller) Role() Role {
	return c.role
}

func (c Caller) Is(role Role) bool {
	return c.role == role
}

// Validate rejects the zero Caller, i.e. an unauthenticated request.
func (c Caller) Validate() error {
	if err := c.id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("caller", err)
	}
	return nil
}
