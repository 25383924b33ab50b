// Package mess models a meal provider. Only ownership matters to the
// delivery workflow: the owner creates deliveries and manages staff.
package mess

import (
	"errors"
	"time"

	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/pkg/errs"
)

var ErrMessIsNotConstructed = errors.New("Mess must be created via NewMess or RestoreMess")

type Mess struct {
	id        kernel.UUID
	ownerID   kernel.UUID
	name      string
	address   string
	createdAt time.Time

	isConstructed bool
}

func NewMess(id, ownerID kernel.UUID, name, address string, now time.Time) (*Mess, error) {
	return RestoreMess(id, ownerID, name, address, now)
}

func RestoreMess(id, ownerID kernel.UUID, name, address string, createdAt time.Time) (*Mess, error) {
	if err := id.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	if err := ownerID.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("ownerId", err)
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	return &Mess{
		id:            id,
		ownerID:       ownerID,
		name:          name,
		address:       address,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

func (m *Mess) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMessIsNotConstructed
	}
	return nil
}

func (m *Mess) ID() kernel.UUID {
	return m.id
}

func (m *Mess) OwnerID() kernel.UUID {
	return m.ownerID
}

func (m *Mess) Name() string {
	return m.name
}

func (m *Mess) Address() string {
	return m.address
}

func (m *Mess) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Mess) IsOwnedBy(userID kernel.UUID) bool {
	return m.ownerID.IsEqual(userID)
}
