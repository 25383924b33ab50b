// Package profile holds people known to the service: students, mess owners
// and delivery personnel, plus the Caller value that represents the
// authenticated person in a request.
package profile

import (
	"errors"
	"fmt"
	"time"

	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/pkg/errs"
)

var ErrProfileIsNotConstructed = errors.New("Profile must be created via NewProfile or RestoreProfile")

type Profile struct {
	id          kernel.UUID
	fullName    string
	role        Role
	messID      *kernel.UUID
	phoneNumber string
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewProfile is the row created alongside a new identity.
func NewProfile(id kernel.UUID, fullName string, role Role, now time.Time) (*Profile, error) {
	p := &Profile{
		id:            id,
		fullName:      fullName,
		role:          role,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}
	if err := errors.Join(
		wrapInvalid("id", id.Validate()),
		role.Validate(),
	); err != nil {
		return nil, err
	}
	if fullName == "" {
		return nil, errs.NewValueIsRequiredError("fullName")
	}
	return p, nil
}

func RestoreProfile(
	id kernel.UUID,
	fullName string,
	role Role,
	messID *kernel.UUID,
	phoneNumber string,
	createdAt, updatedAt time.Time,
) (*Profile, error) {
	if err := errors.Join(wrapInvalid("id", id.Validate()), role.Validate()); err != nil {
		return nil, err
	}
	p := &Profile{
		id:            id,
		fullName:      fullName,
		role:          role,
		phoneNumber:   phoneNumber,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}
	if messID != nil {
		m := *messID
		p.messID = &m
	}
	return p, nil
}

func wrapInvalid(param string, err error) error {
	if err == nil {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(param, err)
}

func (p *Profile) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProfileIsNotConstructed
	}
	return nil
}

func (p *Profile) ID() kernel.UUID {
	return p.id
}

func (p *Profile) FullName() string {
	return p.fullName
}

func (p *Profile) Role() Role {
	return p.role
}

// MessID is the mess whose staff pool a delivery person belongs to.
func (p *Profile) MessID() *kernel.UUID {
	if p.messID == nil {
		return nil
	}
	m := *p.messID
	return &m
}

func (p *Profile) PhoneNumber() string {
	return p.phoneNumber
}

func (p *Profile) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Profile) UpdatedAt() time.Time {
	return p.updatedAt
}

// Caller returns the request identity for this profile.
func (p *Profile) Caller() Caller {
	return Caller{id: p.id, role: p.role}
}

// IsStaffOf reports whether p is a delivery person bound to messID.
func (p *Profile) IsStaffOf(messID kernel.UUID) bool {
	return p.role == DeliveryPersonnel && p.messID != nil && p.messID.IsEqual(messID)
}

// JoinMessStaff binds a delivery person to a mess and records their phone.
func (p *Profile) JoinMessStaff(messID kernel.UUID, phoneNumber string, now time.Time) error {
	if p.role != DeliveryPersonnel {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%s cannot join mess staff", p.role))
	}
	if err := messID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("messId", err)
	}
	p.messID = &messID
	p.phoneNumber = phoneNumber
	p.updatedAt = now
	return nil
}
