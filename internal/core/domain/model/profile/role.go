package profile

import (
	"fmt"

	"messdelivery/internal/pkg/errs"
)

// Role is fixed at signup.
type Role int

const (
	UnknownRole Role = iota
	Student
	MessOwner
	DeliveryPersonnel
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		Student:           "student",
		MessOwner:         "mess_owner",
		DeliveryPersonnel: "delivery_personnel",
	}
}

func ParseRole(s string) (Role, error) {
	for role, name := range getRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a role", s))
}

func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}
