package subscription

import (
	"fmt"

	"messdelivery/internal/pkg/errs"
)

// Status tracks the owner review of a subscription request.
//
//	pending_owner_confirmation ──┬──> active
//	                             └──> rejected
type Status int

const (
	Unknown Status = iota
	PendingOwnerConfirmation
	Active
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		PendingOwnerConfirmation: "pending_owner_confirmation",
		Active:                   "active",
		Rejected:                 "rejected",
	}
}

func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a subscription status", s))
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// review validates that s can be decided and returns the decision.
func (s Status) review(decision Status) (Status, error) {
	if s != PendingOwnerConfirmation {
		return Unknown, errs.NewInvalidTransitionErrorWithCause(
			s.String(), decision.String(), fmt.Errorf("%s subscription was already reviewed", s),
		)
	}
	return decision, nil
}
