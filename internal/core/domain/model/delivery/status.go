package delivery

import (
	"fmt"

	"messdelivery/internal/pkg/errs"
)

// Status is the lifecycle state of a delivery. The numeric order of the
// non-failure values is the order in which a delivery moves forward.
type Status int

const (
	// Unknown catches uninitialised values.
	Unknown Status = iota
	PendingAssignment
	Assigned
	FoodPreparing
	FoodReady
	PickedUp
	OutForDelivery
	Delivered
	// Failed is absorbing and reachable from every non-terminal status.
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		PendingAssignment: "pending_assignment",
		Assigned:          "assigned",
		FoodPreparing:     "food_preparing",
		FoodReady:         "food_ready",
		PickedUp:          "picked_up",
		OutForDelivery:    "out_for_delivery",
		Delivered:         "delivered",
		Failed:            "failed",
	}
}

// Statuses lists every valid status in progression order, failed last.
func Statuses() []Status {
	return []Status{PendingAssignment, Assigned, FoodPreparing, FoodReady, PickedUp, OutForDelivery, Delivered, Failed}
}

// ParseStatus maps the stored/wire name back to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a delivery status", s))
}

// String returns the snake_case name used in storage and on the wire.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Failed
}

// RequiresDeliveryPerson reports whether a delivery in status s must have an
// assignee. Failed is the exception: a pool delivery failed before anyone
// accepted it stays unassigned.
func (s Status) RequiresDeliveryPerson() bool {
	return s != PendingAssignment && s != Failed && s != Unknown
}

// AdvanceTo validates a move from s to next and returns next.
//
// The move is legal when s is not terminal and next is either Failed or
// strictly later than s in the progression. Repeating the current status is
// not an advance and is rejected, as is any backward move.
//
// Example:
//
//	next, err := FoodReady.AdvanceTo(PickedUp)   // PickedUp, nil
//	_, err = PickedUp.AdvanceTo(FoodReady)        // InvalidTransitionError
//	_, err = Delivered.AdvanceTo(Failed)          // InvalidTransitionError
func (s Status) AdvanceTo(next Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if err := next.Validate(); err != nil {
		return Unknown, err
	}

	if s.IsTerminal() {
		return Unknown, errs.NewInvalidTransitionErrorWithCause(
			s.String(), next.String(), fmt.Errorf("%s is terminal", s),
		)
	}

	if next == Failed {
		return Failed, nil
	}

	if next <= s {
		return Unknown, errs.NewInvalidTransitionErrorWithCause(
			s.String(), next.String(), fmt.Errorf("%s is not later than %s", next, s),
		)
	}

	return next, nil
}
