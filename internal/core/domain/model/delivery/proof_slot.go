package delivery

import (
	"fmt"

	"messdelivery/internal/pkg/errs"
)

// ProofSlot names one of the four photo attachment points on a delivery.
type ProofSlot int

const (
	UnknownSlot ProofSlot = iota
	PickupLocation
	PickupFood
	DropoffLocation
	DropoffFood
)

func getProofSlotStrings() map[ProofSlot]string {
	return map[ProofSlot]string{
		PickupLocation:  "pickup_location",
		PickupFood:      "pickup_food",
		DropoffLocation: "dropoff_location",
		DropoffFood:     "dropoff_food",
	}
}

// ProofSlots lists the slots in the order a delivery person fills them.
func ProofSlots() []ProofSlot {
	return []ProofSlot{PickupLocation, PickupFood, DropoffLocation, DropoffFood}
}

func ParseProofSlot(s string) (ProofSlot, error) {
	for slot, name := range getProofSlotStrings() {
		if name == s {
			return slot, nil
		}
	}
	return UnknownSlot, errs.NewValueIsInvalidErrorWithCause("slot", fmt.Errorf("%q is not a proof slot", s))
}

func (p ProofSlot) String() string {
	if str, ok := getProofSlotStrings()[p]; ok {
		return str
	}
	return "unknown"
}

func (p ProofSlot) Validate() error {
	if _, ok := getProofSlotStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("slot", fmt.Errorf("%d is not a valid proof slot", p))
	}
	return nil
}

// Proofs holds the blob reference stored in each slot. An empty string means
// the slot is unset.
type Proofs struct {
	PickupLocation  string
	PickupFood      string
	DropoffLocation string
	DropoffFood     string
}

// Get returns the reference stored in slot.
func (p Proofs) Get(slot ProofSlot) string {
	switch slot {
	case PickupLocation:
		return p.PickupLocation
	case PickupFood:
		return p.PickupFood
	case DropoffLocation:
		return p.DropoffLocation
	case DropoffFood:
		return p.DropoffFood
	default:
		return ""
	}
}

// with returns a copy of p with slot replaced by ref.
func (p Proofs) with(slot ProofSlot, ref string) Proofs {
	switch slot {
	case PickupLocation:
		p.PickupLocation = ref
	case PickupFood:
		p.PickupFood = ref
	case DropoffLocation:
		p.DropoffLocation = ref
	case DropoffFood:
		p.DropoffFood = ref
	}
	return p
}
