package queries

import (
	"errors"
	"time"

	"messdelivery/internal/core/domain/model/delivery"
	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/core/domain/model/profile"
	"messdelivery/internal/pkg/errs"
	"messdelivery/internal/pkg/guard"
)

var ErrGetDeliveryProofsQueryIsNotConstructed = errors.New(
	"GetDeliveryProofsQuery must be created via NewGetDeliveryProofsQuery constructor",
)

// GetDeliveryProofsQuery returns short-lived links to a delivery's proof
// photos.
type GetDeliveryProofsQuery struct {
	caller     profile.Caller
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetDeliveryProofsQuery(caller profile.Caller, deliveryID kernel.UUID) (GetDeliveryProofsQuery, error) {
	var idErr error
	if deliveryID.Validate() != nil {
		idErr = errs.NewValueIsRequiredError("deliveryId")
	}

	if err := errors.Join(caller.Validate(), idErr); err != nil {
		return GetDeliveryProofsQuery{}, err
	}

	return GetDeliveryProofsQuery{caller: caller, deliveryID: deliveryID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDeliveryProofsQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryProofsQueryIsNotConstructed)
}

func (q GetDeliveryProofsQuery) Caller() profile.Caller {
	return q.caller
}

func (q GetDeliveryProofsQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}

// ProofView is one filled slot. Empty slots are omitted.
type ProofView struct {
	Slot      delivery.ProofSlot
	Path      string
	URL       string
	ExpiresAt time.Time
}

type DeliveryProofsView struct {
	DeliveryID kernel.UUID
	Proofs     []ProofView
}
