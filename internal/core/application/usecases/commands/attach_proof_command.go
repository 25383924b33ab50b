package commands

import (
	"errors"

	"messdelivery/internal/core/domain/model/delivery"
	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/core/domain/model/profile"
	"messdelivery/internal/pkg/errs"
	"messdelivery/internal/pkg/guard"
)

var ErrAttachProofCommandIsNotConstructed = errors.New(
	"AttachProofCommand must be created via NewAttachProofCommand constructor",
)

// AttachProofCommand uploads a photo into one proof slot of a delivery.
type AttachProofCommand struct { //nolint:recvcheck //using for validation
	caller     profile.Caller
	deliveryID kernel.UUID
	slot       delivery.ProofSlot
	file       Upload

	guard guard.ConstructorGuard
}

func NewAttachProofCommand(
	caller profile.Caller,
	deliveryID kernel.UUID,
	slot delivery.ProofSlot,
	file Upload,
) (AttachProofCommand, error) {
	var slotErr error
	if err := slot.Validate(); err != nil {
		slotErr = errs.NewValueIsInvalidErrorWithCause("slot", err)
	}

	if err := errors.Join(
		caller.Validate(),
		requireID("deliveryId", deliveryID),
		slotErr,
		file.validate("file"),
	); err != nil {
		return AttachProofCommand{}, err
	}

	return AttachProofCommand{
		caller:     caller,
		deliveryID: deliveryID,
		slot:       slot,
		file:       file,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AttachProofCommand) Validate() error {
	return c.guard.Validate(ErrAttachProofCommandIsNotConstructed)
}

func (c AttachProofCommand) Caller() profile.Caller {
	return c.caller
}

func (c AttachProofCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c AttachProofCommand) Slot() delivery.ProofSlot {
	return c.slot
}

func (c AttachProofCommand) File() Upload {
	return c.file
}

// BlobPath is "{deliveryId}/{slot}.{ext}".
func (c AttachProofCommand) BlobPath() string {
	return c.file.blobPath(c.deliveryID, c.slot.String())
}
