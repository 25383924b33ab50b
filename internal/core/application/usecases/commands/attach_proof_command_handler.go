package commands

import (
	"context"
	"time"

	"messdelivery/internal/core/domain/services"
	"messdelivery/internal/core/ports"
)

// AttachProofCommandHandler stores a proof photo and points the slot at it.
// If the row cannot be written the fresh upload is removed again, unless it
// replaced the slot's previous photo in place.
type AttachProofCommandHandler struct {
	uowFactory DeliveryUoWFactory
	blobs      ports.BlobStore
	policy     services.DeliveryAccessPolicy
}

func NewAttachProofCommandHandler(uowFactory DeliveryUoWFactory, blobs ports.BlobStore) AttachProofCommandHandler {
	return AttachProofCommandHandler{
		uowFactory: uowFactory,
		blobs:      blobs,
		policy:     services.NewDeliveryAccessPolicy(),
	}
}

// Handle returns the blob path stored in the slot.
func (h *AttachProofCommandHandler) Handle(ctx context.Context, cmd AttachProofCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryRepository()
	d, err := repo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return "", err
	}
	if err = h.policy.CanAttachProof(cmd.Caller(), d); err != nil {
		return "", err
	}

	blobPath := cmd.BlobPath()
	previous := d.Proofs().Get(cmd.Slot())
	if err = d.AttachProof(cmd.Slot(), blobPath, time.Now().UTC()); err != nil {
		return "", err
	}

	file := cmd.File()
	if err = h.blobs.Upload(ctx, ports.DeliveryProofsBucket, blobPath, file.ContentType, file.Content); err != nil {
		return "", err
	}

	err = repo.SaveProof(ctx, d, cmd.Slot())
	if err == nil {
		err = uow.Commit(ctx)
	}
	if err != nil {
		if previous != blobPath {
			_ = h.blobs.Remove(context.WithoutCancel(ctx), ports.DeliveryProofsBucket, blobPath)
		}
		return "", err
	}

	return blobPath, nil
}

