package commands

import (
	"context"
	"time"

	"messdelivery/internal/core/domain/model/profile"
	"messdelivery/internal/core/ports"
	"messdelivery/internal/pkg/errs"
)

type ReviewSubscriptionCommandHandler struct {
	uowFactory SubscriptionUoWFactory
	blobs      ports.BlobStore
}

func NewReviewSubscriptionCommandHandler(
	uowFactory SubscriptionUoWFactory,
	blobs ports.BlobStore,
) ReviewSubscriptionCommandHandler {
	return ReviewSubscriptionCommandHandler{
		uowFactory: uowFactory,
		blobs:      blobs,
	}
}

func (h *ReviewSubscriptionCommandHandler) Handle(ctx context.Context, cmd ReviewSubscriptionCommand) (err error) {
	if err = cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.SubscriptionRepository()
	sub, err := repo.Get(ctx, cmd.SubscriptionID())
	if err != nil {
		return err
	}

	m, err := uow.MessRepository().Get(ctx, sub.MessID())
	if err != nil {
		return err
	}
	if !cmd.Caller().Is(profile.MessOwner) || !m.IsOwnedBy(cmd.Caller().ID()) {
		return errs.NewAccessDeniedError("mess owner")
	}

	now := time.Now().UTC()
	if !cmd.Approve() {
		if err = sub.Reject(now); err != nil {
			return err
		}
	} else {
		path := cmd.BlobPath()
		if err = sub.Approve(path, now); err != nil {
			return err
		}
		if file := cmd.Confirmation(); file != nil {
			if err = h.blobs.Upload(ctx, ports.PaymentProofsBucket, path, file.ContentType, file.Content); err != nil {
				return err
			}
			defer func() {
				if err != nil {
					_ = h.blobs.Remove(context.WithoutCancel(ctx), ports.PaymentProofsBucket, path)
				}
			}()
		}
	}

	if err = repo.Update(ctx, sub); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
