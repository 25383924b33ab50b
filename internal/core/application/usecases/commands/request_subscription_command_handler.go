package commands

import (
	"context"
	"time"

	"messdelivery/internal/core/domain/model/profile"
	"messdelivery/internal/core/domain/model/subscription"
	"messdelivery/internal/core/ports"
	"messdelivery/internal/pkg/errs"
)

type RequestSubscriptionCommandHandler struct {
	uowFactory SubscriptionUoWFactory
	blobs      ports.BlobStore
}

func NewRequestSubscriptionCommandHandler(
	uowFactory SubscriptionUoWFactory,
	blobs ports.BlobStore,
) RequestSubscriptionCommandHandler {
	return RequestSubscriptionCommandHandler{
		uowFactory: uowFactory,
		blobs:      blobs,
	}
}

func (h *RequestSubscriptionCommandHandler) Handle(ctx context.Context, cmd RequestSubscriptionCommand) (err error) {
	if err = cmd.Validate(); err != nil {
		return err
	}
	if !cmd.Caller().Is(profile.Student) {
		return errs.NewAccessDeniedError("student")
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.MessRepository().Get(ctx, cmd.MessID()); err != nil {
		return err
	}

	now := time.Now().UTC()
	path := cmd.BlobPath()
	sub, err := subscription.NewSubscription(
		cmd.SubscriptionID(), cmd.Caller().ID(), cmd.MessID(),
		cmd.StartDate(), cmd.EndDate(), path, now,
	)
	if err != nil {
		return err
	}

	file := cmd.Payment()
	if err = h.blobs.Upload(ctx, ports.PaymentProofsBucket, path, file.ContentType, file.Content); err != nil {
		return err
	}

	defer func() {
		if err != nil {
			_ = h.blobs.Remove(context.WithoutCancel(ctx), ports.PaymentProofsBucket, path)
		}
	}()

	if err = uow.SubscriptionRepository().Add(ctx, sub); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
