package commands

import (
	"context"
	"time"

	"messdelivery/internal/core/domain/services"
)

// AcceptFromPoolCommandHandler resolves the pool race with a conditional
// write. Of two callers accepting the same delivery, exactly one commits; the
// other gets errs.ErrAlreadyClaimed and should refresh its pool listing.
type AcceptFromPoolCommandHandler struct {
	uowFactory DeliveryUoWFactory
	policy     services.DeliveryAccessPolicy
}

func NewAcceptFromPoolCommandHandler(uowFactory DeliveryUoWFactory) AcceptFromPoolCommandHandler {
	return AcceptFromPoolCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewDeliveryAccessPolicy(),
	}
}

func (h *AcceptFromPoolCommandHandler) Handle(ctx context.Context, cmd AcceptFromPoolCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.CanAccept(cmd.Caller()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryRepository()
	d, err := repo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = d.Accept(cmd.Caller().ID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = repo.ClaimFromPool(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
