package commands

import (
	"context"
	"time"

	"messdelivery/internal/core/domain/services"
)

// AdvanceStatusCommandHandler re-validates the transition against the status
// it just read and writes only if that status is still stored, so a stale
// read ends in errs.ErrInvalidTransition instead of a lost update.
type AdvanceStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
	policy     services.DeliveryAccessPolicy
}

func NewAdvanceStatusCommandHandler(uowFactory DeliveryUoWFactory) AdvanceStatusCommandHandler {
	return AdvanceStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewDeliveryAccessPolicy(),
	}
}

func (h *AdvanceStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceStatusCommand) error {
	if err := cmd.Validate(); err != nil {
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

	m, err := uow.MessRepository().Get(ctx, d.MessID())
	if err != nil {
		return err
	}
	if err = h.policy.CanAdvance(cmd.Caller(), d, m); err != nil {
		return err
	}

	expected := d.Status()
	if err = d.AdvanceTo(cmd.Status(), time.Now().UTC()); err != nil {
		return err
	}

	if err = repo.UpdateStatus(ctx, d, expected); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
