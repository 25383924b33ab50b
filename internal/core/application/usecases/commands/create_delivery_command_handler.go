package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"messdelivery/internal/core/domain/model/delivery"
	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/core/domain/services"
	"messdelivery/internal/pkg/errs"
)

// CreateDeliveryCommandHandler creates a delivery for an active subscription.
// The store rejects a second delivery for the same subscription and date.
type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	policy     services.DeliveryAccessPolicy
}

func NewCreateDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewDeliveryAccessPolicy(),
	}
}

func (h *CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) error {
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

	m, err := uow.MessRepository().Get(ctx, cmd.MessID())
	if err != nil {
		return err
	}
	if err = h.policy.CanCreate(cmd.Caller(), m); err != nil {
		return err
	}

	sub, err := uow.SubscriptionRepository().Get(ctx, cmd.SubscriptionID())
	if err != nil {
		return err
	}
	if !sub.MessID().IsEqual(m.ID()) {
		return errs.NewValueIsInvalidErrorWithCause("subscriptionId", errors.New("subscription belongs to another mess"))
	}
	if !sub.IsActive() {
		return errs.NewValueIsInvalidErrorWithCause("subscriptionId", fmt.Errorf("subscription is %s", sub.Status()))
	}

	if assignee := cmd.Assignee(); assignee != nil {
		person, err := uow.ProfileRepository().Get(ctx, *assignee)
		if err != nil {
			return err
		}
		if !person.IsStaffOf(m.ID()) {
			return errs.NewValueIsInvalidErrorWithCause("assignee", fmt.Errorf("%s is not on this mess's staff", assignee))
		}
	}

	now := time.Now().UTC()
	date := kernel.DateOf(now)
	if cmd.Date() != nil {
		date = *cmd.Date()
	}

	d, err := delivery.NewDelivery(cmd.DeliveryID(), sub.ID(), m.ID(), cmd.Assignee(), date, now)
	if err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Add(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
