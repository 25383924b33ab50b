package commands

import (
	"context"
	"time"

	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/core/domain/model/profile"
	"messdelivery/internal/core/domain/services"
	"messdelivery/internal/core/ports"
)

// CreateDeliveryStaffCommandHandler creates the identity first, then upserts
// its profile with the mess binding. An identity whose profile write fails
// is left in place; retrying with the same email reports a conflict.
type CreateDeliveryStaffCommandHandler struct {
	uowFactory StaffUoWFactory
	identities ports.IdentityProvider
	policy     services.DeliveryAccessPolicy
}

func NewCreateDeliveryStaffCommandHandler(
	uowFactory StaffUoWFactory,
	identities ports.IdentityProvider,
) CreateDeliveryStaffCommandHandler {
	return CreateDeliveryStaffCommandHandler{
		uowFactory: uowFactory,
		identities: identities,
		policy:     services.NewDeliveryAccessPolicy(),
	}
}

// Handle returns the id of the new delivery person.
func (h *CreateDeliveryStaffCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryStaffCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	m, err := uow.MessRepository().Get(ctx, cmd.MessID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if err = h.policy.CanManageStaff(cmd.Caller(), m); err != nil {
		return kernel.UUID{}, err
	}

	id, err := h.identities.CreateUser(ctx, ports.NewIdentity{
		Email:       cmd.Email(),
		Password:    cmd.Password(),
		DisplayName: cmd.FullName(),
		Role:        profile.DeliveryPersonnel,
	})
	if err != nil {
		return kernel.UUID{}, err
	}

	now := time.Now().UTC()
	p, err := profile.NewProfile(id, cmd.FullName(), profile.DeliveryPersonnel, now)
	if err != nil {
		return kernel.UUID{}, err
	}
	if err = p.JoinMessStaff(m.ID(), cmd.PhoneNumber(), now); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.ProfileRepository().Save(ctx, p); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return id, nil
}
