package services

import (
	"messdelivery/internal/core/domain/model/delivery"
	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/core/domain/model/mess"
	"messdelivery/internal/core/domain/model/profile"
	"messdelivery/internal/pkg/errs"
)

// DeliveryAccessPolicy decides whether a caller may act on a delivery.
// Every check returns nil or an AccessDenied error.
type DeliveryAccessPolicy struct{}

func NewDeliveryAccessPolicy() DeliveryAccessPolicy {
	return DeliveryAccessPolicy{}
}

// CanCreate allows the owner of m to create deliveries for it.
func (DeliveryAccessPolicy) CanCreate(caller profile.Caller, m *mess.Mess) error {
	if !caller.Is(profile.MessOwner) || !m.IsOwnedBy(caller.ID()) {
		return errs.NewAccessDeniedError("mess owner")
	}
	return nil
}

// CanAccept allows any delivery person to try a pool claim. Whether the
// claim wins is decided by the store.
func (DeliveryAccessPolicy) CanAccept(caller profile.Caller) error {
	if !caller.Is(profile.DeliveryPersonnel) {
		return errs.NewAccessDeniedError("delivery person")
	}
	return nil
}

// CanAdvance allows the assigned delivery person or the owner of the mess.
func (DeliveryAccessPolicy) CanAdvance(caller profile.Caller, d *delivery.Delivery, m *mess.Mess) error {
	if d.IsAssignedTo(caller.ID()) || m.IsOwnedBy(caller.ID()) {
		return nil
	}
	return errs.NewAccessDeniedError("assigned delivery person or mess owner")
}

// CanAttachProof allows only the assigned delivery person.
func (DeliveryAccessPolicy) CanAttachProof(caller profile.Caller, d *delivery.Delivery) error {
	if !d.IsAssignedTo(caller.ID()) {
		return errs.NewAccessDeniedError("assigned delivery person")
	}
	return nil
}

// ProofViewers are the parties of one delivery: its assigned delivery
// person (nil while pooled), the owner of its mess and the subscribing student.
type ProofViewers struct {
	Assignee  *kernel.UUID
	MessOwner kernel.UUID
	Student   kernel.UUID
}

// CanViewProofs allows the mess owner, the assignee and the subscribing student.
func (DeliveryAccessPolicy) CanViewProofs(caller profile.Caller, viewers ProofViewers) error {
	id := caller.ID()
	if viewers.Assignee != nil && viewers.Assignee.IsEqual(id) {
		return nil
	}
	if viewers.MessOwner.IsEqual(id) || viewers.Student.IsEqual(id) {
		return nil
	}
	return errs.NewAccessDeniedError("mess owner, assigned delivery person or subscriber")
}

// CanManageStaff allows the owner of m to list and create its staff.
func (DeliveryAccessPolicy) CanManageStaff(caller profile.Caller, m *mess.Mess) error {
	if !caller.Is(profile.MessOwner) || !m.IsOwnedBy(caller.ID()) {
		return errs.NewAccessDeniedError("mess owner")
	}
	return nil
}
