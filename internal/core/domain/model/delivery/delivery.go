package delivery

import (
	"errors"
	"fmt"
	"time"

	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/pkg/errs"
)

var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

// Delivery is the aggregate root of the lifecycle workflow.
//
// Invariants:
//   - subscriptionID and messID are set at creation and never change
//   - status pending_assignment implies no delivery person
//   - every status after pending_assignment, except failed, implies a delivery person
//   - the delivery person is null exactly while pending_assignment, with one
//     exception: a pool delivery moved straight to failed keeps it null, so a
//     failed delivery may or may not have one
//   - at most one delivery exists per (subscription, delivery date); the store enforces it
type Delivery struct {
	id               kernel.UUID
	subscriptionID   kernel.UUID
	messID           kernel.UUID
	deliveryPersonID *kernel.UUID
	status           Status
	deliveryDate     kernel.Date
	proofs           Proofs
	createdAt        time.Time
	updatedAt        time.Time

	events        []kernel.DomainEvent
	isConstructed bool
}

// NewDelivery creates a delivery owned by a mess for one subscription day.
//
// With an assignee the delivery starts in assigned; without one it starts in
// pending_assignment and is visible in the public pool.
//
// Example:
//
//	d, err := delivery.NewDelivery(kernel.NewUUID(), subID, messID, nil, kernel.DateOf(now), now)
//	// d.Status() == delivery.PendingAssignment, d.DeliveryPerson() == nil
func NewDelivery(
	id, subscriptionID, messID kernel.UUID,
	assignee *kernel.UUID,
	deliveryDate kernel.Date,
	now time.Time,
) (*Delivery, error) {
	d := &Delivery{
		status:        PendingAssignment,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setSubscriptionID(subscriptionID),
		d.setMessID(messID),
		d.setDeliveryDate(deliveryDate),
	); err != nil {
		return nil, err
	}

	if assignee != nil {
		if err := assignee.Validate(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("assignee", err)
		}
		person := *assignee
		d.deliveryPersonID = &person
		d.status = Assigned
	}

	d.record(EventCreated, Unknown, UnknownSlot, now)
	return d, nil
}

// RestoreDelivery rebuilds a delivery from storage. It checks the same
// invariants as NewDelivery but records no events.
func RestoreDelivery(
	id, subscriptionID, messID kernel.UUID,
	deliveryPersonID *kernel.UUID,
	status Status,
	deliveryDate kernel.Date,
	proofs Proofs,
	createdAt, updatedAt time.Time,
) (*Delivery, error) {
	d := &Delivery{
		proofs:        proofs,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setSubscriptionID(subscriptionID),
		d.setMessID(messID),
		d.setDeliveryDate(deliveryDate),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if deliveryPersonID != nil {
		person := *deliveryPersonID
		d.deliveryPersonID = &person
	}
	d.status = status

	if err := validateAssignment(status, d.deliveryPersonID); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

func (d *Delivery) ID() kernel.UUID {
	return d.id
}

func (d *Delivery) SubscriptionID() kernel.UUID {
	return d.subscriptionID
}

func (d *Delivery) MessID() kernel.UUID {
	return d.messID
}

// DeliveryPerson returns the assignee, or nil while the delivery is unassigned.
func (d *Delivery) DeliveryPerson() *kernel.UUID {
	if d.deliveryPersonID == nil {
		return nil
	}
	person := *d.deliveryPersonID
	return &person
}

func (d *Delivery) Status() Status {
	return d.status
}

func (d *Delivery) DeliveryDate() kernel.Date {
	return d.deliveryDate
}

func (d *Delivery) Proofs() Proofs {
	return d.proofs
}

func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

func (d *Delivery) UpdatedAt() time.Time {
	return d.updatedAt
}

// IsAssignedTo reports whether personID is the current assignee.
func (d *Delivery) IsAssignedTo(personID kernel.UUID) bool {
	return d.deliveryPersonID != nil && d.deliveryPersonID.IsEqual(personID)
}

// IsInPool reports whether the delivery can be accepted from the public pool.
func (d *Delivery) IsInPool() bool {
	return d.status == PendingAssignment && d.deliveryPersonID == nil
}

// Accept assigns an unclaimed pool delivery to personID.
//
// This only validates the in-memory state. Concurrent acceptance is resolved
// by the repository's conditional claim, which must be used to persist it.
func (d *Delivery) Accept(personID kernel.UUID, now time.Time) error {
	if err := personID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("deliveryPersonId", err)
	}
	if d.deliveryPersonID != nil {
		return errs.NewAlreadyClaimedError("delivery", d.id.String())
	}
	if d.status != PendingAssignment {
		return errs.NewInvalidTransitionError(d.status.String(), Assigned.String())
	}

	previous := d.status
	d.deliveryPersonID = &personID
	d.status = Assigned
	d.updatedAt = now
	d.record(EventAccepted, previous, UnknownSlot, now)
	return nil
}

// AdvanceTo moves the delivery forward to next, or to failed.
//
// An unassigned delivery may only fail; every other target needs an
// assignee, which only creation or pool acceptance can provide.
func (d *Delivery) AdvanceTo(next Status, now time.Time) error {
	newStatus, err := d.status.AdvanceTo(next)
	if err != nil {
		return err
	}

	if err = validateAssignment(newStatus, d.deliveryPersonID); err != nil {
		return errs.NewInvalidTransitionErrorWithCause(d.status.String(), next.String(), err)
	}

	previous := d.status
	d.status = newStatus
	d.updatedAt = now
	d.record(EventStatusChanged, previous, UnknownSlot, now)
	return nil
}

// AttachProof stores ref in slot, replacing any previous reference. Proofs
// can be attached in any non-terminal status and in any order.
func (d *Delivery) AttachProof(slot ProofSlot, ref string, now time.Time) error {
	if err := slot.Validate(); err != nil {
		return err
	}
	if ref == "" {
		return errs.NewValueIsRequiredError("proof reference")
	}
	if d.status.IsTerminal() {
		return errs.NewInvalidTransitionErrorWithCause(
			d.status.String(), d.status.String(),
			fmt.Errorf("cannot attach %s proof to a %s delivery", slot, d.status),
		)
	}

	d.proofs = d.proofs.with(slot, ref)
	d.updatedAt = now
	d.record(EventProofAttached, Unknown, slot, now)
	return nil
}

// DomainEvents returns the events recorded since the last ClearDomainEvents.
func (d *Delivery) DomainEvents() []kernel.DomainEvent {
	return d.events
}

func (d *Delivery) ClearDomainEvents() {
	d.events = nil
}

func validateAssignment(status Status, person *kernel.UUID) error {
	if status == PendingAssignment && person != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryPersonId", errors.New("pending_assignment delivery cannot have a delivery person"),
		)
	}
	if status.RequiresDeliveryPerson() && person == nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryPersonId", fmt.Errorf("%s delivery requires a delivery person", status),
		)
	}
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	d.id = id
	return nil
}

func (d *Delivery) setSubscriptionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("subscriptionId", err)
	}
	d.subscriptionID = id
	return nil
}

func (d *Delivery) setMessID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("messId", err)
	}
	d.messID = id
	return nil
}

func (d *Delivery) setDeliveryDate(date kernel.Date) error {
	if err := date.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("deliveryDate", err)
	}
	d.deliveryDate = date
	return nil
}

var _ kernel.EventSource = (*Delivery)(nil)
