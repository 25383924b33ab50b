// Package ports defines the contracts between the delivery domain and its
// infrastructure: repositories, the unit of work, blob storage, the event
// publisher and the identity provider.
package ports

import (
	"context"

	"messdelivery/internal/core/domain/model/delivery"
	"messdelivery/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
type DeliveryRepository interface {
	// Add persists a new delivery. A second delivery for the same
	// (subscription, delivery date) fails with errs.ErrObjectAlreadyExists.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery by id or fails with errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// UpdateStatus writes the status only if the stored status still equals
	// expected. A concurrent change yields errs.ErrInvalidTransition. Proof
	// columns are left alone.
	UpdateStatus(ctx context.Context, aggregate *delivery.Delivery, expected delivery.Status) error

	// SaveProof writes the one proof slot, provided the stored delivery is
	// not delivered or failed. Other slots and the status are left alone.
	SaveProof(ctx context.Context, aggregate *delivery.Delivery, slot delivery.ProofSlot) error

	// ClaimFromPool writes an accepted delivery with a single conditional
	// update predicated on the stored row still being unassigned and
	// pending. Losing the race yields errs.ErrAlreadyClaimed.
	//
	// Example:
	//   if err := d.Accept(personID, now); err != nil {
	//       return err
	//   }
	//   err := repo.ClaimFromPool(ctx, d)
	//   if errors.Is(err, errs.ErrAlreadyClaimed) {
	//       // someone else took it; refresh the pool
	//   }
	ClaimFromPool(ctx context.Context, aggregate *delivery.Delivery) error
}
