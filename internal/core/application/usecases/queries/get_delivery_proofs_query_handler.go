package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"messdelivery/internal/core/domain/model/delivery"
	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/core/domain/services"
	"messdelivery/internal/core/ports"
	"messdelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultProofURLTTL is how long a signed proof link stays valid.
const DefaultProofURLTTL = 300 * time.Second

// GetDeliveryProofsQueryHandler signs a URL per filled slot. The mess owner,
// the assigned delivery person and the subscribing student may look.
type GetDeliveryProofsQueryHandler struct {
	db     *gorm.DB
	blobs  ports.BlobStore
	ttl    time.Duration
	policy services.DeliveryAccessPolicy
}

// NewGetDeliveryProofsQueryHandler uses DefaultProofURLTTL when ttl is not
// positive.
func NewGetDeliveryProofsQueryHandler(db *gorm.DB, blobs ports.BlobStore, ttl time.Duration) GetDeliveryProofsQueryHandler {
	if ttl <= 0 {
		ttl = DefaultProofURLTTL
	}
	return GetDeliveryProofsQueryHandler{
		db:     db,
		blobs:  blobs,
		ttl:    ttl,
		policy: services.NewDeliveryAccessPolicy(),
	}
}

func (h GetDeliveryProofsQueryHandler) Handle(ctx context.Context, query GetDeliveryProofsQuery) (DeliveryProofsView, error) {
	if err := query.Validate(); err != nil {
		return DeliveryProofsView{}, err
	}

	var (
		personID  uuid.NullUUID
		ownerID   uuid.UUID
		studentID uuid.UUID
		paths     [4]sql.NullString
	)
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.delivery_person_id,
			m.owner_id,
			s.student_id,
			d.pickup_mess_photo_url,
			d.pickup_food_photo_url,
			d.delivery_house_photo_url,
			d.delivery_food_photo_url
		FROM deliveries d
		JOIN messes m ON m.id = d.mess_id
		JOIN subscriptions s ON s.id = d.subscription_id
		WHERE d.id = ?
	`, query.DeliveryID().Bytes()).Row().Scan(
		&personID, &ownerID, &studentID, &paths[0], &paths[1], &paths[2], &paths[3],
	)
	if errors.Is(err, sql.ErrNoRows) {
		return DeliveryProofsView{}, errs.NewObjectNotFoundError("delivery", query.DeliveryID())
	}
	if err != nil {
		return DeliveryProofsView{}, err
	}

	viewers, err := proofViewers(personID, ownerID, studentID)
	if err != nil {
		return DeliveryProofsView{}, err
	}
	if err = h.policy.CanViewProofs(query.Caller(), viewers); err != nil {
		return DeliveryProofsView{}, err
	}

	view := DeliveryProofsView{DeliveryID: query.DeliveryID(), Proofs: make([]ProofView, 0, len(paths))}
	expiresAt := time.Now().UTC().Add(h.ttl)
	for i, slot := range delivery.ProofSlots() {
		if !paths[i].Valid || paths[i].String == "" {
			continue
		}

		url, signErr := h.blobs.SignedURL(ctx, ports.DeliveryProofsBucket, paths[i].String, h.ttl)
		if signErr != nil {
			return DeliveryProofsView{}, signErr
		}
		view.Proofs = append(view.Proofs, ProofView{
			Slot:      slot,
			Path:      paths[i].String,
			URL:       url,
			ExpiresAt: expiresAt,
		})
	}

	return view, nil
}

func proofViewers(personID uuid.NullUUID, ownerID, studentID uuid.UUID) (services.ProofViewers, error) {
	owner, err := kernel.UUIDFromGoogle(ownerID)
	if err != nil {
		return services.ProofViewers{}, err
	}
	student, err := kernel.UUIDFromGoogle(studentID)
	if err != nil {
		return services.ProofViewers{}, err
	}

	viewers := services.ProofViewers{MessOwner: owner, Student: student}
	if personID.Valid {
		assignee, err := kernel.UUIDFromGoogle(personID.UUID)
		if err != nil {
			return services.ProofViewers{}, err
		}
		viewers.Assignee = &assignee
	}
	return viewers, nil
}
