package ports

import (
	"context"
	"io"
	"time"
)

// Buckets used by the service.
const (
	DeliveryProofsBucket = "delivery_proofs"
	PaymentProofsBucket  = "payment_proofs"
)

// BlobStore keeps uploaded photos. Paths are namespaced by the owning
// record id, and uploading to an existing path overwrites it.
type BlobStore interface {
	Upload(ctx context.Context, bucket, path, contentType string, content io.Reader) error
	Remove(ctx context.Context, bucket, path string) error
	SignedURL(ctx context.Context, bucket, path string, ttl time.Duration) (string, error)
}
