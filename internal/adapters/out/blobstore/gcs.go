// Package blobstore keeps uploaded photos either in Cloud Storage buckets
// of the Firebase project or on the local disk.
package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"messdelivery/internal/pkg/errs"

	"cloud.google.com/go/storage"
	firebasestorage "firebase.google.com/go/v4/storage"
)

// GCSStore maps each logical bucket to the Cloud Storage bucket
// bucketPrefix+bucket.
type GCSStore struct {
	client       *firebasestorage.Client
	bucketPrefix string
}

func NewGCSStore(client *firebasestorage.Client, bucketPrefix string) *GCSStore {
	return &GCSStore{client: client, bucketPrefix: bucketPrefix}
}

func (s *GCSStore) bucket(name string) (*storage.BucketHandle, error) {
	handle, err := s.client.Bucket(s.bucketPrefix + name)
	if err != nil {
		return nil, errs.NewUpstreamError("storage", err)
	}
	return handle, nil
}

func (s *GCSStore) Upload(ctx context.Context, bucket, path, contentType string, content io.Reader) error {
	handle, err := s.bucket(bucket)
	if err != nil {
		return err
	}

	w := handle.Object(path).NewWriter(ctx)
	w.ContentType = contentType
	if _, err = io.Copy(w, content); err != nil {
		_ = w.Close()
		return errs.NewUpstreamError("storage", fmt.Errorf("write %s/%s: %w", bucket, path, err))
	}
	if err = w.Close(); err != nil {
		return errs.NewUpstreamError("storage", fmt.Errorf("close %s/%s: %w", bucket, path, err))
	}
	return nil
}

// Remove treats a missing object as removed.
func (s *GCSStore) Remove(ctx context.Context, bucket, path string) error {
	handle, err := s.bucket(bucket)
	if err != nil {
		return err
	}

	err = handle.Object(path).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return errs.NewUpstreamError("storage", fmt.Errorf("delete %s/%s: %w", bucket, path, err))
	}
	return nil
}

func (s *GCSStore) SignedURL(_ context.Context, bucket, path string, ttl time.Duration) (string, error) {
	handle, err := s.bucket(bucket)
	if err != nil {
		return "", err
	}

	url, err := handle.SignedURL(path, &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  http.MethodGet,
		Expires: time.Now().Add(ttl),
	})
	if err != nil {
		return "", errs.NewUpstreamError("storage", fmt.Errorf("sign %s/%s: %w", bucket, path, err))
	}
	return url, nil
}
