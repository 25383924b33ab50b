package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"messdelivery/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v4"
)

// LocalStore writes blobs under baseDir/{bucket}/{path}. Its signed URLs
// carry an HS256 token naming the object, checked again by Open.
type LocalStore struct {
	baseDir string
	baseURL string
	secret  []byte
}

func NewLocalStore(baseDir, baseURL string, secret []byte) (*LocalStore, error) {
	if baseDir == "" {
		return nil, errs.NewValueIsRequiredError("baseDir")
	}
	if len(secret) == 0 {
		return nil, errs.NewValueIsRequiredError("secret")
	}
	if err := os.MkdirAll(baseDir, 0o750); err != nil {
		return nil, fmt.Errorf("create blob dir: %w", err)
	}
	return &LocalStore{baseDir: baseDir, baseURL: strings.TrimRight(baseURL, "/"), secret: secret}, nil
}

// resolve rejects paths that would escape the bucket directory.
func (s *LocalStore) resolve(bucket, path string) (string, error) {
	if bucket == "" || strings.ContainsAny(bucket, `/\`) {
		return "", errs.NewValueIsInvalidError("bucket")
	}
	clean := filepath.Clean(filepath.FromSlash(path))
	if path == "" || filepath.IsAbs(clean) || clean == "." || strings.HasPrefix(clean, "..") {
		return "", errs.NewValueIsInvalidErrorWithCause("path", fmt.Errorf("%q leaves the bucket", path))
	}
	return filepath.Join(s.baseDir, bucket, clean), nil
}

func (s *LocalStore) Upload(_ context.Context, bucket, path, _ string, content io.Reader) error {
	target, err := s.resolve(bucket, path)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
		return errs.NewUpstreamError("storage", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".upload-*")
	if err != nil {
		return errs.NewUpstreamError("storage", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err = io.Copy(tmp, content); err != nil {
		_ = tmp.Close()
		return errs.NewUpstreamError("storage", err)
	}
	if err = tmp.Close(); err != nil {
		return errs.NewUpstreamError("storage", err)
	}
	if err = os.Rename(tmp.Name(), target); err != nil {
		return errs.NewUpstreamError("storage", err)
	}
	return nil
}

func (s *LocalStore) Remove(_ context.Context, bucket, path string) error {
	target, err := s.resolve(bucket, path)
	if err != nil {
		return err
	}
	if err = os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errs.NewUpstreamError("storage", err)
	}
	return nil
}

type objectClaims struct {
	jwt.RegisteredClaims
	Bucket string `json:"bkt"`
	Path   string `json:"pth"`
}

// SignedURL returns {baseURL}/{bucket}/{path}?token=...
func (s *LocalStore) SignedURL(_ context.Context, bucket, path string, ttl time.Duration) (string, error) {
	if _, err := s.resolve(bucket, path); err != nil {
		return "", err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, objectClaims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl))},
		Bucket:           bucket,
		Path:             path,
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s/%s?token=%s", s.baseURL, bucket, path, url.QueryEscape(signed)), nil
}

// Open returns the object a signed URL points at. A token that is expired,
// forged or issued for another object yields errs.ErrAccessDenied.
func (s *LocalStore) Open(bucket, path, token string) (*os.File, error) {
	claims := &objectClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, errs.NewAccessDeniedErrorWithCause("signed url", err)
	}
	if claims.Bucket != bucket || claims.Path != path {
		return nil, errs.NewAccessDeniedError("signed url")
	}

	target, err := s.resolve(bucket, path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(target)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errs.NewObjectNotFoundError("blob", bucket+"/"+path)
	}
	if err != nil {
		return nil, errs.NewUpstreamError("storage", err)
	}
	return f, nil
}
