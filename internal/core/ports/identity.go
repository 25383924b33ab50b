package ports

import (
	"context"
	"errors"

	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/core/domain/model/profile"
)

// NewIdentity describes an account to create with the identity provider.
type NewIdentity struct {
	Email       string
	Password    string
	DisplayName string
	Role        profile.Role
}

// IdentityProvider creates login accounts. The returned id doubles as the
// profile id.
type IdentityProvider interface {
	CreateUser(ctx context.Context, identity NewIdentity) (kernel.UUID, error)
}

// TokenVerifier resolves a bearer token to the identity it was issued for.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (kernel.UUID, error)
}

var (
	// ErrInvalidToken is returned by TokenVerifier for a missing, malformed,
	// expired or forged token.
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidCredentials is returned when an email and password do not
	// match a stored login.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
