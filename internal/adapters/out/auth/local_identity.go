package auth

import (
	"context"
	"errors"
	"time"

	"messdelivery/internal/adapters/out/postgres/credentialrepo"
	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/core/ports"
	"messdelivery/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

type credentialStore interface {
	Add(ctx context.Context, c credentialrepo.Credential) error
	FindByEmail(ctx context.Context, email string) (credentialrepo.Credential, error)
}

// LocalIdentityProvider keeps bcrypt-hashed logins in postgres and hands
// out tokens from JWTTokens.
type LocalIdentityProvider struct {
	credentials credentialStore
	tokens      *JWTTokens
}

func NewLocalIdentityProvider(credentials credentialStore, tokens *JWTTokens) *LocalIdentityProvider {
	return &LocalIdentityProvider{credentials: credentials, tokens: tokens}
}

func (p *LocalIdentityProvider) CreateUser(ctx context.Context, identity ports.NewIdentity) (kernel.UUID, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(identity.Password), bcrypt.DefaultCost)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("password", err)
	}

	id := kernel.NewUUID()
	err = p.credentials.Add(ctx, credentialrepo.Credential{
		ID:           id,
		Email:        identity.Email,
		PasswordHash: hash,
		Role:         identity.Role,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return kernel.UUID{}, err
	}
	return id, nil
}

// Login checks the password and returns a fresh access token.
func (p *LocalIdentityProvider) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	c, err := p.credentials.FindByEmail(ctx, email)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return "", time.Time{}, ports.ErrInvalidCredentials
	}
	if err != nil {
		return "", time.Time{}, err
	}

	if err = bcrypt.CompareHashAndPassword(c.PasswordHash, []byte(password)); err != nil {
		return "", time.Time{}, ports.ErrInvalidCredentials
	}

	return p.tokens.Issue(c.ID, c.Role, time.Now().UTC())
}
