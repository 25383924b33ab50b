// Package auth verifies bearer tokens and creates login accounts, either
// against Firebase Authentication or with locally stored credentials and
// self-issued HS256 tokens.
package auth

import (
	"context"
	"fmt"

	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/core/ports"
	"messdelivery/internal/pkg/errs"

	firebaseauth "firebase.google.com/go/v4/auth"
)

// FirebaseAuth uses the profile id as the Firebase UID, so a verified
// token's UID is the caller's profile id.
type FirebaseAuth struct {
	client *firebaseauth.Client
}

func NewFirebaseAuth(client *firebaseauth.Client) *FirebaseAuth {
	return &FirebaseAuth{client: client}
}

func (a *FirebaseAuth) Verify(ctx context.Context, token string) (kernel.UUID, error) {
	if token == "" {
		return kernel.UUID{}, ports.ErrInvalidToken
	}

	verified, err := a.client.VerifyIDToken(ctx, token)
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: %w", ports.ErrInvalidToken, err)
	}

	id, err := kernel.UUIDFromString(verified.UID)
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: uid %q is not a profile id", ports.ErrInvalidToken, verified.UID)
	}
	return id, nil
}

// CreateUser registers the account and stores its role as a custom claim.
func (a *FirebaseAuth) CreateUser(ctx context.Context, identity ports.NewIdentity) (kernel.UUID, error) {
	id := kernel.NewUUID()
	params := (&firebaseauth.UserToCreate{}).
		UID(id.String()).
		Email(identity.Email).
		Password(identity.Password).
		DisplayName(identity.DisplayName)

	if _, err := a.client.CreateUser(ctx, params); err != nil {
		if firebaseauth.IsEmailAlreadyExists(err) {
			return kernel.UUID{}, errs.NewObjectAlreadyExistsErrorWithCause("email", identity.Email, err)
		}
		return kernel.UUID{}, errs.NewUpstreamError("identity provider", err)
	}

	claims := map[string]any{"role": identity.Role.String()}
	if err := a.client.SetCustomUserClaims(ctx, id.String(), claims); err != nil {
		return kernel.UUID{}, errs.NewUpstreamError("identity provider", err)
	}

	return id, nil
}
