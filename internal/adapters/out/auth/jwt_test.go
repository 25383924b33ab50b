package auth_test

import (
	"context"
	"testing"
	"time"

	"messdelivery/internal/adapters/out/auth"
	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/core/domain/model/profile"
	"messdelivery/internal/core/ports"
	"messdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("0123456789abcdef0123456789abcdef")

func newTokens(t *testing.T, issuer string) *auth.JWTTokens {
	t.Helper()
	tokens, err := auth.NewJWTTokens(secret, issuer, time.Hour)
	require.NoError(t, err)
	return tokens
}

func TestJWTTokens_IssueThenVerify(t *testing.T) {
	tokens := newTokens(t, "messdelivery")
	id := kernel.NewUUID()
	now := time.Now().UTC()

	token, expiresAt, err := tokens.Issue(id, profile.DeliveryPersonnel, now)
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(time.Hour), expiresAt, time.Second)

	got, err := tokens.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.True(t, got.IsEqual(id))
}

func TestJWTTokens_Verify_Rejects(t *testing.T) {
	id := kernel.NewUUID()
	now := time.Now().UTC()

	other, err := auth.NewJWTTokens([]byte("fedcba9876543210fedcba9876543210"), "messdelivery", time.Hour)
	require.NoError(t, err)
	forged, _, err := other.Issue(id, profile.Student, now)
	require.NoError(t, err)

	expired, _, err := newTokens(t, "messdelivery").Issue(id, profile.Student, now.Add(-2*time.Hour))
	require.NoError(t, err)

	foreign, _, err := newTokens(t, "someone-else").Issue(id, profile.Student, now)
	require.NoError(t, err)

	tests := map[string]string{
		"empty":          "",
		"garbage":        "not.a.jwt",
		"other secret":   forged,
		"expired":        expired,
		"foreign issuer": foreign,
	}

	tokens := newTokens(t, "messdelivery")
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := tokens.Verify(context.Background(), token)
			require.ErrorIs(t, err, ports.ErrInvalidToken)
		})
	}
}

func TestNewJWTTokens_Validation(t *testing.T) {
	_, err := auth.NewJWTTokens([]byte("short"), "", time.Hour)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = auth.NewJWTTokens(secret, "", 0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
