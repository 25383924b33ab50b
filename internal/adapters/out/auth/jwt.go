package auth

import (
	"context"
	"fmt"
	"time"

	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/core/domain/model/profile"
	"messdelivery/internal/core/ports"
	"messdelivery/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v4"
)

type tokenClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// JWTTokens issues and verifies HS256 access tokens whose subject is the
// profile id.
type JWTTokens struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewJWTTokens(secret []byte, issuer string, ttl time.Duration) (*JWTTokens, error) {
	if len(secret) < 32 {
		return nil, errs.NewValueIsInvalidErrorWithCause("secret", fmt.Errorf("need at least 32 bytes, got %d", len(secret)))
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("ttl", fmt.Errorf("%s is not positive", ttl))
	}
	return &JWTTokens{secret: secret, issuer: issuer, ttl: ttl}, nil
}

func (t *JWTTokens) Issue(id kernel.UUID, role profile.Role, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(t.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.String(),
			Issuer:    t.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Role: role.String(),
	})

	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (t *JWTTokens) Verify(_ context.Context, token string) (kernel.UUID, error) {
	if token == "" {
		return kernel.UUID{}, ports.ErrInvalidToken
	}

	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", tok.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: %w", ports.ErrInvalidToken, err)
	}
	if t.issuer != "" && !claims.VerifyIssuer(t.issuer, true) {
		return kernel.UUID{}, fmt.Errorf("%w: issuer %q", ports.ErrInvalidToken, claims.Issuer)
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: subject %q", ports.ErrInvalidToken, claims.Subject)
	}
	return id, nil
}
