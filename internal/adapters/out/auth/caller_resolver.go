package auth

import (
	"context"
	"errors"

	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/core/domain/model/profile"
	"messdelivery/internal/core/ports"
	"messdelivery/internal/pkg/errs"

	"go.uber.org/zap"
)

type profileGetter interface {
	Get(ctx context.Context, id kernel.UUID) (*profile.Profile, error)
}

// RoleCache remembers the role of a profile between requests.
type RoleCache interface {
	GetRole(ctx context.Context, id kernel.UUID) (profile.Role, bool, error)
	SetRole(ctx context.Context, id kernel.UUID, role profile.Role) error
}

// CallerResolver turns a bearer token into the caller's id and role. Roles
// never change after signup, so a cached role stays valid until it expires.
type CallerResolver struct {
	verifier ports.TokenVerifier
	profiles profileGetter
	cache    RoleCache
	logger   *zap.Logger
}

func NewCallerResolver(
	verifier ports.TokenVerifier,
	profiles profileGetter,
	cache RoleCache,
	logger *zap.Logger,
) *CallerResolver {
	return &CallerResolver{
		verifier: verifier,
		profiles: profiles,
		cache:    cache,
		logger:   logger.With(zap.String("component", "caller_resolver")),
	}
}

func (r *CallerResolver) Resolve(ctx context.Context, token string) (profile.Caller, error) {
	id, err := r.verifier.Verify(ctx, token)
	if err != nil {
		return profile.Caller{}, err
	}

	role, ok, err := r.cache.GetRole(ctx, id)
	if err != nil {
		r.logger.Warn("role cache read failed", zap.String("profile_id", id.String()), zap.Error(err))
	}
	if ok {
		return profile.NewCaller(id, role)
	}

	p, err := r.profiles.Get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return profile.Caller{}, errs.NewAccessDeniedErrorWithCause("profile", err)
	}
	if err != nil {
		return profile.Caller{}, err
	}

	if err = r.cache.SetRole(ctx, id, p.Role()); err != nil {
		r.logger.Warn("role cache write failed", zap.String("profile_id", id.String()), zap.Error(err))
	}
	return p.Caller(), nil
}
