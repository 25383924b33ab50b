package ports

import (
	"context"

	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/core/domain/model/mess"
	"messdelivery/internal/core/domain/model/profile"
)

// ProfileRepository stores people. Save is an upsert because a profile may
// already exist for an identity created elsewhere.
type ProfileRepository interface {
	Save(ctx context.Context, aggregate *profile.Profile) error
	Get(ctx context.Context, id kernel.UUID) (*profile.Profile, error)
}

type MessRepository interface {
	Add(ctx context.Context, aggregate *mess.Mess) error
	Get(ctx context.Context, id kernel.UUID) (*mess.Mess, error)
}
