package queries

import (
	"context"
	"database/sql"
	"errors"

	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/core/domain/model/profile"
	"messdelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// requireMessOwner fails unless caller is a mess owner who owns messID.
func requireMessOwner(ctx context.Context, db *gorm.DB, caller profile.Caller, messID kernel.UUID) error {
	if !caller.Is(profile.MessOwner) {
		return errs.NewAccessDeniedError("mess owner")
	}

	var ownerID uuid.UUID
	err := db.WithContext(ctx).Raw(`SELECT owner_id FROM messes WHERE id = ?`, messID.Bytes()).Row().Scan(&ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return errs.NewObjectNotFoundError("mess", messID)
	}
	if err != nil {
		return err
	}

	if ownerID != caller.ID().Bytes() {
		return errs.NewAccessDeniedError("mess owner")
	}
	return nil
}
