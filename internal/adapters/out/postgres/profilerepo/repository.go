package profilerepo

import (
	"context"
	"errors"

	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/core/domain/model/mess"
	"messdelivery/internal/core/domain/model/profile"
	"messdelivery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormProfileRepository struct {
	db *gorm.DB
}

func NewGormProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

// Save inserts the profile or overwrites the mutable columns of an existing
// row with the same id.
func (r *GormProfileRepository) Save(ctx context.Context, aggregate *profile.Profile) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := profileFromDomain(aggregate)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"full_name", "mess_id", "phone_number", "updated_at"}),
	}).Create(&dto).Error
}

func (r *GormProfileRepository) Get(ctx context.Context, id kernel.UUID) (*profile.Profile, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProfileDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("profile", id.String())
		}
		return nil, err
	}

	return profileToDomain(dto)
}

type GormMessRepository struct {
	db *gorm.DB
}

func NewGormMessRepository(db *gorm.DB) *GormMessRepository {
	return &GormMessRepository{db: db}
}

func (r *GormMessRepository) Add(ctx context.Context, aggregate *mess.Mess) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := messFromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormMessRepository) Get(ctx context.Context, id kernel.UUID) (*mess.Mess, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MessDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("mess", id.String())
		}
		return nil, err
	}

	return messToDomain(dto)
}
