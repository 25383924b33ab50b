// Package credentialrepo stores email and password logins for deployments
// that issue their own tokens instead of using Firebase Authentication.
package credentialrepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"messdelivery/internal/adapters/out/postgres/pgerr"
	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/core/domain/model/profile"
	"messdelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const UniqueEmailIndex = "idx_credentials_email"

type CredentialDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:text;not null;uniqueIndex:idx_credentials_email"`
	PasswordHash []byte    `gorm:"type:bytea;not null"`
	Role         string    `gorm:"type:text;not null"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime:false"`
}

func (CredentialDTO) TableName() string {
	return "credentials"
}

// Credential is a stored login. Email is kept lower-cased.
type Credential struct {
	ID           kernel.UUID
	Email        string
	PasswordHash []byte
	Role         profile.Role
	CreatedAt    time.Time
}

type GormCredentialRepository struct {
	db *gorm.DB
}

func NewGormCredentialRepository(db *gorm.DB) *GormCredentialRepository {
	return &GormCredentialRepository{db: db}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *GormCredentialRepository) Add(ctx context.Context, c Credential) error {
	dto := CredentialDTO{
		ID:           c.ID.Bytes(),
		Email:        normalizeEmail(c.Email),
		PasswordHash: c.PasswordHash,
		Role:         c.Role.String(),
		CreatedAt:    c.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err, UniqueEmailIndex) {
			return errs.NewObjectAlreadyExistsErrorWithCause("email", dto.Email, err)
		}
		return err
	}
	return nil
}

func (r *GormCredentialRepository) FindByEmail(ctx context.Context, email string) (Credential, error) {
	email = normalizeEmail(email)

	var dto CredentialDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Credential{}, errs.NewObjectNotFoundError("credential", email)
		}
		return Credential{}, err
	}

	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return Credential{}, err
	}
	role, err := profile.ParseRole(dto.Role)
	if err != nil {
		return Credential{}, err
	}

	return Credential{
		ID:           id,
		Email:        dto.Email,
		PasswordHash: dto.PasswordHash,
		Role:         role,
		CreatedAt:    dto.CreatedAt,
	}, nil
}
