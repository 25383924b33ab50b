// Package profilerepo persists profiles and messes with GORM.
package profilerepo

import (
	"time"

	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/core/domain/model/mess"
	"messdelivery/internal/core/domain/model/profile"

	"github.com/google/uuid"
)

type ProfileDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FullName    string     `gorm:"type:text;not null"`
	Role        string     `gorm:"type:text;not null;index"`
	MessID      *uuid.UUID `gorm:"type:uuid;index"`
	PhoneNumber *string    `gorm:"type:text"`
	CreatedAt   time.Time  `gorm:"not null;autoCreateTime:false"`
	UpdatedAt   time.Time  `gorm:"not null;autoUpdateTime:false"`
}

func (ProfileDTO) TableName() string {
	return "profiles"
}

type MessDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:text;not null"`
	Address   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
}

func (MessDTO) TableName() string {
	return "messes"
}

func profileFromDomain(p *profile.Profile) ProfileDTO {
	var messID *uuid.UUID
	if id := p.MessID(); id != nil {
		raw := id.Bytes()
		messID = &raw
	}
	var phone *string
	if n := p.PhoneNumber(); n != "" {
		phone = &n
	}

	return ProfileDTO{
		ID:          p.ID().Bytes(),
		FullName:    p.FullName(),
		Role:        p.Role().String(),
		MessID:      messID,
		PhoneNumber: phone,
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func profileToDomain(dto ProfileDTO) (*profile.Profile, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	role, err := profile.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	var messID *kernel.UUID
	if dto.MessID != nil {
		m, err := kernel.UUIDFromGoogle(*dto.MessID)
		if err != nil {
			return nil, err
		}
		messID = &m
	}
	var phone string
	if dto.PhoneNumber != nil {
		phone = *dto.PhoneNumber
	}

	return profile.RestoreProfile(id, dto.FullName, role, messID, phone, dto.CreatedAt, dto.UpdatedAt)
}

func messFromDomain(m *mess.Mess) MessDTO {
	return MessDTO{
		ID:        m.ID().Bytes(),
		OwnerID:   m.OwnerID().Bytes(),
		Name:      m.Name(),
		Address:   m.Address(),
		CreatedAt: m.CreatedAt(),
	}
}

func messToDomain(dto MessDTO) (*mess.Mess, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromGoogle(dto.OwnerID)
	if err != nil {
		return nil, err
	}
	return mess.RestoreMess(id, ownerID, dto.Name, dto.Address, dto.CreatedAt)
}
