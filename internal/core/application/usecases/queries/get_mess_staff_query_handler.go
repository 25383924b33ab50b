package queries

import (
	"context"
	"database/sql"

	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/core/domain/model/profile"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetMessStaffQueryHandler struct {
	db *gorm.DB
}

func NewGetMessStaffQueryHandler(db *gorm.DB) GetMessStaffQueryHandler {
	return GetMessStaffQueryHandler{db: db}
}

func (h GetMessStaffQueryHandler) Handle(ctx context.Context, query GetMessStaffQuery) ([]StaffMemberView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := requireMessOwner(ctx, h.db, query.Caller(), query.MessID()); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			full_name,
			phone_number,
			created_at
		FROM profiles
		WHERE mess_id = ?
			AND role = ?
		ORDER BY full_name, id
	`, query.MessID().Bytes(), profile.DeliveryPersonnel.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	staff := make([]StaffMemberView, 0)
	for rows.Next() {
		var (
			member StaffMemberView
			id     uuid.UUID
			phone  sql.NullString
		)
		if err = rows.Scan(&id, &member.FullName, &phone, &member.CreatedAt); err != nil {
			return nil, err
		}

		if member.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		member.PhoneNumber = phone.String
		staff = append(staff, member)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return staff, nil
}
