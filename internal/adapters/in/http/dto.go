package http

import (
	"time"

	"messdelivery/internal/core/application/usecases/queries"
	"messdelivery/internal/core/domain/model/kernel"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

type TokenRequest struct {
	Email    openapi_types.Email `json:"email" validate:"required,email"`
	Password string              `json:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type CreateDeliveryRequest struct {
	SubscriptionID   openapi_types.UUID  `json:"subscription_id" validate:"required"`
	MessID           openapi_types.UUID  `json:"mess_id" validate:"required"`
	DeliveryPersonID *openapi_types.UUID `json:"delivery_person_id,omitempty"`
	DeliveryDate     *openapi_types.Date `json:"delivery_date,omitempty"`
}

type AdvanceStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type CreateStaffRequest struct {
	Email       openapi_types.Email `json:"email" validate:"required,email"`
	Password    string              `json:"password" validate:"required"`
	FullName    string              `json:"full_name" validate:"required"`
	PhoneNumber string              `json:"phone_number"`
	MessID      openapi_types.UUID  `json:"mess_id" validate:"required"`
}

type CreateStaffResponse struct {
	Message string             `json:"message"`
	UserID  openapi_types.UUID `json:"user_id"`
}

type CreatedResponse struct {
	ID openapi_types.UUID `json:"id"`
}

type DeliveryResponse struct {
	ID               openapi_types.UUID  `json:"id"`
	SubscriptionID   openapi_types.UUID  `json:"subscription_id"`
	MessID           openapi_types.UUID  `json:"mess_id"`
	DeliveryPersonID *openapi_types.UUID `json:"delivery_person_id"`
	Status           string              `json:"status"`
	DeliveryDate     openapi_types.Date  `json:"delivery_date"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

type ProofResponse struct {
	Slot      string    `json:"slot"`
	Path      string    `json:"path"`
	URL       string    `json:"url,omitempty"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

type DeliveryProofsResponse struct {
	DeliveryID openapi_types.UUID `json:"delivery_id"`
	Proofs     []ProofResponse    `json:"proofs"`
}

type StaffMemberResponse struct {
	ID          openapi_types.UUID `json:"id"`
	FullName    string             `json:"full_name"`
	PhoneNumber string             `json:"phone_number"`
	CreatedAt   time.Time          `json:"created_at"`
}

type NotificationResponse struct {
	ID         openapi_types.UUID `json:"id"`
	DeliveryID openapi_types.UUID `json:"delivery_id"`
	Message    string             `json:"message"`
	Status     string             `json:"status"`
	IsRead     bool               `json:"is_read"`
	CreatedAt  time.Time          `json:"created_at"`
}

func toDate(d kernel.Date) openapi_types.Date {
	return openapi_types.Date{Time: d.Time()}
}

func toDeliveryResponses(views []queries.DeliveryView) []DeliveryResponse {
	out := make([]DeliveryResponse, len(views))
	for i, v := range views {
		out[i] = DeliveryResponse{
			ID:             v.ID.Bytes(),
			SubscriptionID: v.SubscriptionID.Bytes(),
			MessID:         v.MessID.Bytes(),
			Status:         v.Status.String(),
			DeliveryDate:   toDate(v.DeliveryDate),
			CreatedAt:      v.CreatedAt,
			UpdatedAt:      v.UpdatedAt,
		}
		if v.DeliveryPersonID != nil {
			id := v.DeliveryPersonID.Bytes()
			out[i].DeliveryPersonID = &id
		}
	}
	return out
}

func toStaffResponses(views []queries.StaffMemberView) []StaffMemberResponse {
	out := make([]StaffMemberResponse, len(views))
	for i, v := range views {
		out[i] = StaffMemberResponse{
			ID:          v.ID.Bytes(),
			FullName:    v.FullName,
			PhoneNumber: v.PhoneNumber,
			CreatedAt:   v.CreatedAt,
		}
	}
	return out
}

func toNotificationResponses(views []queries.NotificationView) []NotificationResponse {
	out := make([]NotificationResponse, len(views))
	for i, v := range views {
		out[i] = NotificationResponse{
			ID:         v.ID.Bytes(),
			DeliveryID: v.DeliveryID.Bytes(),
			Message:    v.Message,
			Status:     v.Status,
			IsRead:     v.IsRead,
			CreatedAt:  v.CreatedAt,
		}
	}
	return out
}

func toProofsResponse(view queries.DeliveryProofsView) DeliveryProofsResponse {
	proofs := make([]ProofResponse, len(view.Proofs))
	for i, p := range view.Proofs {
		proofs[i] = ProofResponse{
			Slot:      p.Slot.String(),
			Path:      p.Path,
			URL:       p.URL,
			ExpiresAt: p.ExpiresAt,
		}
	}
	return DeliveryProofsResponse{DeliveryID: view.DeliveryID.Bytes(), Proofs: proofs}
}
