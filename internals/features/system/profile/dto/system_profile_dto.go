// file: internals/features/system/profile/dto/system_profile_dto.go
package dto

import (
	"time"

	model "skbudget_backend/internals/features/system/profile/model"
)

type UpdateSystemProfileRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=160"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty" validate:"omitempty,min=1,max=200"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email,max=120"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,max=30"`
}

type SystemProfileResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Location    string    `json:"location"`
	Email       *string   `json:"email,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	LogoURL     *string   `json:"logoUrl,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromModel(m *model.SystemProfile) SystemProfileResponse {
	return SystemProfileResponse{
		ID:          m.SystemProfileID,
		Name:        m.SystemProfileName,
		Description: m.SystemProfileDescription,
		Location:    m.SystemProfileLocation,
		Email:       m.SystemProfileEmail,
		Phone:       m.SystemProfilePhone,
		LogoURL:     m.SystemProfileLogoURL,
		UpdatedAt:   m.SystemProfileUpdatedAt,
	}
}
