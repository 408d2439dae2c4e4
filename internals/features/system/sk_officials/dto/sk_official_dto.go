// file: internals/features/system/sk_officials/dto/sk_official_dto.go
package dto

import (
	"time"

	model "skbudget_backend/internals/features/system/sk_officials/model"
)

/* =========================
   Requests
   ========================= */

type CreateSkOfficialRequest struct {
	FullName  string `json:"fullName" validate:"required,min=1,max=160"`
	Position  string `json:"position" validate:"required,min=1,max=120"`
	Gender    string `json:"gender" validate:"required"`
	SortOrder *int   `json:"sortOrder,omitempty" validate:"omitempty,gte=0"`
}

type UpdateSkOfficialRequest struct {
	FullName  *string `json:"fullName,omitempty" validate:"omitempty,min=1,max=160"`
	Position  *string `json:"position,omitempty" validate:"omitempty,min=1,max=120"`
	Gender    *string `json:"gender,omitempty"`
	SortOrder *int    `json:"sortOrder,omitempty" validate:"omitempty,gte=0"`
}

/* =========================
   Responses
   ========================= */

type SkOfficialResponse struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"fullName"`
	Position  string    `json:"position"`
	Gender    string    `json:"gender"`
	PhotoURL  *string   `json:"photoUrl,omitempty"`
	IsActive  bool      `json:"isActive"`
	SortOrder int       `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromModel(m *model.SkOfficial) SkOfficialResponse {
	return SkOfficialResponse{
		ID:        m.SkOfficialID,
		FullName:  m.SkOfficialFullName,
		Position:  m.SkOfficialPosition,
		Gender:    string(m.SkOfficialGender),
		PhotoURL:  m.SkOfficialPhotoURL,
		IsActive:  m.SkOfficialIsActive,
		SortOrder: m.SkOfficialSortOrder,
		CreatedAt: m.SkOfficialCreatedAt,
		UpdatedAt: m.SkOfficialUpdatedAt,
	}
}

func FromModels(items []model.SkOfficial) []SkOfficialResponse {
	out := make([]SkOfficialResponse, 0, len(items))
	for i := range items {
		out = append(out, FromModel(&items[i]))
	}
	return out
}
