// file: internals/features/budget/objects_of_expenditure/dto/object_of_expenditure_dto.go
package dto

import (
	"strings"
	"time"

	model "skbudget_backend/internals/features/budget/objects_of_expenditure/model"
)

/* =========================
   Requests
   ========================= */

type CreateObjectOfExpenditureRequest struct {
	Code        string  `json:"code" validate:"required,min=1,max=30"`
	Name        string  `json:"name" validate:"required,min=1,max=160"`
	Description *string `json:"description,omitempty"`
}

type UpdateObjectOfExpenditureRequest struct {
	Code        *string `json:"code,omitempty" validate:"omitempty,min=1,max=30"`
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=160"`
	Description *string `json:"description,omitempty"`
}

func (r *CreateObjectOfExpenditureRequest) ToModel() *model.ObjectOfExpenditure {
	var desc *string
	if r.Description != nil {
		trimmed := strings.TrimSpace(*r.Description)
		if trimmed != "" {
			desc = &trimmed
		}
	}
	return &model.ObjectOfExpenditure{
		ObjectOfExpenditureCode:        strings.TrimSpace(r.Code),
		ObjectOfExpenditureName:        strings.TrimSpace(r.Name),
		ObjectOfExpenditureDescription: desc,
	}
}

/* =========================
   Responses
   ========================= */

type ObjectOfExpenditureResponse struct {
	ID          int64     `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromModel(m *model.ObjectOfExpenditure) ObjectOfExpenditureResponse {
	return ObjectOfExpenditureResponse{
		ID:          m.ObjectOfExpenditureID,
		Code:        m.ObjectOfExpenditureCode,
		Name:        m.ObjectOfExpenditureName,
		Description: m.ObjectOfExpenditureDescription,
		CreatedAt:   m.ObjectOfExpenditureCreatedAt,
		UpdatedAt:   m.ObjectOfExpenditureUpdatedAt,
	}
}

func FromModels(items []model.ObjectOfExpenditure) []ObjectOfExpenditureResponse {
	out := make([]ObjectOfExpenditureResponse, 0, len(items))
	for i := range items {
		out = append(out, FromModel(&items[i]))
	}
	return out
}
