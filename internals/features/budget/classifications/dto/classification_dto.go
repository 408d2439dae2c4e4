// file: internals/features/budget/classifications/dto/classification_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"

	"skbudget_backend/internals/constants"
	model "skbudget_backend/internals/features/budget/classifications/model"
)

/* =========================
   Requests
   ========================= */

type CreateClassificationRequest struct {
	Code              string   `json:"code" validate:"required,min=1,max=30"`
	Name              string   `json:"name" validate:"required,min=1,max=120"`
	Description       *string  `json:"description,omitempty"`
	AllowedCategories []string `json:"allowedCategories" validate:"required,min=1"`
}

type UpdateClassificationRequest struct {
	Code              *string  `json:"code,omitempty" validate:"omitempty,min=1,max=30"`
	Name              *string  `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Description       *string  `json:"description,omitempty"`
	AllowedCategories []string `json:"allowedCategories,omitempty"`
}

// NormalizeCategories upper-cases and validates the allowed-category list.
func NormalizeCategories(raw []string) (pq.StringArray, error) {
	seen := map[constants.BudgetCategory]bool{}
	out := make(pq.StringArray, 0, len(raw))
	for _, r := range raw {
		cat, err := constants.ParseBudgetCategory(r)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if !seen[cat] {
			seen[cat] = true
			out = append(out, string(cat))
		}
	}
	return out, nil
}

func (r *CreateClassificationRequest) ToModel() (*model.BudgetClassification, error) {
	categories, err := NormalizeCategories(r.AllowedCategories)
	if err != nil {
		return nil, err
	}

	var desc *string
	if r.Description != nil {
		trimmed := strings.TrimSpace(*r.Description)
		if trimmed != "" {
			desc = &trimmed
		}
	}

	return &model.BudgetClassification{
		BudgetClassificationCode:              strings.TrimSpace(r.Code),
		BudgetClassificationName:              strings.TrimSpace(r.Name),
		BudgetClassificationDescription:       desc,
		BudgetClassificationAllowedCategories: categories,
	}, nil
}

/* =========================
   Responses
   ========================= */

type ClassificationResponse struct {
	ID                int64     `json:"id"`
	Code              string    `json:"code"`
	Name              string    `json:"name"`
	Description       *string   `json:"description,omitempty"`
	AllowedCategories []string  `json:"allowedCategories"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func FromModel(m *model.BudgetClassification) ClassificationResponse {
	return ClassificationResponse{
		ID:                m.BudgetClassificationID,
		Code:              m.BudgetClassificationCode,
		Name:              m.BudgetClassificationName,
		Description:       m.BudgetClassificationDescription,
		AllowedCategories: []string(m.BudgetClassificationAllowedCategories),
		CreatedAt:         m.BudgetClassificationCreatedAt,
		UpdatedAt:         m.BudgetClassificationUpdatedAt,
	}
}

func FromModels(items []model.BudgetClassification) []ClassificationResponse {
	out := make([]ClassificationResponse, 0, len(items))
	for i := range items {
		out = append(out, FromModel(&items[i]))
	}
	return out
}
