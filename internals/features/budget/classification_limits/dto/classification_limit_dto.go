// file: internals/features/budget/classification_limits/dto/classification_limit_dto.go
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"skbudget_backend/internals/constants"
	model "skbudget_backend/internals/features/budget/classification_limits/model"
)

/* =========================
   Requests
   ========================= */

type CreateClassificationLimitRequest struct {
	BudgetID         int64           `json:"budgetId" validate:"required,gt=0"`
	ClassificationID int64           `json:"classificationId" validate:"required,gt=0"`
	Category         string          `json:"category" validate:"required"`
	LimitAmount      decimal.Decimal `json:"limitAmount" validate:"required"`
}

// Amount and category are mutable; budget and classification are fixed at
// creation. Re-targeting a limit to another classification means delete + create.
type UpdateClassificationLimitRequest struct {
	LimitAmount *decimal.Decimal `json:"limitAmount,omitempty"`
	Category    *string          `json:"category,omitempty"`
}

/* =========================
   Responses
   ========================= */

type ClassificationLimitClassificationLite struct {
	ID   int64  `json:"id"`
	Code string `json:"code,omitempty"`
	Name string `json:"name,omitempty"`
}

type ClassificationLimitResponse struct {
	ID               int64                                 `json:"id"`
	BudgetID         int64                                 `json:"budgetId"`
	ClassificationID int64                                 `json:"classificationId"`
	Category         string                                `json:"category"`
	LimitAmount      decimal.Decimal                       `json:"limitAmount"`
	Classification   ClassificationLimitClassificationLite `json:"classification"`
	CreatedAt        time.Time                             `json:"createdAt"`
	UpdatedAt        time.Time                             `json:"updatedAt"`
}

func FromModel(m *model.BudgetClassificationLimit) ClassificationLimitResponse {
	snap := m.ClassificationSnapshot()
	return ClassificationLimitResponse{
		ID:               m.BudgetClassificationLimitID,
		BudgetID:         m.BudgetClassificationLimitBudgetID,
		ClassificationID: m.BudgetClassificationLimitClassificationID,
		Category:         string(m.BudgetClassificationLimitCategory),
		LimitAmount:      m.BudgetClassificationLimitAmount,
		Classification: ClassificationLimitClassificationLite{
			ID:   m.BudgetClassificationLimitClassificationID,
			Code: snap.Code,
			Name: snap.Name,
		},
		CreatedAt: m.BudgetClassificationLimitCreatedAt,
		UpdatedAt: m.BudgetClassificationLimitUpdatedAt,
	}
}

func FromModels(items []model.BudgetClassificationLimit) []ClassificationLimitResponse {
	out := make([]ClassificationLimitResponse, 0, len(items))
	for i := range items {
		out = append(out, FromModel(&items[i]))
	}
	return out
}

/* =========================
   Remaining-budget view
   ========================= */

type CategoryRemaining struct {
	Category        constants.BudgetCategory `json:"category"`
	CategoryCap     decimal.Decimal          `json:"categoryCap"`
	PlannedAmount   decimal.Decimal          `json:"plannedAmount"`
	RemainingAmount decimal.Decimal          `json:"remainingAmount"`
}

type RemainingBudgetResponse struct {
	BudgetID   int64               `json:"budgetId"`
	Categories []CategoryRemaining `json:"categories"`
}
