// file: internals/features/budget/budgets/dto/budget_dto.go
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	model "skbudget_backend/internals/features/budget/budgets/model"
	fiscalYearModel "skbudget_backend/internals/features/budget/fiscal_years/model"
)

/* =========================
   Requests
   ========================= */

type CreateBudgetRequest struct {
	FiscalYearID         int64           `json:"fiscalYearId" validate:"required,gt=0"`
	TotalAmount          decimal.Decimal `json:"totalAmount"`
	AdministrativeAmount decimal.Decimal `json:"administrativeAmount"`
	YouthAmount          decimal.Decimal `json:"youthAmount"`
}

// UpdateBudgetRequest carries partial updates; absent fields keep the
// stored value and the split is re-validated on the merged triple.
type UpdateBudgetRequest struct {
	TotalAmount          *decimal.Decimal `json:"totalAmount,omitempty"`
	AdministrativeAmount *decimal.Decimal `json:"administrativeAmount,omitempty"`
	YouthAmount          *decimal.Decimal `json:"youthAmount,omitempty"`
}

func (r *CreateBudgetRequest) ToModel() *model.Budget {
	return &model.Budget{
		BudgetFiscalYearID:         r.FiscalYearID,
		BudgetTotalAmount:          r.TotalAmount,
		BudgetAdministrativeAmount: r.AdministrativeAmount,
		BudgetYouthAmount:          r.YouthAmount,
	}
}

/* =========================
   Responses
   ========================= */

type BudgetFiscalYearLite struct {
	ID       int64 `json:"id"`
	Year     int   `json:"year"`
	IsActive bool  `json:"isActive"`
}

type BudgetResponse struct {
	ID                   int64                 `json:"id"`
	FiscalYearID         int64                 `json:"fiscalYearId"`
	TotalAmount          decimal.Decimal       `json:"totalAmount"`
	AdministrativeAmount decimal.Decimal       `json:"administrativeAmount"`
	YouthAmount          decimal.Decimal       `json:"youthAmount"`
	FiscalYear           *BudgetFiscalYearLite `json:"fiscalYear,omitempty"`
	CreatedAt            time.Time             `json:"createdAt"`
	UpdatedAt            time.Time             `json:"updatedAt"`
}

func FromModel(b *model.Budget, fy *fiscalYearModel.FiscalYear) BudgetResponse {
	resp := BudgetResponse{
		ID:                   b.BudgetID,
		FiscalYearID:         b.BudgetFiscalYearID,
		TotalAmount:          b.BudgetTotalAmount,
		AdministrativeAmount: b.BudgetAdministrativeAmount,
		YouthAmount:          b.BudgetYouthAmount,
		CreatedAt:            b.BudgetCreatedAt,
		UpdatedAt:            b.BudgetUpdatedAt,
	}
	if fy != nil {
		resp.FiscalYear = &BudgetFiscalYearLite{
			ID:       fy.FiscalYearID,
			Year:     fy.FiscalYearYear,
			IsActive: fy.FiscalYearIsActive,
		}
	}
	return resp
}
