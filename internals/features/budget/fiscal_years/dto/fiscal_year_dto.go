// file: internals/features/budget/fiscal_years/dto/fiscal_year_dto.go
package dto

import (
	"time"

	model "skbudget_backend/internals/features/budget/fiscal_years/model"
)

/* =========================
   Requests
   ========================= */

type CreateFiscalYearRequest struct {
	Year     int   `json:"year" validate:"required,min=2000,max=2100"`
	IsActive *bool `json:"isActive,omitempty"`
}

type UpdateFiscalYearRequest struct {
	Year     *int  `json:"year,omitempty" validate:"omitempty,min=2000,max=2100"`
	IsActive *bool `json:"isActive,omitempty"`
}

func (r *CreateFiscalYearRequest) ToModel() *model.FiscalYear {
	fy := &model.FiscalYear{
		FiscalYearYear: r.Year,
	}
	if r.IsActive != nil {
		fy.FiscalYearIsActive = *r.IsActive
	}
	return fy
}

/* =========================
   Responses
   ========================= */

type FiscalYearResponse struct {
	ID        int64     `json:"id"`
	Year      int       `json:"year"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromModel(fy *model.FiscalYear) FiscalYearResponse {
	return FiscalYearResponse{
		ID:        fy.FiscalYearID,
		Year:      fy.FiscalYearYear,
		IsActive:  fy.FiscalYearIsActive,
		CreatedAt: fy.FiscalYearCreatedAt,
		UpdatedAt: fy.FiscalYearUpdatedAt,
	}
}

func FromModels(items []model.FiscalYear) []FiscalYearResponse {
	out := make([]FiscalYearResponse, 0, len(items))
	for i := range items {
		out = append(out, FromModel(&items[i]))
	}
	return out
}
