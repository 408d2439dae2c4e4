// file: internals/features/budget/allocations/dto/allocation_dto.go
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	model "skbudget_backend/internals/features/budget/allocations/model"
)

/* =========================
   Requests
   ========================= */

type CreateAllocationRequest struct {
	BudgetID              int64           `json:"budgetId" validate:"required,gt=0"`
	ProgramID             int64           `json:"programId" validate:"required,gt=0"`
	ClassificationID      int64           `json:"classificationId" validate:"required,gt=0"`
	Category              string          `json:"category" validate:"required"`
	ObjectOfExpenditureID int64           `json:"objectOfExpenditureId" validate:"required,gt=0"`
	AllocatedAmount       decimal.Decimal `json:"allocatedAmount" validate:"required"`
	Description           *string         `json:"description,omitempty"`
}

type UpdateAllocationRequest struct {
	AllocatedAmount *decimal.Decimal `json:"allocatedAmount,omitempty"`
	UsedAmount      *decimal.Decimal `json:"usedAmount,omitempty"`
	Description     *string          `json:"description,omitempty"`
}

/* =========================
   Responses
   ========================= */

type AllocationLookupLite struct {
	ID   int64  `json:"id"`
	Code string `json:"code,omitempty"`
	Name string `json:"name,omitempty"`
}

type AllocationResponse struct {
	ID                  int64                `json:"id"`
	BudgetID            int64                `json:"budgetId"`
	Category            string               `json:"category"`
	AllocatedAmount     decimal.Decimal      `json:"allocatedAmount"`
	UsedAmount          decimal.Decimal      `json:"usedAmount"`
	RemainingAmount     decimal.Decimal      `json:"remainingAmount"`
	Description         *string              `json:"description,omitempty"`
	Program             AllocationLookupLite `json:"program"`
	Classification      AllocationLookupLite `json:"classification"`
	ObjectOfExpenditure AllocationLookupLite `json:"objectOfExpenditure"`
	CreatedAt           time.Time            `json:"createdAt"`
	UpdatedAt           time.Time            `json:"updatedAt"`
}

// Lookups carries the joined reference rows keyed by id, loaded by the caller.
type Lookups struct {
	Programs        map[int64]AllocationLookupLite
	Classifications map[int64]AllocationLookupLite
	Objects         map[int64]AllocationLookupLite
}

func FromModel(m *model.BudgetAllocation, lookups Lookups) AllocationResponse {
	resp := AllocationResponse{
		ID:              m.BudgetAllocationID,
		BudgetID:        m.BudgetAllocationBudgetID,
		Category:        string(m.BudgetAllocationCategory),
		AllocatedAmount: m.BudgetAllocationAllocatedAmount,
		UsedAmount:      m.BudgetAllocationUsedAmount,
		RemainingAmount: m.RemainingAmount(),
		Description:     m.BudgetAllocationDescription,
		Program:         AllocationLookupLite{ID: m.BudgetAllocationProgramID},
		Classification:  AllocationLookupLite{ID: m.BudgetAllocationClassificationID},
		ObjectOfExpenditure: AllocationLookupLite{
			ID: m.BudgetAllocationObjectOfExpenditureID,
		},
		CreatedAt: m.BudgetAllocationCreatedAt,
		UpdatedAt: m.BudgetAllocationUpdatedAt,
	}
	if lite, ok := lookups.Programs[m.BudgetAllocationProgramID]; ok {
		resp.Program = lite
	}
	if lite, ok := lookups.Classifications[m.BudgetAllocationClassificationID]; ok {
		resp.Classification = lite
	}
	if lite, ok := lookups.Objects[m.BudgetAllocationObjectOfExpenditureID]; ok {
		resp.ObjectOfExpenditure = lite
	}
	return resp
}

func FromModels(items []model.BudgetAllocation, lookups Lookups) []AllocationResponse {
	out := make([]AllocationResponse, 0, len(items))
	for i := range items {
		out = append(out, FromModel(&items[i], lookups))
	}
	return out
}

/* =========================
   Remaining-limit view
   ========================= */

type RemainingLimitResponse struct {
	BudgetID         int64           `json:"budgetId"`
	ClassificationID int64           `json:"classificationId"`
	Category         string          `json:"category"`
	LimitAmount      decimal.Decimal `json:"limitAmount"`
	AllocatedAmount  decimal.Decimal `json:"allocatedAmount"`
	RemainingAmount  decimal.Decimal `json:"remainingAmount"`
}

/* =========================
   Program summary view
   ========================= */

type ProgramSummaryResponse struct {
	Program         AllocationLookupLite `json:"program"`
	AllocationCount int64                `json:"allocationCount"`
	TotalAllocated  decimal.Decimal      `json:"totalAllocated"`
	TotalUsed       decimal.Decimal      `json:"totalUsed"`
	TotalRemaining  decimal.Decimal      `json:"totalRemaining"`
}
