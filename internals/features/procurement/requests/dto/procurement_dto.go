// file: internals/features/procurement/requests/dto/procurement_dto.go
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	model "skbudget_backend/internals/features/procurement/requests/model"
)

/* =========================
   Requests
   ========================= */

type CreateProcurementRequest struct {
	AllocationID int64           `json:"allocationId" validate:"required,gt=0"`
	Title        string          `json:"title" validate:"required,min=1,max=200"`
	Description  *string         `json:"description,omitempty"`
	Amount       decimal.Decimal `json:"amount" validate:"required"`
	SupplierName *string         `json:"supplierName,omitempty" validate:"omitempty,max=200"`
}

// Only drafts may be updated; re-targeting the allocation is allowed while in
// draft because nothing has been committed yet.
type UpdateProcurementRequest struct {
	AllocationID *int64           `json:"allocationId,omitempty" validate:"omitempty,gt=0"`
	Title        *string          `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description  *string          `json:"description,omitempty"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	SupplierName *string          `json:"supplierName,omitempty" validate:"omitempty,max=200"`
}

type ProcurementDecisionRequest struct {
	Note *string `json:"note,omitempty"`
}

/* =========================
   Responses
   ========================= */

type ProcurementAllocationLite struct {
	ID              int64           `json:"id"`
	BudgetID        int64           `json:"budgetId"`
	ProgramID       int64           `json:"programId"`
	Category        string          `json:"category"`
	AllocatedAmount decimal.Decimal `json:"allocatedAmount"`
	UsedAmount      decimal.Decimal `json:"usedAmount"`
}

type ProcurementApprovalResponse struct {
	ID        int64     `json:"id"`
	Action    string    `json:"action"`
	Actor     string    `json:"actor"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type ProcurementProofResponse struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	FileURL   string    `json:"fileUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

type ProcurementResponse struct {
	ID           int64                         `json:"id"`
	AllocationID int64                         `json:"allocationId"`
	Title        string                        `json:"title"`
	Description  *string                       `json:"description,omitempty"`
	Amount       decimal.Decimal               `json:"amount"`
	Status       string                        `json:"status"`
	SupplierName *string                       `json:"supplierName,omitempty"`
	RequestedBy  string                        `json:"requestedBy"`
	PurchasedAt  *time.Time                    `json:"purchasedAt,omitempty"`
	Allocation   *ProcurementAllocationLite    `json:"allocation,omitempty"`
	Approvals    []ProcurementApprovalResponse `json:"approvals,omitempty"`
	Proofs       []ProcurementProofResponse    `json:"proofs,omitempty"`
	CreatedAt    time.Time                     `json:"createdAt"`
	UpdatedAt    time.Time                     `json:"updatedAt"`
}

func FromApprovalModels(items []model.ProcurementApproval) []ProcurementApprovalResponse {
	out := make([]ProcurementApprovalResponse, 0, len(items))
	for i := range items {
		out = append(out, ProcurementApprovalResponse{
			ID:        items[i].ProcurementApprovalID,
			Action:    string(items[i].ProcurementApprovalAction),
			Actor:     items[i].ProcurementApprovalActor,
			Note:      items[i].ProcurementApprovalNote,
			CreatedAt: items[i].ProcurementApprovalCreatedAt,
		})
	}
	return out
}

func FromProofModels(items []model.ProcurementProof) []ProcurementProofResponse {
	out := make([]ProcurementProofResponse, 0, len(items))
	for i := range items {
		out = append(out, ProcurementProofResponse{
			ID:        items[i].ProcurementProofID,
			Type:      items[i].ProcurementProofType,
			FileURL:   items[i].ProcurementProofFileURL,
			CreatedAt: items[i].ProcurementProofCreatedAt,
		})
	}
	return out
}

func FromModel(m *model.ProcurementRequest, allocation *ProcurementAllocationLite,
	approvals []model.ProcurementApproval, proofs []model.ProcurementProof) ProcurementResponse {
	return ProcurementResponse{
		ID:           m.ProcurementRequestID,
		AllocationID: m.ProcurementRequestAllocationID,
		Title:        m.ProcurementRequestTitle,
		Description:  m.ProcurementRequestDescription,
		Amount:       m.ProcurementRequestAmount,
		Status:       string(m.ProcurementRequestStatus),
		SupplierName: m.ProcurementRequestSupplierName,
		RequestedBy:  m.ProcurementRequestRequestedBy,
		PurchasedAt:  m.ProcurementRequestPurchasedAt,
		Allocation:   allocation,
		Approvals:    FromApprovalModels(approvals),
		Proofs:       FromProofModels(proofs),
		CreatedAt:    m.ProcurementRequestCreatedAt,
		UpdatedAt:    m.ProcurementRequestUpdatedAt,
	}
}

func FromModels(items []model.ProcurementRequest) []ProcurementResponse {
	out := make([]ProcurementResponse, 0, len(items))
	for i := range items {
		out = append(out, FromModel(&items[i], nil, nil, nil))
	}
	return out
}
