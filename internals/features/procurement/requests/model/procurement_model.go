// file: internals/features/procurement/requests/model/procurement_model.go
package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"skbudget_backend/internals/constants"
)

/* =========================
   Model: procurement_requests
   ========================= */

type ProcurementRequest struct {
	ProcurementRequestID           int64                        `json:"procurement_request_id"            gorm:"column:procurement_request_id;primaryKey;autoIncrement"`
	ProcurementRequestAllocationID int64                        `json:"procurement_request_allocation_id" gorm:"column:procurement_request_allocation_id;not null;index"`
	ProcurementRequestTitle        string                       `json:"procurement_request_title"         gorm:"column:procurement_request_title;type:varchar(200);not null"`
	ProcurementRequestDescription  *string                      `json:"procurement_request_description,omitempty" gorm:"column:procurement_request_description;type:text"`
	ProcurementRequestAmount       decimal.Decimal              `json:"procurement_request_amount"        gorm:"column:procurement_request_amount;type:numeric(18,2);not null"`
	ProcurementRequestStatus       constants.ProcurementStatus  `json:"procurement_request_status"        gorm:"column:procurement_request_status;type:varchar(20);not null;default:'DRAFT';index"`
	ProcurementRequestSupplierName *string                      `json:"procurement_request_supplier_name,omitempty" gorm:"column:procurement_request_supplier_name;type:varchar(200)"`
	ProcurementRequestRequestedBy  string                       `json:"procurement_request_requested_by"  gorm:"column:procurement_request_requested_by;type:varchar(120);not null"`
	ProcurementRequestPurchasedAt  *time.Time                   `json:"procurement_request_purchased_at,omitempty" gorm:"column:procurement_request_purchased_at;type:timestamptz"`

	ProcurementRequestCreatedAt time.Time  `json:"procurement_request_created_at"           gorm:"column:procurement_request_created_at;type:timestamptz;not null;default:now()"`
	ProcurementRequestUpdatedAt time.Time  `json:"procurement_request_updated_at"           gorm:"column:procurement_request_updated_at;type:timestamptz;not null;default:now()"`
	ProcurementRequestDeletedAt *time.Time `json:"procurement_request_deleted_at,omitempty" gorm:"column:procurement_request_deleted_at;type:timestamptz"`
}

func (ProcurementRequest) TableName() string { return "procurement_requests" }

func (r *ProcurementRequest) BeforeCreate(tx *gorm.DB) error {
	r.ProcurementRequestUpdatedAt = time.Now().UTC()
	return nil
}
func (r *ProcurementRequest) BeforeUpdate(tx *gorm.DB) error {
	r.ProcurementRequestUpdatedAt = time.Now().UTC()
	return nil
}

func ScopeAlive(db *gorm.DB) *gorm.DB {
	return db.Where("procurement_request_deleted_at IS NULL")
}

/* =========================
   Model: procurement_approvals
   ========================= */

// One row per state-machine action, forming the audit trail of a request.
type ProcurementApproval struct {
	ProcurementApprovalID        int64                       `json:"procurement_approval_id"         gorm:"column:procurement_approval_id;primaryKey;autoIncrement"`
	ProcurementApprovalRequestID int64                       `json:"procurement_approval_request_id" gorm:"column:procurement_approval_request_id;not null;index"`
	ProcurementApprovalAction    constants.ProcurementStatus `json:"procurement_approval_action"     gorm:"column:procurement_approval_action;type:varchar(20);not null"`
	ProcurementApprovalActor     string                      `json:"procurement_approval_actor"      gorm:"column:procurement_approval_actor;type:varchar(120);not null"`
	ProcurementApprovalNote      *string                     `json:"procurement_approval_note,omitempty" gorm:"column:procurement_approval_note;type:text"`
	ProcurementApprovalCreatedAt time.Time                   `json:"procurement_approval_created_at" gorm:"column:procurement_approval_created_at;type:timestamptz;not null;default:now()"`
}

func (ProcurementApproval) TableName() string { return "procurement_approvals" }

/* =========================
   Model: procurement_proofs
   ========================= */

type ProcurementProof struct {
	ProcurementProofID        int64      `json:"procurement_proof_id"         gorm:"column:procurement_proof_id;primaryKey;autoIncrement"`
	ProcurementProofRequestID int64      `json:"procurement_proof_request_id" gorm:"column:procurement_proof_request_id;not null;index"`
	ProcurementProofType      string     `json:"procurement_proof_type"       gorm:"column:procurement_proof_type;type:varchar(20);not null"`
	ProcurementProofFileURL   string     `json:"procurement_proof_file_url"   gorm:"column:procurement_proof_file_url;type:text;not null"`
	ProcurementProofCreatedAt time.Time  `json:"procurement_proof_created_at" gorm:"column:procurement_proof_created_at;type:timestamptz;not null;default:now()"`
	ProcurementProofDeletedAt *time.Time `json:"procurement_proof_deleted_at,omitempty" gorm:"column:procurement_proof_deleted_at;type:timestamptz"`
}

func (ProcurementProof) TableName() string { return "procurement_proofs" }

func ScopeProofAlive(db *gorm.DB) *gorm.DB {
	return db.Where("procurement_proof_deleted_at IS NULL")
}
