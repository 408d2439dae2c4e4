// file: internals/features/budget/allocations/model/allocation_model.go
package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"skbudget_backend/internals/constants"
)

/* =========================
   Model: budget_allocations
   ========================= */

type BudgetAllocation struct {
	BudgetAllocationID                    int64                    `json:"budget_allocation_id"                       gorm:"column:budget_allocation_id;primaryKey;autoIncrement"`
	BudgetAllocationBudgetID              int64                    `json:"budget_allocation_budget_id"                gorm:"column:budget_allocation_budget_id;not null;index"`
	BudgetAllocationProgramID             int64                    `json:"budget_allocation_program_id"               gorm:"column:budget_allocation_program_id;not null;index"`
	BudgetAllocationClassificationID      int64                    `json:"budget_allocation_classification_id"        gorm:"column:budget_allocation_classification_id;not null;index"`
	BudgetAllocationCategory              constants.BudgetCategory `json:"budget_allocation_category"                 gorm:"column:budget_allocation_category;type:varchar(20);not null"`
	BudgetAllocationObjectOfExpenditureID int64                    `json:"budget_allocation_object_of_expenditure_id" gorm:"column:budget_allocation_object_of_expenditure_id;not null;index"`

	// usedAmount must never exceed allocatedAmount
	BudgetAllocationAllocatedAmount decimal.Decimal `json:"budget_allocation_allocated_amount" gorm:"column:budget_allocation_allocated_amount;type:numeric(18,2);not null"`
	BudgetAllocationUsedAmount      decimal.Decimal `json:"budget_allocation_used_amount"      gorm:"column:budget_allocation_used_amount;type:numeric(18,2);not null;default:0"`

	BudgetAllocationDescription *string `json:"budget_allocation_description,omitempty" gorm:"column:budget_allocation_description;type:text"`

	BudgetAllocationCreatedAt time.Time  `json:"budget_allocation_created_at"           gorm:"column:budget_allocation_created_at;type:timestamptz;not null;default:now()"`
	BudgetAllocationUpdatedAt time.Time  `json:"budget_allocation_updated_at"           gorm:"column:budget_allocation_updated_at;type:timestamptz;not null;default:now()"`
	BudgetAllocationDeletedAt *time.Time `json:"budget_allocation_deleted_at,omitempty" gorm:"column:budget_allocation_deleted_at;type:timestamptz"`
}

func (BudgetAllocation) TableName() string { return "budget_allocations" }

/* =========================
   Hooks: refresh updated_at
   ========================= */

func (a *BudgetAllocation) BeforeCreate(tx *gorm.DB) error {
	a.BudgetAllocationUpdatedAt = time.Now().UTC()
	return nil
}
func (a *BudgetAllocation) BeforeUpdate(tx *gorm.DB) error {
	a.BudgetAllocationUpdatedAt = time.Now().UTC()
	return nil
}

/* =========================
   Scopes & helpers
   ========================= */

func ScopeAlive(db *gorm.DB) *gorm.DB {
	return db.Where("budget_allocation_deleted_at IS NULL")
}
func ScopeByBudget(budgetID int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("budget_allocation_budget_id = ?", budgetID)
	}
}
func ScopeByProgram(programID int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("budget_allocation_program_id = ?", programID)
	}
}

// RemainingAmount is allocated minus used.
func (a *BudgetAllocation) RemainingAmount() decimal.Decimal {
	return a.BudgetAllocationAllocatedAmount.Sub(a.BudgetAllocationUsedAmount)
}
