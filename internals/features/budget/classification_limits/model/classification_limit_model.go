// file: internals/features/budget/classification_limits/model/classification_limit_model.go
package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"skbudget_backend/internals/constants"
)

/* =========================
   Snapshot helper struct
   ========================= */

type ClassificationSnapshotPayload struct {
	ID   int64  `json:"id"`
	Code string `json:"code,omitempty"`
	Name string `json:"name,omitempty"`
}

/* =========================
   Model: budget_classification_limits
   ========================= */

type BudgetClassificationLimit struct {
	BudgetClassificationLimitID               int64                     `json:"budget_classification_limit_id"                gorm:"column:budget_classification_limit_id;primaryKey;autoIncrement"`
	BudgetClassificationLimitBudgetID         int64                     `json:"budget_classification_limit_budget_id"         gorm:"column:budget_classification_limit_budget_id;not null;uniqueIndex:uq_limit_triple,where:budget_classification_limit_deleted_at IS NULL"`
	BudgetClassificationLimitClassificationID int64                     `json:"budget_classification_limit_classification_id" gorm:"column:budget_classification_limit_classification_id;not null;uniqueIndex:uq_limit_triple,where:budget_classification_limit_deleted_at IS NULL"`
	BudgetClassificationLimitCategory         constants.BudgetCategory  `json:"budget_classification_limit_category"          gorm:"column:budget_classification_limit_category;type:varchar(20);not null;uniqueIndex:uq_limit_triple,where:budget_classification_limit_deleted_at IS NULL"`

	BudgetClassificationLimitAmount decimal.Decimal `json:"budget_classification_limit_amount" gorm:"column:budget_classification_limit_amount;type:numeric(18,2);not null"`

	// denormalized classification code/name for read paths (JSONB)
	BudgetClassificationLimitClassificationSnapshot datatypes.JSON `json:"budget_classification_limit_classification_snapshot,omitempty" gorm:"column:budget_classification_limit_classification_snapshot;type:jsonb"`

	BudgetClassificationLimitCreatedAt time.Time  `json:"budget_classification_limit_created_at"           gorm:"column:budget_classification_limit_created_at;type:timestamptz;not null;default:now()"`
	BudgetClassificationLimitUpdatedAt time.Time  `json:"budget_classification_limit_updated_at"           gorm:"column:budget_classification_limit_updated_at;type:timestamptz;not null;default:now()"`
	BudgetClassificationLimitDeletedAt *time.Time `json:"budget_classification_limit_deleted_at,omitempty" gorm:"column:budget_classification_limit_deleted_at;type:timestamptz"`
}

func (BudgetClassificationLimit) TableName() string { return "budget_classification_limits" }

/* =========================
   Hooks: refresh updated_at
   ========================= */

func (l *BudgetClassificationLimit) BeforeCreate(tx *gorm.DB) error {
	l.BudgetClassificationLimitUpdatedAt = time.Now().UTC()
	return nil
}
func (l *BudgetClassificationLimit) BeforeUpdate(tx *gorm.DB) error {
	l.BudgetClassificationLimitUpdatedAt = time.Now().UTC()
	return nil
}

/* =========================
   Scopes
   ========================= */

func ScopeAlive(db *gorm.DB) *gorm.DB {
	return db.Where("budget_classification_limit_deleted_at IS NULL")
}
func ScopeByBudget(budgetID int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("budget_classification_limit_budget_id = ?", budgetID)
	}
}

/* =========================
   Snapshot setter (JSONB)
   ========================= */

func (l *BudgetClassificationLimit) SetClassificationSnapshot(v ClassificationSnapshotPayload) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	l.BudgetClassificationLimitClassificationSnapshot = datatypes.JSON(b)
	return nil
}

func (l *BudgetClassificationLimit) ClassificationSnapshot() ClassificationSnapshotPayload {
	var out ClassificationSnapshotPayload
	if len(l.BudgetClassificationLimitClassificationSnapshot) > 0 {
		_ = json.Unmarshal(l.BudgetClassificationLimitClassificationSnapshot, &out)
	}
	return out
}
