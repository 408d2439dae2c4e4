// file: internals/features/budget/classifications/model/classification_model.go
package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"skbudget_backend/internals/constants"
)

/* =========================
   Model: budget_classifications
   ========================= */

type BudgetClassification struct {
	BudgetClassificationID          int64   `json:"budget_classification_id"          gorm:"column:budget_classification_id;primaryKey;autoIncrement"`
	BudgetClassificationCode        string  `json:"budget_classification_code"        gorm:"column:budget_classification_code;type:varchar(30);not null"`
	BudgetClassificationName        string  `json:"budget_classification_name"        gorm:"column:budget_classification_name;type:varchar(120);not null"`
	BudgetClassificationDescription *string `json:"budget_classification_description,omitempty" gorm:"column:budget_classification_description;type:text"`

	// categories this classification may be planned under
	BudgetClassificationAllowedCategories pq.StringArray `json:"budget_classification_allowed_categories" gorm:"column:budget_classification_allowed_categories;type:text[];not null"`

	BudgetClassificationCreatedAt time.Time  `json:"budget_classification_created_at"           gorm:"column:budget_classification_created_at;type:timestamptz;not null;default:now()"`
	BudgetClassificationUpdatedAt time.Time  `json:"budget_classification_updated_at"           gorm:"column:budget_classification_updated_at;type:timestamptz;not null;default:now()"`
	BudgetClassificationDeletedAt *time.Time `json:"budget_classification_deleted_at,omitempty" gorm:"column:budget_classification_deleted_at;type:timestamptz"`
}

func (BudgetClassification) TableName() string { return "budget_classifications" }

/* =========================
   Hooks: refresh updated_at
   ========================= */

func (b *BudgetClassification) BeforeCreate(tx *gorm.DB) error {
	b.BudgetClassificationUpdatedAt = time.Now().UTC()
	return nil
}
func (b *BudgetClassification) BeforeUpdate(tx *gorm.DB) error {
	b.BudgetClassificationUpdatedAt = time.Now().UTC()
	return nil
}

/* =========================
   Scopes & helpers
   ========================= */

func ScopeAlive(db *gorm.DB) *gorm.DB {
	return db.Where("budget_classification_deleted_at IS NULL")
}

// AllowsCategory reports whether this classification may be used under the
// given top-level category.
func (b *BudgetClassification) AllowsCategory(category constants.BudgetCategory) bool {
	for _, c := range b.BudgetClassificationAllowedCategories {
		if c == string(category) {
			return true
		}
	}
	return false
}
