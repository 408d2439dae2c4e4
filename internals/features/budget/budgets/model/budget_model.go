// file: internals/features/budget/budgets/model/budget_model.go
package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

/* =========================
   Model: budgets
   ========================= */

type Budget struct {
	BudgetID           int64 `json:"budget_id"             gorm:"column:budget_id;primaryKey;autoIncrement"`
	BudgetFiscalYearID int64 `json:"budget_fiscal_year_id" gorm:"column:budget_fiscal_year_id;not null;index"`

	// the top-level split: administrative + youth must always equal total
	BudgetTotalAmount          decimal.Decimal `json:"budget_total_amount"          gorm:"column:budget_total_amount;type:numeric(18,2);not null"`
	BudgetAdministrativeAmount decimal.Decimal `json:"budget_administrative_amount" gorm:"column:budget_administrative_amount;type:numeric(18,2);not null"`
	BudgetYouthAmount          decimal.Decimal `json:"budget_youth_amount"          gorm:"column:budget_youth_amount;type:numeric(18,2);not null"`

	BudgetCreatedAt time.Time  `json:"budget_created_at"           gorm:"column:budget_created_at;type:timestamptz;not null;default:now()"`
	BudgetUpdatedAt time.Time  `json:"budget_updated_at"           gorm:"column:budget_updated_at;type:timestamptz;not null;default:now()"`
	BudgetDeletedAt *time.Time `json:"budget_deleted_at,omitempty" gorm:"column:budget_deleted_at;type:timestamptz"`
}

func (Budget) TableName() string { return "budgets" }

/* =========================
   Hooks: refresh updated_at
   ========================= */

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	b.BudgetUpdatedAt = time.Now().UTC()
	return nil
}
func (b *Budget) BeforeUpdate(tx *gorm.DB) error {
	b.BudgetUpdatedAt = time.Now().UTC()
	return nil
}

/* =========================
   Scopes
   ========================= */

func ScopeAlive(db *gorm.DB) *gorm.DB {
	return db.Where("budget_deleted_at IS NULL")
}
func ScopeByFiscalYear(fiscalYearID int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("budget_fiscal_year_id = ?", fiscalYearID)
	}
}
