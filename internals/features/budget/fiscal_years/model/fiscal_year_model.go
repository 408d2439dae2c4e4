// file: internals/features/budget/fiscal_years/model/fiscal_year_model.go
package model

import (
	"time"

	"gorm.io/gorm"
)

/* =========================
   Model: fiscal_years
   ========================= */

type FiscalYear struct {
	FiscalYearID       int64      `json:"fiscal_year_id"        gorm:"column:fiscal_year_id;primaryKey;autoIncrement"`
	FiscalYearYear     int        `json:"fiscal_year_year"      gorm:"column:fiscal_year_year;not null;uniqueIndex:uq_fiscal_year_year,where:fiscal_year_deleted_at IS NULL"`
	FiscalYearIsActive bool       `json:"fiscal_year_is_active" gorm:"column:fiscal_year_is_active;not null;default:false"`

	// timestamps (manual soft delete, not gorm.DeletedAt)
	FiscalYearCreatedAt time.Time  `json:"fiscal_year_created_at"           gorm:"column:fiscal_year_created_at;type:timestamptz;not null;default:now()"`
	FiscalYearUpdatedAt time.Time  `json:"fiscal_year_updated_at"           gorm:"column:fiscal_year_updated_at;type:timestamptz;not null;default:now()"`
	FiscalYearDeletedAt *time.Time `json:"fiscal_year_deleted_at,omitempty" gorm:"column:fiscal_year_deleted_at;type:timestamptz"`
}

func (FiscalYear) TableName() string { return "fiscal_years" }

/* =========================
   Hooks: refresh updated_at
   ========================= */

func (f *FiscalYear) BeforeCreate(tx *gorm.DB) error {
	f.FiscalYearUpdatedAt = time.Now().UTC()
	return nil
}
func (f *FiscalYear) BeforeUpdate(tx *gorm.DB) error {
	f.FiscalYearUpdatedAt = time.Now().UTC()
	return nil
}

/* =========================
   Scopes
   ========================= */

func ScopeAlive(db *gorm.DB) *gorm.DB {
	return db.Where("fiscal_year_deleted_at IS NULL")
}
