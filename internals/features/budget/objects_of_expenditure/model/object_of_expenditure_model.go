// file: internals/features/budget/objects_of_expenditure/model/object_of_expenditure_model.go
package model

import (
	"time"

	"gorm.io/gorm"
)

/* =========================
   Model: objects_of_expenditure
   ========================= */

type ObjectOfExpenditure struct {
	ObjectOfExpenditureID          int64   `json:"object_of_expenditure_id"   gorm:"column:object_of_expenditure_id;primaryKey;autoIncrement"`
	ObjectOfExpenditureCode        string  `json:"object_of_expenditure_code" gorm:"column:object_of_expenditure_code;type:varchar(30);not null"`
	ObjectOfExpenditureName        string  `json:"object_of_expenditure_name" gorm:"column:object_of_expenditure_name;type:varchar(160);not null"`
	ObjectOfExpenditureDescription *string `json:"object_of_expenditure_description,omitempty" gorm:"column:object_of_expenditure_description;type:text"`

	ObjectOfExpenditureCreatedAt time.Time  `json:"object_of_expenditure_created_at"           gorm:"column:object_of_expenditure_created_at;type:timestamptz;not null;default:now()"`
	ObjectOfExpenditureUpdatedAt time.Time  `json:"object_of_expenditure_updated_at"           gorm:"column:object_of_expenditure_updated_at;type:timestamptz;not null;default:now()"`
	ObjectOfExpenditureDeletedAt *time.Time `json:"object_of_expenditure_deleted_at,omitempty" gorm:"column:object_of_expenditure_deleted_at;type:timestamptz"`
}

func (ObjectOfExpenditure) TableName() string { return "objects_of_expenditure" }

func (o *ObjectOfExpenditure) BeforeCreate(tx *gorm.DB) error {
	o.ObjectOfExpenditureUpdatedAt = time.Now().UTC()
	return nil
}
func (o *ObjectOfExpenditure) BeforeUpdate(tx *gorm.DB) error {
	o.ObjectOfExpenditureUpdatedAt = time.Now().UTC()
	return nil
}

func ScopeAlive(db *gorm.DB) *gorm.DB {
	return db.Where("object_of_expenditure_deleted_at IS NULL")
}
