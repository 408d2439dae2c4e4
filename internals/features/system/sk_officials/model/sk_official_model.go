// file: internals/features/system/sk_officials/model/sk_official_model.go
package model

import (
	"time"

	"gorm.io/gorm"

	"skbudget_backend/internals/constants"
)

/* =========================
   Model: sk_officials
   ========================= */

type SkOfficial struct {
	SkOfficialID       int64            `json:"sk_official_id"        gorm:"column:sk_official_id;primaryKey;autoIncrement"`
	SkOfficialFullName string           `json:"sk_official_full_name" gorm:"column:sk_official_full_name;type:varchar(160);not null"`
	SkOfficialPosition string           `json:"sk_official_position"  gorm:"column:sk_official_position;type:varchar(120);not null"`
	SkOfficialGender   constants.Gender `json:"sk_official_gender"    gorm:"column:sk_official_gender;type:varchar(10);not null"`
	SkOfficialPhotoURL *string          `json:"sk_official_photo_url,omitempty" gorm:"column:sk_official_photo_url;type:text"`
	SkOfficialIsActive bool             `json:"sk_official_is_active" gorm:"column:sk_official_is_active;not null;default:true"`

	// display ordering on the public page, lowest first
	SkOfficialSortOrder int `json:"sk_official_sort_order" gorm:"column:sk_official_sort_order;not null;default:0"`

	SkOfficialCreatedAt time.Time  `json:"sk_official_created_at"           gorm:"column:sk_official_created_at;type:timestamptz;not null;default:now()"`
	SkOfficialUpdatedAt time.Time  `json:"sk_official_updated_at"           gorm:"column:sk_official_updated_at;type:timestamptz;not null;default:now()"`
	SkOfficialDeletedAt *time.Time `json:"sk_official_deleted_at,omitempty" gorm:"column:sk_official_deleted_at;type:timestamptz"`
}

func (SkOfficial) TableName() string { return "sk_officials" }

func (o *SkOfficial) BeforeCreate(tx *gorm.DB) error {
	o.SkOfficialUpdatedAt = time.Now().UTC()
	return nil
}
func (o *SkOfficial) BeforeUpdate(tx *gorm.DB) error {
	o.SkOfficialUpdatedAt = time.Now().UTC()
	return nil
}

func ScopeAlive(db *gorm.DB) *gorm.DB {
	return db.Where("sk_official_deleted_at IS NULL")
}
