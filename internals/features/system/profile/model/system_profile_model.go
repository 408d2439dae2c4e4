// file: internals/features/system/profile/model/system_profile_model.go
package model

import (
	"time"

	"gorm.io/gorm"
)

// Single-row table describing the barangay SK chapter running the system.
type SystemProfile struct {
	SystemProfileID          int64   `json:"system_profile_id"          gorm:"column:system_profile_id;primaryKey;autoIncrement"`
	SystemProfileName        string  `json:"system_profile_name"        gorm:"column:system_profile_name;type:varchar(160);not null"`
	SystemProfileDescription *string `json:"system_profile_description,omitempty" gorm:"column:system_profile_description;type:text"`
	SystemProfileLocation    string  `json:"system_profile_location"    gorm:"column:system_profile_location;type:varchar(200);not null"`
	SystemProfileEmail       *string `json:"system_profile_email,omitempty" gorm:"column:system_profile_email;type:varchar(120)"`
	SystemProfilePhone       *string `json:"system_profile_phone,omitempty" gorm:"column:system_profile_phone;type:varchar(30)"`
	SystemProfileLogoURL     *string `json:"system_profile_logo_url,omitempty" gorm:"column:system_profile_logo_url;type:text"`

	SystemProfileCreatedAt time.Time `json:"system_profile_created_at" gorm:"column:system_profile_created_at;type:timestamptz;not null;default:now()"`
	SystemProfileUpdatedAt time.Time `json:"system_profile_updated_at" gorm:"column:system_profile_updated_at;type:timestamptz;not null;default:now()"`
}

func (SystemProfile) TableName() string { return "system_profiles" }

func (p *SystemProfile) BeforeCreate(tx *gorm.DB) error {
	p.SystemProfileUpdatedAt = time.Now().UTC()
	return nil
}
func (p *SystemProfile) BeforeUpdate(tx *gorm.DB) error {
	p.SystemProfileUpdatedAt = time.Now().UTC()
	return nil
}

// DefaultProfile is created on first read so public pages never render empty.
func DefaultProfile() *SystemProfile {
	return &SystemProfile{
		SystemProfileName:     "SK Budget Management System",
		SystemProfileLocation: "Baranggay BongBong, Trinidad, Bohol",
	}
}
