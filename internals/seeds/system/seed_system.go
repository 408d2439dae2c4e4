// file: internals/seeds/system/seed_system.go
package system

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"skbudget_backend/internals/constants"
	profileModel "skbudget_backend/internals/features/system/profile/model"
	officialModel "skbudget_backend/internals/features/system/sk_officials/model"
)

// Seed provisions the system profile and a starter roster of officials.
func Seed(db *gorm.DB) error {
	if err := seedProfile(db); err != nil {
		return err
	}
	if err := seedOfficials(db); err != nil {
		return err
	}

	log.Println("✅ system seed finished")
	return nil
}

func seedProfile(db *gorm.DB) error {
	var count int64
	if err := db.Model(&profileModel.SystemProfile{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if err := db.Create(profileModel.DefaultProfile()).Error; err != nil {
		return fmt.Errorf("seed system profile: %w", err)
	}
	log.Println("✅ system profile seeded")
	return nil
}

func seedOfficials(db *gorm.DB) error {
	var count int64
	if err := officialModel.ScopeAlive(db).Model(&officialModel.SkOfficial{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	officials := []officialModel.SkOfficial{
		{SkOfficialFullName: "Juan Dela Cruz", SkOfficialPosition: "SK Chairperson", SkOfficialGender: constants.GenderMale, SkOfficialIsActive: true, SkOfficialSortOrder: 1},
		{SkOfficialFullName: "Maria Santos", SkOfficialPosition: "SK Treasurer", SkOfficialGender: constants.GenderFemale, SkOfficialIsActive: true, SkOfficialSortOrder: 2},
		{SkOfficialFullName: "Pedro Reyes", SkOfficialPosition: "SK Secretary", SkOfficialGender: constants.GenderMale, SkOfficialIsActive: true, SkOfficialSortOrder: 3},
	}
	for i := range officials {
		if err := db.Create(&officials[i]).Error; err != nil {
			return fmt.Errorf("seed official %s: %w", officials[i].SkOfficialFullName, err)
		}
	}
	log.Printf("✅ %d SK officials seeded", len(officials))
	return nil
}
