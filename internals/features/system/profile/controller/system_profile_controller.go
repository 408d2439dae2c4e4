// file: internals/features/system/profile/controller/system_profile_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "skbudget_backend/internals/features/system/profile/dto"
	model "skbudget_backend/internals/features/system/profile/model"
	helper "skbudget_backend/internals/helpers"
)

type SystemProfileController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSystemProfileController(db *gorm.DB) *SystemProfileController {
	return &SystemProfileController{
		DB:        db,
		Validator: validator.New(),
	}
}

// loadOrCreate returns the singleton profile row, creating the default when
// the table is still empty.
func (ctl *SystemProfileController) loadOrCreate() (*model.SystemProfile, error) {
	var profile model.SystemProfile
	err := ctl.DB.Order("system_profile_id ASC").First(&profile).Error
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := model.DefaultProfile()
	if err := ctl.DB.Create(created).Error; err != nil {
		return nil, err
	}
	log.Println("✅ default system profile created")
	return created, nil
}

// ========== Get ==========
func (ctl *SystemProfileController) Get(c *fiber.Ctx) error {
	profile, err := ctl.loadOrCreate()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.FromModel(profile))
}

// ========== Update ==========
func (ctl *SystemProfileController) Update(c *fiber.Ctx) error {
	var req dto.UpdateSystemProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	profile, err := ctl.loadOrCreate()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if req.Name != nil {
		profile.SystemProfileName = strings.TrimSpace(*req.Name)
	}
	if req.Location != nil {
		profile.SystemProfileLocation = strings.TrimSpace(*req.Location)
	}
	if req.Description != nil {
		trimmed := strings.TrimSpace(*req.Description)
		if trimmed == "" {
			profile.SystemProfileDescription = nil
		} else {
			profile.SystemProfileDescription = &trimmed
		}
	}
	if req.Email != nil {
		trimmed := strings.TrimSpace(*req.Email)
		if trimmed == "" {
			profile.SystemProfileEmail = nil
		} else {
			profile.SystemProfileEmail = &trimmed
		}
	}
	if req.Phone != nil {
		trimmed := strings.TrimSpace(*req.Phone)
		if trimmed == "" {
			profile.SystemProfilePhone = nil
		} else {
			profile.SystemProfilePhone = &trimmed
		}
	}

	if err := ctl.DB.Save(profile).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "System profile updated successfully", dto.FromModel(profile))
}

// ========== Upload logo ==========
func (ctl *SystemProfileController) UploadLogo(c *fiber.Ctx) error {
	profile, err := ctl.loadOrCreate()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "File is required")
	}

	logoURL, err := helper.UploadImageToStorage("system", fileHeader)
	if err != nil {
		log.Printf("⚠️ system logo upload failed: %v", err)
		return helper.Error(c, fiber.StatusBadGateway, err.Error())
	}

	profile.SystemProfileLogoURL = &logoURL
	if err := ctl.DB.Save(profile).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "System logo updated successfully", dto.FromModel(profile))
}
