// file: internals/features/system/sk_officials/controller/sk_official_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"skbudget_backend/internals/constants"
	dto "skbudget_backend/internals/features/system/sk_officials/dto"
	model "skbudget_backend/internals/features/system/sk_officials/model"
	helper "skbudget_backend/internals/helpers"
)

type SkOfficialController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSkOfficialController(db *gorm.DB) *SkOfficialController {
	return &SkOfficialController{
		DB:        db,
		Validator: validator.New(),
	}
}

// ========== Create ==========
func (ctl *SkOfficialController) Create(c *fiber.Ctx) error {
	var req dto.CreateSkOfficialRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	gender, err := constants.ParseGender(req.Gender)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	official := &model.SkOfficial{
		SkOfficialFullName: strings.TrimSpace(req.FullName),
		SkOfficialPosition: strings.TrimSpace(req.Position),
		SkOfficialGender:   gender,
		SkOfficialIsActive: true,
	}
	if req.SortOrder != nil {
		official.SkOfficialSortOrder = *req.SortOrder
	}

	if err := ctl.DB.Create(official).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "SK official created successfully", dto.FromModel(official))
}

// ========== List ==========
func (ctl *SkOfficialController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	query := model.ScopeAlive(ctl.DB).Model(&model.SkOfficial{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		query = query.Where("sk_official_full_name ILIKE ? OR sk_official_position ILIKE ?", like, like)
	}
	if isActive := helper.ParseBoolQuery(c, "isActive"); isActive != nil {
		query = query.Where("sk_official_is_active = ?", *isActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var items []model.SkOfficial
	if err := query.
		Order("sk_official_sort_order ASC, sk_official_full_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"officials":  dto.FromModels(items),
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// ========== Public list (active only) ==========
func (ctl *SkOfficialController) ListPublic(c *fiber.Ctx) error {
	var items []model.SkOfficial
	if err := model.ScopeAlive(ctl.DB).
		Where("sk_official_is_active = TRUE").
		Order("sk_official_sort_order ASC, sk_official_full_name ASC").
		Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.FromModels(items))
}

// ========== Get by ID ==========
func (ctl *SkOfficialController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var official model.SkOfficial
	if err := model.ScopeAlive(ctl.DB).
		First(&official, "sk_official_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "SK official not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.FromModel(&official))
}

// ========== Update ==========
func (ctl *SkOfficialController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateSkOfficialRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var official model.SkOfficial
	if err := model.ScopeAlive(ctl.DB).
		First(&official, "sk_official_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "SK official not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if req.FullName != nil {
		official.SkOfficialFullName = strings.TrimSpace(*req.FullName)
	}
	if req.Position != nil {
		official.SkOfficialPosition = strings.TrimSpace(*req.Position)
	}
	if req.Gender != nil {
		gender, err := constants.ParseGender(*req.Gender)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		official.SkOfficialGender = gender
	}
	if req.SortOrder != nil {
		official.SkOfficialSortOrder = *req.SortOrder
	}

	if err := ctl.DB.Save(&official).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "SK official updated successfully", dto.FromModel(&official))
}

// ========== Toggle status ==========
func (ctl *SkOfficialController) ToggleStatus(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var official model.SkOfficial
	if err := model.ScopeAlive(ctl.DB).
		First(&official, "sk_official_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "SK official not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	official.SkOfficialIsActive = !official.SkOfficialIsActive
	if err := ctl.DB.Save(&official).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	message := "SK official deactivated successfully"
	if official.SkOfficialIsActive {
		message = "SK official activated successfully"
	}
	return helper.Success(c, message, dto.FromModel(&official))
}

// ========== Upload photo ==========
func (ctl *SkOfficialController) UploadPhoto(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var official model.SkOfficial
	if err := model.ScopeAlive(ctl.DB).
		First(&official, "sk_official_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "SK official not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "File is required")
	}

	photoURL, err := helper.UploadImageToStorage("officials", fileHeader)
	if err != nil {
		log.Printf("⚠️ official photo upload failed: %v", err)
		return helper.Error(c, fiber.StatusBadGateway, err.Error())
	}

	official.SkOfficialPhotoURL = &photoURL
	if err := ctl.DB.Save(&official).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "SK official photo updated successfully", dto.FromModel(&official))
}

// ========== Delete (soft) ==========
func (ctl *SkOfficialController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var official model.SkOfficial
	if err := model.ScopeAlive(ctl.DB).
		First(&official, "sk_official_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "SK official not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	now := time.Now().UTC()
	official.SkOfficialDeletedAt = &now
	if err := ctl.DB.Save(&official).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "SK official deleted successfully", nil)
}
