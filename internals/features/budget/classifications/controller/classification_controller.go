// file: internals/features/budget/classifications/controller/classification_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	allocationModel "skbudget_backend/internals/features/budget/allocations/model"
	limitModel "skbudget_backend/internals/features/budget/classification_limits/model"
	dto "skbudget_backend/internals/features/budget/classifications/dto"
	model "skbudget_backend/internals/features/budget/classifications/model"
	helper "skbudget_backend/internals/helpers"
)

type ClassificationController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewClassificationController(db *gorm.DB) *ClassificationController {
	return &ClassificationController{
		DB:        db,
		Validator: validator.New(),
	}
}

// ========== Create ==========
func (ctl *ClassificationController) Create(c *fiber.Ctx) error {
	var req dto.CreateClassificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	classification, err := req.ToModel()
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var dup model.BudgetClassification
	if err := model.ScopeAlive(ctl.DB).
		Where("budget_classification_code = ? OR budget_classification_name = ?",
			classification.BudgetClassificationCode, classification.BudgetClassificationName).
		First(&dup).Error; err == nil {
		return helper.Error(c, fiber.StatusBadRequest, "Classification code or name already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.Create(classification).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Classification created successfully", dto.FromModel(classification))
}

// ========== List ==========
func (ctl *ClassificationController) List(c *fiber.Ctx) error {
	var items []model.BudgetClassification
	if err := model.ScopeAlive(ctl.DB).
		Order("budget_classification_created_at DESC").
		Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.FromModels(items))
}

// ========== Get by ID ==========
func (ctl *ClassificationController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var classification model.BudgetClassification
	if err := model.ScopeAlive(ctl.DB).
		First(&classification, "budget_classification_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Classification not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.FromModel(&classification))
}

// ========== Update ==========
func (ctl *ClassificationController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateClassificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.Code == nil && req.Name == nil && req.Description == nil && req.AllowedCategories == nil {
		return helper.Error(c, fiber.StatusBadRequest, "No data provided for update")
	}

	var classification model.BudgetClassification
	if err := model.ScopeAlive(ctl.DB).
		First(&classification, "budget_classification_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Classification not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	limitCount, err := ctl.liveLimitCount(id)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	// code is frozen once the classification backs a limit
	if req.Code != nil && strings.TrimSpace(*req.Code) != classification.BudgetClassificationCode && limitCount > 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Cannot change classification code while it is used in budget limits")
	}

	if req.Code != nil || req.Name != nil {
		query := model.ScopeAlive(ctl.DB).Where("budget_classification_id <> ?", id)
		switch {
		case req.Code != nil && req.Name != nil:
			query = query.Where("budget_classification_code = ? OR budget_classification_name = ?",
				strings.TrimSpace(*req.Code), strings.TrimSpace(*req.Name))
		case req.Code != nil:
			query = query.Where("budget_classification_code = ?", strings.TrimSpace(*req.Code))
		default:
			query = query.Where("budget_classification_name = ?", strings.TrimSpace(*req.Name))
		}
		var dup model.BudgetClassification
		if err := query.First(&dup).Error; err == nil {
			return helper.Error(c, fiber.StatusBadRequest, "Classification code or name already exists")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	if req.Code != nil {
		classification.BudgetClassificationCode = strings.TrimSpace(*req.Code)
	}
	if req.Name != nil {
		classification.BudgetClassificationName = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		trimmed := strings.TrimSpace(*req.Description)
		if trimmed == "" {
			classification.BudgetClassificationDescription = nil
		} else {
			classification.BudgetClassificationDescription = &trimmed
		}
	}
	if req.AllowedCategories != nil {
		categories, err := dto.NormalizeCategories(req.AllowedCategories)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		// narrowing allowed categories must not strand existing limits
		for _, cat := range existingLimitCategories(ctl.DB, id) {
			if !contains(categories, cat) {
				return helper.Error(c, fiber.StatusBadRequest,
					"Cannot remove category "+cat+" while classification limits use it")
			}
		}
		classification.BudgetClassificationAllowedCategories = categories
	}

	if err := ctl.DB.Save(&classification).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Classification updated successfully", dto.FromModel(&classification))
}

// ========== Delete (soft) ==========
func (ctl *ClassificationController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	// limit creates lock this classification row, so the counts below cannot
	// race a concurrent limit insert
	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var classification model.BudgetClassification
		if err := model.ScopeAlive(tx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&classification, "budget_classification_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Classification not found")
			}
			return err
		}

		var allocations int64
		if err := tx.Model(&allocationModel.BudgetAllocation{}).
			Where("budget_allocation_classification_id = ? AND budget_allocation_deleted_at IS NULL", id).
			Count(&allocations).Error; err != nil {
			return err
		}
		if allocations > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Cannot delete classification with existing budget allocations")
		}

		var limits int64
		if err := tx.Model(&limitModel.BudgetClassificationLimit{}).
			Where("budget_classification_limit_classification_id = ? AND budget_classification_limit_deleted_at IS NULL", id).
			Count(&limits).Error; err != nil {
			return err
		}
		if limits > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Cannot delete classification with existing budget limits")
		}

		now := time.Now().UTC()
		classification.BudgetClassificationDeletedAt = &now
		return tx.Save(&classification).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.Success(c, "Classification deleted successfully", nil)
}

/* =========================
   Internal helpers
   ========================= */

func (ctl *ClassificationController) liveLimitCount(classificationID int64) (int64, error) {
	var count int64
	err := ctl.DB.Model(&limitModel.BudgetClassificationLimit{}).
		Where("budget_classification_limit_classification_id = ? AND budget_classification_limit_deleted_at IS NULL", classificationID).
		Count(&count).Error
	return count, err
}

func existingLimitCategories(db *gorm.DB, classificationID int64) []string {
	var categories []string
	db.Model(&limitModel.BudgetClassificationLimit{}).
		Where("budget_classification_limit_classification_id = ? AND budget_classification_limit_deleted_at IS NULL", classificationID).
		Distinct().
		Pluck("budget_classification_limit_category", &categories)
	return categories
}

func contains(haystack []string, needle string) bool {
	for _, h := range haystack {
		if h == needle {
			return true
		}
	}
	return false
}
