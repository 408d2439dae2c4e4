// file: internals/features/budget/objects_of_expenditure/controller/object_of_expenditure_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	allocationModel "skbudget_backend/internals/features/budget/allocations/model"
	dto "skbudget_backend/internals/features/budget/objects_of_expenditure/dto"
	model "skbudget_backend/internals/features/budget/objects_of_expenditure/model"
	helper "skbudget_backend/internals/helpers"
)

type ObjectOfExpenditureController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewObjectOfExpenditureController(db *gorm.DB) *ObjectOfExpenditureController {
	return &ObjectOfExpenditureController{
		DB:        db,
		Validator: validator.New(),
	}
}

// ========== Create ==========
func (ctl *ObjectOfExpenditureController) Create(c *fiber.Ctx) error {
	var req dto.CreateObjectOfExpenditureRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	object := req.ToModel()

	var dup model.ObjectOfExpenditure
	if err := model.ScopeAlive(ctl.DB).
		Where("object_of_expenditure_code = ?", object.ObjectOfExpenditureCode).
		First(&dup).Error; err == nil {
		return helper.Error(c, fiber.StatusBadRequest, "Object of expenditure code already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.Create(object).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Object of expenditure created successfully", dto.FromModel(object))
}

// ========== List ==========
func (ctl *ObjectOfExpenditureController) List(c *fiber.Ctx) error {
	query := model.ScopeAlive(ctl.DB)
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		query = query.Where("object_of_expenditure_code ILIKE ? OR object_of_expenditure_name ILIKE ?", like, like)
	}

	var items []model.ObjectOfExpenditure
	if err := query.Order("object_of_expenditure_code ASC").Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.FromModels(items))
}

// ========== Get by ID ==========
func (ctl *ObjectOfExpenditureController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var object model.ObjectOfExpenditure
	if err := model.ScopeAlive(ctl.DB).
		First(&object, "object_of_expenditure_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Object of expenditure not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.FromModel(&object))
}

// ========== Update ==========
func (ctl *ObjectOfExpenditureController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateObjectOfExpenditureRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.Code == nil && req.Name == nil && req.Description == nil {
		return helper.Error(c, fiber.StatusBadRequest, "No data provided for update")
	}

	var object model.ObjectOfExpenditure
	if err := model.ScopeAlive(ctl.DB).
		First(&object, "object_of_expenditure_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Object of expenditure not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if req.Code != nil && strings.TrimSpace(*req.Code) != object.ObjectOfExpenditureCode {
		var dup model.ObjectOfExpenditure
		if err := model.ScopeAlive(ctl.DB).
			Where("object_of_expenditure_code = ? AND object_of_expenditure_id <> ?", strings.TrimSpace(*req.Code), id).
			First(&dup).Error; err == nil {
			return helper.Error(c, fiber.StatusBadRequest, "Object of expenditure code already exists")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
		object.ObjectOfExpenditureCode = strings.TrimSpace(*req.Code)
	}
	if req.Name != nil {
		object.ObjectOfExpenditureName = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		trimmed := strings.TrimSpace(*req.Description)
		if trimmed == "" {
			object.ObjectOfExpenditureDescription = nil
		} else {
			object.ObjectOfExpenditureDescription = &trimmed
		}
	}

	if err := ctl.DB.Save(&object).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Object of expenditure updated successfully", dto.FromModel(&object))
}

// ========== Delete (soft) ==========
func (ctl *ObjectOfExpenditureController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var object model.ObjectOfExpenditure
	if err := model.ScopeAlive(ctl.DB).
		First(&object, "object_of_expenditure_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Object of expenditure not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var allocations int64
	if err := ctl.DB.Model(&allocationModel.BudgetAllocation{}).
		Where("budget_allocation_object_of_expenditure_id = ? AND budget_allocation_deleted_at IS NULL", id).
		Count(&allocations).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if allocations > 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Cannot delete object of expenditure with existing budget allocations")
	}

	now := time.Now().UTC()
	object.ObjectOfExpenditureDeletedAt = &now
	if err := ctl.DB.Save(&object).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Object of expenditure deleted successfully", nil)
}
