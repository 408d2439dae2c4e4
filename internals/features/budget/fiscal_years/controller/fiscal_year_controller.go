// file: internals/features/budget/fiscal_years/controller/fiscal_year_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	budgetModel "skbudget_backend/internals/features/budget/budgets/model"
	dto "skbudget_backend/internals/features/budget/fiscal_years/dto"
	model "skbudget_backend/internals/features/budget/fiscal_years/model"
	helper "skbudget_backend/internals/helpers"
)

type FiscalYearController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewFiscalYearController(db *gorm.DB) *FiscalYearController {
	return &FiscalYearController{
		DB:        db,
		Validator: validator.New(),
	}
}

// ========== Create ==========
func (ctl *FiscalYearController) Create(c *fiber.Ctx) error {
	var req dto.CreateFiscalYearRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var dup model.FiscalYear
	if err := model.ScopeAlive(ctl.DB).
		Where("fiscal_year_year = ?", req.Year).
		First(&dup).Error; err == nil {
		return helper.Error(c, fiber.StatusBadRequest, "Fiscal year already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	fy := req.ToModel()

	// single transaction so there is never a window with zero or two active years
	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if fy.FiscalYearIsActive {
			if err := tx.Model(&model.FiscalYear{}).
				Where("fiscal_year_is_active = TRUE").
				Update("fiscal_year_is_active", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(fy).Error
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Fiscal year created successfully", dto.FromModel(fy))
}

// ========== List ==========
func (ctl *FiscalYearController) List(c *fiber.Ctx) error {
	var years []model.FiscalYear
	if err := model.ScopeAlive(ctl.DB).
		Order("fiscal_year_year DESC").
		Find(&years).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.FromModels(years))
}

// ========== Get by ID ==========
func (ctl *FiscalYearController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var fy model.FiscalYear
	if err := model.ScopeAlive(ctl.DB).
		First(&fy, "fiscal_year_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Fiscal year not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.FromModel(&fy))
}

// ========== Update ==========
func (ctl *FiscalYearController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateFiscalYearRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var fy model.FiscalYear
	if err := model.ScopeAlive(ctl.DB).
		First(&fy, "fiscal_year_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Fiscal year not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if req.Year != nil && *req.Year != fy.FiscalYearYear {
		var dup model.FiscalYear
		if err := model.ScopeAlive(ctl.DB).
			Where("fiscal_year_year = ? AND fiscal_year_id <> ?", *req.Year, id).
			First(&dup).Error; err == nil {
			return helper.Error(c, fiber.StatusBadRequest, "Fiscal year already exists")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
		fy.FiscalYearYear = *req.Year
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if req.IsActive != nil && *req.IsActive && !fy.FiscalYearIsActive {
			if err := tx.Model(&model.FiscalYear{}).
				Where("fiscal_year_is_active = TRUE").
				Update("fiscal_year_is_active", false).Error; err != nil {
				return err
			}
			fy.FiscalYearIsActive = true
		} else if req.IsActive != nil && !*req.IsActive {
			fy.FiscalYearIsActive = false
		}
		return tx.Save(&fy).Error
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Fiscal year updated successfully", dto.FromModel(&fy))
}

// ========== Activate ==========
func (ctl *FiscalYearController) Activate(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		var fy model.FiscalYear
		if err := model.ScopeAlive(tx).
			First(&fy, "fiscal_year_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Fiscal year not found")
			}
			return err
		}

		if err := tx.Model(&model.FiscalYear{}).
			Where("fiscal_year_is_active = TRUE").
			Update("fiscal_year_is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&model.FiscalYear{}).
			Where("fiscal_year_id = ?", id).
			Update("fiscal_year_is_active", true).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Fiscal year activated", fiber.Map{"id": id})
}

// ========== Delete (soft) ==========
func (ctl *FiscalYearController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var fy model.FiscalYear
	if err := model.ScopeAlive(ctl.DB).
		First(&fy, "fiscal_year_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Fiscal year not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	// block while a live budget still references this year
	var count int64
	if err := budgetModel.ScopeAlive(ctl.DB.Model(&budgetModel.Budget{})).
		Where("budget_fiscal_year_id = ?", id).
		Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if count > 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Cannot delete fiscal year with an existing budget")
	}

	now := time.Now().UTC()
	fy.FiscalYearDeletedAt = &now
	fy.FiscalYearIsActive = false
	if err := ctl.DB.Save(&fy).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Fiscal year deleted successfully", nil)
}
