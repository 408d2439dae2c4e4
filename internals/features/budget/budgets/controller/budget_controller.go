// file: internals/features/budget/budgets/controller/budget_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"skbudget_backend/internals/constants"
	allocationModel "skbudget_backend/internals/features/budget/allocations/model"
	dto "skbudget_backend/internals/features/budget/budgets/dto"
	model "skbudget_backend/internals/features/budget/budgets/model"
	service "skbudget_backend/internals/features/budget/budgets/service"
	limitModel "skbudget_backend/internals/features/budget/classification_limits/model"
	fiscalYearModel "skbudget_backend/internals/features/budget/fiscal_years/model"
	helper "skbudget_backend/internals/helpers"
)

type BudgetController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewBudgetController(db *gorm.DB) *BudgetController {
	return &BudgetController{
		DB:        db,
		Validator: validator.New(),
	}
}

// ========== Create ==========
func (ctl *BudgetController) Create(c *fiber.Ctx) error {
	var req dto.CreateBudgetRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := service.ValidateTopLevelSplit(req.TotalAmount, req.AdministrativeAmount, req.YouthAmount); err != nil {
		return helper.FromFiberError(c, err)
	}

	var fy fiscalYearModel.FiscalYear
	if err := fiscalYearModel.ScopeAlive(ctl.DB).
		First(&fy, "fiscal_year_id = ?", req.FiscalYearID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Fiscal year not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	budget := req.ToModel()
	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var dup model.Budget
		if err := model.ScopeAlive(tx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("budget_fiscal_year_id = ?", req.FiscalYearID).
			First(&dup).Error; err == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Budget for this fiscal year already exists")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(budget).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Budget created successfully", dto.FromModel(budget, &fy))
}

// ========== List ==========
func (ctl *BudgetController) List(c *fiber.Ctx) error {
	var budgets []model.Budget
	if err := model.ScopeAlive(ctl.DB).
		Order("budget_created_at DESC").
		Find(&budgets).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	fyByID, err := ctl.fiscalYearsFor(budgets)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.BudgetResponse, 0, len(budgets))
	for i := range budgets {
		out = append(out, dto.FromModel(&budgets[i], fyByID[budgets[i].BudgetFiscalYearID]))
	}
	return helper.Success(c, "OK", out)
}

// ========== Get by ID ==========
func (ctl *BudgetController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	budget, fy, err := ctl.loadBudget(id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "OK", dto.FromModel(budget, fy))
}

// ========== Update ==========
func (ctl *BudgetController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateBudgetRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var budget model.Budget
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := model.ScopeAlive(tx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&budget, "budget_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Budget not found")
			}
			return err
		}

		// merge: absent fields keep stored values, then re-check the split
		next := budget
		if req.TotalAmount != nil {
			next.BudgetTotalAmount = *req.TotalAmount
		}
		if req.AdministrativeAmount != nil {
			next.BudgetAdministrativeAmount = *req.AdministrativeAmount
		}
		if req.YouthAmount != nil {
			next.BudgetYouthAmount = *req.YouthAmount
		}
		if err := service.ValidateTopLevelSplit(
			next.BudgetTotalAmount,
			next.BudgetAdministrativeAmount,
			next.BudgetYouthAmount,
		); err != nil {
			return err
		}

		// shrinking a cap must not undercut limits already planned under it
		for _, category := range []constants.BudgetCategory{constants.CategoryAdministrative, constants.CategoryYouth} {
			planned, err := plannedLimits(tx, id, category)
			if err != nil {
				return err
			}
			if err := service.ValidateCapCoversPlannedLimits(
				service.CategoryCap(&next, category), planned, category); err != nil {
				return err
			}
		}

		budget = next
		return tx.Save(&budget).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var fy *fiscalYearModel.FiscalYear
	var fyRow fiscalYearModel.FiscalYear
	if err := fiscalYearModel.ScopeAlive(ctl.DB).
		First(&fyRow, "fiscal_year_id = ?", budget.BudgetFiscalYearID).Error; err == nil {
		fy = &fyRow
	}

	return helper.Success(c, "Budget updated successfully", dto.FromModel(&budget, fy))
}

// ========== Delete (soft) ==========
func (ctl *BudgetController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	// deletion is blocked, not cascaded, while children exist; limit creates
	// lock this budget row, so the counts cannot race a concurrent insert
	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var budget model.Budget
		if err := model.ScopeAlive(tx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&budget, "budget_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Budget not found")
			}
			return err
		}

		var limits int64
		if err := tx.Model(&limitModel.BudgetClassificationLimit{}).
			Where("budget_classification_limit_budget_id = ? AND budget_classification_limit_deleted_at IS NULL", id).
			Count(&limits).Error; err != nil {
			return err
		}
		if limits > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Cannot delete budget with existing classification limits")
		}

		var allocations int64
		if err := tx.Model(&allocationModel.BudgetAllocation{}).
			Where("budget_allocation_budget_id = ? AND budget_allocation_deleted_at IS NULL", id).
			Count(&allocations).Error; err != nil {
			return err
		}
		if allocations > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Cannot delete budget with existing allocations")
		}

		now := time.Now().UTC()
		budget.BudgetDeletedAt = &now
		return tx.Save(&budget).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.Success(c, "Budget deleted successfully", nil)
}

/* =========================
   Internal lookups
   ========================= */

func (ctl *BudgetController) loadBudget(id int64) (*model.Budget, *fiscalYearModel.FiscalYear, error) {
	var budget model.Budget
	if err := model.ScopeAlive(ctl.DB).
		First(&budget, "budget_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fiber.NewError(fiber.StatusNotFound, "Budget not found")
		}
		return nil, nil, err
	}

	var fy fiscalYearModel.FiscalYear
	if err := fiscalYearModel.ScopeAlive(ctl.DB).
		First(&fy, "fiscal_year_id = ?", budget.BudgetFiscalYearID).Error; err != nil {
		return &budget, nil, nil
	}
	return &budget, &fy, nil
}

// plannedLimits totals live classification limits under a (budget, category).
func plannedLimits(tx *gorm.DB, budgetID int64, category constants.BudgetCategory) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := tx.Model(&limitModel.BudgetClassificationLimit{}).
		Where("budget_classification_limit_budget_id = ?", budgetID).
		Where("budget_classification_limit_category = ?", category).
		Where("budget_classification_limit_deleted_at IS NULL").
		Select("COALESCE(SUM(budget_classification_limit_amount), 0)").
		Row().Scan(&sum)
	return sum, err
}

func (ctl *BudgetController) fiscalYearsFor(budgets []model.Budget) (map[int64]*fiscalYearModel.FiscalYear, error) {
	ids := make([]int64, 0, len(budgets))
	for i := range budgets {
		ids = append(ids, budgets[i].BudgetFiscalYearID)
	}
	out := make(map[int64]*fiscalYearModel.FiscalYear, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var years []fiscalYearModel.FiscalYear
	if err := fiscalYearModel.ScopeAlive(ctl.DB).
		Where("fiscal_year_id IN ?", ids).
		Find(&years).Error; err != nil {
		return nil, err
	}
	for i := range years {
		out[years[i].FiscalYearID] = &years[i]
	}
	return out, nil
}
