// file: internals/features/budget/classification_limits/controller/classification_limit_controller.go
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
	budgetModel "skbudget_backend/internals/features/budget/budgets/model"
	budgetService "skbudget_backend/internals/features/budget/budgets/service"
	dto "skbudget_backend/internals/features/budget/classification_limits/dto"
	model "skbudget_backend/internals/features/budget/classification_limits/model"
	service "skbudget_backend/internals/features/budget/classification_limits/service"
	classificationModel "skbudget_backend/internals/features/budget/classifications/model"
	helper "skbudget_backend/internals/helpers"
)

type ClassificationLimitController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewClassificationLimitController(db *gorm.DB) *ClassificationLimitController {
	return &ClassificationLimitController{
		DB:        db,
		Validator: validator.New(),
	}
}

// ========== Create ==========
func (ctl *ClassificationLimitController) Create(c *fiber.Ctx) error {
	var req dto.CreateClassificationLimitRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	category, err := constants.ParseBudgetCategory(req.Category)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := helper.RequirePositiveAmount(req.LimitAmount, "Limit amount"); err != nil {
		return helper.FromFiberError(c, err)
	}

	limit := &model.BudgetClassificationLimit{
		BudgetClassificationLimitBudgetID:         req.BudgetID,
		BudgetClassificationLimitClassificationID: req.ClassificationID,
		BudgetClassificationLimitCategory:         category,
		BudgetClassificationLimitAmount:           req.LimitAmount,
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		// serialize limit mutations per budget on the budget row
		budget, err := lockBudget(tx, req.BudgetID)
		if err != nil {
			return err
		}

		// the classification row is locked so its delete cannot slip in
		// between this check and the insert
		var classification classificationModel.BudgetClassification
		if err := classificationModel.ScopeAlive(tx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&classification, "budget_classification_id = ?", req.ClassificationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Classification not found")
			}
			return err
		}
		if !classification.AllowsCategory(category) {
			return fiber.NewError(fiber.StatusBadRequest,
				"Classification "+classification.BudgetClassificationCode+" is not allowed for the "+category.Label()+" category")
		}
		if err := limit.SetClassificationSnapshot(model.ClassificationSnapshotPayload{
			ID:   classification.BudgetClassificationID,
			Code: classification.BudgetClassificationCode,
			Name: classification.BudgetClassificationName,
		}); err != nil {
			return err
		}

		var dup model.BudgetClassificationLimit
		if err := model.ScopeAlive(tx).
			Where("budget_classification_limit_budget_id = ?", req.BudgetID).
			Where("budget_classification_limit_classification_id = ?", req.ClassificationID).
			Where("budget_classification_limit_category = ?", category).
			First(&dup).Error; err == nil {
			return fiber.NewError(fiber.StatusBadRequest,
				"Limit already set for this budget, classification and category")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		siblings, err := sumLimits(tx, req.BudgetID, category, 0)
		if err != nil {
			return err
		}
		if err := service.ValidateLimitWithinCategory(
			budgetService.CategoryCap(budget, category), siblings, req.LimitAmount, category); err != nil {
			return err
		}

		return tx.Create(limit).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Classification limit created successfully", dto.FromModel(limit))
}

// ========== List ==========
func (ctl *ClassificationLimitController) List(c *fiber.Ctx) error {
	budgetID, err := helper.ParseIDQuery(c, "budgetId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	query := model.ScopeAlive(ctl.DB)
	if budgetID > 0 {
		query = query.Scopes(model.ScopeByBudget(budgetID))
	}
	if raw := c.Query("category"); raw != "" {
		category, err := constants.ParseBudgetCategory(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		query = query.Where("budget_classification_limit_category = ?", category)
	}

	var items []model.BudgetClassificationLimit
	if err := query.Order("budget_classification_limit_created_at DESC").Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.FromModels(items))
}

// ========== Get by ID ==========
func (ctl *ClassificationLimitController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var limit model.BudgetClassificationLimit
	if err := model.ScopeAlive(ctl.DB).
		First(&limit, "budget_classification_limit_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Classification limit not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.FromModel(&limit))
}

// ========== List by classification ==========
func (ctl *ClassificationLimitController) ListByClassification(c *fiber.Ctx) error {
	classificationID, err := helper.ParseIDParam(c, "classificationId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var items []model.BudgetClassificationLimit
	if err := model.ScopeAlive(ctl.DB).
		Where("budget_classification_limit_classification_id = ?", classificationID).
		Order("budget_classification_limit_created_at DESC").
		Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.FromModels(items))
}

// ========== Remaining per category ==========
func (ctl *ClassificationLimitController) Remaining(c *fiber.Ctx) error {
	budgetID, err := helper.ParseIDParam(c, "budgetId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var budget budgetModel.Budget
	if err := budgetModel.ScopeAlive(ctl.DB).
		First(&budget, "budget_id = ?", budgetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Budget not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	out := dto.RemainingBudgetResponse{BudgetID: budgetID}
	for _, category := range []constants.BudgetCategory{constants.CategoryAdministrative, constants.CategoryYouth} {
		planned, err := sumLimits(ctl.DB, budgetID, category, 0)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
		cap := budgetService.CategoryCap(&budget, category)
		out.Categories = append(out.Categories, dto.CategoryRemaining{
			Category:        category,
			CategoryCap:     cap,
			PlannedAmount:   planned,
			RemainingAmount: service.RemainingForCategory(cap, planned),
		})
	}
	return helper.Success(c, "OK", out)
}

// ========== Update ==========
func (ctl *ClassificationLimitController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateClassificationLimitRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if req.LimitAmount == nil && req.Category == nil {
		return helper.Error(c, fiber.StatusBadRequest, "No data provided for update")
	}
	if req.LimitAmount != nil {
		if err := helper.RequirePositiveAmount(*req.LimitAmount, "Limit amount"); err != nil {
			return helper.FromFiberError(c, err)
		}
	}

	var limit model.BudgetClassificationLimit
	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := model.ScopeAlive(tx).
			First(&limit, "budget_classification_limit_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Classification limit not found")
			}
			return err
		}

		budget, err := lockBudget(tx, limit.BudgetClassificationLimitBudgetID)
		if err != nil {
			return err
		}

		category := limit.BudgetClassificationLimitCategory
		if req.Category != nil {
			target, err := constants.ParseBudgetCategory(*req.Category)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			if target != category {
				if err := ctl.guardCategoryChange(tx, &limit, target); err != nil {
					return err
				}
				category = target
			}
		}

		amount := limit.BudgetClassificationLimitAmount
		if req.LimitAmount != nil {
			amount = *req.LimitAmount
		}

		siblings, err := sumLimits(tx, limit.BudgetClassificationLimitBudgetID, category, id)
		if err != nil {
			return err
		}
		if err := service.ValidateLimitWithinCategory(
			budgetService.CategoryCap(budget, category), siblings, amount, category); err != nil {
			return err
		}

		// shrinking the limit must not undercut what is already allocated
		allocated, err := sumAllocations(tx, limit)
		if err != nil {
			return err
		}
		if amount.LessThan(allocated) {
			return fiber.NewError(fiber.StatusBadRequest,
				"Limit amount cannot be lower than already allocated amount: "+helper.FormatAmount(allocated))
		}

		limit.BudgetClassificationLimitCategory = category
		limit.BudgetClassificationLimitAmount = amount
		return tx.Save(&limit).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}

	return helper.Success(c, "Classification limit updated successfully", dto.FromModel(&limit))
}

// ========== Delete (soft) ==========
func (ctl *ClassificationLimitController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	// allocation creates lock this same limit row, so the count below cannot
	// race a concurrent allocation insert
	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var limit model.BudgetClassificationLimit
		if err := model.ScopeAlive(tx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&limit, "budget_classification_limit_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Classification limit not found")
			}
			return err
		}

		var allocations int64
		if err := tx.Model(&allocationModel.BudgetAllocation{}).
			Where("budget_allocation_budget_id = ?", limit.BudgetClassificationLimitBudgetID).
			Where("budget_allocation_classification_id = ?", limit.BudgetClassificationLimitClassificationID).
			Where("budget_allocation_category = ?", limit.BudgetClassificationLimitCategory).
			Where("budget_allocation_deleted_at IS NULL").
			Count(&allocations).Error; err != nil {
			return err
		}
		if err := service.ValidateLimitDeletable(allocations); err != nil {
			return err
		}

		now := time.Now().UTC()
		limit.BudgetClassificationLimitDeletedAt = &now
		return tx.Save(&limit).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.Success(c, "Classification limit deleted successfully", nil)
}

/* =========================
   Internal helpers
   ========================= */

// guardCategoryChange checks a category switch is legal: the classification
// must allow the target category, no duplicate triple may exist, and no live
// allocation may still reference the old (budget, classification, category).
func (ctl *ClassificationLimitController) guardCategoryChange(tx *gorm.DB, limit *model.BudgetClassificationLimit, target constants.BudgetCategory) error {
	var classification classificationModel.BudgetClassification
	if err := classificationModel.ScopeAlive(tx).
		First(&classification, "budget_classification_id = ?", limit.BudgetClassificationLimitClassificationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Classification not found")
		}
		return err
	}
	if !classification.AllowsCategory(target) {
		return fiber.NewError(fiber.StatusBadRequest,
			"Classification "+classification.BudgetClassificationCode+" is not allowed for the "+target.Label()+" category")
	}

	var dup model.BudgetClassificationLimit
	if err := model.ScopeAlive(tx).
		Where("budget_classification_limit_budget_id = ?", limit.BudgetClassificationLimitBudgetID).
		Where("budget_classification_limit_classification_id = ?", limit.BudgetClassificationLimitClassificationID).
		Where("budget_classification_limit_category = ?", target).
		Where("budget_classification_limit_id <> ?", limit.BudgetClassificationLimitID).
		First(&dup).Error; err == nil {
		return fiber.NewError(fiber.StatusBadRequest,
			"Limit already set for this budget, classification and category")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	var allocations int64
	if err := tx.Model(&allocationModel.BudgetAllocation{}).
		Where("budget_allocation_budget_id = ?", limit.BudgetClassificationLimitBudgetID).
		Where("budget_allocation_classification_id = ?", limit.BudgetClassificationLimitClassificationID).
		Where("budget_allocation_category = ?", limit.BudgetClassificationLimitCategory).
		Where("budget_allocation_deleted_at IS NULL").
		Count(&allocations).Error; err != nil {
		return err
	}
	if allocations > 0 {
		return fiber.NewError(fiber.StatusBadRequest,
			"Cannot change category while budget allocations use this limit")
	}
	return nil
}

func lockBudget(tx *gorm.DB, budgetID int64) (*budgetModel.Budget, error) {
	var budget budgetModel.Budget
	if err := budgetModel.ScopeAlive(tx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&budget, "budget_id = ?", budgetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Budget not found")
		}
		return nil, err
	}
	return &budget, nil
}

// sumLimits totals live limits for a (budget, category) pair, optionally
// excluding one limit row (used on update).
func sumLimits(tx *gorm.DB, budgetID int64, category constants.BudgetCategory, excludeID int64) (decimal.Decimal, error) {
	query := tx.Model(&model.BudgetClassificationLimit{}).
		Where("budget_classification_limit_budget_id = ?", budgetID).
		Where("budget_classification_limit_category = ?", category).
		Where("budget_classification_limit_deleted_at IS NULL")
	if excludeID > 0 {
		query = query.Where("budget_classification_limit_id <> ?", excludeID)
	}

	var sum decimal.Decimal
	err := query.
		Select("COALESCE(SUM(budget_classification_limit_amount), 0)").
		Row().Scan(&sum)
	return sum, err
}

func sumAllocations(tx *gorm.DB, limit model.BudgetClassificationLimit) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := tx.Model(&allocationModel.BudgetAllocation{}).
		Where("budget_allocation_budget_id = ?", limit.BudgetClassificationLimitBudgetID).
		Where("budget_allocation_classification_id = ?", limit.BudgetClassificationLimitClassificationID).
		Where("budget_allocation_category = ?", limit.BudgetClassificationLimitCategory).
		Where("budget_allocation_deleted_at IS NULL").
		Select("COALESCE(SUM(budget_allocation_allocated_amount), 0)").
		Row().Scan(&sum)
	return sum, err
}
