// file: internals/features/budget/allocations/controller/allocation_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"skbudget_backend/internals/constants"
	dto "skbudget_backend/internals/features/budget/allocations/dto"
	model "skbudget_backend/internals/features/budget/allocations/model"
	service "skbudget_backend/internals/features/budget/allocations/service"
	budgetModel "skbudget_backend/internals/features/budget/budgets/model"
	limitModel "skbudget_backend/internals/features/budget/classification_limits/model"
	classificationModel "skbudget_backend/internals/features/budget/classifications/model"
	objectModel "skbudget_backend/internals/features/budget/objects_of_expenditure/model"
	procurementModel "skbudget_backend/internals/features/procurement/requests/model"
	programModel "skbudget_backend/internals/features/programs/programs/model"
	helper "skbudget_backend/internals/helpers"
)

type AllocationController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAllocationController(db *gorm.DB) *AllocationController {
	return &AllocationController{
		DB:        db,
		Validator: validator.New(),
	}
}

var allocationSortColumns = map[string]string{
	"createdAt":       "budget_allocation_created_at",
	"allocatedAmount": "budget_allocation_allocated_amount",
}

// ========== Create ==========
func (ctl *AllocationController) Create(c *fiber.Ctx) error {
	var req dto.CreateAllocationRequest
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
	if err := helper.RequirePositiveAmount(req.AllocatedAmount, "Allocated amount"); err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctl.checkReferences(req.BudgetID, req.ProgramID, req.ClassificationID, req.ObjectOfExpenditureID, category); err != nil {
		return helper.FromFiberError(c, err)
	}

	allocation := &model.BudgetAllocation{
		BudgetAllocationBudgetID:              req.BudgetID,
		BudgetAllocationProgramID:             req.ProgramID,
		BudgetAllocationClassificationID:      req.ClassificationID,
		BudgetAllocationCategory:              category,
		BudgetAllocationObjectOfExpenditureID: req.ObjectOfExpenditureID,
		BudgetAllocationAllocatedAmount:       req.AllocatedAmount,
		BudgetAllocationUsedAmount:            decimal.Zero,
	}
	if req.Description != nil {
		trimmed := strings.TrimSpace(*req.Description)
		if trimmed != "" {
			allocation.BudgetAllocationDescription = &trimmed
		}
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		// serialize allocation mutations on the matching limit row
		limit, err := lockLimit(tx, req.BudgetID, req.ClassificationID, category)
		if err != nil {
			return err
		}

		siblings, err := sumAllocations(tx, req.BudgetID, req.ClassificationID, category, 0)
		if err != nil {
			return err
		}
		if err := service.ValidateAllocationWithinLimit(
			limit.BudgetClassificationLimitAmount, siblings, req.AllocatedAmount); err != nil {
			return err
		}

		return tx.Create(allocation).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}

	lookups, err := ctl.loadLookups([]model.BudgetAllocation{*allocation})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Budget allocation created successfully", dto.FromModel(allocation, lookups))
}

// ========== List (search/filter/sort/pagination) ==========
func (ctl *AllocationController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	query := model.ScopeAlive(ctl.DB).Model(&model.BudgetAllocation{})
	for param, column := range map[string]string{
		"budgetId":              "budget_allocation_budget_id",
		"programId":             "budget_allocation_program_id",
		"classificationId":      "budget_allocation_classification_id",
		"objectOfExpenditureId": "budget_allocation_object_of_expenditure_id",
	} {
		id, err := helper.ParseIDQuery(c, param)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		if id > 0 {
			query = query.Where(column+" = ?", id)
		}
	}
	if raw := c.Query("category"); raw != "" {
		category, err := constants.ParseBudgetCategory(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		query = query.Where("budget_allocation_category = ?", category)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		query = query.Where("budget_allocation_description ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	order := "budget_allocation_created_at DESC"
	if col, ok := allocationSortColumns[strings.TrimSpace(c.Query("sortBy"))]; ok {
		direction := "ASC"
		if strings.EqualFold(c.Query("sortOrder"), "desc") {
			direction = "DESC"
		}
		order = col + " " + direction
	}

	var items []model.BudgetAllocation
	if err := query.Order(order).Offset(paging.Offset).Limit(paging.Limit).Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	lookups, err := ctl.loadLookups(items)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", fiber.Map{
		"allocations": dto.FromModels(items, lookups),
		"pagination":  helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// ========== Get by ID ==========
func (ctl *AllocationController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var allocation model.BudgetAllocation
	if err := model.ScopeAlive(ctl.DB).
		First(&allocation, "budget_allocation_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Budget allocation not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	lookups, err := ctl.loadLookups([]model.BudgetAllocation{allocation})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", dto.FromModel(&allocation, lookups))
}

// ========== Remaining limit ==========
func (ctl *AllocationController) RemainingLimit(c *fiber.Ctx) error {
	budgetID, err := helper.ParseIDQuery(c, "budgetId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	classificationID, err := helper.ParseIDQuery(c, "classificationId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if budgetID == 0 || classificationID == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "budgetId and classificationId are required")
	}
	category, err := constants.ParseBudgetCategory(c.Query("category"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var limit limitModel.BudgetClassificationLimit
	if err := limitModel.ScopeAlive(ctl.DB).
		Where("budget_classification_limit_budget_id = ?", budgetID).
		Where("budget_classification_limit_classification_id = ?", classificationID).
		Where("budget_classification_limit_category = ?", category).
		First(&limit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Classification limit not set for this budget, classification and category")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	allocated, err := sumAllocations(ctl.DB, budgetID, classificationID, category, 0)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", dto.RemainingLimitResponse{
		BudgetID:         budgetID,
		ClassificationID: classificationID,
		Category:         string(category),
		LimitAmount:      limit.BudgetClassificationLimitAmount,
		AllocatedAmount:  allocated,
		RemainingAmount:  service.RemainingForLimit(limit.BudgetClassificationLimitAmount, allocated),
	})
}

// ========== Program summary ==========
func (ctl *AllocationController) ProgramSummary(c *fiber.Ctx) error {
	programID, err := helper.ParseIDParam(c, "programId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var program programModel.Program
	if err := programModel.ScopeAlive(ctl.DB).
		First(&program, "program_id = ?", programID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Program not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var row struct {
		Count     int64
		Allocated decimal.Decimal
		Used      decimal.Decimal
	}
	if err := ctl.DB.Model(&model.BudgetAllocation{}).
		Where("budget_allocation_program_id = ? AND budget_allocation_deleted_at IS NULL", programID).
		Select("COUNT(*) AS count, COALESCE(SUM(budget_allocation_allocated_amount), 0) AS allocated, COALESCE(SUM(budget_allocation_used_amount), 0) AS used").
		Scan(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", dto.ProgramSummaryResponse{
		Program: dto.AllocationLookupLite{
			ID:   program.ProgramID,
			Code: program.ProgramCode,
			Name: program.ProgramName,
		},
		AllocationCount: row.Count,
		TotalAllocated:  row.Allocated,
		TotalUsed:       row.Used,
		TotalRemaining:  row.Allocated.Sub(row.Used),
	})
}

// ========== Update ==========
func (ctl *AllocationController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateAllocationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if req.AllocatedAmount == nil && req.UsedAmount == nil && req.Description == nil {
		return helper.Error(c, fiber.StatusBadRequest, "No data provided for update")
	}

	var allocation model.BudgetAllocation
	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := model.ScopeAlive(tx).
			First(&allocation, "budget_allocation_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Budget allocation not found")
			}
			return err
		}

		limit, err := lockLimit(tx,
			allocation.BudgetAllocationBudgetID,
			allocation.BudgetAllocationClassificationID,
			allocation.BudgetAllocationCategory)
		if err != nil {
			return err
		}

		allocated := allocation.BudgetAllocationAllocatedAmount
		if req.AllocatedAmount != nil {
			allocated = *req.AllocatedAmount
			siblings, err := sumAllocations(tx,
				allocation.BudgetAllocationBudgetID,
				allocation.BudgetAllocationClassificationID,
				allocation.BudgetAllocationCategory, id)
			if err != nil {
				return err
			}
			if err := service.ValidateAllocationWithinLimit(
				limit.BudgetClassificationLimitAmount, siblings, allocated); err != nil {
				return err
			}
		}

		used := allocation.BudgetAllocationUsedAmount
		if req.UsedAmount != nil {
			used = *req.UsedAmount
		}
		if err := service.ValidateUsedAmount(used, allocated); err != nil {
			return err
		}

		allocation.BudgetAllocationAllocatedAmount = allocated
		allocation.BudgetAllocationUsedAmount = used
		if req.Description != nil {
			trimmed := strings.TrimSpace(*req.Description)
			if trimmed == "" {
				allocation.BudgetAllocationDescription = nil
			} else {
				allocation.BudgetAllocationDescription = &trimmed
			}
		}
		return tx.Save(&allocation).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}

	lookups, err := ctl.loadLookups([]model.BudgetAllocation{allocation})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Budget allocation updated successfully", dto.FromModel(&allocation, lookups))
}

// ========== Delete (soft) ==========
func (ctl *AllocationController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	// procurement creates lock this allocation row, so the request count
	// cannot race a concurrent request insert
	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var allocation model.BudgetAllocation
		if err := model.ScopeAlive(tx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&allocation, "budget_allocation_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Budget allocation not found")
			}
			return err
		}

		var requests int64
		if err := tx.Model(&procurementModel.ProcurementRequest{}).
			Where("procurement_request_allocation_id = ? AND procurement_request_deleted_at IS NULL", id).
			Count(&requests).Error; err != nil {
			return err
		}
		if requests > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Cannot delete budget allocation with existing procurement requests")
		}

		now := time.Now().UTC()
		allocation.BudgetAllocationDeletedAt = &now
		return tx.Save(&allocation).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.Success(c, "Budget allocation deleted successfully", nil)
}

/* =========================
   Internal helpers
   ========================= */

// checkReferences verifies every FK target is alive and the classification
// allows the category.
func (ctl *AllocationController) checkReferences(budgetID, programID, classificationID, objectID int64, category constants.BudgetCategory) error {
	var budget budgetModel.Budget
	if err := budgetModel.ScopeAlive(ctl.DB).
		First(&budget, "budget_id = ?", budgetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Budget not found")
		}
		return err
	}

	var program programModel.Program
	if err := programModel.ScopeAlive(ctl.DB).
		First(&program, "program_id = ?", programID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Program not found")
		}
		return err
	}

	var classification classificationModel.BudgetClassification
	if err := classificationModel.ScopeAlive(ctl.DB).
		First(&classification, "budget_classification_id = ?", classificationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Classification not found")
		}
		return err
	}
	if !classification.AllowsCategory(category) {
		return fiber.NewError(fiber.StatusBadRequest,
			"Classification "+classification.BudgetClassificationCode+" is not allowed for the "+category.Label()+" category")
	}

	var object objectModel.ObjectOfExpenditure
	if err := objectModel.ScopeAlive(ctl.DB).
		First(&object, "object_of_expenditure_id = ?", objectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Object of expenditure not found")
		}
		return err
	}
	return nil
}

// lockLimit grabs the matching limit row FOR UPDATE; missing limit is the
// "limit not set" precondition failure.
func lockLimit(tx *gorm.DB, budgetID, classificationID int64, category constants.BudgetCategory) (*limitModel.BudgetClassificationLimit, error) {
	var limit limitModel.BudgetClassificationLimit
	if err := limitModel.ScopeAlive(tx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("budget_classification_limit_budget_id = ?", budgetID).
		Where("budget_classification_limit_classification_id = ?", classificationID).
		Where("budget_classification_limit_category = ?", category).
		First(&limit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusBadRequest,
				"Classification limit not set for this budget, classification and category")
		}
		return nil, err
	}
	return &limit, nil
}

func sumAllocations(tx *gorm.DB, budgetID, classificationID int64, category constants.BudgetCategory, excludeID int64) (decimal.Decimal, error) {
	query := tx.Model(&model.BudgetAllocation{}).
		Where("budget_allocation_budget_id = ?", budgetID).
		Where("budget_allocation_classification_id = ?", classificationID).
		Where("budget_allocation_category = ?", category).
		Where("budget_allocation_deleted_at IS NULL")
	if excludeID > 0 {
		query = query.Where("budget_allocation_id <> ?", excludeID)
	}

	var sum decimal.Decimal
	err := query.
		Select("COALESCE(SUM(budget_allocation_allocated_amount), 0)").
		Row().Scan(&sum)
	return sum, err
}

// loadLookups batch-loads the joined reference rows for a result page.
func (ctl *AllocationController) loadLookups(items []model.BudgetAllocation) (dto.Lookups, error) {
	lookups := dto.Lookups{
		Programs:        map[int64]dto.AllocationLookupLite{},
		Classifications: map[int64]dto.AllocationLookupLite{},
		Objects:         map[int64]dto.AllocationLookupLite{},
	}
	if len(items) == 0 {
		return lookups, nil
	}

	programIDs := make([]int64, 0, len(items))
	classificationIDs := make([]int64, 0, len(items))
	objectIDs := make([]int64, 0, len(items))
	for i := range items {
		programIDs = append(programIDs, items[i].BudgetAllocationProgramID)
		classificationIDs = append(classificationIDs, items[i].BudgetAllocationClassificationID)
		objectIDs = append(objectIDs, items[i].BudgetAllocationObjectOfExpenditureID)
	}

	var programs []programModel.Program
	if err := ctl.DB.Where("program_id IN ?", programIDs).Find(&programs).Error; err != nil {
		return lookups, err
	}
	for i := range programs {
		lookups.Programs[programs[i].ProgramID] = dto.AllocationLookupLite{
			ID:   programs[i].ProgramID,
			Code: programs[i].ProgramCode,
			Name: programs[i].ProgramName,
		}
	}

	var classifications []classificationModel.BudgetClassification
	if err := ctl.DB.Where("budget_classification_id IN ?", classificationIDs).Find(&classifications).Error; err != nil {
		return lookups, err
	}
	for i := range classifications {
		lookups.Classifications[classifications[i].BudgetClassificationID] = dto.AllocationLookupLite{
			ID:   classifications[i].BudgetClassificationID,
			Code: classifications[i].BudgetClassificationCode,
			Name: classifications[i].BudgetClassificationName,
		}
	}

	var objects []objectModel.ObjectOfExpenditure
	if err := ctl.DB.Where("object_of_expenditure_id IN ?", objectIDs).Find(&objects).Error; err != nil {
		return lookups, err
	}
	for i := range objects {
		lookups.Objects[objects[i].ObjectOfExpenditureID] = dto.AllocationLookupLite{
			ID:   objects[i].ObjectOfExpenditureID,
			Code: objects[i].ObjectOfExpenditureCode,
			Name: objects[i].ObjectOfExpenditureName,
		}
	}
	return lookups, nil
}
