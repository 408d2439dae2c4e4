// file: internals/features/transparency/controller/transparency_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"skbudget_backend/internals/constants"
	allocationModel "skbudget_backend/internals/features/budget/allocations/model"
	budgetModel "skbudget_backend/internals/features/budget/budgets/model"
	budgetService "skbudget_backend/internals/features/budget/budgets/service"
	limitModel "skbudget_backend/internals/features/budget/classification_limits/model"
	fiscalYearModel "skbudget_backend/internals/features/budget/fiscal_years/model"
	programModel "skbudget_backend/internals/features/programs/programs/model"
	profileModel "skbudget_backend/internals/features/system/profile/model"
	officialModel "skbudget_backend/internals/features/system/sk_officials/model"
	helper "skbudget_backend/internals/helpers"
)

// TransparencyController renders the public budget plan. No auth: this is the
// citizen-facing view of how the SK fund is split, planned and spent.
type TransparencyController struct {
	DB *gorm.DB
}

func NewTransparencyController(db *gorm.DB) *TransparencyController {
	return &TransparencyController{DB: db}
}

// resolveFiscalYear honors ?year= and falls back to the active year.
func (ctl *TransparencyController) resolveFiscalYear(c *fiber.Ctx) (*fiscalYearModel.FiscalYear, error) {
	query := fiscalYearModel.ScopeAlive(ctl.DB)
	if raw := strings.TrimSpace(c.Query("year")); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid year")
		}
		query = query.Where("fiscal_year_year = ?", year)
	} else {
		query = query.Where("fiscal_year_is_active = TRUE").Order("fiscal_year_year DESC")
	}

	var fy fiscalYearModel.FiscalYear
	if err := query.First(&fy).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Fiscal year not found")
		}
		return nil, err
	}
	return &fy, nil
}

// ========== Public budget plan ==========
func (ctl *TransparencyController) BudgetPlan(c *fiber.Ctx) error {
	fy, err := ctl.resolveFiscalYear(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var budget budgetModel.Budget
	if err := budgetModel.ScopeAlive(ctl.DB).
		Scopes(budgetModel.ScopeByFiscalYear(fy.FiscalYearID)).
		First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "No budget published for this fiscal year")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	categories, err := ctl.categorySummaries(&budget)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	limits, err := ctl.limitRollups(budget.BudgetID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	programs, err := ctl.programRollups(budget.BudgetID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var profile profileModel.SystemProfile
	if err := ctl.DB.Order("system_profile_id ASC").First(&profile).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
		profile = *profileModel.DefaultProfile()
	}

	var officials []officialModel.SkOfficial
	if err := officialModel.ScopeAlive(ctl.DB).
		Where("sk_official_is_active = TRUE").
		Order("sk_official_sort_order ASC, sk_official_full_name ASC").
		Find(&officials).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"fiscalYear": fy.FiscalYearYear,
		"isActive":   fy.FiscalYearIsActive,
		"budget": fiber.Map{
			"totalAmount":          budget.BudgetTotalAmount,
			"administrativeAmount": budget.BudgetAdministrativeAmount,
			"youthAmount":          budget.BudgetYouthAmount,
		},
		"categories": categories,
		"limits":     limits,
		"programs":   programs,
		"profile": fiber.Map{
			"name":        profile.SystemProfileName,
			"description": profile.SystemProfileDescription,
			"location":    profile.SystemProfileLocation,
			"logoUrl":     profile.SystemProfileLogoURL,
		},
		"officials": officialsPublic(officials),
	})
}

// ========== Published fiscal years ==========
func (ctl *TransparencyController) FiscalYears(c *fiber.Ctx) error {
	var rows []struct {
		Year     int  `json:"year"`
		IsActive bool `json:"isActive"`
	}
	if err := fiscalYearModel.ScopeAlive(ctl.DB).
		Model(&fiscalYearModel.FiscalYear{}).
		Joins("JOIN budgets ON budget_fiscal_year_id = fiscal_year_id AND budget_deleted_at IS NULL").
		Select("fiscal_year_year AS year, fiscal_year_is_active AS is_active").
		Order("fiscal_year_year DESC").
		Scan(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", rows)
}

/* =========================
   Rollup helpers
   ========================= */

type categorySummary struct {
	Category  constants.BudgetCategory `json:"category"`
	Cap       decimal.Decimal          `json:"cap"`
	Planned   decimal.Decimal          `json:"planned"`
	Allocated decimal.Decimal          `json:"allocated"`
	Used      decimal.Decimal          `json:"used"`
}

func (ctl *TransparencyController) categorySummaries(budget *budgetModel.Budget) ([]categorySummary, error) {
	out := make([]categorySummary, 0, len(constants.BudgetCategories))
	for _, category := range constants.BudgetCategories {
		var planned decimal.Decimal
		if err := ctl.DB.Model(&limitModel.BudgetClassificationLimit{}).
			Where("budget_classification_limit_budget_id = ?", budget.BudgetID).
			Where("budget_classification_limit_category = ?", category).
			Where("budget_classification_limit_deleted_at IS NULL").
			Select("COALESCE(SUM(budget_classification_limit_amount), 0)").
			Row().Scan(&planned); err != nil {
			return nil, err
		}

		var row struct {
			Allocated decimal.Decimal
			Used      decimal.Decimal
		}
		if err := ctl.DB.Model(&allocationModel.BudgetAllocation{}).
			Where("budget_allocation_budget_id = ?", budget.BudgetID).
			Where("budget_allocation_category = ?", category).
			Where("budget_allocation_deleted_at IS NULL").
			Select("COALESCE(SUM(budget_allocation_allocated_amount), 0) AS allocated, COALESCE(SUM(budget_allocation_used_amount), 0) AS used").
			Scan(&row).Error; err != nil {
			return nil, err
		}

		out = append(out, categorySummary{
			Category:  category,
			Cap:       budgetService.CategoryCap(budget, category),
			Planned:   planned,
			Allocated: row.Allocated,
			Used:      row.Used,
		})
	}
	return out, nil
}

type limitRollup struct {
	ClassificationCode string          `json:"classificationCode"`
	ClassificationName string          `json:"classificationName"`
	Category           string          `json:"category"`
	LimitAmount        decimal.Decimal `json:"limitAmount"`
	AllocatedAmount    decimal.Decimal `json:"allocatedAmount"`
	UsedAmount         decimal.Decimal `json:"usedAmount"`
}

func (ctl *TransparencyController) limitRollups(budgetID int64) ([]limitRollup, error) {
	var limits []limitModel.BudgetClassificationLimit
	if err := limitModel.ScopeAlive(ctl.DB).
		Scopes(limitModel.ScopeByBudget(budgetID)).
		Order("budget_classification_limit_category ASC, budget_classification_limit_id ASC").
		Find(&limits).Error; err != nil {
		return nil, err
	}

	out := make([]limitRollup, 0, len(limits))
	for i := range limits {
		var row struct {
			Allocated decimal.Decimal
			Used      decimal.Decimal
		}
		if err := ctl.DB.Model(&allocationModel.BudgetAllocation{}).
			Where("budget_allocation_budget_id = ?", budgetID).
			Where("budget_allocation_classification_id = ?", limits[i].BudgetClassificationLimitClassificationID).
			Where("budget_allocation_category = ?", limits[i].BudgetClassificationLimitCategory).
			Where("budget_allocation_deleted_at IS NULL").
			Select("COALESCE(SUM(budget_allocation_allocated_amount), 0) AS allocated, COALESCE(SUM(budget_allocation_used_amount), 0) AS used").
			Scan(&row).Error; err != nil {
			return nil, err
		}

		snap := limits[i].ClassificationSnapshot()
		out = append(out, limitRollup{
			ClassificationCode: snap.Code,
			ClassificationName: snap.Name,
			Category:           string(limits[i].BudgetClassificationLimitCategory),
			LimitAmount:        limits[i].BudgetClassificationLimitAmount,
			AllocatedAmount:    row.Allocated,
			UsedAmount:         row.Used,
		})
	}
	return out, nil
}

type programRollup struct {
	ProgramName string          `json:"programName"`
	Allocated   decimal.Decimal `json:"allocated"`
	Used        decimal.Decimal `json:"used"`
}

func (ctl *TransparencyController) programRollups(budgetID int64) ([]programRollup, error) {
	var rows []struct {
		ProgramID int64
		Allocated decimal.Decimal
		Used      decimal.Decimal
	}
	if err := ctl.DB.Model(&allocationModel.BudgetAllocation{}).
		Where("budget_allocation_budget_id = ? AND budget_allocation_deleted_at IS NULL", budgetID).
		Select("budget_allocation_program_id AS program_id, COALESCE(SUM(budget_allocation_allocated_amount), 0) AS allocated, COALESCE(SUM(budget_allocation_used_amount), 0) AS used").
		Group("budget_allocation_program_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	programIDs := make([]int64, 0, len(rows))
	for _, row := range rows {
		programIDs = append(programIDs, row.ProgramID)
	}
	names := map[int64]string{}
	if len(programIDs) > 0 {
		var programs []programModel.Program
		if err := ctl.DB.Where("program_id IN ?", programIDs).Find(&programs).Error; err != nil {
			return nil, err
		}
		for i := range programs {
			names[programs[i].ProgramID] = programs[i].ProgramName
		}
	}

	out := make([]programRollup, 0, len(rows))
	for _, row := range rows {
		out = append(out, programRollup{
			ProgramName: names[row.ProgramID],
			Allocated:   row.Allocated,
			Used:        row.Used,
		})
	}
	return out, nil
}

func officialsPublic(items []officialModel.SkOfficial) []fiber.Map {
	out := make([]fiber.Map, 0, len(items))
	for i := range items {
		out = append(out, fiber.Map{
			"fullName": items[i].SkOfficialFullName,
			"position": items[i].SkOfficialPosition,
			"photoUrl": items[i].SkOfficialPhotoURL,
		})
	}
	return out
}
