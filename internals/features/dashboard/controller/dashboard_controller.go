// file: internals/features/dashboard/controller/dashboard_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	allocationModel "skbudget_backend/internals/features/budget/allocations/model"
	budgetModel "skbudget_backend/internals/features/budget/budgets/model"
	fiscalYearModel "skbudget_backend/internals/features/budget/fiscal_years/model"
	procurementModel "skbudget_backend/internals/features/procurement/requests/model"
	programModel "skbudget_backend/internals/features/programs/programs/model"
	helper "skbudget_backend/internals/helpers"
)

// DashboardController aggregates headline numbers for the admin landing page.
// mode=YEAR scopes everything to the active fiscal year, mode=ALL spans all
// budgets ever recorded.
type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

func (ctl *DashboardController) Get(c *fiber.Ctx) error {
	mode := strings.ToUpper(strings.TrimSpace(c.Query("mode", "YEAR")))
	if mode != "YEAR" && mode != "ALL" {
		return helper.Error(c, fiber.StatusBadRequest, "mode must be YEAR or ALL")
	}

	budgetQuery := budgetModel.ScopeAlive(ctl.DB).Model(&budgetModel.Budget{})
	allocationQuery := allocationModel.ScopeAlive(ctl.DB).Model(&allocationModel.BudgetAllocation{})

	var activeYear *int
	if mode == "YEAR" {
		var fy fiscalYearModel.FiscalYear
		if err := fiscalYearModel.ScopeAlive(ctl.DB).
			Where("fiscal_year_is_active = TRUE").
			Order("fiscal_year_year DESC").
			First(&fy).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.Error(c, fiber.StatusBadRequest, "No active fiscal year is set")
			}
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
		activeYear = &fy.FiscalYearYear

		budgetQuery = budgetQuery.Where("budget_fiscal_year_id = ?", fy.FiscalYearID)
		allocationQuery = allocationQuery.Where(
			"budget_allocation_budget_id IN (?)",
			budgetModel.ScopeAlive(ctl.DB).Model(&budgetModel.Budget{}).
				Select("budget_id").
				Where("budget_fiscal_year_id = ?", fy.FiscalYearID),
		)
	}

	var budgetRow struct {
		Count          int64
		Total          decimal.Decimal
		Administrative decimal.Decimal
		Youth          decimal.Decimal
	}
	if err := budgetQuery.
		Select("COUNT(*) AS count, COALESCE(SUM(budget_total_amount), 0) AS total, COALESCE(SUM(budget_administrative_amount), 0) AS administrative, COALESCE(SUM(budget_youth_amount), 0) AS youth").
		Scan(&budgetRow).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var allocationRow struct {
		Count     int64
		Allocated decimal.Decimal
		Used      decimal.Decimal
	}
	if err := allocationQuery.
		Select("COUNT(*) AS count, COALESCE(SUM(budget_allocation_allocated_amount), 0) AS allocated, COALESCE(SUM(budget_allocation_used_amount), 0) AS used").
		Scan(&allocationRow).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var programCount int64
	if err := programModel.ScopeAlive(ctl.DB).Model(&programModel.Program{}).
		Where("program_is_active = TRUE").
		Count(&programCount).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var procurementByStatus []struct {
		Status string          `json:"status"`
		Count  int64           `json:"count"`
		Amount decimal.Decimal `json:"amount"`
	}
	procurementQuery := procurementModel.ScopeAlive(ctl.DB).Model(&procurementModel.ProcurementRequest{})
	if mode == "YEAR" {
		procurementQuery = procurementQuery.Where(
			"procurement_request_allocation_id IN (?)",
			allocationModel.ScopeAlive(ctl.DB).Model(&allocationModel.BudgetAllocation{}).
				Select("budget_allocation_id").
				Where("budget_allocation_budget_id IN (?)",
					budgetModel.ScopeAlive(ctl.DB).Model(&budgetModel.Budget{}).
						Select("budget_id").
						Joins("JOIN fiscal_years ON fiscal_year_id = budget_fiscal_year_id").
						Where("fiscal_year_is_active = TRUE AND fiscal_year_deleted_at IS NULL"),
				),
		)
	}
	if err := procurementQuery.
		Select("procurement_request_status AS status, COUNT(*) AS count, COALESCE(SUM(procurement_request_amount), 0) AS amount").
		Group("procurement_request_status").
		Scan(&procurementByStatus).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"mode":       mode,
		"fiscalYear": activeYear,
		"budgets": fiber.Map{
			"count":                budgetRow.Count,
			"totalAmount":          budgetRow.Total,
			"administrativeAmount": budgetRow.Administrative,
			"youthAmount":          budgetRow.Youth,
		},
		"allocations": fiber.Map{
			"count":           allocationRow.Count,
			"allocatedAmount": allocationRow.Allocated,
			"usedAmount":      allocationRow.Used,
			"remainingAmount": allocationRow.Allocated.Sub(allocationRow.Used),
		},
		"activePrograms": programCount,
		"procurement":    procurementByStatus,
	})
}
