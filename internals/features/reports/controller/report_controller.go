// file: internals/features/reports/controller/report_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"skbudget_backend/internals/constants"
	allocationModel "skbudget_backend/internals/features/budget/allocations/model"
	budgetModel "skbudget_backend/internals/features/budget/budgets/model"
	budgetService "skbudget_backend/internals/features/budget/budgets/service"
	limitModel "skbudget_backend/internals/features/budget/classification_limits/model"
	fiscalYearModel "skbudget_backend/internals/features/budget/fiscal_years/model"
	procurementModel "skbudget_backend/internals/features/procurement/requests/model"
	programModel "skbudget_backend/internals/features/programs/programs/model"
	helper "skbudget_backend/internals/helpers"
)

// ReportController serves the admin reports for the active fiscal year. All
// handlers assume the ActiveFiscalYear middleware already ran.
type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// activeBudget resolves the budget row of the active fiscal year.
func (ctl *ReportController) activeBudget(c *fiber.Ctx) (*budgetModel.Budget, *fiscalYearModel.FiscalYear, error) {
	fy, ok := c.Locals("active_fiscal_year").(*fiscalYearModel.FiscalYear)
	if !ok || fy == nil {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "No active fiscal year is set")
	}

	var budget budgetModel.Budget
	if err := budgetModel.ScopeAlive(ctl.DB).
		Scopes(budgetModel.ScopeByFiscalYear(fy.FiscalYearID)).
		First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fy, fiber.NewError(fiber.StatusNotFound, "No budget found for the active fiscal year")
		}
		return nil, fy, err
	}
	return &budget, fy, nil
}

type categoryBreakdown struct {
	Category  constants.BudgetCategory `json:"category"`
	Cap       decimal.Decimal          `json:"cap"`
	Planned   decimal.Decimal          `json:"planned"`
	Allocated decimal.Decimal          `json:"allocated"`
	Used      decimal.Decimal          `json:"used"`
	Remaining decimal.Decimal          `json:"remaining"`
}

// ========== Budget summary ==========
func (ctl *ReportController) BudgetSummary(c *fiber.Ctx) error {
	budget, fy, err := ctl.activeBudget(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	breakdown := make([]categoryBreakdown, 0, len(constants.BudgetCategories))
	for _, category := range constants.BudgetCategories {
		var planned decimal.Decimal
		if err := ctl.DB.Model(&limitModel.BudgetClassificationLimit{}).
			Where("budget_classification_limit_budget_id = ?", budget.BudgetID).
			Where("budget_classification_limit_category = ?", category).
			Where("budget_classification_limit_deleted_at IS NULL").
			Select("COALESCE(SUM(budget_classification_limit_amount), 0)").
			Row().Scan(&planned); err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
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
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}

		cap := budgetService.CategoryCap(budget, category)
		breakdown = append(breakdown, categoryBreakdown{
			Category:  category,
			Cap:       cap,
			Planned:   planned,
			Allocated: row.Allocated,
			Used:      row.Used,
			Remaining: cap.Sub(row.Used),
		})
	}

	return helper.Success(c, "OK", fiber.Map{
		"fiscalYear":           fy.FiscalYearYear,
		"budgetId":             budget.BudgetID,
		"totalAmount":          budget.BudgetTotalAmount,
		"administrativeAmount": budget.BudgetAdministrativeAmount,
		"youthAmount":          budget.BudgetYouthAmount,
		"categories":           breakdown,
	})
}

// allocationIDsOfBudget is the subquery reused by the procurement reports.
func (ctl *ReportController) allocationIDsOfBudget(budgetID int64) *gorm.DB {
	return ctl.DB.Model(&allocationModel.BudgetAllocation{}).
		Select("budget_allocation_id").
		Where("budget_allocation_budget_id = ? AND budget_allocation_deleted_at IS NULL", budgetID)
}

// ========== Procurement report ==========
func (ctl *ReportController) ProcurementReport(c *fiber.Ctx) error {
	budget, fy, err := ctl.activeBudget(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	paging := helper.ResolvePaging(c, 20, 100)

	query := procurementModel.ScopeAlive(ctl.DB).
		Model(&procurementModel.ProcurementRequest{}).
		Where("procurement_request_allocation_id IN (?)", ctl.allocationIDsOfBudget(budget.BudgetID))
	if raw := c.Query("status"); raw != "" {
		status, err := constants.ParseProcurementStatus(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		query = query.Where("procurement_request_status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var items []procurementModel.ProcurementRequest
	if err := query.Order("procurement_request_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var byStatus []struct {
		Status string          `json:"status"`
		Count  int64           `json:"count"`
		Amount decimal.Decimal `json:"amount"`
	}
	if err := procurementModel.ScopeAlive(ctl.DB).
		Model(&procurementModel.ProcurementRequest{}).
		Where("procurement_request_allocation_id IN (?)", ctl.allocationIDsOfBudget(budget.BudgetID)).
		Select("procurement_request_status AS status, COUNT(*) AS count, COALESCE(SUM(procurement_request_amount), 0) AS amount").
		Group("procurement_request_status").
		Scan(&byStatus).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"fiscalYear": fy.FiscalYearYear,
		"requests":   items,
		"byStatus":   byStatus,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// ========== Approval report ==========
func (ctl *ReportController) ApprovalReport(c *fiber.Ctx) error {
	budget, fy, err := ctl.activeBudget(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	paging := helper.ResolvePaging(c, 20, 100)

	requestIDs := procurementModel.ScopeAlive(ctl.DB).
		Model(&procurementModel.ProcurementRequest{}).
		Select("procurement_request_id").
		Where("procurement_request_allocation_id IN (?)", ctl.allocationIDsOfBudget(budget.BudgetID))

	query := ctl.DB.Model(&procurementModel.ProcurementApproval{}).
		Where("procurement_approval_request_id IN (?)", requestIDs)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var items []procurementModel.ProcurementApproval
	if err := query.Order("procurement_approval_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"fiscalYear": fy.FiscalYearYear,
		"approvals":  items,
		"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// ========== Program utilization ==========
func (ctl *ReportController) ProgramUtilization(c *fiber.Ctx) error {
	budget, fy, err := ctl.activeBudget(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []struct {
		ProgramID int64           `json:"programId"`
		Allocated decimal.Decimal `json:"allocated"`
		Used      decimal.Decimal `json:"used"`
	}
	if err := ctl.DB.Model(&allocationModel.BudgetAllocation{}).
		Where("budget_allocation_budget_id = ? AND budget_allocation_deleted_at IS NULL", budget.BudgetID).
		Select("budget_allocation_program_id AS program_id, COALESCE(SUM(budget_allocation_allocated_amount), 0) AS allocated, COALESCE(SUM(budget_allocation_used_amount), 0) AS used").
		Group("budget_allocation_program_id").
		Scan(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	programIDs := make([]int64, 0, len(rows))
	for _, row := range rows {
		programIDs = append(programIDs, row.ProgramID)
	}
	programNames := map[int64]string{}
	if len(programIDs) > 0 {
		var programs []programModel.Program
		if err := ctl.DB.Where("program_id IN ?", programIDs).Find(&programs).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
		for i := range programs {
			programNames[programs[i].ProgramID] = programs[i].ProgramName
		}
	}

	type utilizationRow struct {
		ProgramID   int64           `json:"programId"`
		ProgramName string          `json:"programName"`
		Allocated   decimal.Decimal `json:"allocated"`
		Used        decimal.Decimal `json:"used"`
		Utilization decimal.Decimal `json:"utilizationPercent"`
	}
	out := make([]utilizationRow, 0, len(rows))
	for _, row := range rows {
		utilization := decimal.Zero
		if row.Allocated.Sign() > 0 {
			utilization = row.Used.Div(row.Allocated).Mul(decimal.NewFromInt(100)).Round(2)
		}
		out = append(out, utilizationRow{
			ProgramID:   row.ProgramID,
			ProgramName: programNames[row.ProgramID],
			Allocated:   row.Allocated,
			Used:        row.Used,
			Utilization: utilization,
		})
	}

	return helper.Success(c, "OK", fiber.Map{
		"fiscalYear": fy.FiscalYearYear,
		"programs":   out,
	})
}
