package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "skbudget_backend/internals/features/reports/controller"
	featureMw "skbudget_backend/internals/middlewares/features"
)

// ReportAdminRoutes mounts the active-fiscal-year reports.
func ReportAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewReportController(db)

	grp := r.Group("/reports", featureMw.ActiveFiscalYear(db))
	grp.Get("/budget-summary", ctl.BudgetSummary)
	grp.Get("/procurement", ctl.ProcurementReport)
	grp.Get("/approvals", ctl.ApprovalReport)
	grp.Get("/program-utilization", ctl.ProgramUtilization)
}
