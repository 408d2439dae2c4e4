// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	allocationRoute "skbudget_backend/internals/features/budget/allocations/route"
	budgetRoute "skbudget_backend/internals/features/budget/budgets/route"
	limitRoute "skbudget_backend/internals/features/budget/classification_limits/route"
	classificationRoute "skbudget_backend/internals/features/budget/classifications/route"
	fiscalYearRoute "skbudget_backend/internals/features/budget/fiscal_years/route"
	objectRoute "skbudget_backend/internals/features/budget/objects_of_expenditure/route"
	dashboardRoute "skbudget_backend/internals/features/dashboard/route"
	procurementRoute "skbudget_backend/internals/features/procurement/requests/route"
	programRoute "skbudget_backend/internals/features/programs/programs/route"
	reportRoute "skbudget_backend/internals/features/reports/route"
	profileRoute "skbudget_backend/internals/features/system/profile/route"
	officialRoute "skbudget_backend/internals/features/system/sk_officials/route"
	transparencyRoute "skbudget_backend/internals/features/transparency/route"
	authMiddleware "skbudget_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== GROUPS =====================

	// PUBLIC → no auth, citizen-facing transparency pages
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// ADMIN → JWT + admin role
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(),
		authMiddleware.RequireAdmin(),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Transparency routes...")
	transparencyRoute.TransparencyPublicRoutes(public, db)
	profileRoute.SystemProfilePublicRoutes(public, db)
	officialRoute.SkOfficialPublicRoutes(public, db)

	log.Println("[INFO] Mounting Budget routes...")
	fiscalYearRoute.FiscalYearAdminRoutes(admin, db)
	budgetRoute.BudgetAdminRoutes(admin, db)
	classificationRoute.ClassificationAdminRoutes(admin, db)
	limitRoute.ClassificationLimitAdminRoutes(admin, db)
	allocationRoute.AllocationAdminRoutes(admin, db)
	objectRoute.ObjectOfExpenditureAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Program routes...")
	programRoute.ProgramAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Procurement routes...")
	procurementRoute.ProcurementAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Report & Dashboard routes...")
	reportRoute.ReportAdminRoutes(admin, db)
	dashboardRoute.DashboardAdminRoutes(admin, db)

	log.Println("[INFO] Mounting System routes...")
	profileRoute.SystemProfileAdminRoutes(admin, db)
	officialRoute.SkOfficialAdminRoutes(admin, db)
}
