package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "skbudget_backend/internals/features/transparency/controller"
)

// TransparencyPublicRoutes mounts the unauthenticated citizen-facing pages.
func TransparencyPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewTransparencyController(db)

	grp := r.Group("/transparency")
	grp.Get("/budget-plan", ctl.BudgetPlan)
	grp.Get("/fiscal-years", ctl.FiscalYears)
}
