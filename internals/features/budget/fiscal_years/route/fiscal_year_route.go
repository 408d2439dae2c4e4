package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "skbudget_backend/internals/features/budget/fiscal_years/controller"
)

// FiscalYearAdminRoutes mounts the admin fiscal-year endpoints.
func FiscalYearAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewFiscalYearController(db)

	grp := r.Group("/fiscal-years")
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Post("/:id/activate", ctl.Activate)
	grp.Delete("/:id", ctl.Delete)
}
