package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "skbudget_backend/internals/features/budget/allocations/controller"
)

// AllocationAdminRoutes mounts the admin budget-allocation endpoints.
func AllocationAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewAllocationController(db)

	grp := r.Group("/allocations")
	grp.Get("/", ctl.List)
	grp.Get("/remaining", ctl.RemainingLimit)
	grp.Get("/program-summary/:programId", ctl.ProgramSummary)
	grp.Get("/:id", ctl.GetByID)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
