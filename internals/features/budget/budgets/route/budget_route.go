package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "skbudget_backend/internals/features/budget/budgets/controller"
)

// BudgetAdminRoutes mounts the admin budget endpoints.
func BudgetAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewBudgetController(db)

	grp := r.Group("/budgets")
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
