package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "skbudget_backend/internals/features/budget/classification_limits/controller"
)

// ClassificationLimitAdminRoutes mounts the admin classification-limit endpoints.
func ClassificationLimitAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewClassificationLimitController(db)

	grp := r.Group("/classification-limits")
	grp.Get("/", ctl.List)
	grp.Get("/remaining/:budgetId", ctl.Remaining)
	grp.Get("/classification/:classificationId", ctl.ListByClassification)
	grp.Get("/:id", ctl.GetByID)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
