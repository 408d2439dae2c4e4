package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "skbudget_backend/internals/features/budget/classifications/controller"
)

// ClassificationAdminRoutes mounts the admin classification endpoints.
func ClassificationAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewClassificationController(db)

	grp := r.Group("/classifications")
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
