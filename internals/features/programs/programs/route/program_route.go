package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "skbudget_backend/internals/features/programs/programs/controller"
	"skbudget_backend/internals/middlewares"
)

// ProgramAdminRoutes mounts the admin program endpoints. Uploads get their own
// tighter rate limit.
func ProgramAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewProgramController(db)

	grp := r.Group("/programs")
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Patch("/:id/toggle-status", ctl.ToggleStatus)
	grp.Post("/:id/documents", middlewares.UploadRateLimiter(), ctl.UploadDocument)
	grp.Delete("/:id/documents/:documentId", ctl.DeleteDocument)
	grp.Delete("/:id", ctl.Delete)
}
