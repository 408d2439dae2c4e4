package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "skbudget_backend/internals/features/procurement/requests/controller"
	"skbudget_backend/internals/middlewares"
)

// ProcurementAdminRoutes mounts the procurement workflow endpoints.
func ProcurementAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewProcurementController(db)

	grp := r.Group("/procurement-requests")
	grp.Get("/", ctl.List)
	grp.Get("/drafts", ctl.ListDrafts)
	grp.Get("/:id", ctl.GetByID)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Patch("/:id/submit", ctl.Submit)
	grp.Patch("/:id/approve", ctl.Approve)
	grp.Patch("/:id/reject", ctl.Reject)
	grp.Patch("/:id/purchase", ctl.Purchase)
	grp.Patch("/:id/complete", ctl.Complete)
	grp.Post("/:id/proofs", middlewares.UploadRateLimiter(), ctl.UploadProof)
	grp.Delete("/:id", ctl.Delete)
}
