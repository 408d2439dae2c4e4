package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "skbudget_backend/internals/features/system/sk_officials/controller"
	"skbudget_backend/internals/middlewares"
)

// SkOfficialAdminRoutes mounts the admin SK-official endpoints.
func SkOfficialAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewSkOfficialController(db)

	grp := r.Group("/sk-officials")
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Patch("/:id/toggle-status", ctl.ToggleStatus)
	grp.Post("/:id/photo", middlewares.UploadRateLimiter(), ctl.UploadPhoto)
	grp.Delete("/:id", ctl.Delete)
}

// SkOfficialPublicRoutes exposes the active roster for transparency pages.
func SkOfficialPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewSkOfficialController(db)
	r.Get("/sk-officials", ctl.ListPublic)
}
