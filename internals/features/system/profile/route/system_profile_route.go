package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "skbudget_backend/internals/features/system/profile/controller"
	"skbudget_backend/internals/middlewares"
)

// SystemProfileAdminRoutes mounts the admin system-profile endpoints.
func SystemProfileAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewSystemProfileController(db)

	grp := r.Group("/system-profile")
	grp.Get("/", ctl.Get)
	grp.Put("/", ctl.Update)
	grp.Post("/logo", middlewares.UploadRateLimiter(), ctl.UploadLogo)
}

// SystemProfilePublicRoutes exposes the read-only profile for the
// transparency pages.
func SystemProfilePublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewSystemProfileController(db)
	r.Get("/system-profile", ctl.Get)
}
