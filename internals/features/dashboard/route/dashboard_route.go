package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "skbudget_backend/internals/features/dashboard/controller"
)

// DashboardAdminRoutes mounts the admin dashboard aggregate endpoint.
func DashboardAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewDashboardController(db)
	r.Get("/dashboard", ctl.Get)
}
