package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "skbudget_backend/internals/features/budget/objects_of_expenditure/controller"
)

// ObjectOfExpenditureAdminRoutes mounts the admin object-of-expenditure endpoints.
func ObjectOfExpenditureAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewObjectOfExpenditureController(db)

	grp := r.Group("/objects-of-expenditure")
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
