// internals/middlewares/features/active_fiscal_year.go
package features

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	fiscalYearModel "skbudget_backend/internals/features/budget/fiscal_years/model"
)

// ActiveFiscalYear resolves the single active fiscal year and stores it in
// request locals. Routes that operate "on the current year" mount this.
func ActiveFiscalYear(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var fy fiscalYearModel.FiscalYear
		err := fiscalYearModel.ScopeAlive(db).
			Where("fiscal_year_is_active = TRUE").
			Order("fiscal_year_year DESC").
			First(&fy).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusBadRequest, "No active fiscal year is set")
			}
			log.Println("[ERROR] active fiscal year lookup:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to determine active fiscal year")
		}

		c.Locals("active_fiscal_year_id", fy.FiscalYearID)
		c.Locals("active_fiscal_year", &fy)
		return c.Next()
	}
}

// ActiveFiscalYearID reads the id stored by ActiveFiscalYear.
func ActiveFiscalYearID(c *fiber.Ctx) int64 {
	if id, ok := c.Locals("active_fiscal_year_id").(int64); ok {
		return id
	}
	return 0
}
