// file: internals/features/budget/budgets/service/budget_validation.go
package service

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"skbudget_backend/internals/constants"
	model "skbudget_backend/internals/features/budget/budgets/model"
	helper "skbudget_backend/internals/helpers"
)

/* =========================================================
   Top-level split validation (pure, no I/O)
   ========================================================= */

// ValidateTopLevelSplit enforces administrative + youth == total with all
// three amounts non-negative. Exact decimal equality, no tolerance: callers
// must round inputs before handing them in.
func ValidateTopLevelSplit(total, administrative, youth decimal.Decimal) error {
	if total.Sign() < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Total amount cannot be negative")
	}
	if administrative.Sign() < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Administrative amount cannot be negative")
	}
	if youth.Sign() < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Youth amount cannot be negative")
	}
	if !administrative.Add(youth).Equal(total) {
		return fiber.NewError(fiber.StatusBadRequest,
			"Administrative amount plus youth amount must equal total amount")
	}
	return nil
}

// ValidateCapCoversPlannedLimits rejects shrinking a category cap below the
// sum of classification limits already planned under it.
func ValidateCapCoversPlannedLimits(cap, plannedLimits decimal.Decimal, category constants.BudgetCategory) error {
	if cap.LessThan(plannedLimits) {
		name := "Administrative"
		if category == constants.CategoryYouth {
			name = "Youth"
		}
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("%s budget cannot be lower than already planned limits: %s",
				name, helper.FormatAmount(plannedLimits)))
	}
	return nil
}

// CategoryCap returns the cap for a category on the given budget.
func CategoryCap(b *model.Budget, category constants.BudgetCategory) decimal.Decimal {
	if category == constants.CategoryAdministrative {
		return b.BudgetAdministrativeAmount
	}
	return b.BudgetYouthAmount
}
