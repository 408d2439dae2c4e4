// file: internals/features/budget/classification_limits/service/limit_validation.go
package service

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"skbudget_backend/internals/constants"
	helper "skbudget_backend/internals/helpers"
)

/* =========================================================
   Classification-limit validation (pure, no I/O)
   ========================================================= */

// ValidateLimitWithinCategory checks a proposed limit amount against the
// category cap on the parent budget. siblingLimitsSum is the sum of all other
// live limits on the same (budget, category) pair; callers exclude the limit
// being updated from that sum.
func ValidateLimitWithinCategory(cap, siblingLimitsSum, limitAmount decimal.Decimal, category constants.BudgetCategory) error {
	if limitAmount.Sign() <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Limit amount must be greater than zero")
	}
	if limitAmount.GreaterThan(cap) {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Limit amount cannot exceed %s budget (%s)", category.Label(), helper.FormatAmount(cap)))
	}
	remaining := cap.Sub(siblingLimitsSum)
	if limitAmount.GreaterThan(remaining) {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Limit amount exceeds remaining %s budget: %s", category.Label(), helper.FormatAmount(remaining)))
	}
	return nil
}

// ValidateLimitDeletable blocks deletion while live allocations still consume
// the limit's (budget, classification, category) triple.
func ValidateLimitDeletable(liveAllocations int64) error {
	if liveAllocations > 0 {
		return fiber.NewError(fiber.StatusBadRequest,
			"Cannot delete classification limit with existing budget allocations")
	}
	return nil
}

// RemainingForCategory computes the unplanned room left under a category cap.
func RemainingForCategory(cap, limitsSum decimal.Decimal) decimal.Decimal {
	return cap.Sub(limitsSum)
}
