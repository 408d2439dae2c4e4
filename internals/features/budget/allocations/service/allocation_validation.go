// file: internals/features/budget/allocations/service/allocation_validation.go
package service

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	helper "skbudget_backend/internals/helpers"
)

/* =========================================================
   Allocation validation (pure, no I/O)
   ========================================================= */

// ValidateAllocationWithinLimit checks a proposed allocated amount against the
// matching classification limit. siblingAllocationsSum is the sum of all other
// live allocations under the same (budget, classification, category); callers
// exclude the allocation being updated from that sum. The "limit not set"
// precondition is raised by the caller when no limit row exists.
func ValidateAllocationWithinLimit(limitAmount, siblingAllocationsSum, allocatedAmount decimal.Decimal) error {
	if allocatedAmount.Sign() <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Allocated amount must be greater than zero")
	}
	if allocatedAmount.GreaterThan(limitAmount) {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Allocated amount cannot exceed classification limit (%s)", helper.FormatAmount(limitAmount)))
	}
	remaining := limitAmount.Sub(siblingAllocationsSum)
	if allocatedAmount.GreaterThan(remaining) {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Allocated amount exceeds remaining classification limit: %s", helper.FormatAmount(remaining)))
	}
	return nil
}

// ValidateUsedAmount enforces 0 <= usedAmount <= allocatedAmount.
func ValidateUsedAmount(usedAmount, allocatedAmount decimal.Decimal) error {
	if usedAmount.Sign() < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Used amount cannot be negative")
	}
	if usedAmount.GreaterThan(allocatedAmount) {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Used amount cannot exceed allocated amount (%s)", helper.FormatAmount(allocatedAmount)))
	}
	return nil
}

// RemainingForLimit computes the unallocated room left under a limit.
func RemainingForLimit(limitAmount, allocationsSum decimal.Decimal) decimal.Decimal {
	return limitAmount.Sub(allocationsSum)
}
