// file: internals/features/procurement/requests/service/procurement_workflow.go
package service

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"skbudget_backend/internals/constants"
	helper "skbudget_backend/internals/helpers"
)

/* =========================================================
   Procurement workflow rules (pure, no I/O)
   ========================================================= */

// ValidateTransition enforces the request lifecycle:
// DRAFT → SUBMITTED → APPROVED|REJECTED, APPROVED → PURCHASED → COMPLETED.
func ValidateTransition(from, to constants.ProcurementStatus) error {
	if !constants.CanTransitionProcurement(from, to) {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Cannot change procurement status from %s to %s", from, to))
	}
	return nil
}

// ValidateAmountWithinAllocation checks a request amount fits the unused part
// of its backing allocation (allocated minus used, minus other pending
// requests already counted by the caller).
func ValidateAmountWithinAllocation(amount, allocationRemaining decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Procurement amount must be greater than zero")
	}
	if amount.GreaterThan(allocationRemaining) {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Procurement amount exceeds remaining allocation: %s", helper.FormatAmount(allocationRemaining)))
	}
	return nil
}

// EditableStatus reports whether a request body may still be modified.
// Only drafts are editable; everything after submission is immutable.
func EditableStatus(status constants.ProcurementStatus) bool {
	return status == constants.ProcurementDraft
}
