package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skbudget_backend/internals/constants"
)

func TestValidateTransition(t *testing.T) {
	assert.NoError(t, ValidateTransition(constants.ProcurementDraft, constants.ProcurementSubmitted))
	assert.NoError(t, ValidateTransition(constants.ProcurementSubmitted, constants.ProcurementRejected))

	err := ValidateTransition(constants.ProcurementDraft, constants.ProcurementPurchased)
	require.Error(t, err)
	fe := err.(*fiber.Error)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Equal(t, "Cannot change procurement status from DRAFT to PURCHASED", fe.Message)

	// terminal states go nowhere
	assert.Error(t, ValidateTransition(constants.ProcurementRejected, constants.ProcurementSubmitted))
	assert.Error(t, ValidateTransition(constants.ProcurementCompleted, constants.ProcurementDraft))
}

func TestValidateAmountWithinAllocation(t *testing.T) {
	remaining := decimal.NewFromInt(50_000_000)

	assert.NoError(t, ValidateAmountWithinAllocation(decimal.NewFromInt(50_000_000), remaining))
	assert.NoError(t, ValidateAmountWithinAllocation(decimal.NewFromInt(1), remaining))

	err := ValidateAmountWithinAllocation(decimal.NewFromInt(50_000_001), remaining)
	require.Error(t, err)
	assert.Equal(t, "Procurement amount exceeds remaining allocation: 50000000", err.(*fiber.Error).Message)

	err = ValidateAmountWithinAllocation(decimal.Zero, remaining)
	require.Error(t, err)
	assert.Equal(t, "Procurement amount must be greater than zero", err.(*fiber.Error).Message)
}

func TestEditableStatus(t *testing.T) {
	assert.True(t, EditableStatus(constants.ProcurementDraft))
	for _, status := range []constants.ProcurementStatus{
		constants.ProcurementSubmitted,
		constants.ProcurementApproved,
		constants.ProcurementRejected,
		constants.ProcurementPurchased,
		constants.ProcurementCompleted,
	} {
		assert.False(t, EditableStatus(status), string(status))
	}
}
