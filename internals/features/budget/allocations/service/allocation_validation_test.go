package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Limit MOOE/YOUTH = 600M.
var mooeYouthLimit = decimal.NewFromInt(600_000_000)

func TestValidateAllocationWithinLimit(t *testing.T) {
	t.Run("first allocation fits", func(t *testing.T) {
		err := ValidateAllocationWithinLimit(mooeYouthLimit, decimal.Zero, decimal.NewFromInt(50_000_000))
		assert.NoError(t, err)
	})

	t.Run("second allocation overcommitting fails", func(t *testing.T) {
		siblings := decimal.NewFromInt(50_000_000)
		err := ValidateAllocationWithinLimit(mooeYouthLimit, siblings, decimal.NewFromInt(550_000_001))
		require.Error(t, err)
		fe := err.(*fiber.Error)
		assert.Equal(t, fiber.StatusBadRequest, fe.Code)
		assert.Equal(t, "Allocated amount exceeds remaining classification limit: 550000000", fe.Message)
	})

	t.Run("second allocation reaching the cap exactly passes", func(t *testing.T) {
		siblings := decimal.NewFromInt(50_000_000)
		err := ValidateAllocationWithinLimit(mooeYouthLimit, siblings, decimal.NewFromInt(550_000_000))
		assert.NoError(t, err)
	})

	t.Run("single allocation over the whole limit fails naming the limit", func(t *testing.T) {
		err := ValidateAllocationWithinLimit(mooeYouthLimit, decimal.Zero, decimal.NewFromInt(600_000_001))
		require.Error(t, err)
		assert.Equal(t, "Allocated amount cannot exceed classification limit (600000000)", err.(*fiber.Error).Message)
	})

	t.Run("zero amount rejected", func(t *testing.T) {
		err := ValidateAllocationWithinLimit(mooeYouthLimit, decimal.Zero, decimal.Zero)
		require.Error(t, err)
		assert.Equal(t, "Allocated amount must be greater than zero", err.(*fiber.Error).Message)
	})
}

func TestValidateUsedAmount(t *testing.T) {
	allocated := decimal.NewFromInt(50_000_000)

	assert.NoError(t, ValidateUsedAmount(decimal.Zero, allocated))
	assert.NoError(t, ValidateUsedAmount(allocated, allocated))

	err := ValidateUsedAmount(decimal.NewFromInt(50_000_001), allocated)
	require.Error(t, err)
	assert.Equal(t, "Used amount cannot exceed allocated amount (50000000)", err.(*fiber.Error).Message)

	err = ValidateUsedAmount(decimal.NewFromInt(-1), allocated)
	require.Error(t, err)
	assert.Equal(t, "Used amount cannot be negative", err.(*fiber.Error).Message)
}

func TestRemainingForLimit(t *testing.T) {
	remaining := RemainingForLimit(mooeYouthLimit, decimal.NewFromInt(600_000_000))
	assert.True(t, remaining.IsZero())
}
