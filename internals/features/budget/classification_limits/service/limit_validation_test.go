package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skbudget_backend/internals/constants"
)

// 1B budget split 400M administrative / 600M youth.
var youthCap = decimal.NewFromInt(600_000_000)

func TestValidateLimitWithinCategory(t *testing.T) {
	t.Run("limit equal to cap passes", func(t *testing.T) {
		err := ValidateLimitWithinCategory(youthCap, decimal.Zero, youthCap, constants.CategoryYouth)
		assert.NoError(t, err)
	})

	t.Run("limit over cap fails naming the cap", func(t *testing.T) {
		err := ValidateLimitWithinCategory(youthCap, decimal.Zero,
			decimal.NewFromInt(600_000_001), constants.CategoryYouth)
		require.Error(t, err)
		fe := err.(*fiber.Error)
		assert.Equal(t, fiber.StatusBadRequest, fe.Code)
		assert.Equal(t, "Limit amount cannot exceed youth budget (600000000)", fe.Message)
	})

	t.Run("second limit over remaining fails naming the remainder", func(t *testing.T) {
		// first classification already took 400M of the 600M youth cap
		siblings := decimal.NewFromInt(400_000_000)
		err := ValidateLimitWithinCategory(youthCap, siblings,
			decimal.NewFromInt(200_000_001), constants.CategoryYouth)
		require.Error(t, err)
		fe := err.(*fiber.Error)
		assert.Equal(t, "Limit amount exceeds remaining youth budget: 200000000", fe.Message)
	})

	t.Run("second limit exactly at remaining passes", func(t *testing.T) {
		siblings := decimal.NewFromInt(400_000_000)
		err := ValidateLimitWithinCategory(youthCap, siblings,
			decimal.NewFromInt(200_000_000), constants.CategoryYouth)
		assert.NoError(t, err)
	})

	t.Run("zero limit rejected", func(t *testing.T) {
		err := ValidateLimitWithinCategory(youthCap, decimal.Zero, decimal.Zero, constants.CategoryYouth)
		require.Error(t, err)
		assert.Equal(t, "Limit amount must be greater than zero", err.(*fiber.Error).Message)
	})

	t.Run("administrative category uses its own label", func(t *testing.T) {
		adminCap := decimal.NewFromInt(400_000_000)
		err := ValidateLimitWithinCategory(adminCap, decimal.Zero,
			decimal.NewFromInt(400_000_001), constants.CategoryAdministrative)
		require.Error(t, err)
		assert.Equal(t, "Limit amount cannot exceed administrative budget (400000000)", err.(*fiber.Error).Message)
	})
}

func TestValidateLimitDeletable(t *testing.T) {
	assert.NoError(t, ValidateLimitDeletable(0))

	err := ValidateLimitDeletable(1)
	require.Error(t, err)
	fe := err.(*fiber.Error)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Equal(t, "Cannot delete classification limit with existing budget allocations", fe.Message)

	assert.Error(t, ValidateLimitDeletable(42))
}

func TestRemainingForCategory(t *testing.T) {
	remaining := RemainingForCategory(youthCap, decimal.NewFromInt(450_000_000))
	assert.True(t, remaining.Equal(decimal.NewFromInt(150_000_000)))
}
