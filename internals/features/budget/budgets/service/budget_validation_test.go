package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skbudget_backend/internals/constants"
	model "skbudget_backend/internals/features/budget/budgets/model"
)

func TestValidateTopLevelSplit(t *testing.T) {
	cases := []struct {
		name           string
		total          int64
		administrative int64
		youth          int64
		wantErr        string
	}{
		{"exact split passes", 1_000_000_000, 400_000_000, 600_000_000, ""},
		{"zero budget passes", 0, 0, 0, ""},
		{"one peso short fails", 1_000_000_000, 400_000_000, 599_999_999, "Administrative amount plus youth amount must equal total amount"},
		{"one peso over fails", 1_000_000_000, 400_000_001, 600_000_000, "Administrative amount plus youth amount must equal total amount"},
		{"negative total fails", -1, 0, 0, "Total amount cannot be negative"},
		{"negative administrative fails", 100, -50, 150, "Administrative amount cannot be negative"},
		{"negative youth fails", 100, 150, -50, "Youth amount cannot be negative"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTopLevelSplit(
				decimal.NewFromInt(tc.total),
				decimal.NewFromInt(tc.administrative),
				decimal.NewFromInt(tc.youth),
			)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			fe, ok := err.(*fiber.Error)
			require.True(t, ok)
			assert.Equal(t, fiber.StatusBadRequest, fe.Code)
			assert.Equal(t, tc.wantErr, fe.Message)
		})
	}
}

func TestValidateTopLevelSplitWithCentavos(t *testing.T) {
	total, _ := decimal.NewFromString("100.50")
	administrative, _ := decimal.NewFromString("40.25")
	youth, _ := decimal.NewFromString("60.25")
	assert.NoError(t, ValidateTopLevelSplit(total, administrative, youth))

	// exact equality, no tolerance
	offByCent, _ := decimal.NewFromString("60.24")
	assert.Error(t, ValidateTopLevelSplit(total, administrative, offByCent))
}

func TestValidateCapCoversPlannedLimits(t *testing.T) {
	planned := decimal.NewFromInt(600_000_000)

	t.Run("cap equal to planned passes", func(t *testing.T) {
		assert.NoError(t, ValidateCapCoversPlannedLimits(planned, planned, constants.CategoryYouth))
	})

	t.Run("cap above planned passes", func(t *testing.T) {
		assert.NoError(t, ValidateCapCoversPlannedLimits(
			decimal.NewFromInt(700_000_000), planned, constants.CategoryYouth))
	})

	t.Run("shrinking below planned fails naming the planned sum", func(t *testing.T) {
		err := ValidateCapCoversPlannedLimits(
			decimal.NewFromInt(599_999_999), planned, constants.CategoryYouth)
		require.Error(t, err)
		fe := err.(*fiber.Error)
		assert.Equal(t, fiber.StatusBadRequest, fe.Code)
		assert.Equal(t, "Youth budget cannot be lower than already planned limits: 600000000", fe.Message)
	})

	t.Run("administrative category uses its own label", func(t *testing.T) {
		err := ValidateCapCoversPlannedLimits(
			decimal.NewFromInt(100), decimal.NewFromInt(200), constants.CategoryAdministrative)
		require.Error(t, err)
		assert.Equal(t, "Administrative budget cannot be lower than already planned limits: 200", err.(*fiber.Error).Message)
	})
}

func TestCategoryCap(t *testing.T) {
	budget := &model.Budget{
		BudgetTotalAmount:          decimal.NewFromInt(1_000_000_000),
		BudgetAdministrativeAmount: decimal.NewFromInt(400_000_000),
		BudgetYouthAmount:          decimal.NewFromInt(600_000_000),
	}

	assert.True(t, CategoryCap(budget, constants.CategoryAdministrative).Equal(decimal.NewFromInt(400_000_000)))
	assert.True(t, CategoryCap(budget, constants.CategoryYouth).Equal(decimal.NewFromInt(600_000_000)))
}
