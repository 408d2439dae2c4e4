package helper

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	whole, _ := decimal.NewFromString("600000000.00")
	assert.Equal(t, "600000000", FormatAmount(whole))

	cents, _ := decimal.NewFromString("1234.50")
	assert.Equal(t, "1234.5", FormatAmount(cents))

	assert.Equal(t, "0", FormatAmount(decimal.Zero))
}

func TestRequireAmountGuards(t *testing.T) {
	assert.NoError(t, RequirePositiveAmount(decimal.NewFromInt(1), "Amount"))

	err := RequirePositiveAmount(decimal.Zero, "Limit amount")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Limit amount must be greater than zero")

	assert.NoError(t, RequireNonNegativeAmount(decimal.Zero, "Used amount"))
	assert.Error(t, RequireNonNegativeAmount(decimal.NewFromInt(-1), "Used amount"))
}

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, int64(45), p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	empty := BuildPaginationFromPage(0, 1, 20)
	assert.Equal(t, 1, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}

func TestGenerateObjectKey(t *testing.T) {
	key := GenerateObjectKey("programs", "my report (final).pdf")
	assert.Contains(t, key, "programs/")
	assert.NotContains(t, key, " ")
	assert.NotContains(t, key, "(")
}
