package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestParseDate(t *testing.T) {
	got, err := ParseDate(strPtr("2025-06-15"), "startDate")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2025, got.Year())
	assert.Equal(t, time.June, got.Month())

	cleared, err := ParseDate(strPtr("  "), "startDate")
	require.NoError(t, err)
	assert.Nil(t, cleared)

	missing, err := ParseDate(nil, "startDate")
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = ParseDate(strPtr("15/06/2025"), "startDate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid startDate")
}

func TestValidateDateRange(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, ValidateDateRange(&start, &end))
	assert.NoError(t, ValidateDateRange(&start, nil))
	assert.NoError(t, ValidateDateRange(nil, &end))
	assert.NoError(t, ValidateDateRange(&start, &start))

	err := ValidateDateRange(&end, &start)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Start date cannot be after end date")
}
