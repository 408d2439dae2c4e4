package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// ParseIDParam reads a positive integer path parameter.
func ParseIDParam(c *fiber.Ctx, name string) (int64, error) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid "+name)
	}
	return id, nil
}

// ParseIDQuery reads an optional positive integer query parameter.
// Returns 0 when absent.
func ParseIDQuery(c *fiber.Ctx, name string) (int64, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid "+name)
	}
	return id, nil
}

// RequirePositiveAmount rejects zero or negative amounts.
func RequirePositiveAmount(amount decimal.Decimal, label string) error {
	if amount.Sign() <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, label+" must be greater than zero")
	}
	return nil
}

// RequireNonNegativeAmount rejects negative amounts.
func RequireNonNegativeAmount(amount decimal.Decimal, label string) error {
	if amount.Sign() < 0 {
		return fiber.NewError(fiber.StatusBadRequest, label+" cannot be negative")
	}
	return nil
}

// FormatAmount renders a money value without trailing cents when they are
// zero, so 600000000.00 prints as 600000000.
func FormatAmount(amount decimal.Decimal) string {
	truncated := amount.Truncate(0)
	if amount.Equal(truncated) {
		return truncated.String()
	}
	return amount.String()
}

// ParseBoolQuery reads an optional "true"/"false" query parameter.
// Returns nil when absent or unrecognized.
func ParseBoolQuery(c *fiber.Ctx, name string) *bool {
	switch strings.ToLower(strings.TrimSpace(c.Query(name))) {
	case "true", "1":
		v := true
		return &v
	case "false", "0":
		v := false
		return &v
	default:
		return nil
	}
}
