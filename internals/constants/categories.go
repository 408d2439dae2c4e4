package constants

import (
	"fmt"
	"strings"
)

// BudgetCategory is the top-level split of a fiscal-year budget.
type BudgetCategory string

const (
	CategoryAdministrative BudgetCategory = "ADMINISTRATIVE"
	CategoryYouth          BudgetCategory = "YOUTH"
)

var BudgetCategories = []BudgetCategory{
	CategoryAdministrative,
	CategoryYouth,
}

// ParseBudgetCategory normalizes input to upper-case and rejects anything
// outside the recognized enumeration.
func ParseBudgetCategory(raw string) (BudgetCategory, error) {
	switch BudgetCategory(strings.ToUpper(strings.TrimSpace(raw))) {
	case CategoryAdministrative:
		return CategoryAdministrative, nil
	case CategoryYouth:
		return CategoryYouth, nil
	default:
		return "", fmt.Errorf("invalid category: %q (must be ADMINISTRATIVE or YOUTH)", raw)
	}
}

func (c BudgetCategory) Label() string {
	switch c {
	case CategoryAdministrative:
		return "administrative"
	case CategoryYouth:
		return "youth"
	default:
		return strings.ToLower(string(c))
	}
}

// ==========================
// Gender (SK officials)
// ==========================
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

func ParseGender(raw string) (Gender, error) {
	switch Gender(strings.ToUpper(strings.TrimSpace(raw))) {
	case GenderMale:
		return GenderMale, nil
	case GenderFemale:
		return GenderFemale, nil
	case GenderOther:
		return GenderOther, nil
	default:
		return "", fmt.Errorf("invalid gender: %q", raw)
	}
}
