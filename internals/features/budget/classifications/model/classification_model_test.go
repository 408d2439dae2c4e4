package model

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"skbudget_backend/internals/constants"
)

func TestAllowsCategory(t *testing.T) {
	cases := []struct {
		name      string
		allowed   []string
		category  constants.BudgetCategory
		wantAllow bool
	}{
		{"both categories allow administrative", []string{"ADMINISTRATIVE", "YOUTH"}, constants.CategoryAdministrative, true},
		{"both categories allow youth", []string{"ADMINISTRATIVE", "YOUTH"}, constants.CategoryYouth, true},
		{"administrative-only rejects youth", []string{"ADMINISTRATIVE"}, constants.CategoryYouth, false},
		{"administrative-only allows administrative", []string{"ADMINISTRATIVE"}, constants.CategoryAdministrative, true},
		{"youth-only rejects administrative", []string{"YOUTH"}, constants.CategoryAdministrative, false},
		{"empty set rejects everything", nil, constants.CategoryYouth, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			classification := BudgetClassification{
				BudgetClassificationCode:              "PS",
				BudgetClassificationName:              "Personal Services",
				BudgetClassificationAllowedCategories: pq.StringArray(tc.allowed),
			}
			assert.Equal(t, tc.wantAllow, classification.AllowsCategory(tc.category))
		})
	}
}
