package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBudgetCategory(t *testing.T) {
	cases := []struct {
		raw  string
		want BudgetCategory
	}{
		{"ADMINISTRATIVE", CategoryAdministrative},
		{"administrative", CategoryAdministrative},
		{"  Youth  ", CategoryYouth},
		{"YOUTH", CategoryYouth},
	}
	for _, tc := range cases {
		got, err := ParseBudgetCategory(tc.raw)
		require.NoError(t, err, tc.raw)
		assert.Equal(t, tc.want, got)
	}

	for _, raw := range []string{"", "GENERAL", "youths", "ADMIN"} {
		_, err := ParseBudgetCategory(raw)
		assert.Error(t, err, raw)
	}
}

func TestBudgetCategoryLabel(t *testing.T) {
	assert.Equal(t, "administrative", CategoryAdministrative.Label())
	assert.Equal(t, "youth", CategoryYouth.Label())
}

func TestProcurementTransitions(t *testing.T) {
	allowed := []struct{ from, to ProcurementStatus }{
		{ProcurementDraft, ProcurementSubmitted},
		{ProcurementSubmitted, ProcurementApproved},
		{ProcurementSubmitted, ProcurementRejected},
		{ProcurementApproved, ProcurementPurchased},
		{ProcurementPurchased, ProcurementCompleted},
	}
	for _, tc := range allowed {
		assert.True(t, CanTransitionProcurement(tc.from, tc.to), "%s → %s", tc.from, tc.to)
	}

	denied := []struct{ from, to ProcurementStatus }{
		{ProcurementDraft, ProcurementApproved},
		{ProcurementDraft, ProcurementPurchased},
		{ProcurementSubmitted, ProcurementCompleted},
		{ProcurementApproved, ProcurementRejected},
		{ProcurementRejected, ProcurementSubmitted}, // terminal
		{ProcurementCompleted, ProcurementDraft},    // terminal
		{ProcurementPurchased, ProcurementApproved}, // no going back
	}
	for _, tc := range denied {
		assert.False(t, CanTransitionProcurement(tc.from, tc.to), "%s → %s", tc.from, tc.to)
	}
}

func TestParseProcurementStatus(t *testing.T) {
	got, err := ParseProcurementStatus(" draft ")
	require.NoError(t, err)
	assert.Equal(t, ProcurementDraft, got)

	_, err = ParseProcurementStatus("CANCELLED")
	assert.Error(t, err)
}

func TestIsValidProofType(t *testing.T) {
	assert.True(t, IsValidProofType("receipt"))
	assert.True(t, IsValidProofType("INVOICE"))
	assert.False(t, IsValidProofType("SELFIE"))
}

func TestParseGender(t *testing.T) {
	got, err := ParseGender("female")
	require.NoError(t, err)
	assert.Equal(t, GenderFemale, got)

	_, err = ParseGender("unknown")
	assert.Error(t, err)
}
