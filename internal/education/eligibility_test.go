package education

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyonworks/QuarterLife_Go/internal/catalog"
	"github.com/halcyonworks/QuarterLife_Go/internal/domain"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(context.Background(), []domain.ProgramDefinition{
		{
			ID:              "degree_business",
			Title:           "B.S. Business Administration",
			Kind:            domain.KindDegree,
			Cost:            7500,
			CostIsRecurring: true,
			DurationTicks:   16,
			QuarterlyBonuses: []domain.StatDelta{
				{StatID: domain.StatIntellect, Amount: 0.25},
			},
			CompletionBonuses: []domain.StatDelta{
				{StatID: domain.StatIntellect, Amount: 5},
				{StatID: domain.StatBusinessTrust, Amount: 3},
			},
		},
		{
			ID:                    "master_mba",
			Title:                 "Master of Business Administration",
			Kind:                  domain.KindMaster,
			Cost:                  12000,
			CostIsRecurring:       true,
			DurationTicks:         8,
			PrerequisiteProgramID: "degree_business",
		},
		{
			ID:              "degree_computer_science",
			Title:           "B.S. Computer Science",
			Kind:            domain.KindDegree,
			Cost:            1000,
			CostIsRecurring: true,
			DurationTicks:   8,
		},
		{
			ID:            "cert_first_aid",
			Title:         "First Aid Certificate",
			Kind:          domain.KindCertificate,
			Cost:          500,
			DurationTicks: 2,
			CompletionBonuses: []domain.StatDelta{
				{StatID: domain.StatHealth, Amount: 2},
			},
		},
		{
			ID:            "cert_martial_arts",
			Title:         "Martial Arts Training",
			Kind:          domain.KindCertificate,
			Cost:          300,
			DurationTicks: 1,
			CompletionBonuses: []domain.StatDelta{
				{StatID: domain.StatMartialArts, Amount: 25},
			},
		},
	})
	require.NoError(t, err)
	return c
}

func TestCanEnroll_ProgramNotFound(t *testing.T) {
	c := testCatalog(t)

	result := CanEnroll(c, domain.EnrollmentHistory{AvailableFunds: 100000}, "degree_nowhere")

	assert.False(t, result.Eligible)
	assert.Equal(t, ReasonNotFound, result.Reason)
}

func TestCanEnroll_AlreadyCompleted(t *testing.T) {
	c := testCatalog(t)
	history := domain.EnrollmentHistory{
		CompletedProgramIDs: []string{"degree_business"},
		AvailableFunds:      100000,
	}

	result := CanEnroll(c, history, "degree_business")

	assert.False(t, result.Eligible)
	assert.Equal(t, ReasonAlreadyCompleted, result.Reason)
}

func TestCanEnroll_AlreadyEnrolled(t *testing.T) {
	c := testCatalog(t)
	history := domain.EnrollmentHistory{
		ActiveProgramID: "degree_business",
		AvailableFunds:  100000,
	}

	result := CanEnroll(c, history, "degree_business")

	assert.False(t, result.Eligible)
	assert.Equal(t, ReasonAlreadyEnrolled, result.Reason)
}

func TestCanEnroll_InsufficientFunds_FormatsCostWithSeparators(t *testing.T) {
	c := testCatalog(t)
	history := domain.EnrollmentHistory{AvailableFunds: 1000}

	result := CanEnroll(c, history, "degree_business")

	assert.False(t, result.Eligible)
	assert.Contains(t, result.Reason, "insufficient funds")
	assert.Contains(t, result.Reason, "22,500", "recurring cost is tripled and thousands-separated")
}

func TestCanEnroll_MissingPrerequisite_NamesTitle(t *testing.T) {
	c := testCatalog(t)
	history := domain.EnrollmentHistory{AvailableFunds: 100000}

	result := CanEnroll(c, history, "master_mba")

	assert.False(t, result.Eligible)
	assert.Contains(t, result.Reason, "missing prerequisite")
	assert.Contains(t, result.Reason, "B.S. Business Administration")
}

func TestCanEnroll_FundsCheckedBeforePrerequisite(t *testing.T) {
	c := testCatalog(t)
	// Both checks would fail; funds comes first in the fixed order.
	history := domain.EnrollmentHistory{AvailableFunds: 0}

	result := CanEnroll(c, history, "master_mba")

	assert.Contains(t, result.Reason, "insufficient funds")
}

func TestCanEnroll_Eligible(t *testing.T) {
	c := testCatalog(t)
	history := domain.EnrollmentHistory{
		CompletedProgramIDs: []string{"degree_business"},
		AvailableFunds:      36000,
	}

	result := CanEnroll(c, history, "master_mba")

	assert.True(t, result.Eligible)
	assert.Empty(t, result.Reason)
	assert.Equal(t, int64(36000), result.CostDue)
}

func TestCanEnroll_NonRecurringCostNotTripled(t *testing.T) {
	c := testCatalog(t)
	history := domain.EnrollmentHistory{AvailableFunds: 500}

	result := CanEnroll(c, history, "cert_first_aid")

	assert.True(t, result.Eligible)
	assert.Equal(t, int64(500), result.CostDue)
}

func TestCanEnroll_IsPure(t *testing.T) {
	c := testCatalog(t)
	history := domain.EnrollmentHistory{
		CompletedProgramIDs: []string{"cert_first_aid"},
		ActiveProgramID:     "degree_business",
		AvailableFunds:      12345,
	}

	first := CanEnroll(c, history, "master_mba")
	second := CanEnroll(c, history, "master_mba")

	assert.Equal(t, first, second, "identical arguments must yield identical results")
	assert.Equal(t, []string{"cert_first_aid"}, history.CompletedProgramIDs)
	assert.Equal(t, int64(12345), history.AvailableFunds)
}
