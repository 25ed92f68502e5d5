package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconcileCurriculumClean(t *testing.T) {
	curriculum := testCurriculum()
	plan, _ := GeneratePlan(testGroup("2026-02-01", "2026-12-31"), testWeights(), curriculum)

	report := ReconcileCurriculum("g1", plan, curriculum)
	assert.True(t, report.Clean)
	assert.Empty(t, report.UnknownPlanCodes)
	assert.Empty(t, report.MissingFromPlan)
}

func TestReconcileCurriculumMismatches(t *testing.T) {
	curriculum := testCurriculum()
	plan, _ := GeneratePlan(testGroup("2026-02-01", "2026-12-31"), testWeights(), curriculum)

	// A stale plan: one code the curriculum no longer knows, one curriculum
	// code the plan never scheduled.
	plan.Modules[0].UnitStandards[0].Code = "99999"

	report := ReconcileCurriculum("g1", plan, curriculum)
	assert.False(t, report.Clean)
	assert.Equal(t, []string{"99999"}, report.UnknownPlanCodes)
	assert.Equal(t, []string{"7480"}, report.MissingFromPlan)
}

func TestReconcileCurriculumNilPlan(t *testing.T) {
	curriculum := testCurriculum()

	report := ReconcileCurriculum("g1", nil, curriculum)
	assert.False(t, report.Clean)
	assert.Empty(t, report.UnknownPlanCodes)
	assert.Len(t, report.MissingFromPlan, 9)
}
