package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirashofficial/learnership-management-sub003/app/config"
	"github.com/sirashofficial/learnership-management-sub003/app/models"
)

func usRef(id string) *string { return &id }

func mkAssessment(studentID, unitStandardID string, typ models.AssessmentType, result models.AssessmentResult) *models.Assessment {
	a := &models.Assessment{StudentID: studentID, Type: typ, Result: result}
	if unitStandardID != "" {
		a.UnitStandardID = usRef(unitStandardID)
	}
	return a
}

func TestComputeUnitStandardStatusLadder(t *testing.T) {
	group := []string{"s1", "s2"}

	tests := []struct {
		name        string
		students    []string
		assessments []*models.Assessment
		want        models.UnitStandardStatus
	}{
		{
			name:     "no rows",
			students: group,
			want:     models.StatusNotStarted,
		},
		{
			name:     "complete when every student passed both",
			students: group,
			assessments: []*models.Assessment{
				mkAssessment("s1", "us-7480", models.Formative, models.Competent),
				mkAssessment("s1", "us-7480", models.Summative, models.Competent),
				mkAssessment("s2", "us-7480", models.Formative, models.Competent),
				mkAssessment("s2", "us-7480", models.Integrated, models.Competent),
			},
			want: models.StatusComplete,
		},
		{
			name:     "summative-done when one student passed summative",
			students: group,
			assessments: []*models.Assessment{
				mkAssessment("s1", "us-7480", models.Formative, models.Competent),
				mkAssessment("s1", "us-7480", models.Summative, models.Competent),
			},
			want: models.StatusSummativeDone,
		},
		{
			name:     "in-progress with formative rows",
			students: group,
			assessments: []*models.Assessment{
				mkAssessment("s1", "us-7480", models.Formative, models.Pending),
			},
			want: models.StatusInProgress,
		},
		{
			name:     "permissive fallback for odd row shapes",
			students: group,
			assessments: []*models.Assessment{
				mkAssessment("s1", "us-7480", models.Summative, models.NotYetCompetent),
			},
			want: models.StatusInProgress,
		},
		{
			name:     "empty group never completes",
			students: nil,
			assessments: []*models.Assessment{
				mkAssessment("s1", "us-7480", models.Formative, models.Competent),
				mkAssessment("s1", "us-7480", models.Summative, models.Competent),
			},
			want: models.StatusSummativeDone,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeUnitStandardStatus(tt.students, tt.assessments)
			assert.Equal(t, tt.want, got)

			// Exhaustiveness: always one of the four defined statuses.
			assert.Contains(t, []models.UnitStandardStatus{
				models.StatusNotStarted, models.StatusInProgress,
				models.StatusSummativeDone, models.StatusComplete,
			}, got)
		})
	}
}

func TestStudentCompletedUnitStandards(t *testing.T) {
	assessments := []*models.Assessment{
		mkAssessment("s1", "us-7480", models.Formative, models.Competent),
		mkAssessment("s1", "us-13911", models.Formative, models.NotYetCompetent),
		mkAssessment("s1", "us-13912", models.Summative, models.Competent), // summative alone does not count
		mkAssessment("s1", "", models.Formative, models.Competent),         // transiently unlinked row
	}

	completed := StudentCompletedUnitStandards(assessments)
	assert.Equal(t, map[string]bool{"us-7480": true}, completed)
}

func TestComputeStudentProgressIdempotent(t *testing.T) {
	curriculum := testCurriculum()
	assessments := []*models.Assessment{
		mkAssessment("s1", "us-7480", models.Formative, models.Competent),
		mkAssessment("s1", "us-13913", models.Formative, models.Competent),
	}

	first := ComputeStudentProgress("s1", curriculum, assessments, 138)
	second := ComputeStudentProgress("s1", curriculum, assessments, 138)
	assert.Equal(t, first, second)

	assert.Equal(t, 8, first.TotalCreditsEarned) // 2 + 6
	assert.Equal(t, 6, first.OverallProgress)    // round(100 * 8 / 138)
	require.Len(t, first.PerModule, 6)
	assert.Equal(t, 2, first.PerModule[0].CreditsEarned)
	assert.Equal(t, 1, first.PerModule[0].UnitsComplete)
	assert.Equal(t, 3, first.PerModule[0].UnitsTotal)
}

func TestComputeStudentProgressMonotonicity(t *testing.T) {
	curriculum := testCurriculum()
	assessments := []*models.Assessment{
		mkAssessment("s1", "us-7480", models.Formative, models.Competent),
	}

	before := ComputeStudentProgress("s1", curriculum, assessments, 138)

	// Marking another unit standard competent never lowers the total.
	extra := append(assessments, mkAssessment("s1", "us-13911", models.Formative, models.Competent))
	after := ComputeStudentProgress("s1", curriculum, extra, 138)
	assert.GreaterOrEqual(t, after.TotalCreditsEarned, before.TotalCreditsEarned)
	assert.Equal(t, 5, after.TotalCreditsEarned)

	// Reverting it yields exactly the fresh recomputation, not a patched value.
	extra[1].Result = models.NotYetCompetent
	reverted := ComputeStudentProgress("s1", curriculum, extra, 138)
	assert.Equal(t, before.TotalCreditsEarned, reverted.TotalCreditsEarned)
}

func TestComputeStudentProgressSkipsUnknownUnits(t *testing.T) {
	curriculum := testCurriculum()
	assessments := []*models.Assessment{
		mkAssessment("s1", "us-ghost", models.Formative, models.Competent),
	}

	got := ComputeStudentProgress("s1", curriculum, assessments, 138)
	assert.Equal(t, 0, got.TotalCreditsEarned)
	assert.Equal(t, 0, got.OverallProgress)
}

func TestComputeGroupAssessmentStatusSingleStudentDualPass(t *testing.T) {
	curriculum := testCurriculum()
	students := []*models.Student{{ID: "s1", GroupID: "g1"}}
	assessments := []*models.Assessment{
		mkAssessment("s1", "us-7480", models.Formative, models.Competent),
		mkAssessment("s1", "us-7480", models.Summative, models.Competent),
	}

	status := ComputeGroupAssessmentStatus("g1", curriculum, students, assessments)

	assert.Equal(t, models.StatusComplete, status.StatusMap["us-7480"])
	assert.Equal(t, []string{"us-7480"}, status.CompletedIDs)
	assert.Equal(t, 2, status.EarnedCredits)

	// The same student's individual credit total includes the 2 credits.
	personal := ComputeStudentProgress("s1", curriculum, assessments, 138)
	assert.Equal(t, 2, personal.TotalCreditsEarned)
}

func TestComputeGroupAssessmentStatusFormativeOnly(t *testing.T) {
	curriculum := testCurriculum()
	students := []*models.Student{{ID: "s1", GroupID: "g1"}}
	assessments := []*models.Assessment{
		mkAssessment("s1", "us-13911", models.Formative, models.Competent), // 3 credits
	}

	status := ComputeGroupAssessmentStatus("g1", curriculum, students, assessments)

	// Stricter group rule: a formative pass alone is only in-progress.
	assert.Equal(t, models.StatusInProgress, status.StatusMap["us-13911"])
	assert.Empty(t, status.CompletedIDs)
	assert.Equal(t, 0, status.EarnedCredits)

	// Per-student rule still awards the credits.
	personal := ComputeStudentProgress("s1", curriculum, assessments, 138)
	assert.Equal(t, 3, personal.TotalCreditsEarned)
}

func TestComputeGroupAssessmentStatusEmptyGroup(t *testing.T) {
	curriculum := testCurriculum()

	status := ComputeGroupAssessmentStatus("g1", curriculum, nil, nil)

	assert.Equal(t, 0, status.EarnedCredits)
	assert.Empty(t, status.CompletedIDs)
	for id, st := range status.StatusMap {
		assert.NotEqual(t, models.StatusComplete, st, "unit standard %s", id)
	}
	// Every curriculum unit standard gets a status, even with no data, and
	// the empty result says why it is empty.
	assert.Len(t, status.StatusMap, 9)
	assert.Equal(t, "group has no students", status.Reason)
}

func TestComputeGroupAssessmentStatusNoAssessmentsReason(t *testing.T) {
	students := []*models.Student{{ID: "s1", GroupID: "g1"}}

	status := ComputeGroupAssessmentStatus("g1", testCurriculum(), students, nil)

	assert.Equal(t, "no assessments recorded for this group", status.Reason)
	assert.Equal(t, 0, status.EarnedCredits)
}

func scheduleBand() config.ToleranceBand {
	return config.ToleranceBand{AheadAbove: 10, BehindBelow: -5}
}

func classifyFixture() *models.RolloutPlan {
	plan, _ := GeneratePlan(testGroup("2026-02-01", "2026-12-31"), testWeights(), testCurriculum())
	return plan
}

func TestClassifyGroupScheduleOnTrack(t *testing.T) {
	plan := classifyFixture()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	// Module 1 fully complete, module 2 underway: roughly where the plan
	// expects the group to be. 18 credits earned of 138 at ~13% elapsed time.
	completed := map[string]bool{"us-7480": true, "us-13911": true, "us-13912": true}

	got := ClassifyGroupSchedule(plan, completed, 18, 138, now, scheduleBand())

	assert.Equal(t, 2, got.ProjectedModule)
	assert.Equal(t, 1, got.ActualModule)
	assert.Equal(t, models.ScheduleOnTrack, got.Status)
	// Module 1's planned end (01/03/2026) is 9 days behind 10/03: -1 week.
	assert.Equal(t, -1, got.WeeksAhead)
}

func TestClassifyGroupScheduleAhead(t *testing.T) {
	plan := classifyFixture()
	now := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)

	completed := map[string]bool{
		"us-7480": true, "us-13911": true, "us-13912": true,
		"us-13913": true, "us-13914": true,
	}

	got := ClassifyGroupSchedule(plan, completed, 20, 138, now, scheduleBand())

	assert.Equal(t, 1, got.ProjectedModule)
	assert.Equal(t, 2, got.ActualModule)
	assert.Equal(t, models.ScheduleAhead, got.Status)
	assert.Greater(t, got.WeeksAhead, 0)
}

func TestClassifyGroupScheduleBehind(t *testing.T) {
	plan := classifyFixture()
	now := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)

	got := ClassifyGroupSchedule(plan, map[string]bool{}, 0, 138, now, scheduleBand())

	assert.Equal(t, 1, got.ActualModule)
	assert.Equal(t, models.ScheduleBehind, got.Status)
}

func TestClassifyGroupSchedulePastPlanEnd(t *testing.T) {
	plan := classifyFixture()
	now := time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC)

	got := ClassifyGroupSchedule(plan, map[string]bool{}, 0, 138, now, scheduleBand())
	assert.Equal(t, 6, got.ProjectedModule)
}

func TestClassifyGroupScheduleNoPlan(t *testing.T) {
	got := ClassifyGroupSchedule(nil, nil, 0, 138, time.Now(), scheduleBand())
	require.NotNil(t, got)
	assert.Equal(t, models.ScheduleOnTrack, got.Status)
	assert.Equal(t, 1, got.ProjectedModule)
	assert.Equal(t, 1, got.ActualModule)
}
