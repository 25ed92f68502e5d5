package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirashofficial/learnership-management-sub003/app/config"
	"github.com/sirashofficial/learnership-management-sub003/app/models"
)

func testWeights() []config.ModuleWeight {
	return []config.ModuleWeight{
		{ModuleNumber: 1, Months: 1},
		{ModuleNumber: 2, Months: 1, ExtraDays: 15},
		{ModuleNumber: 3, Months: 1, ExtraDays: 15},
		{ModuleNumber: 4, Months: 1, ExtraDays: 15},
		{ModuleNumber: 5, Months: 2},
		{ModuleNumber: 6, Months: 2},
	}
}

func testCurriculum() []*models.Module {
	curriculum := []*models.Module{
		{ID: "m1", Number: 1, Name: "Module 1", UnitStandards: []*models.UnitStandard{
			{ID: "us-7480", Code: "7480", Title: "Number systems", Credits: 2, ModuleID: "m1"},
			{ID: "us-13911", Code: "13911", Title: "Code of conduct", Credits: 3, ModuleID: "m1"},
			{ID: "us-13912", Code: "13912", Title: "Team performance", Credits: 5, ModuleID: "m1"},
		}},
		{ID: "m2", Number: 2, Name: "Module 2", UnitStandards: []*models.UnitStandard{
			{ID: "us-13913", Code: "13913", Title: "Business principles", Credits: 6, ModuleID: "m2"},
			{ID: "us-13914", Code: "13914", Title: "Financial transactions", Credits: 4, ModuleID: "m2"},
		}},
		{ID: "m3", Number: 3, Name: "Module 3", UnitStandards: []*models.UnitStandard{
			{ID: "us-13910", Code: "13910", Title: "Induct a new member", Credits: 6, ModuleID: "m3"},
		}},
		{ID: "m4", Number: 4, Name: "Module 4", UnitStandards: []*models.UnitStandard{
			{ID: "us-13937", Code: "13937", Title: "Receiving visitors", Credits: 8, ModuleID: "m4"},
		}},
		{ID: "m5", Number: 5, Name: "Module 5", UnitStandards: []*models.UnitStandard{
			{ID: "us-13931", Code: "13931", Title: "Office equipment", Credits: 9, ModuleID: "m5"},
		}},
		{ID: "m6", Number: 6, Name: "Module 6", UnitStandards: []*models.UnitStandard{
			{ID: "us-13938", Code: "13938", Title: "Office supplies", Credits: 10, ModuleID: "m6"},
		}},
	}
	for _, m := range curriculum {
		for _, us := range m.UnitStandards {
			m.TotalCredits += us.Credits
		}
	}
	return curriculum
}

func testGroup(start, end string) *models.Group {
	s, _ := time.Parse("2006-01-02", start)
	e, _ := time.Parse("2006-01-02", end)
	return &models.Group{ID: "g1", Name: "Group Alpha", StartDate: s, EndDate: e, StudentCount: 12}
}

func TestGeneratePlanModuleDates(t *testing.T) {
	group := testGroup("2026-02-01", "2026-12-31")

	plan, _ := GeneratePlan(group, testWeights(), testCurriculum())
	require.Len(t, plan.Modules, 6)

	assert.Equal(t, "01/02/2026", plan.Modules[0].StartDate.String())
	assert.Equal(t, "01/03/2026", plan.Modules[0].EndDate.String())

	// Module 2 starts the day after module 1 ends and runs 1 month + 15 days.
	assert.Equal(t, "02/03/2026", plan.Modules[1].StartDate.String())
	assert.Equal(t, "17/04/2026", plan.Modules[1].EndDate.String())

	assert.Equal(t, plan.StartDate, plan.Modules[0].StartDate)
	assert.Equal(t, plan.EndDate, plan.Modules[5].EndDate)
	assert.Equal(t, "Group Alpha", plan.GroupName)
	assert.Equal(t, 12, plan.NumLearners)
}

func TestGeneratePlanContiguity(t *testing.T) {
	plan, _ := GeneratePlan(testGroup("2026-02-01", "2026-12-31"), testWeights(), testCurriculum())

	for i := 0; i < len(plan.Modules)-1; i++ {
		prev, next := plan.Modules[i], plan.Modules[i+1]
		assert.Equal(t, prev.EndDate.AddDays(1), next.StartDate,
			"module %d must start the day after module %d ends", next.ModuleNumber, prev.ModuleNumber)
	}
}

func TestGeneratePlanOverrunWarning(t *testing.T) {
	// Group end date far too early: the full plan is still produced.
	group := testGroup("2026-02-01", "2026-04-30")

	plan, warnings := GeneratePlan(group, testWeights(), testCurriculum())
	require.Len(t, plan.Modules, 6)
	assert.True(t, plan.EndDate.After(models.NewPlanDate(group.EndDate)))
	require.NotEmpty(t, warnings)
	assert.Contains(t, warnings[len(warnings)-1], "after the group end date")
}

func TestGeneratePlanUnitStandardWindows(t *testing.T) {
	plan, _ := GeneratePlan(testGroup("2026-02-01", "2026-12-31"), testWeights(), testCurriculum())

	for _, mp := range plan.Modules {
		require.NotEmpty(t, mp.UnitStandards, "module %d", mp.ModuleNumber)

		first := mp.UnitStandards[0]
		last := mp.UnitStandards[len(mp.UnitStandards)-1]
		assert.Equal(t, mp.StartDate, first.StartDate)
		assert.Equal(t, mp.EndDate, last.EndDate)

		for _, usp := range mp.UnitStandards {
			assert.False(t, usp.AssessingDate.Before(usp.StartDate), "us %s", usp.Code)
			assert.False(t, usp.AssessingDate.After(usp.EndDate), "us %s", usp.Code)
			assert.Equal(t, usp.EndDate, usp.SummativeDate, "us %s", usp.Code)
			assert.Greater(t, usp.Credits, 0, "us %s", usp.Code)
		}
	}
}

func TestGeneratePlanRoundTrip(t *testing.T) {
	plan, _ := GeneratePlan(testGroup("2026-02-01", "2026-12-31"), testWeights(), testCurriculum())

	blob, err := json.Marshal(plan)
	require.NoError(t, err)

	var parsed models.RolloutPlan
	require.NoError(t, json.Unmarshal(blob, &parsed))
	assert.Equal(t, plan, &parsed)
}

func TestRefreshUnitStandardSet(t *testing.T) {
	curriculum := testCurriculum()
	plan, _ := GeneratePlan(testGroup("2026-02-01", "2026-12-31"), testWeights(), curriculum)

	// A facilitator adjusted one window by hand.
	plan.Modules[0].UnitStandards[0].StartDate = models.ParsePlanDate("05/02/2026")
	plan.Modules[0].UnitStandards[0].AssessingDate = models.ParsePlanDate("20/02/2026")

	// New curriculum: 7480 dropped from module 1, a new code added, and a
	// credit value corrected.
	updated := testCurriculum()
	updated[0].UnitStandards = []*models.UnitStandard{
		{ID: "us-13911", Code: "13911", Title: "Code of conduct", Credits: 4, ModuleID: "m1"},
		{ID: "us-13912", Code: "13912", Title: "Team performance", Credits: 5, ModuleID: "m1"},
		{ID: "us-119567", Code: "119567", Title: "Business calculations", Credits: 8, ModuleID: "m1"},
	}

	refreshed := RefreshUnitStandardSet(plan, updated)

	require.Len(t, refreshed.Modules, 6)
	m1 := refreshed.Modules[0]
	require.Len(t, m1.UnitStandards, 3)

	codes := []string{m1.UnitStandards[0].Code, m1.UnitStandards[1].Code, m1.UnitStandards[2].Code}
	assert.Equal(t, []string{"13911", "13912", "119567"}, codes)

	// Surviving codes keep their previously entered dates.
	assert.Equal(t, plan.Modules[0].UnitStandards[1].StartDate, m1.UnitStandards[0].StartDate)
	// Credit values follow the curriculum, not the stored plan.
	assert.Equal(t, 4, m1.UnitStandards[0].Credits)
	// New codes arrive as date-less placeholders.
	assert.False(t, m1.UnitStandards[2].StartDate.Valid())
	assert.False(t, m1.UnitStandards[2].SummativeDate.Valid())
	// Plan header survives the refresh.
	assert.Equal(t, plan.GroupName, refreshed.GroupName)
	assert.Equal(t, plan.StartDate, refreshed.StartDate)
}

func TestDistributeLessonDays(t *testing.T) {
	usp := &models.UnitStandardPlan{
		Code:      "13913",
		StartDate: models.ParsePlanDate("02/03/2026"), // Monday
		EndDate:   models.ParsePlanDate("08/03/2026"), // Sunday
	}

	sessions := DistributeLessonDays(usp, []string{"intro", "practice", "review"})
	require.Len(t, sessions, 3)

	for _, s := range sessions {
		wd := s.Date.Time.Weekday()
		assert.NotEqual(t, time.Saturday, wd)
		assert.NotEqual(t, time.Sunday, wd)
		assert.False(t, s.Date.Before(usp.StartDate))
		assert.False(t, s.Date.After(usp.EndDate))
	}
	assert.Equal(t, "intro", sessions[0].Objective)

	assert.Nil(t, DistributeLessonDays(usp, nil))
	assert.Nil(t, DistributeLessonDays(&models.UnitStandardPlan{}, []string{"x"}))
}
