package services

import (
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/sirashofficial/learnership-management-sub003/app/config"
	"github.com/sirashofficial/learnership-management-sub003/app/database"
	"github.com/sirashofficial/learnership-management-sub003/app/models"
)

// Two completion definitions coexist on purpose. The per-student credit rule
// (StudentCompletedUnitStandards) counts a unit standard once a formative
// assessment is competent; the group-level rule (ComputeUnitStandardStatus)
// additionally demands a competent summative for every learner before it
// reports "complete". Dashboards rely on both views, so they stay separate
// named operations.

// ComputeUnitStandardStatus classifies one unit standard for a whole group.
// The assessments passed in must already be limited to this unit standard
// and to students of the group. The ladder is evaluated top down:
//
//	complete       — every student has a competent formative AND a competent
//	                 summative/integrated (empty groups are never complete)
//	summative-done — at least one student has a competent summative/integrated
//	in-progress    — any assessment rows exist at all
//	not-started    — no rows
func ComputeUnitStandardStatus(groupStudentIDs []string, assessments []*models.Assessment) models.UnitStandardStatus {
	if len(assessments) == 0 {
		return models.StatusNotStarted
	}

	formativeDone := make(map[string]bool)
	summativeDone := make(map[string]bool)
	for _, a := range assessments {
		if !a.IsCompetent() {
			continue
		}
		if a.Type == models.Formative {
			formativeDone[a.StudentID] = true
		} else if a.Type.IsSummative() {
			summativeDone[a.StudentID] = true
		}
	}

	if len(groupStudentIDs) > 0 {
		complete := true
		for _, id := range groupStudentIDs {
			if !formativeDone[id] || !summativeDone[id] {
				complete = false
				break
			}
		}
		if complete {
			return models.StatusComplete
		}
	}

	if len(summativeDone) > 0 {
		return models.StatusSummativeDone
	}

	// Any remaining rows, whatever their shape, count as in-progress. Once a
	// unit standard has assessment rows it never drops back to not-started.
	return models.StatusInProgress
}

// StudentCompletedUnitStandards applies the per-student credit rule to one
// student's assessments: a unit standard counts toward earned credits once at
// least one FORMATIVE assessment for it is COMPETENT. Returns the set of
// completed unit standard ids.
func StudentCompletedUnitStandards(assessments []*models.Assessment) map[string]bool {
	completed := make(map[string]bool)
	for _, a := range assessments {
		if a.UnitStandardID == nil {
			continue
		}
		if a.Type == models.Formative && a.IsCompetent() {
			completed[*a.UnitStandardID] = true
		}
	}
	return completed
}

// ComputeStudentProgress derives a student's full progress breakdown from the
// curriculum and their assessment rows. Pure: same inputs, same output. Unit
// standards referenced by assessments but missing from the curriculum simply
// contribute nothing.
func ComputeStudentProgress(studentID string, curriculum []*models.Module, assessments []*models.Assessment, creditsRequired int) *models.StudentProgress {
	completed := StudentCompletedUnitStandards(assessments)

	progress := &models.StudentProgress{
		StudentID:       studentID,
		CreditsRequired: creditsRequired,
	}

	for _, m := range curriculum {
		mp := &models.ModuleProgress{
			ModuleNumber: m.Number,
			ModuleName:   m.Name,
			UnitsTotal:   len(m.UnitStandards),
		}
		for _, us := range m.UnitStandards {
			mp.CreditsTotal += us.Credits
			if completed[us.ID] {
				mp.CreditsEarned += us.Credits
				mp.UnitsComplete++
			}
		}
		if mp.CreditsTotal > 0 {
			mp.PercentEarned = roundPercent(mp.CreditsEarned, mp.CreditsTotal)
		}
		progress.TotalCreditsEarned += mp.CreditsEarned
		progress.PerModule = append(progress.PerModule, mp)
	}

	if creditsRequired > 0 {
		progress.OverallProgress = roundPercent(progress.TotalCreditsEarned, creditsRequired)
	}
	return progress
}

func roundPercent(part, whole int) int {
	return int(math.Round(float64(part) * 100 / float64(whole)))
}

// RecalculateStudentProgress recomputes a student's denormalized progress
// fields from scratch and writes them back. Always a full recompute from the
// live assessment rows, never an incremental adjustment, so repeated calls
// with unchanged data are idempotent and stored totals can never drift.
func RecalculateStudentProgress(db *sql.DB, studentID string) (*models.StudentProgress, error) {
	if _, err := database.GetStudentByID(db, studentID); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("student %s not found", studentID)
		}
		return nil, fmt.Errorf("failed to load student %s: %v", studentID, err)
	}

	curriculum, err := database.GetModulesWithUnitStandards(db)
	if err != nil {
		return nil, fmt.Errorf("failed to load curriculum: %v", err)
	}
	assessments, err := database.GetAssessmentsByStudent(db, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load assessments: %v", err)
	}

	progress := ComputeStudentProgress(studentID, curriculum, assessments, config.GetEngine().TotalCreditsRequired)

	if err := database.UpdateStudentProgress(db, studentID, progress.TotalCreditsEarned, progress.OverallProgress); err != nil {
		return nil, fmt.Errorf("failed to store progress for student %s: %v", studentID, err)
	}
	return progress, nil
}

// ComputeGroupAssessmentStatus builds the group-level rollout/credit view:
// one status per curriculum unit standard, the set of completed ids, and the
// credits earned under the group-level completion rule. A group with no
// students yields an all not-started/in-progress map and zero credits.
func ComputeGroupAssessmentStatus(groupID string, curriculum []*models.Module, students []*models.Student, assessments []*models.Assessment) *models.GroupAssessmentStatus {
	studentIDs := make([]string, 0, len(students))
	for _, s := range students {
		studentIDs = append(studentIDs, s.ID)
	}

	byUnitStandard := make(map[string][]*models.Assessment)
	for _, a := range assessments {
		if a.UnitStandardID == nil {
			continue
		}
		byUnitStandard[*a.UnitStandardID] = append(byUnitStandard[*a.UnitStandardID], a)
	}

	status := &models.GroupAssessmentStatus{
		GroupID:      groupID,
		StatusMap:    make(map[string]models.UnitStandardStatus),
		CompletedIDs: []string{},
	}
	if len(students) == 0 {
		status.Reason = "group has no students"
	} else if len(assessments) == 0 {
		status.Reason = "no assessments recorded for this group"
	}
	for _, m := range curriculum {
		for _, us := range m.UnitStandards {
			st := ComputeUnitStandardStatus(studentIDs, byUnitStandard[us.ID])
			status.StatusMap[us.ID] = st
			if st == models.StatusComplete {
				status.CompletedIDs = append(status.CompletedIDs, us.ID)
				status.EarnedCredits += us.Credits
			}
		}
	}
	return status
}

// ClassifyGroupSchedule compares a group's actual completion against its
// rollout plan as of "now".
//
// The projected module is the one whose planned range contains today; when
// today falls in a gap the nearest future module is used, and past the plan
// end the last module. The actual module is the highest module for which
// every planned unit standard is in the completed set, defaulting to 1.
// WeeksAhead is the distance from today to the actual module's planned end,
// in whole weeks rounded toward zero; positive means ahead of plan.
//
// The three-way status comes from comparing credit progress against time
// progress in percentage points, classified by the configured band.
func ClassifyGroupSchedule(plan *models.RolloutPlan, completedIDs map[string]bool, completedCredits, totalCredits int, now time.Time, band config.ToleranceBand) *models.GroupScheduleStatus {
	result := &models.GroupScheduleStatus{
		ProjectedModule: 1,
		ActualModule:    1,
		Status:          models.ScheduleOnTrack,
	}
	if plan == nil || len(plan.Modules) == 0 {
		return result
	}

	today := models.NewPlanDate(now)

	projected := 0
	for _, mp := range plan.Modules {
		if !mp.StartDate.Valid() || !mp.EndDate.Valid() {
			continue
		}
		if !today.Before(mp.StartDate) && !today.After(mp.EndDate) {
			projected = mp.ModuleNumber
			break
		}
		if today.Before(mp.StartDate) && projected == 0 {
			projected = mp.ModuleNumber
			break
		}
	}
	if projected == 0 {
		// Past the end of the plan.
		projected = plan.Modules[len(plan.Modules)-1].ModuleNumber
	}
	result.ProjectedModule = projected

	actual := 1
	var actualEnd models.PlanDate
	for _, mp := range plan.Modules {
		if len(mp.UnitStandards) == 0 {
			continue
		}
		done := true
		for _, usp := range mp.UnitStandards {
			if !completedIDs[usp.ID] {
				done = false
				break
			}
		}
		if done && mp.ModuleNumber > actual {
			actual = mp.ModuleNumber
			actualEnd = mp.EndDate
		} else if done && mp.ModuleNumber == 1 {
			actualEnd = mp.EndDate
		}
	}
	result.ActualModule = actual

	if actualEnd.Valid() {
		result.WeeksAhead = today.DaysUntil(actualEnd) / 7
	}

	expected := 0.0
	if plan.StartDate.Valid() && plan.EndDate.Valid() {
		total := plan.StartDate.DaysUntil(plan.EndDate)
		if total > 0 {
			expected = float64(plan.StartDate.DaysUntil(today)) * 100 / float64(total)
			expected = math.Max(0, math.Min(100, expected))
		}
	}
	actualPct := 0.0
	if totalCredits > 0 {
		actualPct = float64(completedCredits) * 100 / float64(totalCredits)
	}
	result.ExpectedPercent = int(math.Round(expected))
	result.ActualPercent = int(math.Round(actualPct))

	diff := actualPct - expected
	switch {
	case diff > band.AheadAbove:
		result.Status = models.ScheduleAhead
	case diff < band.BehindBelow:
		result.Status = models.ScheduleBehind
	default:
		result.Status = models.ScheduleOnTrack
	}
	return result
}
