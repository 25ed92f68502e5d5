package models

import "time"

// ModuleProgress is the per-module slice of a student's progress breakdown.
type ModuleProgress struct {
	ModuleNumber  int    `json:"module_number"`
	ModuleName    string `json:"module_name"`
	CreditsEarned int    `json:"credits_earned"`
	CreditsTotal  int    `json:"credits_total"`
	UnitsComplete int    `json:"units_complete"`
	UnitsTotal    int    `json:"units_total"`
	PercentEarned int    `json:"percent_earned"`
}

// StudentProgress is the full recomputed progress view for one student.
type StudentProgress struct {
	StudentID          string            `json:"student_id"`
	TotalCreditsEarned int               `json:"total_credits_earned"`
	CreditsRequired    int               `json:"credits_required"`
	OverallProgress    int               `json:"overall_progress"`
	PerModule          []*ModuleProgress `json:"module_progress"`
}

// GroupAssessmentStatus is the group-level rollout/credit view consumed by
// the dashboards: one status per unit standard plus the credit roll-up.
type GroupAssessmentStatus struct {
	GroupID       string                        `json:"group_id"`
	StatusMap     map[string]UnitStandardStatus `json:"statusMap"`
	CompletedIDs  []string                      `json:"completedIds"`
	EarnedCredits int                           `json:"earnedCredits"`
	Reason        string                        `json:"reason,omitempty"`
}

// GroupScheduleStatus compares a group's actual completion against its
// rollout plan.
type GroupScheduleStatus struct {
	GroupID         string         `json:"group_id"`
	ProjectedModule int            `json:"projected_module"`
	ActualModule    int            `json:"actual_module"`
	WeeksAhead      int            `json:"weeks_ahead"`
	Status          ScheduleStatus `json:"status"`
	ExpectedPercent int            `json:"expected_percent"`
	ActualPercent   int            `json:"actual_percent"`
}

// ReconciliationReport lists the mismatches between a stored rollout plan and
// the curriculum reference data. Produced once by the reconciliation
// endpoint instead of resurfacing on every aggregate read.
type ReconciliationReport struct {
	GroupID          string   `json:"group_id"`
	UnknownPlanCodes []string `json:"unknown_plan_codes"`
	MissingFromPlan  []string `json:"missing_from_plan"`
	Clean            bool     `json:"clean"`
}

// DashboardStats is the landing-page summary.
type DashboardStats struct {
	TotalStudents     int                    `json:"total_students"`
	TotalGroups       int                    `json:"total_groups"`
	ActiveGroups      int                    `json:"active_groups"`
	StudentAttendance float64                `json:"student_attendance"`
	AverageProgress   float64                `json:"average_progress"`
	GroupsBySchedule  map[ScheduleStatus]int `json:"groups_by_schedule"`
	RecentActivities  []Activity             `json:"recent_activities"`
}

// Activity is one recent-activity feed entry on the dashboard.
type Activity struct {
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	TimeAgo     string    `json:"time_ago"`
	RawTime     time.Time `json:"-"`
}
