package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sirashofficial/learnership-management-sub003/app/models"
)

// GetDashboardStats fills the count and rate fields of the dashboard view.
// Group schedule classification is layered on by the caller, which has the
// rollout plans at hand.
func GetDashboardStats(db *sql.DB) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{
		GroupsBySchedule: make(map[models.ScheduleStatus]int),
	}

	err := db.QueryRow(`
		SELECT COUNT(*) FILTER (WHERE is_active = true),
			   COALESCE(AVG(progress) FILTER (WHERE is_active = true), 0)
		FROM students
		WHERE deleted_at IS NULL
	`).Scan(&stats.TotalStudents, &stats.AverageProgress)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`
		SELECT COUNT(*),
			   COUNT(*) FILTER (WHERE status = 'active')
		FROM groups
		WHERE deleted_at IS NULL
	`).Scan(&stats.TotalGroups, &stats.ActiveGroups)
	if err != nil {
		return nil, err
	}

	stats.StudentAttendance, err = GetAttendanceRate(db)
	if err != nil {
		return nil, err
	}

	stats.RecentActivities, err = getRecentActivities(db)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// getRecentActivities merges the latest marked assessments and enrolments
// into a single feed, newest first.
func getRecentActivities(db *sql.DB) ([]models.Activity, error) {
	rows, err := db.Query(`
		SELECT 'assessment', s.first_name || ' ' || s.last_name, us.code, a.result, a.updated_at
		FROM assessments a
		JOIN students s ON s.id = a.student_id
		LEFT JOIN unit_standards us ON us.id = a.unit_standard_id
		WHERE a.result IN ('COMPETENT', 'NOT_YET_COMPETENT') AND a.deleted_at IS NULL
		ORDER BY a.updated_at DESC
		LIMIT 5
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []models.Activity
	for rows.Next() {
		var typ, name, result string
		var code sql.NullString
		var at time.Time
		if err := rows.Scan(&typ, &name, &code, &result, &at); err != nil {
			return nil, err
		}
		activities = append(activities, models.Activity{
			Type:        typ,
			Title:       fmt.Sprintf("Assessment marked %s", result),
			Description: fmt.Sprintf("%s - unit standard %s", name, code.String),
			TimeAgo:     timeAgo(at),
			RawTime:     at,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = db.Query(`
		SELECT s.first_name || ' ' || s.last_name, g.name, s.created_at
		FROM students s
		JOIN groups g ON g.id = s.group_id
		WHERE s.deleted_at IS NULL
		ORDER BY s.created_at DESC
		LIMIT 3
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var name, groupName string
		var at time.Time
		if err := rows.Scan(&name, &groupName, &at); err != nil {
			return nil, err
		}
		activities = append(activities, models.Activity{
			Type:        "enrolment",
			Title:       "New student enrolled",
			Description: fmt.Sprintf("%s - %s", name, groupName),
			TimeAgo:     timeAgo(at),
			RawTime:     at,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Interleave by recency.
	for i := 1; i < len(activities); i++ {
		for j := i; j > 0 && activities[j].RawTime.After(activities[j-1].RawTime); j-- {
			activities[j], activities[j-1] = activities[j-1], activities[j]
		}
	}
	return activities, nil
}

func timeAgo(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%d minutes ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%d days ago", int(d.Hours()/24))
	}
}
