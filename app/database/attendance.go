package database

import (
	"database/sql"
	"time"

	"github.com/sirashofficial/learnership-management-sub003/app/models"
)

func GetAttendanceByGroupAndDate(db *sql.DB, groupID string, date time.Time) ([]*models.Attendance, error) {
	rows, err := db.Query(`
		SELECT a.id, a.student_id, a.group_id, a.date, a.status, COALESCE(a.notes, ''), a.marked_by, a.created_at, a.updated_at,
			   s.first_name, s.last_name
		FROM attendance a
		JOIN students s ON s.id = a.student_id
		WHERE a.group_id = $1 AND a.date = $2
		ORDER BY s.last_name, s.first_name
	`, groupID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		a := &models.Attendance{Student: &models.Student{}}
		err := rows.Scan(
			&a.ID, &a.StudentID, &a.GroupID, &a.Date, &a.Status, &a.Notes, &a.MarkedBy,
			&a.CreatedAt, &a.UpdatedAt, &a.Student.FirstName, &a.Student.LastName,
		)
		if err != nil {
			return nil, err
		}
		a.Student.ID = a.StudentID
		records = append(records, a)
	}
	return records, rows.Err()
}

// UpsertAttendance records or corrects a student's attendance for a date.
func UpsertAttendance(db *sql.DB, a *models.Attendance) error {
	return db.QueryRow(`
		INSERT INTO attendance (student_id, group_id, date, status, notes, marked_by)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
		ON CONFLICT (student_id, date)
		DO UPDATE SET status = EXCLUDED.status, notes = EXCLUDED.notes, marked_by = EXCLUDED.marked_by, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`, a.StudentID, a.GroupID, a.Date, a.Status, a.Notes, a.MarkedBy).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

// GetAttendanceRate returns the share of present/late records over the last
// 30 days across all groups, as a percentage.
func GetAttendanceRate(db *sql.DB) (float64, error) {
	var total, present int
	err := db.QueryRow(`
		SELECT COUNT(*),
			   COUNT(*) FILTER (WHERE status IN ('present', 'late'))
		FROM attendance
		WHERE date >= CURRENT_DATE - INTERVAL '30 days'
	`).Scan(&total, &present)
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}
	return float64(present) * 100 / float64(total), nil
}
