package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/sirashofficial/learnership-management-sub003/app/models"
)

// AssessmentFilters represents filtering options for assessments
type AssessmentFilters struct {
	StudentIDs      []string
	UnitStandardIDs []string
	Type            string
	Result          string
}

const assessmentColumns = `id, student_id, unit_standard_id, type, result, score,
	due_date, assessed_at, marked_by, created_at, updated_at`

func scanAssessment(row interface{ Scan(...interface{}) error }) (*models.Assessment, error) {
	a := &models.Assessment{}
	var result sql.NullString
	err := row.Scan(
		&a.ID, &a.StudentID, &a.UnitStandardID, &a.Type, &result, &a.Score,
		&a.DueDate, &a.AssessedAt, &a.MarkedBy, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.Result = models.AssessmentResult(result.String)
	return a, nil
}

// GetAssessments returns assessments matching the filter, most recent first.
func GetAssessments(db *sql.DB, filters AssessmentFilters) ([]*models.Assessment, error) {
	query := `SELECT ` + assessmentColumns + ` FROM assessments WHERE deleted_at IS NULL`
	var args []interface{}

	if len(filters.StudentIDs) > 0 {
		args = append(args, pq.Array(filters.StudentIDs))
		query += fmt.Sprintf(" AND student_id = ANY($%d)", len(args))
	}
	if len(filters.UnitStandardIDs) > 0 {
		args = append(args, pq.Array(filters.UnitStandardIDs))
		query += fmt.Sprintf(" AND unit_standard_id = ANY($%d)", len(args))
	}
	if filters.Type != "" {
		args = append(args, filters.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filters.Result != "" {
		args = append(args, filters.Result)
		query += fmt.Sprintf(" AND result = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assessments []*models.Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		assessments = append(assessments, a)
	}
	return assessments, rows.Err()
}

func GetAssessmentByID(db *sql.DB, id string) (*models.Assessment, error) {
	return scanAssessment(db.QueryRow(`SELECT `+assessmentColumns+` FROM assessments WHERE id = $1 AND deleted_at IS NULL`, id))
}

func GetAssessmentsByStudent(db *sql.DB, studentID string) ([]*models.Assessment, error) {
	return GetAssessments(db, AssessmentFilters{StudentIDs: []string{studentID}})
}

func CreateAssessment(db *sql.DB, a *models.Assessment) error {
	return db.QueryRow(`
		INSERT INTO assessments (student_id, unit_standard_id, type, result, score, due_date, assessed_at, marked_by)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, a.StudentID, a.UnitStandardID, a.Type, string(a.Result), a.Score, a.DueDate, a.AssessedAt, a.MarkedBy).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

// UpdateAssessment writes the marked fields back. The assessed date is set
// the first time a result leaves PENDING and untouched afterwards.
func UpdateAssessment(db *sql.DB, a *models.Assessment) error {
	if a.AssessedAt == nil && a.Result != "" && a.Result != models.Pending {
		now := time.Now()
		a.AssessedAt = &now
	}
	_, err := db.Exec(`
		UPDATE assessments
		SET type = $1, result = NULLIF($2, ''), score = $3, due_date = $4, assessed_at = $5, marked_by = $6, updated_at = NOW()
		WHERE id = $7 AND deleted_at IS NULL
	`, a.Type, string(a.Result), a.Score, a.DueDate, a.AssessedAt, a.MarkedBy, a.ID)
	return err
}

func DeleteAssessment(db *sql.DB, id string) error {
	_, err := db.Exec(`UPDATE assessments SET deleted_at = NOW() WHERE id = $1`, id)
	return err
}

// CreateInitialAssessments creates one PENDING formative assessment per
// curriculum unit standard for a newly enrolled student, skipping any pair
// that already exists.
func CreateInitialAssessments(db *sql.DB, studentID string) (int, error) {
	res, err := db.Exec(`
		INSERT INTO assessments (student_id, unit_standard_id, type, result)
		SELECT $1, us.id, $2, $3
		FROM unit_standards us
		WHERE NOT EXISTS (
			SELECT 1 FROM assessments a
			WHERE a.student_id = $1 AND a.unit_standard_id = us.id AND a.deleted_at IS NULL
		)
	`, studentID, models.Formative, models.Pending)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}
