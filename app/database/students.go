package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/sirashofficial/learnership-management-sub003/app/models"
)

// StudentFilters represents filtering options for students
type StudentFilters struct {
	Search    string
	GroupID   string
	Status    string
	Gender    string
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

const studentColumns = `id, first_name, last_name, id_number, email, phone, gender, group_id,
	is_active, progress, total_credits_earned, created_at, updated_at`

func scanStudent(row interface{ Scan(...interface{}) error }) (*models.Student, error) {
	s := &models.Student{}
	var email, phone, gender sql.NullString
	err := row.Scan(
		&s.ID, &s.FirstName, &s.LastName, &s.IDNumber, &email, &phone, &gender,
		&s.GroupID, &s.IsActive, &s.Progress, &s.TotalCreditsEarned, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.Email = email.String
	s.Phone = phone.String
	s.Gender = models.Gender(gender.String)
	return s, nil
}

func GetStudents(db *sql.DB, filters StudentFilters) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE deleted_at IS NULL`
	var args []interface{}

	if filters.Search != "" {
		args = append(args, "%"+strings.ToLower(filters.Search)+"%")
		query += fmt.Sprintf(" AND (LOWER(first_name) LIKE $%d OR LOWER(last_name) LIKE $%d OR id_number LIKE $%d)", len(args), len(args), len(args))
	}
	if filters.GroupID != "" {
		args = append(args, filters.GroupID)
		query += fmt.Sprintf(" AND group_id = $%d", len(args))
	}
	if filters.Status == "active" {
		query += " AND is_active = true"
	} else if filters.Status == "inactive" {
		query += " AND is_active = false"
	}
	if filters.Gender != "" {
		args = append(args, filters.Gender)
		query += fmt.Sprintf(" AND gender = $%d", len(args))
	}

	sortBy := "last_name"
	switch filters.SortBy {
	case "first_name", "created_at", "progress", "total_credits_earned":
		sortBy = filters.SortBy
	}
	order := "ASC"
	if strings.EqualFold(filters.SortOrder, "desc") {
		order = "DESC"
	}
	query += fmt.Sprintf(" ORDER BY %s %s", sortBy, order)

	if filters.Limit > 0 {
		args = append(args, filters.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filters.Offset > 0 {
		args = append(args, filters.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

func GetStudentByID(db *sql.DB, id string) (*models.Student, error) {
	return scanStudent(db.QueryRow(`SELECT `+studentColumns+` FROM students WHERE id = $1 AND deleted_at IS NULL`, id))
}

func GetStudentsByGroup(db *sql.DB, groupID string) ([]*models.Student, error) {
	return GetStudents(db, StudentFilters{GroupID: groupID, Status: "active"})
}

func CreateStudent(db *sql.DB, s *models.Student) error {
	return db.QueryRow(`
		INSERT INTO students (first_name, last_name, id_number, email, phone, gender, group_id)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), $7)
		RETURNING id, created_at, updated_at
	`, s.FirstName, s.LastName, s.IDNumber, s.Email, s.Phone, string(s.Gender), s.GroupID).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func UpdateStudent(db *sql.DB, s *models.Student) error {
	_, err := db.Exec(`
		UPDATE students
		SET first_name = $1, last_name = $2, id_number = $3, email = NULLIF($4, ''),
			phone = NULLIF($5, ''), gender = NULLIF($6, ''), group_id = $7, is_active = $8, updated_at = NOW()
		WHERE id = $9 AND deleted_at IS NULL
	`, s.FirstName, s.LastName, s.IDNumber, s.Email, s.Phone, string(s.Gender), s.GroupID, s.IsActive, s.ID)
	return err
}

func DeleteStudent(db *sql.DB, id string) error {
	_, err := db.Exec(`UPDATE students SET deleted_at = NOW() WHERE id = $1`, id)
	return err
}

// UpdateStudentProgress overwrites the denormalized progress fields. Only the
// progress recalculation (and the explicit admin override path) call this.
func UpdateStudentProgress(db *sql.DB, studentID string, totalCreditsEarned, progress int) error {
	_, err := db.Exec(`
		UPDATE students SET total_credits_earned = $1, progress = $2, updated_at = NOW()
		WHERE id = $3
	`, totalCreditsEarned, progress, studentID)
	return err
}
