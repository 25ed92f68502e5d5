package database

import (
	"database/sql"

	"github.com/sirashofficial/learnership-management-sub003/app/models"
)

// GetModulesWithUnitStandards returns the full curriculum in module-number
// order, unit standards ordered by their delivery sequence.
func GetModulesWithUnitStandards(db *sql.DB) ([]*models.Module, error) {
	rows, err := db.Query(`
		SELECT id, number, name, total_credits, created_at
		FROM modules
		ORDER BY number
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var modules []*models.Module
	byID := make(map[string]*models.Module)
	for rows.Next() {
		var m models.Module
		if err := rows.Scan(&m.ID, &m.Number, &m.Name, &m.TotalCredits, &m.CreatedAt); err != nil {
			return nil, err
		}
		modules = append(modules, &m)
		byID[m.ID] = &m
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	usRows, err := db.Query(`
		SELECT id, code, title, credits, module_id, sequence, created_at
		FROM unit_standards
		ORDER BY module_id, sequence
	`)
	if err != nil {
		return nil, err
	}
	defer usRows.Close()

	for usRows.Next() {
		var us models.UnitStandard
		if err := usRows.Scan(&us.ID, &us.Code, &us.Title, &us.Credits, &us.ModuleID, &us.Sequence, &us.CreatedAt); err != nil {
			return nil, err
		}
		if m, ok := byID[us.ModuleID]; ok {
			m.UnitStandards = append(m.UnitStandards, &us)
		}
	}
	return modules, usRows.Err()
}

// GetUnitStandards returns all unit standards in curriculum order.
func GetUnitStandards(db *sql.DB) ([]*models.UnitStandard, error) {
	rows, err := db.Query(`
		SELECT us.id, us.code, us.title, us.credits, us.module_id, us.sequence, us.created_at
		FROM unit_standards us
		JOIN modules m ON m.id = us.module_id
		ORDER BY m.number, us.sequence
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var standards []*models.UnitStandard
	for rows.Next() {
		var us models.UnitStandard
		if err := rows.Scan(&us.ID, &us.Code, &us.Title, &us.Credits, &us.ModuleID, &us.Sequence, &us.CreatedAt); err != nil {
			return nil, err
		}
		standards = append(standards, &us)
	}
	return standards, rows.Err()
}

// GetUnitStandardByID returns one unit standard, or sql.ErrNoRows.
func GetUnitStandardByID(db *sql.DB, id string) (*models.UnitStandard, error) {
	us := &models.UnitStandard{}
	err := db.QueryRow(`
		SELECT id, code, title, credits, module_id, sequence, created_at
		FROM unit_standards WHERE id = $1
	`, id).Scan(&us.ID, &us.Code, &us.Title, &us.Credits, &us.ModuleID, &us.Sequence, &us.CreatedAt)
	if err != nil {
		return nil, err
	}
	return us, nil
}
