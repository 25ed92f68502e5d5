package database

import (
	"database/sql"
	"encoding/json"

	"github.com/sirashofficial/learnership-management-sub003/app/models"
)

func scanGroup(row interface{ Scan(...interface{}) error }) (*models.Group, error) {
	g := &models.Group{}
	var planBlob []byte
	err := row.Scan(
		&g.ID, &g.Name, &g.StartDate, &g.EndDate, &g.Status, &g.FacilitatorID,
		&planBlob, &g.StudentCount, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(planBlob) > 0 {
		var plan models.RolloutPlan
		if err := json.Unmarshal(planBlob, &plan); err == nil {
			g.RolloutPlan = &plan
		}
		// A corrupt blob is treated as "no plan"; the reconciliation
		// endpoint is the place that reports it.
	}
	return g, nil
}

const groupSelect = `
	SELECT g.id, g.name, g.start_date, g.end_date, g.status, g.facilitator_id,
		   g.rollout_plan,
		   (SELECT COUNT(*) FROM students s WHERE s.group_id = g.id AND s.deleted_at IS NULL),
		   g.created_at, g.updated_at
	FROM groups g
`

func GetAllGroups(db *sql.DB) ([]*models.Group, error) {
	rows, err := db.Query(groupSelect + ` WHERE g.deleted_at IS NULL ORDER BY g.start_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []*models.Group
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func GetActiveGroups(db *sql.DB) ([]*models.Group, error) {
	rows, err := db.Query(groupSelect+` WHERE g.deleted_at IS NULL AND g.status = $1 ORDER BY g.start_date`, models.GroupActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []*models.Group
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func GetGroupByID(db *sql.DB, id string) (*models.Group, error) {
	return scanGroup(db.QueryRow(groupSelect+` WHERE g.id = $1 AND g.deleted_at IS NULL`, id))
}

func CreateGroup(db *sql.DB, g *models.Group) error {
	return db.QueryRow(`
		INSERT INTO groups (name, start_date, end_date, status, facilitator_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, g.Name, g.StartDate, g.EndDate, g.Status, g.FacilitatorID).Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
}

func UpdateGroup(db *sql.DB, g *models.Group) error {
	_, err := db.Exec(`
		UPDATE groups
		SET name = $1, start_date = $2, end_date = $3, status = $4, facilitator_id = $5, updated_at = NOW()
		WHERE id = $6 AND deleted_at IS NULL
	`, g.Name, g.StartDate, g.EndDate, g.Status, g.FacilitatorID, g.ID)
	return err
}

func DeleteGroup(db *sql.DB, id string) error {
	_, err := db.Exec(`UPDATE groups SET deleted_at = NOW() WHERE id = $1`, id)
	return err
}

// UpsertGroupPlan replaces the group's rollout plan blob wholesale. A nil
// plan clears it.
func UpsertGroupPlan(db *sql.DB, groupID string, plan *models.RolloutPlan) error {
	if plan == nil {
		_, err := db.Exec(`UPDATE groups SET rollout_plan = NULL, updated_at = NOW() WHERE id = $1`, groupID)
		return err
	}
	blob, err := json.Marshal(plan)
	if err != nil {
		return err
	}
	_, err = db.Exec(`UPDATE groups SET rollout_plan = $1, updated_at = NOW() WHERE id = $2`, blob, groupID)
	return err
}
