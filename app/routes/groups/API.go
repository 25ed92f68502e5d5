package groups

import (
	"database/sql"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sirashofficial/learnership-management-sub003/app/config"
	"github.com/sirashofficial/learnership-management-sub003/app/database"
	"github.com/sirashofficial/learnership-management-sub003/app/models"
	"github.com/sirashofficial/learnership-management-sub003/app/services"
)

func GetGroupsAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	var (
		groupsList []*models.Group
		err        error
	)
	if c.Query("status") == "active" {
		groupsList, err = database.GetActiveGroups(db)
	} else {
		groupsList, err = database.GetAllGroups(db)
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch groups"})
	}

	return c.JSON(fiber.Map{
		"groups": groupsList,
		"count":  len(groupsList),
	})
}

func GetGroupAPI(c *fiber.Ctx) error {
	group, err := database.GetGroupByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Group not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch group"})
	}
	return c.JSON(fiber.Map{"group": group})
}

func CreateGroupAPI(c *fiber.Ctx) error {
	var group models.Group
	if err := c.BodyParser(&group); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if group.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Group name is required"})
	}
	if group.StartDate.IsZero() || group.EndDate.IsZero() {
		return c.Status(400).JSON(fiber.Map{"error": "Start date and end date are required"})
	}
	if group.EndDate.Before(group.StartDate) {
		return c.Status(400).JSON(fiber.Map{"error": "End date must be after start date"})
	}
	if group.Status == "" {
		group.Status = models.GroupActive
	}

	if err := database.CreateGroup(config.GetDB(), &group); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create group"})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Group created successfully", "group": group})
}

func UpdateGroupAPI(c *fiber.Ctx) error {
	existing, err := database.GetGroupByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Group not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch group"})
	}

	var group models.Group
	if err := c.BodyParser(&group); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	group.ID = existing.ID
	if group.Name == "" {
		group.Name = existing.Name
	}
	if group.StartDate.IsZero() {
		group.StartDate = existing.StartDate
	}
	if group.EndDate.IsZero() {
		group.EndDate = existing.EndDate
	}
	if group.Status == "" {
		group.Status = existing.Status
	}

	if err := database.UpdateGroup(config.GetDB(), &group); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update group"})
	}
	return c.JSON(fiber.Map{"message": "Group updated successfully", "group": group})
}

func DeleteGroupAPI(c *fiber.Ctx) error {
	if err := database.DeleteGroup(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete group"})
	}
	return c.JSON(fiber.Map{"message": "Group deleted successfully"})
}

func GetRolloutPlanAPI(c *fiber.Ctx) error {
	group, err := database.GetGroupByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Group not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch group"})
	}
	if group.RolloutPlan == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Group has no rollout plan"})
	}
	return c.JSON(fiber.Map{"plan": group.RolloutPlan})
}

// GenerateRolloutPlanAPI builds a fresh plan from the group dates and the
// current curriculum, replacing any stored plan. Warnings (an overrun past the
// group end date, a module with no weight entry) are returned alongside the
// plan, never as errors.
func GenerateRolloutPlanAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	group, err := database.GetGroupByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Group not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch group"})
	}

	curriculum, err := database.GetModulesWithUnitStandards(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch curriculum"})
	}
	if len(curriculum) == 0 {
		return c.Status(500).JSON(fiber.Map{"error": "Curriculum is not seeded"})
	}

	plan, warnings := services.GeneratePlan(group, config.GetEngine().ModuleWeights, curriculum)
	if err := database.UpsertGroupPlan(db, group.ID, plan); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to store rollout plan"})
	}

	for _, w := range warnings {
		log.Printf("Rollout plan for group %s: %s", group.ID, w)
	}

	return c.JSON(fiber.Map{
		"message":  "Rollout plan generated",
		"plan":     plan,
		"warnings": warnings,
	})
}

// RefreshRolloutPlanAPI realigns the stored plan's unit standard entries with
// the current curriculum. Surviving entries keep their scheduled dates; credits
// always come from the curriculum.
func RefreshRolloutPlanAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	group, err := database.GetGroupByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Group not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch group"})
	}
	if group.RolloutPlan == nil {
		return c.Status(400).JSON(fiber.Map{"error": "Group has no rollout plan to refresh"})
	}

	curriculum, err := database.GetModulesWithUnitStandards(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch curriculum"})
	}

	plan := services.RefreshUnitStandardSet(group.RolloutPlan, curriculum)
	if err := database.UpsertGroupPlan(db, group.ID, plan); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to store rollout plan"})
	}

	return c.JSON(fiber.Map{"message": "Rollout plan refreshed", "plan": plan})
}

func GetAssessmentStatusAPI(c *fiber.Ctx) error {
	status, _, err := loadGroupAssessmentStatus(c.Params("id"))
	if err != nil {
		return groupStatusError(c, err)
	}
	return c.JSON(fiber.Map{"status": status})
}

// GetScheduleStatusAPI classifies the group as ahead, on-track or behind by
// comparing earned credits against where the rollout plan says the group
// should be today.
func GetScheduleStatusAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	groupID := c.Params("id")

	status, group, err := loadGroupAssessmentStatus(groupID)
	if err != nil {
		return groupStatusError(c, err)
	}

	curriculum, err := database.GetModulesWithUnitStandards(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch curriculum"})
	}
	totalCredits := 0
	for _, m := range curriculum {
		totalCredits += m.TotalCredits
	}

	completedIDs := make(map[string]bool, len(status.CompletedIDs))
	for _, id := range status.CompletedIDs {
		completedIDs[id] = true
	}

	schedule := services.ClassifyGroupSchedule(group.RolloutPlan, completedIDs,
		status.EarnedCredits, totalCredits, time.Now(), config.GetEngine().Schedule)
	schedule.GroupID = groupID

	return c.JSON(fiber.Map{"schedule": schedule})
}

func GetReconciliationAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	group, err := database.GetGroupByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Group not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch group"})
	}

	curriculum, err := database.GetModulesWithUnitStandards(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch curriculum"})
	}

	report := services.ReconcileCurriculum(group.ID, group.RolloutPlan, curriculum)
	return c.JSON(fiber.Map{"report": report})
}

// loadGroupAssessmentStatus gathers the group, its students and their
// assessments, and runs the group-level aggregation. Shared by the
// assessment-status and schedule endpoints.
func loadGroupAssessmentStatus(groupID string) (*models.GroupAssessmentStatus, *models.Group, error) {
	db := config.GetDB()

	group, err := database.GetGroupByID(db, groupID)
	if err != nil {
		return nil, nil, err
	}

	curriculum, err := database.GetModulesWithUnitStandards(db)
	if err != nil {
		return nil, nil, err
	}
	studentsList, err := database.GetStudentsByGroup(db, groupID)
	if err != nil {
		return nil, nil, err
	}

	// An empty filter would match every assessment in the system, so a group
	// with no students skips the query entirely.
	var assessments []*models.Assessment
	if len(studentsList) > 0 {
		studentIDs := make([]string, len(studentsList))
		for i, s := range studentsList {
			studentIDs[i] = s.ID
		}
		assessments, err = database.GetAssessments(db, database.AssessmentFilters{StudentIDs: studentIDs})
		if err != nil {
			return nil, nil, err
		}
	}

	status := services.ComputeGroupAssessmentStatus(groupID, curriculum, studentsList, assessments)
	return status, group, nil
}

func groupStatusError(c *fiber.Ctx, err error) error {
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Group not found"})
	}
	return c.Status(500).JSON(fiber.Map{"error": "Failed to compute group status"})
}
