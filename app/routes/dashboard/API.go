package dashboard

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sirashofficial/learnership-management-sub003/app/config"
	"github.com/sirashofficial/learnership-management-sub003/app/database"
	"github.com/sirashofficial/learnership-management-sub003/app/models"
	"github.com/sirashofficial/learnership-management-sub003/app/services"
)

// GetDashboardStatsAPI returns the overview numbers plus a classification of
// every active group against its rollout plan.
func GetDashboardStatsAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	stats, err := database.GetDashboardStats(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard statistics"})
	}

	curriculum, err := database.GetModulesWithUnitStandards(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch curriculum"})
	}
	totalCredits := 0
	for _, m := range curriculum {
		totalCredits += m.TotalCredits
	}

	activeGroups, err := database.GetActiveGroups(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch groups"})
	}

	now := time.Now()
	for _, group := range activeGroups {
		studentsList, err := database.GetStudentsByGroup(db, group.ID)
		if err != nil {
			log.Printf("Dashboard: failed to load students for group %s: %v", group.ID, err)
			continue
		}

		var assessments []*models.Assessment
		if len(studentsList) > 0 {
			studentIDs := make([]string, len(studentsList))
			for i, s := range studentsList {
				studentIDs[i] = s.ID
			}
			assessments, err = database.GetAssessments(db, database.AssessmentFilters{StudentIDs: studentIDs})
			if err != nil {
				log.Printf("Dashboard: failed to load assessments for group %s: %v", group.ID, err)
				continue
			}
		}

		status := services.ComputeGroupAssessmentStatus(group.ID, curriculum, studentsList, assessments)
		completedIDs := make(map[string]bool, len(status.CompletedIDs))
		for _, id := range status.CompletedIDs {
			completedIDs[id] = true
		}

		schedule := services.ClassifyGroupSchedule(group.RolloutPlan, completedIDs,
			status.EarnedCredits, totalCredits, now, config.GetEngine().Schedule)
		stats.GroupsBySchedule[schedule.Status]++
	}

	return c.JSON(fiber.Map{"stats": stats})
}
