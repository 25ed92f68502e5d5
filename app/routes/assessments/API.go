package assessments

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/sirashofficial/learnership-management-sub003/app/config"
	"github.com/sirashofficial/learnership-management-sub003/app/database"
	"github.com/sirashofficial/learnership-management-sub003/app/models"
	"github.com/sirashofficial/learnership-management-sub003/app/services"
)

func GetAssessmentsAPI(c *fiber.Ctx) error {
	filters := database.AssessmentFilters{
		Type:   c.Query("type"),
		Result: c.Query("result"),
	}
	if studentID := c.Query("student_id"); studentID != "" {
		filters.StudentIDs = []string{studentID}
	}
	if usID := c.Query("unit_standard_id"); usID != "" {
		filters.UnitStandardIDs = []string{usID}
	}

	assessmentsList, err := database.GetAssessments(config.GetDB(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch assessments"})
	}
	return c.JSON(fiber.Map{
		"assessments": assessmentsList,
		"count":       len(assessmentsList),
	})
}

func GetAssessmentAPI(c *fiber.Ctx) error {
	assessment, err := database.GetAssessmentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Assessment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch assessment"})
	}
	return c.JSON(fiber.Map{"assessment": assessment})
}

func CreateAssessmentAPI(c *fiber.Ctx) error {
	var assessment models.Assessment
	if err := c.BodyParser(&assessment); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if assessment.StudentID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Student is required"})
	}
	if !assessment.Type.Valid() {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid assessment type"})
	}
	if assessment.Result != "" && !assessment.Result.Valid() {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid assessment result"})
	}

	if userID, ok := c.Locals("user_id").(string); ok && assessment.MarkedBy == nil {
		assessment.MarkedBy = &userID
	}

	if err := database.CreateAssessment(config.GetDB(), &assessment); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create assessment"})
	}

	recalculate(assessment.StudentID)
	return c.Status(201).JSON(fiber.Map{"message": "Assessment created successfully", "assessment": assessment})
}

func UpdateAssessmentAPI(c *fiber.Ctx) error {
	existing, err := database.GetAssessmentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Assessment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch assessment"})
	}

	var update models.Assessment
	if err := c.BodyParser(&update); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	update.ID = existing.ID
	update.StudentID = existing.StudentID
	update.AssessedAt = existing.AssessedAt
	if update.Type == "" {
		update.Type = existing.Type
	}
	if !update.Type.Valid() {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid assessment type"})
	}
	if update.Result != "" && !update.Result.Valid() {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid assessment result"})
	}
	if userID, ok := c.Locals("user_id").(string); ok && update.MarkedBy == nil {
		update.MarkedBy = &userID
	}

	if err := database.UpdateAssessment(config.GetDB(), &update); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update assessment"})
	}

	recalculate(update.StudentID)
	return c.JSON(fiber.Map{"message": "Assessment updated successfully", "assessment": update})
}

func DeleteAssessmentAPI(c *fiber.Ctx) error {
	existing, err := database.GetAssessmentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Assessment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch assessment"})
	}

	if err := database.DeleteAssessment(config.GetDB(), existing.ID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete assessment"})
	}

	recalculate(existing.StudentID)
	return c.JSON(fiber.Map{"message": "Assessment deleted successfully"})
}

// BatchUpdateAssessmentsAPI marks a set of assessments in one request, then
// recalculates each affected student once.
func BatchUpdateAssessmentsAPI(c *fiber.Ctx) error {
	type BatchItem struct {
		ID     string                  `json:"id"`
		Result models.AssessmentResult `json:"result"`
		Score  *float64                `json:"score,omitempty"`
	}
	type BatchRequest struct {
		Assessments []BatchItem `json:"assessments"`
	}

	var req BatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if len(req.Assessments) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "No assessments provided"})
	}

	db := config.GetDB()
	updated := 0
	affected := make(map[string]bool)
	var failures []string

	for _, item := range req.Assessments {
		if !item.Result.Valid() {
			failures = append(failures, item.ID)
			continue
		}
		assessment, err := database.GetAssessmentByID(db, item.ID)
		if err != nil {
			failures = append(failures, item.ID)
			continue
		}
		assessment.Result = item.Result
		if item.Score != nil {
			assessment.Score = item.Score
		}
		if userID, ok := c.Locals("user_id").(string); ok {
			assessment.MarkedBy = &userID
		}
		if err := database.UpdateAssessment(db, assessment); err != nil {
			failures = append(failures, item.ID)
			continue
		}
		updated++
		affected[assessment.StudentID] = true
	}

	for studentID := range affected {
		recalculate(studentID)
	}

	return c.JSON(fiber.Map{
		"message": "Batch update complete",
		"updated": updated,
		"failed":  failures,
	})
}

// recalculate refreshes a student's stored progress after an assessment
// mutation. Failures are logged, not surfaced: the nightly sweep will catch
// up, and the assessment write itself already succeeded.
func recalculate(studentID string) {
	if _, err := services.RecalculateStudentProgress(config.GetDB(), studentID); err != nil {
		log.Printf("Failed to recalculate progress for student %s: %v", studentID, err)
	}
}
