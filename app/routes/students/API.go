package students

import (
	"database/sql"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/sirashofficial/learnership-management-sub003/app/config"
	"github.com/sirashofficial/learnership-management-sub003/app/database"
	"github.com/sirashofficial/learnership-management-sub003/app/models"
	"github.com/sirashofficial/learnership-management-sub003/app/services"
)

func GetStudentsAPI(c *fiber.Ctx) error {
	filters := database.StudentFilters{
		Search:    strings.TrimSpace(c.Query("search")),
		GroupID:   c.Query("group_id"),
		Status:    c.Query("status"),
		Gender:    c.Query("gender"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
		Limit:     c.QueryInt("limit", 0),
		Offset:    c.QueryInt("offset", 0),
	}

	studentsList, err := database.GetStudents(config.GetDB(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	return c.JSON(fiber.Map{
		"students": studentsList,
		"count":    len(studentsList),
	})
}

func GetStudentAPI(c *fiber.Ctx) error {
	student, err := database.GetStudentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}
	return c.JSON(fiber.Map{"student": student})
}

func CreateStudentAPI(c *fiber.Ctx) error {
	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if student.FirstName == "" || student.LastName == "" {
		return c.Status(400).JSON(fiber.Map{"error": "First name and last name are required"})
	}
	if student.IDNumber == "" {
		return c.Status(400).JSON(fiber.Map{"error": "ID number is required"})
	}
	if student.GroupID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Group is required"})
	}
	if _, err := database.GetGroupByID(config.GetDB(), student.GroupID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(400).JSON(fiber.Map{"error": "Group not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to verify group"})
	}

	student.IsActive = true
	if err := database.CreateStudent(config.GetDB(), &student); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student"})
	}

	// New students start with a PENDING formative assessment per unit standard
	// so the progress and rollout views have rows to aggregate from day one.
	created, err := database.CreateInitialAssessments(config.GetDB(), student.ID)
	if err != nil {
		log.Printf("Failed to seed assessments for student %s: %v", student.ID, err)
	}
	if _, err := services.RecalculateStudentProgress(config.GetDB(), student.ID); err != nil {
		log.Printf("Failed to initialise progress for student %s: %v", student.ID, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"message":             "Student created successfully",
		"student":             student,
		"assessments_created": created,
	})
}

// studentUpdateRequest carries a partial update. IsActive is a pointer so an
// omitted field is distinguishable from an explicit false.
type studentUpdateRequest struct {
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	IDNumber  string        `json:"id_number"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Gender    models.Gender `json:"gender"`
	GroupID   string        `json:"group_id"`
	IsActive  *bool         `json:"is_active"`
}

// applyStudentUpdate merges the non-empty request fields onto the existing
// row. Fields the request omits keep their stored values.
func applyStudentUpdate(existing *models.Student, req studentUpdateRequest) *models.Student {
	updated := *existing
	if req.FirstName != "" {
		updated.FirstName = req.FirstName
	}
	if req.LastName != "" {
		updated.LastName = req.LastName
	}
	if req.IDNumber != "" {
		updated.IDNumber = req.IDNumber
	}
	if req.Email != "" {
		updated.Email = req.Email
	}
	if req.Phone != "" {
		updated.Phone = req.Phone
	}
	if req.Gender != "" {
		updated.Gender = req.Gender
	}
	if req.GroupID != "" {
		updated.GroupID = req.GroupID
	}
	if req.IsActive != nil {
		updated.IsActive = *req.IsActive
	}
	return &updated
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	existing, err := database.GetStudentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}

	var req studentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.GroupID != "" && req.GroupID != existing.GroupID {
		if _, err := database.GetGroupByID(config.GetDB(), req.GroupID); err != nil {
			if err == sql.ErrNoRows {
				return c.Status(400).JSON(fiber.Map{"error": "Group not found"})
			}
			return c.Status(500).JSON(fiber.Map{"error": "Failed to verify group"})
		}
	}

	student := applyStudentUpdate(existing, req)
	if err := database.UpdateStudent(config.GetDB(), student); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update student"})
	}
	return c.JSON(fiber.Map{"message": "Student updated successfully", "student": student})
}

func DeleteStudentAPI(c *fiber.Ctx) error {
	if err := database.DeleteStudent(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete student"})
	}
	return c.JSON(fiber.Map{"message": "Student deleted successfully"})
}

// GetStudentProgressAPI computes the student's progress view on the fly. The
// denormalized columns on the student row are not consulted here.
func GetStudentProgressAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	studentID := c.Params("id")

	if _, err := database.GetStudentByID(db, studentID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}

	curriculum, err := database.GetModulesWithUnitStandards(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch curriculum"})
	}
	assessments, err := database.GetAssessmentsByStudent(db, studentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch assessments"})
	}

	progress := services.ComputeStudentProgress(studentID, curriculum, assessments,
		config.GetEngine().TotalCreditsRequired)
	return c.JSON(fiber.Map{"progress": progress})
}

func RecalculateStudentAPI(c *fiber.Ctx) error {
	progress, err := services.RecalculateStudentProgress(config.GetDB(), c.Params("id"))
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to recalculate progress"})
	}
	return c.JSON(fiber.Map{
		"message":  "Progress recalculated",
		"progress": progress,
	})
}
