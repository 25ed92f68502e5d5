package attendance

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sirashofficial/learnership-management-sub003/app/config"
	"github.com/sirashofficial/learnership-management-sub003/app/database"
	"github.com/sirashofficial/learnership-management-sub003/app/models"
)

func GetAttendanceAPI(c *fiber.Ctx) error {
	groupID := c.Query("group_id")
	if groupID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "group_id is required"})
	}

	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
		}
		date = parsed
	}
	date = date.Truncate(24 * time.Hour)

	records, err := database.GetAttendanceByGroupAndDate(config.GetDB(), groupID, date)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance"})
	}

	return c.JSON(fiber.Map{
		"attendance": records,
		"count":      len(records),
		"date":       date.Format("2006-01-02"),
	})
}

// MarkAttendanceAPI records attendance for one or more students. Re-marking
// the same student and date overwrites the earlier record.
func MarkAttendanceAPI(c *fiber.Ctx) error {
	type MarkItem struct {
		StudentID string                  `json:"student_id"`
		Status    models.AttendanceStatus `json:"status"`
		Notes     string                  `json:"notes,omitempty"`
	}
	type MarkRequest struct {
		GroupID string     `json:"group_id"`
		Date    string     `json:"date"`
		Records []MarkItem `json:"records"`
	}

	var req MarkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.GroupID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "group_id is required"})
	}
	if len(req.Records) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "No attendance records provided"})
	}

	date := time.Now().Truncate(24 * time.Hour)
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
		}
		date = parsed
	}

	var markedBy *string
	if userID, ok := c.Locals("user_id").(string); ok {
		markedBy = &userID
	}

	db := config.GetDB()
	marked := 0
	var failures []string

	for _, item := range req.Records {
		if item.StudentID == "" || !item.Status.Valid() {
			failures = append(failures, item.StudentID)
			continue
		}
		record := &models.Attendance{
			StudentID: item.StudentID,
			GroupID:   req.GroupID,
			Date:      date,
			Status:    item.Status,
			Notes:     item.Notes,
			MarkedBy:  markedBy,
		}
		if err := database.UpsertAttendance(db, record); err != nil {
			failures = append(failures, item.StudentID)
			continue
		}
		marked++
	}

	return c.JSON(fiber.Map{
		"message": "Attendance marked",
		"marked":  marked,
		"failed":  failures,
		"date":    date.Format("2006-01-02"),
	})
}
