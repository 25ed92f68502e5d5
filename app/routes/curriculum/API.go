package curriculum

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/sirashofficial/learnership-management-sub003/app/config"
	"github.com/sirashofficial/learnership-management-sub003/app/database"
)

func GetModulesAPI(c *fiber.Ctx) error {
	modules, err := database.GetModulesWithUnitStandards(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch modules"})
	}

	totalCredits := 0
	for _, m := range modules {
		totalCredits += m.TotalCredits
	}

	return c.JSON(fiber.Map{
		"modules":       modules,
		"count":         len(modules),
		"total_credits": totalCredits,
	})
}

func GetUnitStandardsAPI(c *fiber.Ctx) error {
	standards, err := database.GetUnitStandards(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch unit standards"})
	}
	return c.JSON(fiber.Map{
		"unit_standards": standards,
		"count":          len(standards),
	})
}

func GetUnitStandardAPI(c *fiber.Ctx) error {
	standard, err := database.GetUnitStandardByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Unit standard not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch unit standard"})
	}
	return c.JSON(fiber.Map{"unit_standard": standard})
}
