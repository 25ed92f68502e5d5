package curriculum

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sirashofficial/learnership-management-sub003/app/routes/auth"
)

func SetupCurriculumRoutes(app *fiber.App) {
	api := app.Group("/api/curriculum", auth.AuthMiddleware)

	api.Get("/modules", GetModulesAPI)
	api.Get("/unit-standards", GetUnitStandardsAPI)
	api.Get("/unit-standards/:id", GetUnitStandardAPI)
}
