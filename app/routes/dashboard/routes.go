package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sirashofficial/learnership-management-sub003/app/routes/auth"
)

func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard", auth.AuthMiddleware)

	api.Get("/stats", GetDashboardStatsAPI)
}
