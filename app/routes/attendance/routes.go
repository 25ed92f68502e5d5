package attendance

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sirashofficial/learnership-management-sub003/app/routes/auth"
)

func SetupAttendanceRoutes(app *fiber.App) {
	api := app.Group("/api/attendance", auth.AuthMiddleware)

	api.Get("/", GetAttendanceAPI)
	api.Post("/mark", MarkAttendanceAPI)
}
