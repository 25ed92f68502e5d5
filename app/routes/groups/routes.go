package groups

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sirashofficial/learnership-management-sub003/app/routes/auth"
)

func SetupGroupsRoutes(app *fiber.App) {
	api := app.Group("/api/groups", auth.AuthMiddleware)

	api.Get("/", GetGroupsAPI)
	api.Post("/", CreateGroupAPI)
	api.Get("/:id", GetGroupAPI)
	api.Put("/:id", UpdateGroupAPI)
	api.Delete("/:id", auth.AdminRequired, DeleteGroupAPI)

	api.Get("/:id/rollout", GetRolloutPlanAPI)
	api.Post("/:id/rollout", GenerateRolloutPlanAPI)
	api.Put("/:id/rollout/refresh", RefreshRolloutPlanAPI)

	api.Get("/:id/assessment-status", GetAssessmentStatusAPI)
	api.Get("/:id/schedule", GetScheduleStatusAPI)
	api.Get("/:id/reconciliation", GetReconciliationAPI)
}
