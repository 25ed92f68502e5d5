package assessments

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sirashofficial/learnership-management-sub003/app/routes/auth"
)

func SetupAssessmentsRoutes(app *fiber.App) {
	api := app.Group("/api/assessments", auth.AuthMiddleware)

	api.Get("/", GetAssessmentsAPI)
	api.Post("/", CreateAssessmentAPI)
	api.Post("/batch", BatchUpdateAssessmentsAPI)
	api.Get("/:id", GetAssessmentAPI)
	api.Put("/:id", UpdateAssessmentAPI)
	api.Delete("/:id", auth.AdminRequired, DeleteAssessmentAPI)
}
