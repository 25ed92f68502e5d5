package main

import (
	"log"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/sirashofficial/learnership-management-sub003/app/config"
	"github.com/sirashofficial/learnership-management-sub003/app/database"
	"github.com/sirashofficial/learnership-management-sub003/app/routes/assessments"
	"github.com/sirashofficial/learnership-management-sub003/app/routes/attendance"
	"github.com/sirashofficial/learnership-management-sub003/app/routes/auth"
	"github.com/sirashofficial/learnership-management-sub003/app/routes/curriculum"
	"github.com/sirashofficial/learnership-management-sub003/app/routes/dashboard"
	"github.com/sirashofficial/learnership-management-sub003/app/routes/groups"
	"github.com/sirashofficial/learnership-management-sub003/app/routes/students"
	"github.com/sirashofficial/learnership-management-sub003/app/services"
)

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations and seed the curriculum
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}
	if err := database.SeedCurriculum(config.GetDB()); err != nil {
		log.Fatal("Failed to seed curriculum:", err)
	}

	// Start background progress recalculation
	services.StartScheduler(config.GetDB())

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Routes
	auth.SetupAuthRoutes(app)
	dashboard.SetupDashboardRoutes(app)
	students.SetupStudentsRoutes(app)
	groups.SetupGroupsRoutes(app)
	curriculum.SetupCurriculumRoutes(app)
	assessments.SetupAssessmentsRoutes(app)
	attendance.SetupAttendanceRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}
	log.Println("Server starting on", port)
	log.Fatal(app.Listen(port))
}
