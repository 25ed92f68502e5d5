package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/sirashofficial/learnership-management-sub003/app/config"
	"github.com/sirashofficial/learnership-management-sub003/app/database"
)

// SetupAuthRoutes sets up all auth-related routes
func SetupAuthRoutes(app *fiber.App) {
	api := app.Group("/api/auth")
	api.Post("/login", LoginAPI)
	api.Post("/logout", LogoutAPI)

	protected := api.Group("", AuthMiddleware)
	protected.Get("/me", MeAPI)
	protected.Post("/change-password", ChangePasswordAPI)
}

// AuthMiddleware validates the JWT and sets user context
func AuthMiddleware(c *fiber.Ctx) error {
	// Token comes from the cookie or the Authorization header
	tokenString := c.Cookies("jwt_token")
	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	if tokenString == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication required"})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
	}

	user, err := database.GetUserByID(config.GetDB(), claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}

	c.Locals("user", user)
	c.Locals("user_id", user.ID)
	c.Locals("user_email", user.Email)
	c.Locals("user_roles", claims.Roles)
	return c.Next()
}

// AdminRequired allows only users holding the admin role. Must run after
// AuthMiddleware.
func AdminRequired(c *fiber.Ctx) error {
	roles, _ := c.Locals("user_roles").([]string)
	for _, r := range roles {
		if r == "admin" {
			return c.Next()
		}
	}
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Admin access required"})
}
