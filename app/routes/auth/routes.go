package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	app.Get("/auth/login", LoginPage)
	app.Post("/auth/login", LoginAPI)
	app.Get("/auth/logout", LogoutAPI)
}

func LoginPage(c *fiber.Ctx) error {
	return c.Render("auth/login", fiber.Map{
		"Title":   "Sign In - Mergington Admin",
		"HideNav": true,
	})
}

// AuthMiddleware requires a valid admin session cookie. API requests get a
// JSON 401, page requests are redirected to the login form.
func AuthMiddleware(c *fiber.Ctx) error {
	isAPIRequest := strings.HasPrefix(c.Path(), "/api/")

	tokenString := c.Cookies("jwt_token")
	if tokenString == "" {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"error": "Not authenticated"})
		}
		return c.Redirect("/auth/login")
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
		}
		return c.Redirect("/auth/login")
	}

	c.Locals("admin_email", claims.Email)
	return c.Next()
}
