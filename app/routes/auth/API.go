package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"mergington-admin/app/config"
)

func LoginAPI(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	cfg := config.AppConfig
	if email != cfg.AdminEmail || !CheckPasswordHash(password, cfg.AdminPasswordHash) {
		return c.Status(401).Render("auth/login", fiber.Map{
			"Title":   "Sign In - Mergington Admin",
			"HideNav": true,
			"Error":   "Invalid credentials",
			"Email":   email,
		})
	}

	token, err := GenerateJWT(email)
	if err != nil {
		return c.Status(500).Render("auth/login", fiber.Map{
			"Title":   "Sign In - Mergington Admin",
			"HideNav": true,
			"Error":   "Failed to start session",
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.Redirect("/")
}

func LogoutAPI(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.Redirect("/auth/login")
}
