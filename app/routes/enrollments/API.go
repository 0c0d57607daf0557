package enrollments

import (
	"github.com/gofiber/fiber/v2"

	"mergington-admin/app/api"
	"mergington-admin/app/config"
)

func GetEnrollmentsAPI(c *fiber.Ctx) error {
	enrollments, err := config.GetAPI().ListEnrollments(c.Context())
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": api.UserMessage(err)})
	}

	return c.JSON(fiber.Map{
		"enrollments": enrollments,
		"count":       len(enrollments),
	})
}
