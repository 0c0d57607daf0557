package students

import (
	"github.com/gofiber/fiber/v2"

	"mergington-admin/app/api"
	"mergington-admin/app/config"
)

func GetStudentsAPI(c *fiber.Ctx) error {
	students, err := config.GetAPI().ListStudents(c.Context())
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": api.UserMessage(err)})
	}

	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}
