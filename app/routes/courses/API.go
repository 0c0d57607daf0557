package courses

import (
	"github.com/gofiber/fiber/v2"

	"mergington-admin/app/api"
	"mergington-admin/app/config"
)

func GetCoursesAPI(c *fiber.Ctx) error {
	courses, err := config.GetAPI().ListCourses(c.Context())
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": api.UserMessage(err)})
	}

	return c.JSON(fiber.Map{
		"courses": courses,
		"count":   len(courses),
	})
}
