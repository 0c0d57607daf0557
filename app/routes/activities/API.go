package activities

import (
	"github.com/gofiber/fiber/v2"

	"mergington-admin/app/api"
	"mergington-admin/app/config"
)

func GetActivitiesAPI(c *fiber.Ctx) error {
	activities, err := config.GetAPI().ListActivities(c.Context())
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": api.UserMessage(err)})
	}

	return c.JSON(fiber.Map{
		"activities": activities,
		"count":      len(activities),
	})
}
