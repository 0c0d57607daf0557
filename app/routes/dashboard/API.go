package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"mergington-admin/app/api"
	"mergington-admin/app/config"
)

func GetOverviewAPI(c *fiber.Ctx) error {
	counts, err := FetchCounts(c.Context(), config.GetAPI())
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": api.UserMessage(err)})
	}

	return c.JSON(counts)
}
