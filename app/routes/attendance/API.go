package attendance

import (
	"github.com/gofiber/fiber/v2"

	"mergington-admin/app/api"
	"mergington-admin/app/config"
	"mergington-admin/app/models"
)

func GetAttendanceAPI(c *fiber.Ctx) error {
	client := config.GetAPI()

	var records []models.AttendanceRecord
	var err error
	if student := c.Query("student"); student != "" {
		records, err = client.StudentAttendance(c.Context(), student)
	} else {
		records, err = client.ListAttendance(c.Context())
	}
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": api.UserMessage(err)})
	}

	return c.JSON(fiber.Map{
		"attendance": records,
		"count":      len(records),
	})
}
