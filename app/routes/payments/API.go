package payments

import (
	"github.com/gofiber/fiber/v2"

	"mergington-admin/app/api"
	"mergington-admin/app/config"
	"mergington-admin/app/models"
)

func GetPaymentsAPI(c *fiber.Ctx) error {
	client := config.GetAPI()

	var payments []models.Payment
	var err error
	if student := c.Query("student"); student != "" {
		payments, err = client.StudentPayments(c.Context(), student)
	} else {
		payments, err = client.ListPayments(c.Context())
	}
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": api.UserMessage(err)})
	}

	return c.JSON(fiber.Map{
		"payments": payments,
		"count":    len(payments),
	})
}
