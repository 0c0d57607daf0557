package payments

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"mergington-admin/app/api"
	"mergington-admin/app/config"
	"mergington-admin/app/flash"
	"mergington-admin/app/models"
	"mergington-admin/app/routes/auth"
	"mergington-admin/app/views"
)

func SetupPaymentsRoutes(app *fiber.App) {
	payments := app.Group("/payments")
	payments.Use(auth.AuthMiddleware)

	payments.Get("/", PaymentsPage)
	payments.Post("/", CreatePayment)

	// API routes
	apiGroup := app.Group("/api/payments")
	apiGroup.Use(auth.AuthMiddleware)
	apiGroup.Get("/", GetPaymentsAPI)
}

func PaymentsPage(c *fiber.Ctx) error {
	data := fiber.Map{
		"Title":       "Payments - Mergington Admin",
		"CurrentPage": "payments",
	}
	if msg, ok := flash.Pop(c); ok {
		data["Flash"] = msg
	}
	client := config.GetAPI()

	degraded := func(err error) {
		log.Printf("Failed to load payments section: %v", err)
		if _, shown := data["Flash"]; !shown {
			data["Flash"] = flash.Message{Level: "error", Text: api.UserMessage(err)}
		}
	}

	filter := c.Query("student")
	var payments []models.Payment
	var err error
	if filter != "" {
		payments, err = client.StudentPayments(c.Context(), filter)
	} else {
		payments, err = client.ListPayments(c.Context())
	}
	if err != nil {
		degraded(err)
	}
	data["Payments"] = payments

	students, err := client.ListStudents(c.Context())
	if err != nil {
		degraded(err)
	}
	courses, err := client.ListCourses(c.Context())
	if err != nil {
		degraded(err)
	}
	emails := views.Keys(views.ByEmail(students))
	data["StudentSelect"] = views.NewSelect("student_email", "Select Student", emails, c.Query("student_email"))
	data["CourseSelect"] = views.NewSelect("course_name", "Select Course", views.Keys(views.ByName(courses)), c.Query("course_name"))
	data["FilterSelect"] = views.NewSelect("student", "All students", emails, filter)

	statuses := make([]string, 0, len(models.PaymentStatuses))
	for _, status := range models.PaymentStatuses {
		statuses = append(statuses, string(status))
	}
	data["StatusSelect"] = views.NewSelect("status", "Select Status", statuses, c.Query("status"))

	return c.Render("payments/index", data)
}

func CreatePayment(c *fiber.Ctx) error {
	amount, err := strconv.ParseFloat(c.FormValue("amount"), 64)
	if err != nil {
		flash.Error(c, "Amount must be a number")
		return c.Redirect("/payments")
	}
	payment := models.Payment{
		StudentEmail: c.FormValue("student_email"),
		Amount:       amount,
		CourseName:   c.FormValue("course_name"),
		PaymentDate:  c.FormValue("payment_date"),
		Status:       models.PaymentStatus(c.FormValue("status")),
	}

	msg, err := config.GetAPI().CreatePayment(c.Context(), payment)
	if err != nil {
		flash.Error(c, api.UserMessage(err))
	} else {
		flash.Success(c, msg)
	}
	return c.Redirect("/payments")
}
