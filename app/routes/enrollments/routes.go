package enrollments

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"mergington-admin/app/api"
	"mergington-admin/app/config"
	"mergington-admin/app/flash"
	"mergington-admin/app/models"
	"mergington-admin/app/routes/auth"
	"mergington-admin/app/views"
)

func SetupEnrollmentsRoutes(app *fiber.App) {
	enrollments := app.Group("/enrollments")
	enrollments.Use(auth.AuthMiddleware)

	enrollments.Get("/", EnrollmentsPage)
	enrollments.Post("/", CreateEnrollment)
	enrollments.Post("/delete", DeleteEnrollment)

	// API routes
	apiGroup := app.Group("/api/enrollments")
	apiGroup.Use(auth.AuthMiddleware)
	apiGroup.Get("/", GetEnrollmentsAPI)
}

func EnrollmentsPage(c *fiber.Ctx) error {
	data := fiber.Map{
		"Title":       "Enrollments - Mergington Admin",
		"CurrentPage": "enrollments",
	}
	if msg, ok := flash.Pop(c); ok {
		data["Flash"] = msg
	}
	client := config.GetAPI()

	degraded := func(err error) {
		log.Printf("Failed to load enrollments section: %v", err)
		if _, shown := data["Flash"]; !shown {
			data["Flash"] = flash.Message{Level: "error", Text: api.UserMessage(err)}
		}
	}

	enrollments, err := client.ListEnrollments(c.Context())
	if err != nil {
		degraded(err)
	}
	data["Enrollments"] = enrollments

	// dependent dropdowns, restoring the last chosen values if still present
	students, err := client.ListStudents(c.Context())
	if err != nil {
		degraded(err)
	}
	courses, err := client.ListCourses(c.Context())
	if err != nil {
		degraded(err)
	}
	data["StudentSelect"] = views.NewSelect("student_email", "Select Student", views.Keys(views.ByEmail(students)), c.Query("student"))
	data["CourseSelect"] = views.NewSelect("course_name", "Select Course", views.Keys(views.ByName(courses)), c.Query("course"))

	return c.Render("enrollments/index", data)
}

func CreateEnrollment(c *fiber.Ctx) error {
	enrollment := models.Enrollment{
		StudentEmail:   c.FormValue("student_email"),
		CourseName:     c.FormValue("course_name"),
		EnrollmentDate: c.FormValue("enrollment_date"),
	}
	if enrollment.EnrollmentDate == "" {
		enrollment.EnrollmentDate = time.Now().Format("2006-01-02")
	}

	msg, err := config.GetAPI().CreateEnrollment(c.Context(), enrollment)
	if err != nil {
		flash.Error(c, api.UserMessage(err))
	} else {
		flash.Success(c, msg)
	}
	return c.Redirect("/enrollments")
}

// DeleteEnrollment removes a single enrollment by its composite
// (student email, course name) key.
func DeleteEnrollment(c *fiber.Ctx) error {
	studentEmail := c.FormValue("student_email")
	courseName := c.FormValue("course_name")

	msg, err := config.GetAPI().DeleteEnrollment(c.Context(), studentEmail, courseName)
	if err != nil {
		flash.Error(c, api.UserMessage(err))
	} else {
		flash.Success(c, msg)
	}
	return c.Redirect("/enrollments")
}
