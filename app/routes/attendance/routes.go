package attendance

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"mergington-admin/app/api"
	"mergington-admin/app/config"
	"mergington-admin/app/flash"
	"mergington-admin/app/models"
	"mergington-admin/app/routes/auth"
	"mergington-admin/app/views"
)

func SetupAttendanceRoutes(app *fiber.App) {
	attendance := app.Group("/attendance")
	attendance.Use(auth.AuthMiddleware)

	attendance.Get("/", AttendancePage)
	attendance.Post("/", RecordAttendance)

	// API routes
	apiGroup := app.Group("/api/attendance")
	apiGroup.Use(auth.AuthMiddleware)
	apiGroup.Get("/", GetAttendanceAPI)
}

func AttendancePage(c *fiber.Ctx) error {
	data := fiber.Map{
		"Title":       "Attendance - Mergington Admin",
		"CurrentPage": "attendance",
	}
	if msg, ok := flash.Pop(c); ok {
		data["Flash"] = msg
	}
	client := config.GetAPI()

	degraded := func(err error) {
		log.Printf("Failed to load attendance section: %v", err)
		if _, shown := data["Flash"]; !shown {
			data["Flash"] = flash.Message{Level: "error", Text: api.UserMessage(err)}
		}
	}

	// ?student= narrows the table to one student's records
	filter := c.Query("student")
	var records []models.AttendanceRecord
	var err error
	if filter != "" {
		records, err = client.StudentAttendance(c.Context(), filter)
	} else {
		records, err = client.ListAttendance(c.Context())
	}
	if err != nil {
		degraded(err)
	}
	data["Records"] = records

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

	return c.Render("attendance/index", data)
}

func RecordAttendance(c *fiber.Ctx) error {
	record := models.AttendanceRecord{
		StudentEmail: c.FormValue("student_email"),
		CourseName:   c.FormValue("course_name"),
		Date:         c.FormValue("date"),
		Present:      c.FormValue("present") != "",
	}

	msg, err := config.GetAPI().RecordAttendance(c.Context(), record)
	if err != nil {
		flash.Error(c, api.UserMessage(err))
	} else {
		flash.Success(c, msg)
	}
	return c.Redirect("/attendance")
}
