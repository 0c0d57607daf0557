package students

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"mergington-admin/app/api"
	"mergington-admin/app/config"
	"mergington-admin/app/flash"
	"mergington-admin/app/models"
	"mergington-admin/app/routes/auth"
	"mergington-admin/app/views"
)

func SetupStudentsRoutes(app *fiber.App) {
	students := app.Group("/students")
	students.Use(auth.AuthMiddleware)

	students.Get("/", StudentsPage)
	students.Post("/", CreateStudent)
	students.Post("/update", UpdateStudent)
	students.Post("/delete", DeleteStudent)

	// API routes
	apiGroup := app.Group("/api/students")
	apiGroup.Use(auth.AuthMiddleware)
	apiGroup.Get("/", GetStudentsAPI)
}

func StudentsPage(c *fiber.Ctx) error {
	data := fiber.Map{
		"Title":       "Students - Mergington Admin",
		"CurrentPage": "students",
	}
	if msg, ok := flash.Pop(c); ok {
		data["Flash"] = msg
	}

	snapshot, err := config.GetAPI().ListStudents(c.Context())
	if err != nil {
		log.Printf("Failed to load students: %v", err)
		if _, shown := data["Flash"]; !shown {
			data["Flash"] = flash.Message{Level: "error", Text: api.UserMessage(err)}
		}
		snapshot = map[string]models.Student{}
	}
	students := views.ByEmail(snapshot)

	emails := views.Keys(students)
	rows := make([]models.Student, 0, len(emails))
	for _, email := range emails {
		rows = append(rows, students[email])
	}
	data["Students"] = rows

	// populate-on-select: ?edit=<email> re-fetches the collection above and
	// pre-fills the update form from the matching record
	editEmail := c.Query("edit")
	if student, ok := students[editEmail]; ok {
		data["Editing"] = student
		data["EditingEmail"] = editEmail
	}
	data["EditSelect"] = views.NewSelect("edit", "Select student to update", emails, editEmail)

	return c.Render("students/index", data)
}

func CreateStudent(c *fiber.Ctx) error {
	student := studentFromForm(c)

	msg, err := config.GetAPI().CreateStudent(c.Context(), student)
	if err != nil {
		flash.Error(c, api.UserMessage(err))
	} else {
		flash.Success(c, msg)
	}
	return c.Redirect("/students")
}

func UpdateStudent(c *fiber.Ctx) error {
	email := c.FormValue("edit")
	if email == "" {
		flash.Error(c, "Select a student to update")
		return c.Redirect("/students")
	}
	student := studentFromForm(c)

	msg, err := config.GetAPI().UpdateStudent(c.Context(), email, student)
	if err != nil {
		flash.Error(c, api.UserMessage(err))
	} else {
		flash.Success(c, msg)
	}
	return c.Redirect("/students")
}

func DeleteStudent(c *fiber.Ctx) error {
	email := c.FormValue("email")

	msg, err := config.GetAPI().DeleteStudent(c.Context(), email)
	if err != nil {
		flash.Error(c, api.UserMessage(err))
	} else {
		flash.Success(c, msg)
	}
	return c.Redirect("/students")
}

func studentFromForm(c *fiber.Ctx) models.Student {
	return models.Student{
		Name:  strings.TrimSpace(c.FormValue("name")),
		Email: strings.TrimSpace(c.FormValue("email")),
		Grade: c.FormValue("grade"),
		Phone: models.Optional(strings.TrimSpace(c.FormValue("phone"))),
	}
}
