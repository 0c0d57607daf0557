package courses

import (
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"mergington-admin/app/api"
	"mergington-admin/app/config"
	"mergington-admin/app/flash"
	"mergington-admin/app/models"
	"mergington-admin/app/routes/auth"
	"mergington-admin/app/views"
)

func SetupCoursesRoutes(app *fiber.App) {
	courses := app.Group("/courses")
	courses.Use(auth.AuthMiddleware)

	courses.Get("/", CoursesPage)
	courses.Post("/", CreateCourse)
	courses.Post("/update", UpdateCourse)
	courses.Post("/delete", DeleteCourse)

	// API routes
	apiGroup := app.Group("/api/courses")
	apiGroup.Use(auth.AuthMiddleware)
	apiGroup.Get("/", GetCoursesAPI)
}

func CoursesPage(c *fiber.Ctx) error {
	data := fiber.Map{
		"Title":       "Courses - Mergington Admin",
		"CurrentPage": "courses",
	}
	if msg, ok := flash.Pop(c); ok {
		data["Flash"] = msg
	}

	snapshot, err := config.GetAPI().ListCourses(c.Context())
	if err != nil {
		log.Printf("Failed to load courses: %v", err)
		if _, shown := data["Flash"]; !shown {
			data["Flash"] = flash.Message{Level: "error", Text: api.UserMessage(err)}
		}
		snapshot = map[string]models.Course{}
	}
	courses := views.ByName(snapshot)

	names := views.Keys(courses)
	rows := make([]models.Course, 0, len(names))
	for _, name := range names {
		rows = append(rows, courses[name])
	}
	data["Courses"] = rows

	editName := c.Query("edit")
	if course, ok := courses[editName]; ok {
		data["Editing"] = course
		data["EditingName"] = editName
	}
	data["EditSelect"] = views.NewSelect("edit", "Select course to update", names, editName)

	return c.Render("courses/index", data)
}

func CreateCourse(c *fiber.Ctx) error {
	course, err := courseFromForm(c)
	if err != nil {
		flash.Error(c, err.Error())
		return c.Redirect("/courses")
	}

	msg, err := config.GetAPI().CreateCourse(c.Context(), course)
	if err != nil {
		flash.Error(c, api.UserMessage(err))
	} else {
		flash.Success(c, msg)
	}
	return c.Redirect("/courses")
}

func UpdateCourse(c *fiber.Ctx) error {
	name := c.FormValue("edit")
	if name == "" {
		flash.Error(c, "Select a course to update")
		return c.Redirect("/courses")
	}
	course, err := courseFromForm(c)
	if err != nil {
		flash.Error(c, err.Error())
		return c.Redirect("/courses")
	}

	msg, err := config.GetAPI().UpdateCourse(c.Context(), name, course)
	if err != nil {
		flash.Error(c, api.UserMessage(err))
	} else {
		flash.Success(c, msg)
	}
	return c.Redirect("/courses")
}

func DeleteCourse(c *fiber.Ctx) error {
	name := c.FormValue("name")

	msg, err := config.GetAPI().DeleteCourse(c.Context(), name)
	if err != nil {
		flash.Error(c, api.UserMessage(err))
	} else {
		flash.Success(c, msg)
	}
	return c.Redirect("/courses")
}

func courseFromForm(c *fiber.Ctx) (models.Course, error) {
	maxParticipants, err := strconv.Atoi(c.FormValue("max_participants"))
	if err != nil {
		return models.Course{}, fiber.NewError(fiber.StatusBadRequest, "Max participants must be a number")
	}
	return models.Course{
		Name:            strings.TrimSpace(c.FormValue("name")),
		Description:     strings.TrimSpace(c.FormValue("description")),
		Schedule:        strings.TrimSpace(c.FormValue("schedule")),
		MaxParticipants: maxParticipants,
		Instructor:      models.Optional(strings.TrimSpace(c.FormValue("instructor"))),
	}, nil
}
