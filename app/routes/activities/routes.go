package activities

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

func SetupActivitiesRoutes(app *fiber.App) {
	activities := app.Group("/activities")
	activities.Use(auth.AuthMiddleware)

	activities.Get("/", ActivitiesPage)
	activities.Post("/signup", SignUp)
	activities.Post("/unregister", Unregister)

	// API routes
	apiGroup := app.Group("/api/activities")
	apiGroup.Use(auth.AuthMiddleware)
	apiGroup.Get("/", GetActivitiesAPI)
}

type activityRow struct {
	Name string
	models.Activity
}

func ActivitiesPage(c *fiber.Ctx) error {
	data := fiber.Map{
		"Title":       "Activities - Mergington Admin",
		"CurrentPage": "activities",
	}
	if msg, ok := flash.Pop(c); ok {
		data["Flash"] = msg
	}
	client := config.GetAPI()

	degraded := func(err error) {
		log.Printf("Failed to load activities section: %v", err)
		if _, shown := data["Flash"]; !shown {
			data["Flash"] = flash.Message{Level: "error", Text: api.UserMessage(err)}
		}
	}

	activities, err := client.ListActivities(c.Context())
	if err != nil {
		degraded(err)
	}
	names := views.Keys(activities)
	rows := make([]activityRow, 0, len(names))
	for _, name := range names {
		rows = append(rows, activityRow{Name: name, Activity: activities[name]})
	}
	data["Activities"] = rows

	students, err := client.ListStudents(c.Context())
	if err != nil {
		degraded(err)
	}
	data["StudentSelect"] = views.NewSelect("email", "Select Student", views.Keys(views.ByEmail(students)), c.Query("email"))
	data["ActivitySelect"] = views.NewSelect("activity", "Select Activity", names, c.Query("activity"))

	return c.Render("activities/index", data)
}

func SignUp(c *fiber.Ctx) error {
	activity := c.FormValue("activity")
	email := c.FormValue("email")

	msg, err := config.GetAPI().SignUpForActivity(c.Context(), activity, email)
	if err != nil {
		flash.Error(c, api.UserMessage(err))
	} else {
		flash.Success(c, msg)
	}
	return c.Redirect("/activities")
}

func Unregister(c *fiber.Ctx) error {
	activity := c.FormValue("activity")
	email := c.FormValue("email")

	msg, err := config.GetAPI().UnregisterFromActivity(c.Context(), activity, email)
	if err != nil {
		flash.Error(c, api.UserMessage(err))
	} else {
		flash.Success(c, msg)
	}
	return c.Redirect("/activities")
}
