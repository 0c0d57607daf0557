package dashboard

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"mergington-admin/app/api"
	"mergington-admin/app/config"
	"mergington-admin/app/flash"
	"mergington-admin/app/routes/auth"
)

func SetupDashboardRoutes(app *fiber.App) {
	app.Get("/", auth.AuthMiddleware, DashboardPage)

	apiGroup := app.Group("/api/dashboard")
	apiGroup.Use(auth.AuthMiddleware)
	apiGroup.Get("/", GetOverviewAPI)
}

// Counts is the collection sizes shown on the dashboard.
type Counts struct {
	Students    int `json:"students"`
	Courses     int `json:"courses"`
	Enrollments int `json:"enrollments"`
	Attendance  int `json:"attendance"`
	Payments    int `json:"payments"`
	Activities  int `json:"activities"`
}

// FetchCounts loads every collection concurrently and waits for all of
// them. Also used as the startup warmup.
func FetchCounts(ctx context.Context, client *api.Client) (Counts, error) {
	g, ctx := errgroup.WithContext(ctx)
	var counts Counts

	g.Go(func() error {
		students, err := client.ListStudents(ctx)
		counts.Students = len(students)
		return err
	})
	g.Go(func() error {
		courses, err := client.ListCourses(ctx)
		counts.Courses = len(courses)
		return err
	})
	g.Go(func() error {
		enrollments, err := client.ListEnrollments(ctx)
		counts.Enrollments = len(enrollments)
		return err
	})
	g.Go(func() error {
		records, err := client.ListAttendance(ctx)
		counts.Attendance = len(records)
		return err
	})
	g.Go(func() error {
		payments, err := client.ListPayments(ctx)
		counts.Payments = len(payments)
		return err
	})
	g.Go(func() error {
		activities, err := client.ListActivities(ctx)
		counts.Activities = len(activities)
		return err
	})

	return counts, g.Wait()
}

func DashboardPage(c *fiber.Ctx) error {
	data := fiber.Map{
		"Title":       "Dashboard - Mergington Admin",
		"CurrentPage": "dashboard",
	}
	if msg, ok := flash.Pop(c); ok {
		data["Flash"] = msg
	}

	counts, err := FetchCounts(c.Context(), config.GetAPI())
	if err != nil {
		log.Printf("Failed to load dashboard counts: %v", err)
		if _, shown := data["Flash"]; !shown {
			data["Flash"] = flash.Message{Level: "error", Text: api.UserMessage(err)}
		}
	}
	data["Counts"] = counts

	return c.Render("dashboard/index", data)
}
