package main

import (
	"context"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"

	"mergington-admin/app/config"
	"mergington-admin/app/routes/activities"
	"mergington-admin/app/routes/attendance"
	"mergington-admin/app/routes/auth"
	"mergington-admin/app/routes/courses"
	"mergington-admin/app/routes/dashboard"
	"mergington-admin/app/routes/enrollments"
	"mergington-admin/app/routes/payments"
	"mergington-admin/app/routes/students"
)

// customErrorHandler renders web errors with the error template and keeps
// API errors as JSON.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if strings.HasPrefix(c.Path(), "/api") {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	title := "An Error Occurred"
	message := err.Error()
	if code == fiber.StatusNotFound {
		title = "Page Not Found"
		message = "The page you are looking for does not exist."
	}
	return c.Status(code).Render("error", fiber.Map{
		"Title":        "Error - Mergington Admin",
		"CurrentPage":  "",
		"ErrorCode":    code,
		"ErrorTitle":   title,
		"ErrorMessage": message,
	})
}

func main() {
	config.Load()

	// Initialize template engine
	engine := html.New("./app/templates", ".html")

	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Routes
	auth.SetupAuthRoutes(app)
	dashboard.SetupDashboardRoutes(app)
	students.SetupStudentsRoutes(app)
	courses.SetupCoursesRoutes(app)
	enrollments.SetupEnrollmentsRoutes(app)
	attendance.SetupAttendanceRoutes(app)
	payments.SetupPaymentsRoutes(app)
	activities.SetupActivitiesRoutes(app)

	// Warm up against the school API: fetch every collection concurrently
	// and report what the backend currently holds.
	warmupCtx, cancel := context.WithTimeout(context.Background(), config.AppConfig.APITimeout)
	defer cancel()
	if counts, err := dashboard.FetchCounts(warmupCtx, config.GetAPI()); err != nil {
		log.Printf("Warmup fetch failed (school API unreachable?): %v", err)
	} else {
		log.Printf("School API reachable: %d students, %d courses, %d enrollments",
			counts.Students, counts.Courses, counts.Enrollments)
	}

	log.Printf("Mergington admin console listening on %s", config.AppConfig.ListenAddr)
	log.Fatal(app.Listen(config.AppConfig.ListenAddr))
}
