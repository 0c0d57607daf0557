package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlashRoundTrip(t *testing.T) {
	app := fiber.New()
	app.Post("/set", func(c *fiber.Ctx) error {
		Success(c, "Student Ada created successfully")
		return c.Redirect("/read")
	})
	var popped Message
	var ok bool
	app.Get("/read", func(c *fiber.Ctx) error {
		popped, ok = Pop(c)
		return c.SendStatus(200)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/set", nil))
	require.NoError(t, err)

	var cookie string
	for _, c := range resp.Cookies() {
		if c.Name == "admin_flash" {
			cookie = c.Value
		}
	}
	require.NotEmpty(t, cookie, "flash cookie must be set")

	req := httptest.NewRequest(http.MethodGet, "/read", nil)
	req.AddCookie(&http.Cookie{Name: "admin_flash", Value: cookie})
	_, err = app.Test(req)
	require.NoError(t, err)

	require.True(t, ok)
	assert.Equal(t, "success", popped.Level)
	assert.Equal(t, "Student Ada created successfully", popped.Text)
}

func TestPopWithoutPendingMessage(t *testing.T) {
	app := fiber.New()
	var ok bool
	app.Get("/read", func(c *fiber.Ctx) error {
		_, ok = Pop(c)
		return c.SendStatus(200)
	})

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/read", nil))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestErrorMessageSurvivesSpecialCharacters(t *testing.T) {
	app := fiber.New()
	app.Post("/set", func(c *fiber.Ctx) error {
		Error(c, "Course \"Algebra I\" not found; try again")
		return c.SendStatus(302)
	})
	var popped Message
	app.Get("/read", func(c *fiber.Ctx) error {
		popped, _ = Pop(c)
		return c.SendStatus(200)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/set", nil))
	require.NoError(t, err)

	var value string
	for _, c := range resp.Cookies() {
		if c.Name == "admin_flash" {
			value = c.Value
		}
	}
	req := httptest.NewRequest(http.MethodGet, "/read", nil)
	req.AddCookie(&http.Cookie{Name: "admin_flash", Value: value})
	_, err = app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, "error", popped.Level)
	assert.Equal(t, "Course \"Algebra I\" not found; try again", popped.Text)
}
