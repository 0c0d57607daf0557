// Package flash carries one-shot banner messages across the redirect that
// follows every form submission. The message lives in a short-lived cookie
// and is cleared as soon as it is rendered.
package flash

import (
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const cookieName = "admin_flash"

type Message struct {
	Level string // "success" or "error"
	Text  string
}

func Success(c *fiber.Ctx, text string) {
	set(c, "success", text)
}

func Error(c *fiber.Ctx, text string) {
	set(c, "error", text)
}

func set(c *fiber.Ctx, level, text string) {
	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    level + "|" + url.QueryEscape(text),
		Expires:  time.Now().Add(time.Minute),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

// Pop returns the pending message, if any, and clears the cookie.
func Pop(c *fiber.Ctx) (Message, bool) {
	raw := c.Cookies(cookieName)
	if raw == "" {
		return Message{}, false
	}
	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	level, encoded, ok := strings.Cut(raw, "|")
	if !ok {
		return Message{}, false
	}
	text, err := url.QueryUnescape(encoded)
	if err != nil {
		return Message{}, false
	}
	return Message{Level: level, Text: text}, true
}
