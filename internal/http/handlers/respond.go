package handlers

import (
	"strings"

	"dunestore/internal/i18n"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// lang resolves the shopper's language from the ?lang query or the
// Accept-Language header; Arabic is the default.
func lang(c *fiber.Ctx) i18n.Lang {
	if q := c.Query("lang"); q != "" {
		return i18n.Pick(q)
	}
	al := c.Get("Accept-Language")
	if i := strings.IndexAny(al, ",;"); i >= 0 {
		al = al[:i]
	}
	return i18n.Pick(strings.TrimSpace(al))
}

// ensureSID returns the session cookie, minting one when absent. The
// session id keys the persisted cart.
func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
	return sid
}

func jsonError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}
