package handlers

import (
	"strings"

	applog "dunestore/internal/log"
	"dunestore/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RequireAdmin gates the admin surfaces behind a valid ADMIN token.
// The token comes from the Authorization header (Bearer) or the
// admin_token cookie.
func RequireAdmin(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := ""
		if h := c.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
			token = strings.TrimPrefix(h, "Bearer ")
		}
		if token == "" {
			token = c.Cookies("admin_token")
		}
		if token == "" {
			return jsonError(c, fiber.StatusUnauthorized, "missing token")
		}
		claims, err := auth.Verify(token)
		if err != nil || claims.Role != "ADMIN" {
			applog.Security(c, "access.denied.admin", nil)
			return jsonError(c, fiber.StatusForbidden, "access denied")
		}
		c.Locals("admin", claims)
		return c.Next()
	}
}
