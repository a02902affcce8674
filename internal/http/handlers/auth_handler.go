package handlers

import (
	applog "dunestore/internal/log"
	"dunestore/internal/services"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth *services.AuthService
}

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login checks admin credentials and answers with a bearer token, also
// set as a cookie for browser clients.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body loginBody
	if err := c.BodyParser(&body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	token, err := h.Auth.Login(body.Email, body.Password)
	if err != nil {
		applog.Security(c, "login.fail", map[string]any{"email": body.Email})
		return jsonError(c, fiber.StatusUnauthorized, "invalid email or password")
	}
	c.Cookie(&fiber.Cookie{
		Name:     "admin_token",
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	applog.Audit(c, "login.ok", map[string]any{"email": body.Email})
	return c.JSON(fiber.Map{"token": token})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.ClearCookie("admin_token")
	return c.JSON(fiber.Map{"success": true})
}
