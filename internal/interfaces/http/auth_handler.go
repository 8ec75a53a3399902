package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/puntoclave/retail-api/internal/application/auth"
	"github.com/puntoclave/retail-api/internal/application/dto"
)

// AuthHandler expone login y logout de sesiones opacas.
type AuthHandler struct {
	uc         *auth.UseCase
	cookieName string
	ttl        time.Duration
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.UseCase, cookieName string, ttl time.Duration) *AuthHandler {
	return &AuthHandler{uc: uc, cookieName: cookieName, ttl: ttl}
}

// Login maneja POST /auth/login: verifica credenciales, crea la sesión y
// entrega el token en el body y como cookie HttpOnly.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := parseBody(c, &in); err != nil {
		return badRequest(c, "body inválido")
	}
	resp, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    resp.Token,
		Expires:  time.Now().Add(h.ttl),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return c.JSON(resp)
}

// Logout maneja POST /auth/logout: revoca la sesión y expira la cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token := sessionToken(c, h.cookieName)
	if err := h.uc.Logout(c.Context(), token); err != nil {
		return respondError(c, err)
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return c.JSON(fiber.Map{"success": true})
}
