package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/puntoclave/retail-api/internal/application/auth"
	"github.com/puntoclave/retail-api/internal/application/dto"
	"github.com/puntoclave/retail-api/internal/domain"
	"github.com/puntoclave/retail-api/internal/domain/entity"
)

// Locals key para la identidad resuelta en Fiber.
const LocalIdentity = "identity"

// SessionResolver resuelve un token de sesión opaco a una identidad.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*auth.Identity, error)
}

// SessionMiddleware valida el token de sesión (cookie o Bearer) y deja la
// identidad en c.Locals. Sin token válido la petición se rechaza con 401
// antes de tocar cualquier recurso.
func SessionMiddleware(resolver SessionResolver, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := sessionToken(c, cookieName)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_SESSION", Message: "sesión requerida"})
		}
		identity, err := resolver.Resolve(c.Context(), token)
		if err != nil {
			if errors.Is(err, domain.ErrSessionExpired) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_EXPIRED", Message: "sesión expirada"})
			}
			if errors.Is(err, domain.ErrUnauthorized) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_SESSION", Message: "sesión inválida"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		c.Locals(LocalIdentity, identity)
		return c.Next()
	}
}

// RequireAdmin exige rol admin sobre una identidad ya resuelta.
// Ejecutar siempre después de SessionMiddleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := GetIdentity(c)
		if identity == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_SESSION", Message: "sesión requerida"})
		}
		if identity.Role != entity.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "se requiere rol admin"})
		}
		return c.Next()
	}
}

// GetIdentity devuelve la identidad del contexto (después del middleware de sesión).
func GetIdentity(c *fiber.Ctx) *auth.Identity {
	v := c.Locals(LocalIdentity)
	if v == nil {
		return nil
	}
	identity, _ := v.(*auth.Identity)
	return identity
}

// sessionToken extrae el token de la cookie de sesión o del header
// Authorization (Bearer), en ese orden.
func sessionToken(c *fiber.Ctx, cookieName string) string {
	if tok := c.Cookies(cookieName); tok != "" {
		return tok
	}
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
