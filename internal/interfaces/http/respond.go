package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/puntoclave/retail-api/internal/application/dto"
	"github.com/puntoclave/retail-api/internal/domain"
)

// respondError traduce errores de dominio al contrato HTTP {code, message}.
// Todo lo no reconocido es un 500 genérico.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()})
	case errors.Is(err, domain.ErrNoOpenCashSession):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_OPEN_CASH", Message: "No hay caja abierta"})
	case errors.Is(err, domain.ErrCashSessionOpen):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CASH_ALREADY_OPEN", Message: err.Error()})
	case errors.Is(err, domain.ErrCashSessionNotClosed):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CASH_NOT_CLOSED", Message: err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: err.Error()})
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrSessionExpired):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_EXPIRED", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}

// badRequest respuesta 400 para cuerpos malformados o incompletos.
func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: message})
}
