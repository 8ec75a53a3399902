package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/puntoclave/retail-api/internal/application/dto"
	"github.com/puntoclave/retail-api/internal/application/usecase"
)

// UserHandler expone la gestión de usuarios (solo admin).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler de usuarios.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List maneja GET /usuarios: los usuarios no admin con su sucursal.
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.uc.ListNonAdmin()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// Create maneja POST /usuarios: alta de usuario con password hasheado.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := parseBody(c, &in); err != nil {
		return badRequest(c, "body inválido")
	}
	user, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}
