package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/puntoclave/retail-api/internal/application/dto"
	"github.com/puntoclave/retail-api/internal/application/inventory"
)

// MovementHandler expone el libro de movimientos de inventario.
type MovementHandler struct {
	uc *inventory.UseCase
}

// NewMovementHandler construye el handler de movimientos.
func NewMovementHandler(uc *inventory.UseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// List maneja GET /movimientos: el libro completo, del más reciente al más
// antiguo.
func (h *MovementHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.ListMovements(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// Create maneja POST /movimientos: agrega un asiento al libro.
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := parseBody(c, &in); err != nil {
		return badRequest(c, "body inválido")
	}
	if err := h.uc.RecordMovement(c.Context(), in); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true})
}
