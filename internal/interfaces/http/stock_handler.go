package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/puntoclave/retail-api/internal/application/dto"
	"github.com/puntoclave/retail-api/internal/application/inventory"
)

// StockHandler expone el inventario por sucursal.
type StockHandler struct {
	uc *inventory.UseCase
}

// NewStockHandler construye el handler de stock.
func NewStockHandler(uc *inventory.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List maneja GET /stock: todo el inventario con producto y sucursal.
func (h *StockHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.ListStock(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// Update maneja PATCH /stock: sobrescribe la cantidad de una fila.
func (h *StockHandler) Update(c *fiber.Ctx) error {
	var in dto.SetStockRequest
	if err := parseBody(c, &in); err != nil {
		return badRequest(c, "body inválido")
	}
	if err := h.uc.SetStock(c.Context(), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Stock actualizado"})
}
