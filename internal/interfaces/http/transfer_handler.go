package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/puntoclave/retail-api/internal/application/dto"
	"github.com/puntoclave/retail-api/internal/application/inventory"
)

// TransferHandler expone los traslados de stock entre sucursales.
type TransferHandler struct {
	uc *inventory.UseCase
}

// NewTransferHandler construye el handler de traslados.
func NewTransferHandler(uc *inventory.UseCase) *TransferHandler {
	return &TransferHandler{uc: uc}
}

// List maneja GET /traslados.
func (h *TransferHandler) List(c *fiber.Ctx) error {
	transfers, err := h.uc.ListTransfers(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(transfers)
}

// Create maneja POST /traslados: resta en origen, suma en destino y asienta
// los dos movimientos en una sola transacción.
func (h *TransferHandler) Create(c *fiber.Ctx) error {
	var in dto.RegisterTransferRequest
	if err := parseBody(c, &in); err != nil {
		return badRequest(c, "body inválido")
	}
	transfer, err := h.uc.RegisterTransfer(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(transfer)
}
