package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/puntoclave/retail-api/internal/application/caja"
	"github.com/puntoclave/retail-api/internal/application/dto"
)

// CajaHandler expone las operaciones de caja del dashboard. La sucursal sale
// siempre de la identidad de la sesión, nunca del body.
type CajaHandler struct {
	uc *caja.UseCase
}

// NewCajaHandler construye el handler de cajas.
func NewCajaHandler(uc *caja.UseCase) *CajaHandler {
	return &CajaHandler{uc: uc}
}

// Current maneja GET /dashboard/caja: la caja ABIERTA de la sucursal.
func (h *CajaHandler) Current(c *fiber.Ctx) error {
	identity := GetIdentity(c)
	resp, err := h.uc.Current(c.Context(), identity.BranchID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Abrir maneja POST /dashboard/caja/abrir: abre una caja con monto inicial.
func (h *CajaHandler) Abrir(c *fiber.Ctx) error {
	var in dto.AbrirCajaRequest
	if err := parseBody(c, &in); err != nil {
		return badRequest(c, "body inválido")
	}
	if err := dto.Validate(in); err != nil {
		return badRequest(c, "monto_inicial es obligatorio")
	}
	identity := GetIdentity(c)
	resp, err := h.uc.Open(c.Context(), identity.BranchID, *in.MontoInicial)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Cerrar maneja POST /dashboard/caja/cerrar: fija monto_final y cierra la
// caja ABIERTA de la sucursal. El cierre es atómico en la base: dos cierres
// concurrentes nunca tienen éxito ambos.
func (h *CajaHandler) Cerrar(c *fiber.Ctx) error {
	var in dto.CerrarCajaRequest
	if err := parseBody(c, &in); err != nil {
		return badRequest(c, "body inválido")
	}
	if err := dto.Validate(in); err != nil {
		return badRequest(c, "monto_final es obligatorio")
	}
	identity := GetIdentity(c)
	if _, err := h.uc.Close(c.Context(), identity.BranchID, *in.MontoFinal); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// Comprobante maneja GET /dashboard/caja/:id/comprobante: PDF del cierre.
func (h *CajaHandler) Comprobante(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return badRequest(c, "id inválido")
	}
	pdf, err := h.uc.Receipt(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=cierre_caja_%d.pdf", id))
	return c.Send(pdf)
}
