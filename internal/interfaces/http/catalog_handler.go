package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/puntoclave/retail-api/internal/application/dto"
	"github.com/puntoclave/retail-api/internal/application/usecase"
)

// BranchHandler expone el catálogo de sucursales.
type BranchHandler struct {
	uc *usecase.BranchUseCase
}

// NewBranchHandler construye el handler de sucursales.
func NewBranchHandler(uc *usecase.BranchUseCase) *BranchHandler {
	return &BranchHandler{uc: uc}
}

// List maneja GET /sucursales.
func (h *BranchHandler) List(c *fiber.Ctx) error {
	branches, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(branches)
}

// Get maneja GET /sucursales/:id.
func (h *BranchHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return badRequest(c, "id inválido")
	}
	branch, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if branch == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sucursal no encontrada"})
	}
	return c.JSON(branch)
}

// Create maneja POST /sucursales.
func (h *BranchHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBranchRequest
	if err := parseBody(c, &in); err != nil {
		return badRequest(c, "body inválido")
	}
	branch, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(branch)
}

// ProductHandler expone el catálogo de productos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler de productos.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List maneja GET /productos.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

// Get maneja GET /productos/:id.
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return badRequest(c, "id inválido")
	}
	product, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if product == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(product)
}

// Create maneja POST /productos.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := parseBody(c, &in); err != nil {
		return badRequest(c, "body inválido")
	}
	product, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}
