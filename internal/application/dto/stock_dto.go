package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SetStockRequest body para PATCH /stock. La cantidad es sobrescritura
// absoluta; se acepta cualquier valor numérico (sin piso en cero).
type SetStockRequest struct {
	ID            int64            `json:"id" validate:"required,gt=0"`
	NuevaCantidad *decimal.Decimal `json:"nuevaCantidad" validate:"required"`
}

// StockItem elemento de la respuesta de GET /stock.
type StockItem struct {
	ID            int64           `json:"id"`
	Producto      string          `json:"producto"`
	Sucursal      string          `json:"sucursal"`
	Stock         decimal.Decimal `json:"stock"`
	ActualizadoEn time.Time       `json:"actualizado_en"`
}
