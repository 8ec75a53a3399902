package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordMovementRequest body para POST /movimientos. tipo_movimiento es texto
// libre: el libro no impone un conjunto cerrado de tipos ni signo de cantidad.
type RecordMovementRequest struct {
	IDProducto     int64            `json:"id_producto" validate:"required,gt=0"`
	IDSucursal     int64            `json:"id_sucursal" validate:"required,gt=0"`
	TipoMovimiento string           `json:"tipo_movimiento" validate:"required"`
	Cantidad       *decimal.Decimal `json:"cantidad" validate:"required"`
	Observacion    string           `json:"observacion"`
}

// MovementResponse elemento de la respuesta de GET /movimientos.
type MovementResponse struct {
	ID             int64           `json:"id"`
	IDProducto     int64           `json:"id_producto"`
	Producto       string          `json:"producto"`
	IDSucursal     int64           `json:"id_sucursal"`
	Sucursal       string          `json:"sucursal"`
	TipoMovimiento string          `json:"tipo_movimiento"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	Observacion    string          `json:"observacion"`
	TransaccionID  string          `json:"transaccion_id,omitempty"`
	CreadoEn       time.Time       `json:"creado_en"`
}
