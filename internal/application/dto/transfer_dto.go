package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterTransferRequest body para POST /traslados. A diferencia del libro de
// movimientos, el traslado sí exige cantidad positiva y stock suficiente en
// origen: es orquestación nueva y corre dentro de una transacción.
type RegisterTransferRequest struct {
	IDProducto        int64            `json:"id_producto" validate:"required,gt=0"`
	IDSucursalOrigen  int64            `json:"id_sucursal_origen" validate:"required,gt=0"`
	IDSucursalDestino int64            `json:"id_sucursal_destino" validate:"required,gt=0"`
	Cantidad          *decimal.Decimal `json:"cantidad" validate:"required"`
	Observacion       string           `json:"observacion"`
}

// TransferResponse elemento de la respuesta de GET /traslados.
type TransferResponse struct {
	ID              int64           `json:"id"`
	TransaccionID   string          `json:"transaccion_id"`
	IDProducto      int64           `json:"id_producto"`
	Producto        string          `json:"producto"`
	SucursalOrigen  string          `json:"sucursal_origen"`
	SucursalDestino string          `json:"sucursal_destino"`
	Cantidad        decimal.Decimal `json:"cantidad"`
	Observacion     string          `json:"observacion"`
	CreadoEn        time.Time       `json:"creado_en"`
}
