package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AbrirCajaRequest body para POST /dashboard/caja/abrir.
type AbrirCajaRequest struct {
	MontoInicial *decimal.Decimal `json:"monto_inicial" validate:"required"`
}

// CerrarCajaRequest body para POST /dashboard/caja/cerrar.
type CerrarCajaRequest struct {
	MontoFinal *decimal.Decimal `json:"monto_final" validate:"required"`
}

// CajaResponse representación de una caja en respuestas.
type CajaResponse struct {
	ID           int64            `json:"id"`
	IDSucursal   int64            `json:"id_sucursal"`
	Estado       string           `json:"estado"`
	MontoInicial decimal.Decimal  `json:"monto_inicial"`
	MontoFinal   *decimal.Decimal `json:"monto_final,omitempty"`
	AbiertaEn    time.Time        `json:"abierta_en"`
	CerradaEn    *time.Time       `json:"cerrada_en,omitempty"`
}
