package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una caja. El paso ABIERTA -> CERRADA es de una sola vía.
const (
	CashSessionOpen   = "ABIERTA"
	CashSessionClosed = "CERRADA"
)

// CashSession representa una sesión de caja de una sucursal.
// Invariante: a lo sumo una caja ABIERTA por sucursal (índice único parcial
// en la tabla cajas; el cierre es un update condicional atómico).
type CashSession struct {
	ID            int64
	BranchID      int64
	State         string
	InitialAmount decimal.Decimal
	FinalAmount   decimal.NullDecimal // solo presente una vez CERRADA
	OpenedAt      time.Time
	ClosedAt      *time.Time

	BranchName string
}
