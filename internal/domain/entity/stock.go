package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockEntry representa la existencia actual de un producto en una sucursal.
// Una fila por par (producto, sucursal). Se muta solo por sobrescritura
// absoluta de cantidad o por el flujo transaccional de traslados.
type StockEntry struct {
	ID        int64
	ProductID int64
	BranchID  int64
	Quantity  decimal.Decimal
	UpdatedAt time.Time

	// Nombres denormalizados para listados (join con productos y sucursales).
	ProductName string
	BranchName  string
}
