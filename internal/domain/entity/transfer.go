package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer representa un traslado de stock entre dos sucursales.
// TransactionID agrupa el traslado con sus dos movimientos en el libro
// (salida en origen, entrada en destino), escritos en la misma transacción.
type Transfer struct {
	ID            int64
	TransactionID string
	ProductID     int64
	FromBranchID  int64
	ToBranchID    int64
	Quantity      decimal.Decimal
	Observation   string
	CreatedAt     time.Time

	ProductName    string
	FromBranchName string
	ToBranchName   string
}
