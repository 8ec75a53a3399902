package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento habituales. El libro de movimientos acepta texto libre
// en tipo_movimiento; estas constantes son las que genera la propia API.
const (
	MovementTypeIN       = "IN"       // entrada
	MovementTypeOUT      = "OUT"      // salida
	MovementTypeAjuste   = "AJUSTE"   // ajuste manual
	MovementTypeTraslado = "TRASLADO" // generado por el flujo de traslados
)

// Movement es un registro inmutable del libro de movimientos de inventario.
// Nunca se actualiza ni se borra; se lista del más reciente al más antiguo.
// No modifica el inventario: stock y movimientos son bitácoras independientes.
type Movement struct {
	ID          int64
	ProductID   int64
	BranchID    int64
	Type        string
	Quantity    decimal.Decimal
	Observation string
	// TransactionID agrupa los dos movimientos de un traslado. Vacío para
	// movimientos registrados directamente.
	TransactionID string
	CreatedAt     time.Time

	// Nombres denormalizados para listados.
	ProductName string
	BranchName  string
}
