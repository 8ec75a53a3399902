package repository

import (
	"github.com/shopspring/decimal"

	"github.com/puntoclave/retail-api/internal/domain/entity"
)

// StockRepository define el puerto para consultar y sobrescribir existencias.
// SetQuantity es una sobrescritura absoluta (semántica PATCH); no valida piso
// en cero ni genera movimientos. GetForUpdate/AddQuantity se usan dentro de
// transacciones (traslados) para garantizar consistencia.
type StockRepository interface {
	// List devuelve todas las filas de inventario con nombre de producto y
	// sucursal, ordenadas por sucursal y luego producto.
	List() ([]*entity.StockEntry, error)
	// SetQuantity sobrescribe la cantidad de la fila id sin condiciones.
	SetQuantity(id int64, quantity decimal.Decimal) error
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) del par producto+sucursal.
	// Devuelve una fila en cero si el par aún no existe.
	GetForUpdate(productID, branchID int64) (*entity.StockEntry, error)
	// AddQuantity suma delta (puede ser negativo) a la cantidad del par
	// producto+sucursal, creando la fila si no existe. El ajuste es relativo
	// en la base: ajustes concurrentes sobre el mismo par no se pisan.
	AddQuantity(productID, branchID int64, delta decimal.Decimal) error
}
