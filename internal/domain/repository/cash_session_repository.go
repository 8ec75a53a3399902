package repository

import (
	"github.com/shopspring/decimal"

	"github.com/puntoclave/retail-api/internal/domain/entity"
)

// CashSessionRepository define el puerto de persistencia para cajas.
// CloseOpen es un update condicional atómico: no existe ventana entre leer la
// caja abierta y cerrarla, aun con cierres concurrentes para la misma sucursal.
type CashSessionRepository interface {
	// Open crea una caja ABIERTA. Devuelve entity-level error si ya hay una
	// abierta para la sucursal (índice único parcial).
	Open(branchID int64, initialAmount decimal.Decimal) (*entity.CashSession, error)
	// CloseOpen cierra la única caja ABIERTA de la sucursal en un solo UPDATE
	// condicional y fija monto_final. Devuelve nil si no había caja abierta.
	CloseOpen(branchID int64, finalAmount decimal.Decimal) (*entity.CashSession, error)
	// GetOpenByBranch devuelve la caja ABIERTA de la sucursal, o nil.
	GetOpenByBranch(branchID int64) (*entity.CashSession, error)
	// GetByID devuelve la caja con nombre de sucursal, o nil.
	GetByID(id int64) (*entity.CashSession, error)
}
