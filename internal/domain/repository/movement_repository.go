package repository

import "github.com/puntoclave/retail-api/internal/domain/entity"

// MovementRepository define el puerto del libro de movimientos (append-only).
type MovementRepository interface {
	// Create agrega un registro inmutable al libro.
	Create(movement *entity.Movement) error
	// List devuelve todos los movimientos con nombres de producto y sucursal,
	// del más reciente al más antiguo.
	List() ([]*entity.Movement, error)
}
