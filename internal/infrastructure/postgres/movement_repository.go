package postgres

import (
	"context"
	"fmt"

	"github.com/puntoclave/retail-api/internal/domain/entity"
	"github.com/puntoclave/retail-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). La tabla es append-only: nunca UPDATE ni DELETE.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create agrega un movimiento al libro. No toca la tabla inventario: el libro
// y las existencias son bitácoras independientes.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movimientos_inventario
			(id_producto, id_sucursal, tipo_movimiento, cantidad, observacion, transaccion_id, creado_en)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, '')::uuid, now())
		RETURNING id, creado_en`
	err := r.q.QueryRow(context.Background(), query,
		movement.ProductID, movement.BranchID, movement.Type,
		movement.Quantity, movement.Observation, movement.TransactionID,
	).Scan(&movement.ID, &movement.CreatedAt)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// List devuelve todos los movimientos con nombres de producto y sucursal,
// del más reciente al más antiguo.
func (r *MovementRepo) List() ([]*entity.Movement, error) {
	query := `
		SELECT m.id, m.id_producto, m.id_sucursal, m.tipo_movimiento, m.cantidad,
		       m.observacion, COALESCE(m.transaccion_id::text, ''), m.creado_en,
		       p.nombre, s.nombre
		FROM movimientos_inventario m
		JOIN productos p ON p.id = m.id_producto
		JOIN sucursales s ON s.id = m.id_sucursal
		ORDER BY m.creado_en DESC, m.id DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.BranchID, &m.Type, &m.Quantity,
			&m.Observation, &m.TransactionID, &m.CreatedAt,
			&m.ProductName, &m.BranchName); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
