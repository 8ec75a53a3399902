package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/puntoclave/retail-api/internal/domain/entity"
	"github.com/puntoclave/retail-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de inventario. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// List devuelve todo el inventario con nombres de producto y sucursal,
// ordenado por sucursal y luego producto para que el listado sea determinista.
func (r *StockRepo) List() ([]*entity.StockEntry, error) {
	query := `
		SELECT i.id, i.id_producto, i.id_sucursal, i.cantidad, i.actualizado_en,
		       p.nombre, s.nombre
		FROM inventario i
		JOIN productos p ON p.id = i.id_producto
		JOIN sucursales s ON s.id = i.id_sucursal
		ORDER BY s.nombre, p.nombre, i.id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockEntry
	for rows.Next() {
		var e entity.StockEntry
		if err := rows.Scan(&e.ID, &e.ProductID, &e.BranchID, &e.Quantity,
			&e.UpdatedAt, &e.ProductName, &e.BranchName); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// SetQuantity sobrescribe la cantidad de la fila de inventario sin condiciones
// (sin chequeo de concurrencia optimista ni piso en cero).
func (r *StockRepo) SetQuantity(id int64, quantity decimal.Decimal) error {
	query := `UPDATE inventario SET cantidad = $2, actualizado_en = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, quantity)
	if err != nil {
		return fmt.Errorf("set stock: %w", err)
	}
	return nil
}

// GetForUpdate obtiene la fila del par producto+sucursal y la bloquea
// (SELECT FOR UPDATE). Devuelve una fila en cero si el par aún no existe.
func (r *StockRepo) GetForUpdate(productID, branchID int64) (*entity.StockEntry, error) {
	query := `
		SELECT id, id_producto, id_sucursal, cantidad, actualizado_en
		FROM inventario WHERE id_producto = $1 AND id_sucursal = $2
		FOR UPDATE`
	var e entity.StockEntry
	err := r.q.QueryRow(context.Background(), query, productID, branchID).Scan(
		&e.ID, &e.ProductID, &e.BranchID, &e.Quantity, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockEntry{ProductID: productID, BranchID: branchID, Quantity: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &e, nil
}

// AddQuantity suma delta a la cantidad del par producto+sucursal, creando la
// fila si no existe. El ajuste es relativo en SQL: dos transferencias
// concurrentes hacia un par nuevo acumulan en vez de pisarse.
func (r *StockRepo) AddQuantity(productID, branchID int64, delta decimal.Decimal) error {
	query := `
		INSERT INTO inventario (id_producto, id_sucursal, cantidad, actualizado_en)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (id_producto, id_sucursal)
		DO UPDATE SET cantidad = inventario.cantidad + EXCLUDED.cantidad, actualizado_en = now()`
	_, err := r.q.Exec(context.Background(), query, productID, branchID, delta)
	if err != nil {
		return fmt.Errorf("add stock: %w", err)
	}
	return nil
}
