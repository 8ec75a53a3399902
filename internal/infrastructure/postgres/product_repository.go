package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/puntoclave/retail-api/internal/domain/entity"
	"github.com/puntoclave/retail-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

// Create persiste un nuevo producto (variante).
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO productos (nombre, creado_en)
		VALUES ($1, now())
		RETURNING id, creado_en`
	err := r.pool.QueryRow(context.Background(), query, product.Name).
		Scan(&product.ID, &product.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `SELECT id, nombre, creado_en FROM productos WHERE id = $1`
	var p entity.Product
	err := r.pool.QueryRow(context.Background(), query, id).Scan(&p.ID, &p.Name, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List lista todos los productos.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `SELECT id, nombre, creado_en FROM productos ORDER BY nombre, id`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
