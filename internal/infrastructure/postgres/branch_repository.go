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

var _ repository.BranchRepository = (*BranchRepo)(nil)

// BranchRepo implementación del puerto BranchRepository sobre PostgreSQL.
type BranchRepo struct {
	pool *pgxpool.Pool
}

// NewBranchRepository construye el adaptador de persistencia para sucursales.
func NewBranchRepository(pool *pgxpool.Pool) *BranchRepo {
	return &BranchRepo{pool: pool}
}

// Create persiste una nueva sucursal.
func (r *BranchRepo) Create(branch *entity.Branch) error {
	query := `
		INSERT INTO sucursales (nombre, creado_en)
		VALUES ($1, now())
		RETURNING id, creado_en`
	err := r.pool.QueryRow(context.Background(), query, branch.Name).
		Scan(&branch.ID, &branch.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert branch: %w", err)
	}
	return nil
}

// GetByID obtiene una sucursal por ID.
func (r *BranchRepo) GetByID(id int64) (*entity.Branch, error) {
	query := `SELECT id, nombre, creado_en FROM sucursales WHERE id = $1`
	var b entity.Branch
	err := r.pool.QueryRow(context.Background(), query, id).Scan(&b.ID, &b.Name, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get branch: %w", err)
	}
	return &b, nil
}

// List lista todas las sucursales.
func (r *BranchRepo) List() ([]*entity.Branch, error) {
	query := `SELECT id, nombre, creado_en FROM sucursales ORDER BY nombre, id`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}
	defer rows.Close()
	var list []*entity.Branch
	for rows.Next() {
		var b entity.Branch
		if err := rows.Scan(&b.ID, &b.Name, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan branch: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
