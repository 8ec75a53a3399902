package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/puntoclave/retail-api/internal/domain"
	"github.com/puntoclave/retail-api/internal/domain/entity"
	"github.com/puntoclave/retail-api/internal/domain/repository"
)

var _ repository.CashSessionRepository = (*CashSessionRepo)(nil)

// CashSessionRepo implementación del puerto CashSessionRepository sobre PostgreSQL.
type CashSessionRepo struct {
	pool *pgxpool.Pool
}

// NewCashSessionRepository construye el adaptador de persistencia para cajas.
func NewCashSessionRepository(pool *pgxpool.Pool) *CashSessionRepo {
	return &CashSessionRepo{pool: pool}
}

// Open crea una caja ABIERTA para la sucursal. El índice único parcial
// ux_cajas_abierta garantiza a lo sumo una abierta por sucursal; la violación
// se traduce a ErrCashSessionOpen.
func (r *CashSessionRepo) Open(branchID int64, initialAmount decimal.Decimal) (*entity.CashSession, error) {
	query := `
		INSERT INTO cajas (id_sucursal, estado, monto_inicial, abierta_en)
		VALUES ($1, 'ABIERTA', $2, now())
		RETURNING id, id_sucursal, estado, monto_inicial, monto_final, abierta_en, cerrada_en`
	var c entity.CashSession
	err := r.pool.QueryRow(context.Background(), query, branchID, initialAmount).Scan(
		&c.ID, &c.BranchID, &c.State, &c.InitialAmount, &c.FinalAmount, &c.OpenedAt, &c.ClosedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrCashSessionOpen
		}
		return nil, fmt.Errorf("open cash session: %w", err)
	}
	return &c, nil
}

// CloseOpen cierra la caja ABIERTA de la sucursal en un solo UPDATE
// condicional. La condición estado = 'ABIERTA' hace las veces de
// compare-and-swap: con cierres concurrentes solo uno afecta la fila, el
// resto recibe cero filas y se reporta como "no hay caja abierta".
func (r *CashSessionRepo) CloseOpen(branchID int64, finalAmount decimal.Decimal) (*entity.CashSession, error) {
	query := `
		UPDATE cajas
		SET estado = 'CERRADA', monto_final = $2, cerrada_en = now()
		WHERE id_sucursal = $1 AND estado = 'ABIERTA'
		RETURNING id, id_sucursal, estado, monto_inicial, monto_final, abierta_en, cerrada_en`
	var c entity.CashSession
	err := r.pool.QueryRow(context.Background(), query, branchID, finalAmount).Scan(
		&c.ID, &c.BranchID, &c.State, &c.InitialAmount, &c.FinalAmount, &c.OpenedAt, &c.ClosedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("close cash session: %w", err)
	}
	return &c, nil
}

// GetOpenByBranch devuelve la caja ABIERTA de la sucursal, o nil.
func (r *CashSessionRepo) GetOpenByBranch(branchID int64) (*entity.CashSession, error) {
	query := `
		SELECT id, id_sucursal, estado, monto_inicial, monto_final, abierta_en, cerrada_en
		FROM cajas WHERE id_sucursal = $1 AND estado = 'ABIERTA'`
	var c entity.CashSession
	err := r.pool.QueryRow(context.Background(), query, branchID).Scan(
		&c.ID, &c.BranchID, &c.State, &c.InitialAmount, &c.FinalAmount, &c.OpenedAt, &c.ClosedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get open cash session: %w", err)
	}
	return &c, nil
}

// GetByID devuelve la caja con el nombre de su sucursal, o nil.
func (r *CashSessionRepo) GetByID(id int64) (*entity.CashSession, error) {
	query := `
		SELECT c.id, c.id_sucursal, c.estado, c.monto_inicial, c.monto_final,
		       c.abierta_en, c.cerrada_en, s.nombre
		FROM cajas c
		JOIN sucursales s ON s.id = c.id_sucursal
		WHERE c.id = $1`
	var c entity.CashSession
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.BranchID, &c.State, &c.InitialAmount, &c.FinalAmount,
		&c.OpenedAt, &c.ClosedAt, &c.BranchName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cash session: %w", err)
	}
	return &c, nil
}
