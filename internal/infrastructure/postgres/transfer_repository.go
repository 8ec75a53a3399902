package postgres

import (
	"context"
	"fmt"

	"github.com/puntoclave/retail-api/internal/domain/entity"
	"github.com/puntoclave/retail-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo implementación del puerto TransferRepository sobre PostgreSQL
// (usable con pool o tx).
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

// Create persiste un traslado.
func (r *TransferRepo) Create(transfer *entity.Transfer) error {
	query := `
		INSERT INTO traslados
			(transaccion_id, id_producto, id_sucursal_origen, id_sucursal_destino, cantidad, observacion, creado_en)
		VALUES ($1::uuid, $2, $3, $4, $5, $6, now())
		RETURNING id, creado_en`
	err := r.q.QueryRow(context.Background(), query,
		transfer.TransactionID, transfer.ProductID, transfer.FromBranchID,
		transfer.ToBranchID, transfer.Quantity, transfer.Observation,
	).Scan(&transfer.ID, &transfer.CreatedAt)
	if err != nil {
		return fmt.Errorf("create transfer: %w", err)
	}
	return nil
}

// List devuelve los traslados con nombres denormalizados, del más reciente al más antiguo.
func (r *TransferRepo) List() ([]*entity.Transfer, error) {
	query := `
		SELECT t.id, t.transaccion_id::text, t.id_producto, t.id_sucursal_origen,
		       t.id_sucursal_destino, t.cantidad, t.observacion, t.creado_en,
		       p.nombre, so.nombre, sd.nombre
		FROM traslados t
		JOIN productos p ON p.id = t.id_producto
		JOIN sucursales so ON so.id = t.id_sucursal_origen
		JOIN sucursales sd ON sd.id = t.id_sucursal_destino
		ORDER BY t.creado_en DESC, t.id DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transfer
	for rows.Next() {
		var t entity.Transfer
		if err := rows.Scan(&t.ID, &t.TransactionID, &t.ProductID, &t.FromBranchID,
			&t.ToBranchID, &t.Quantity, &t.Observation, &t.CreatedAt,
			&t.ProductName, &t.FromBranchName, &t.ToBranchName); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
