package repository

import "github.com/puntoclave/retail-api/internal/domain/entity"

// TransferRepository define el puerto de persistencia para traslados.
type TransferRepository interface {
	Create(transfer *entity.Transfer) error
	// List devuelve los traslados con nombres denormalizados, del más
	// reciente al más antiguo.
	List() ([]*entity.Transfer, error)
}
