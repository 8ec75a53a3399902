package inventory

import (
	"context"

	"github.com/puntoclave/retail-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para los traslados:
// los dos ajustes de stock y los dos asientos del libro se confirman juntos
// o no se confirman.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		movRepo repository.MovementRepository,
		transferRepo repository.TransferRepository,
	) error) error
}
