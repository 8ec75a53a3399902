package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/puntoclave/retail-api/internal/application/dto"
	"github.com/puntoclave/retail-api/internal/domain"
	"github.com/puntoclave/retail-api/internal/domain/entity"
	"github.com/puntoclave/retail-api/internal/domain/repository"
)

// UseCase agrupa las operaciones de inventario: listado y sobrescritura de
// stock, libro de movimientos y traslados entre sucursales.
//
// Stock y movimientos son bitácoras independientes: PATCH de stock no genera
// movimiento y registrar un movimiento no toca el inventario. El único flujo
// que escribe en ambas es el traslado, y lo hace en una sola transacción.
type UseCase struct {
	stockRepo    repository.StockRepository
	movementRepo repository.MovementRepository
	transferRepo repository.TransferRepository
	productRepo  repository.ProductRepository
	branchRepo   repository.BranchRepository
	txRunner     TxRunner
}

// NewUseCase construye el caso de uso de inventario.
func NewUseCase(
	stockRepo repository.StockRepository,
	movementRepo repository.MovementRepository,
	transferRepo repository.TransferRepository,
	productRepo repository.ProductRepository,
	branchRepo repository.BranchRepository,
	txRunner TxRunner,
) *UseCase {
	return &UseCase{
		stockRepo:    stockRepo,
		movementRepo: movementRepo,
		transferRepo: transferRepo,
		productRepo:  productRepo,
		branchRepo:   branchRepo,
		txRunner:     txRunner,
	}
}

// ListStock devuelve todo el inventario con nombres de producto y sucursal.
func (uc *UseCase) ListStock(ctx context.Context) ([]dto.StockItem, error) {
	list, err := uc.stockRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockItem, 0, len(list))
	for _, e := range list {
		out = append(out, dto.StockItem{
			ID:            e.ID,
			Producto:      e.ProductName,
			Sucursal:      e.BranchName,
			Stock:         e.Quantity,
			ActualizadoEn: e.UpdatedAt,
		})
	}
	return out, nil
}

// SetStock sobrescribe la cantidad de una fila de inventario (semántica
// PATCH). Valida forma y presencia; no aplica piso en cero ni chequeo de
// concurrencia, y no genera movimiento en el libro.
func (uc *UseCase) SetStock(ctx context.Context, in dto.SetStockRequest) error {
	if err := dto.Validate(in); err != nil {
		return domain.ErrInvalidInput
	}
	return uc.stockRepo.SetQuantity(in.ID, *in.NuevaCantidad)
}

// ListMovements devuelve el libro completo, del más reciente al más antiguo.
func (uc *UseCase) ListMovements(ctx context.Context) ([]dto.MovementResponse, error) {
	list, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, movementToResponse(m))
	}
	return out, nil
}

// RecordMovement agrega un registro al libro. El tipo es texto libre y la
// cantidad no se restringe en signo; la integridad referencial de producto y
// sucursal queda delegada a las claves foráneas de la base.
func (uc *UseCase) RecordMovement(ctx context.Context, in dto.RecordMovementRequest) error {
	if err := dto.Validate(in); err != nil {
		return domain.ErrInvalidInput
	}
	mov := &entity.Movement{
		ProductID:   in.IDProducto,
		BranchID:    in.IDSucursal,
		Type:        in.TipoMovimiento,
		Quantity:    *in.Cantidad,
		Observation: in.Observacion,
	}
	return uc.movementRepo.Create(mov)
}

// RegisterTransfer mueve stock entre dos sucursales en una sola transacción:
// bloquea la fila de origen (SELECT FOR UPDATE), verifica existencias, resta
// en origen, suma en destino y deja dos asientos en el libro agrupados por
// transaccion_id, además del registro en traslados.
func (uc *UseCase) RegisterTransfer(ctx context.Context, in dto.RegisterTransferRequest) (*dto.TransferResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if !in.Cantidad.GreaterThan(decimal.Zero) || in.IDSucursalOrigen == in.IDSucursalDestino {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.IDProducto)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	origin, err := uc.branchRepo.GetByID(in.IDSucursalOrigen)
	if err != nil {
		return nil, err
	}
	dest, err := uc.branchRepo.GetByID(in.IDSucursalDestino)
	if err != nil {
		return nil, err
	}
	if origin == nil || dest == nil {
		return nil, domain.ErrNotFound
	}

	transfer := &entity.Transfer{
		TransactionID: uuid.New().String(),
		ProductID:     in.IDProducto,
		FromBranchID:  in.IDSucursalOrigen,
		ToBranchID:    in.IDSucursalDestino,
		Quantity:      *in.Cantidad,
		Observation:   in.Observacion,
	}

	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		movRepo repository.MovementRepository,
		transferRepo repository.TransferRepository,
	) error {
		originStock, err := stockRepo.GetForUpdate(in.IDProducto, in.IDSucursalOrigen)
		if err != nil {
			return err
		}
		if originStock.Quantity.LessThan(transfer.Quantity) {
			return domain.ErrInsufficientStock
		}

		// Ajustes relativos: el destino puede no tener fila todavía y el
		// upsert aditivo acumula en vez de pisar con un absoluto.
		if err := stockRepo.AddQuantity(in.IDProducto, in.IDSucursalOrigen, transfer.Quantity.Neg()); err != nil {
			return err
		}
		if err := stockRepo.AddQuantity(in.IDProducto, in.IDSucursalDestino, transfer.Quantity); err != nil {
			return err
		}

		// Asiento de salida en origen
		outMov := &entity.Movement{
			ProductID:     in.IDProducto,
			BranchID:      in.IDSucursalOrigen,
			Type:          entity.MovementTypeTraslado,
			Quantity:      transfer.Quantity.Neg(),
			Observation:   in.Observacion,
			TransactionID: transfer.TransactionID,
		}
		if err := movRepo.Create(outMov); err != nil {
			return err
		}
		// Asiento de entrada en destino
		inMov := &entity.Movement{
			ProductID:     in.IDProducto,
			BranchID:      in.IDSucursalDestino,
			Type:          entity.MovementTypeTraslado,
			Quantity:      transfer.Quantity,
			Observation:   in.Observacion,
			TransactionID: transfer.TransactionID,
		}
		if err := movRepo.Create(inMov); err != nil {
			return err
		}
		return transferRepo.Create(transfer)
	})
	if err != nil {
		return nil, err
	}

	resp := transferToResponse(transfer)
	resp.Producto = product.Name
	resp.SucursalOrigen = origin.Name
	resp.SucursalDestino = dest.Name
	return &resp, nil
}

// ListTransfers devuelve los traslados, del más reciente al más antiguo.
func (uc *UseCase) ListTransfers(ctx context.Context) ([]dto.TransferResponse, error) {
	list, err := uc.transferRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransferResponse, 0, len(list))
	for _, t := range list {
		resp := transferToResponse(t)
		resp.Producto = t.ProductName
		resp.SucursalOrigen = t.FromBranchName
		resp.SucursalDestino = t.ToBranchName
		out = append(out, resp)
	}
	return out, nil
}

func movementToResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:             m.ID,
		IDProducto:     m.ProductID,
		Producto:       m.ProductName,
		IDSucursal:     m.BranchID,
		Sucursal:       m.BranchName,
		TipoMovimiento: m.Type,
		Cantidad:       m.Quantity,
		Observacion:    m.Observation,
		TransaccionID:  m.TransactionID,
		CreadoEn:       m.CreatedAt,
	}
}

func transferToResponse(t *entity.Transfer) dto.TransferResponse {
	return dto.TransferResponse{
		ID:            t.ID,
		TransaccionID: t.TransactionID,
		IDProducto:    t.ProductID,
		Cantidad:      t.Quantity,
		Observacion:   t.Observation,
		CreadoEn:      t.CreatedAt,
	}
}
