package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puntoclave/retail-api/internal/application/dto"
	"github.com/puntoclave/retail-api/internal/application/inventory"
	"github.com/puntoclave/retail-api/internal/domain"
	"github.com/puntoclave/retail-api/internal/domain/entity"
	"github.com/puntoclave/retail-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes in-memory de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeStockRepo struct {
	entries []*entity.StockEntry
	nextID  int64
}

func (f *fakeStockRepo) List() ([]*entity.StockEntry, error) {
	out := make([]*entity.StockEntry, len(f.entries))
	copy(out, f.entries)
	return out, nil
}

func (f *fakeStockRepo) SetQuantity(id int64, quantity decimal.Decimal) error {
	for _, e := range f.entries {
		if e.ID == id {
			e.Quantity = quantity
			return nil
		}
	}
	// Igual que el UPDATE real: cero filas afectadas no es error.
	return nil
}

func (f *fakeStockRepo) GetForUpdate(productID, branchID int64) (*entity.StockEntry, error) {
	for _, e := range f.entries {
		if e.ProductID == productID && e.BranchID == branchID {
			cp := *e
			return &cp, nil
		}
	}
	return &entity.StockEntry{ProductID: productID, BranchID: branchID, Quantity: decimal.Zero}, nil
}

func (f *fakeStockRepo) AddQuantity(productID, branchID int64, delta decimal.Decimal) error {
	// Aditivo, igual que el upsert real: acumula sobre lo existente.
	for _, e := range f.entries {
		if e.ProductID == productID && e.BranchID == branchID {
			e.Quantity = e.Quantity.Add(delta)
			return nil
		}
	}
	f.nextID++
	f.entries = append(f.entries, &entity.StockEntry{
		ID:        f.nextID,
		ProductID: productID,
		BranchID:  branchID,
		Quantity:  delta,
	})
	return nil
}

func (f *fakeStockRepo) quantityOf(productID, branchID int64) decimal.Decimal {
	for _, e := range f.entries {
		if e.ProductID == productID && e.BranchID == branchID {
			return e.Quantity
		}
	}
	return decimal.Zero
}

type fakeMovementRepo struct {
	movements []*entity.Movement
}

func (f *fakeMovementRepo) Create(m *entity.Movement) error {
	cp := *m
	cp.ID = int64(len(f.movements) + 1)
	f.movements = append(f.movements, &cp)
	return nil
}

func (f *fakeMovementRepo) List() ([]*entity.Movement, error) {
	// Del más reciente al más antiguo, como el repositorio real.
	out := make([]*entity.Movement, 0, len(f.movements))
	for i := len(f.movements) - 1; i >= 0; i-- {
		out = append(out, f.movements[i])
	}
	return out, nil
}

type fakeTransferRepo struct {
	transfers []*entity.Transfer
}

func (f *fakeTransferRepo) Create(t *entity.Transfer) error {
	cp := *t
	cp.ID = int64(len(f.transfers) + 1)
	f.transfers = append(f.transfers, &cp)
	t.ID = cp.ID
	return nil
}

func (f *fakeTransferRepo) List() ([]*entity.Transfer, error) {
	out := make([]*entity.Transfer, 0, len(f.transfers))
	for i := len(f.transfers) - 1; i >= 0; i-- {
		out = append(out, f.transfers[i])
	}
	return out, nil
}

type fakeBranchRepo struct {
	branches map[int64]*entity.Branch
}

func (f *fakeBranchRepo) Create(b *entity.Branch) error {
	b.ID = int64(len(f.branches) + 1)
	f.branches[b.ID] = b
	return nil
}

func (f *fakeBranchRepo) GetByID(id int64) (*entity.Branch, error) {
	return f.branches[id], nil
}

func (f *fakeBranchRepo) List() ([]*entity.Branch, error) {
	out := make([]*entity.Branch, 0, len(f.branches))
	for _, b := range f.branches {
		out = append(out, b)
	}
	return out, nil
}

type fakeProductRepo struct {
	products map[int64]*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	p.ID = int64(len(f.products) + 1)
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	return f.products[id], nil
}

func (f *fakeProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

// fakeTxRunner ejecuta la función directamente sobre los fakes compartidos.
// Sin rollback: los tests que esperan fallo verifican que el caso de uso
// corta antes de mutar.
type fakeTxRunner struct {
	stock    *fakeStockRepo
	movement *fakeMovementRepo
	transfer *fakeTransferRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	stockRepo repository.StockRepository,
	movRepo repository.MovementRepository,
	transferRepo repository.TransferRepository,
) error) error {
	return fn(f.stock, f.movement, f.transfer)
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado del caso de uso bajo prueba
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

type fixture struct {
	uc       *inventory.UseCase
	stock    *fakeStockRepo
	movement *fakeMovementRepo
	transfer *fakeTransferRepo
}

// newFixture arma dos sucursales, un producto y stock 10 en la sucursal 1.
func newFixture() *fixture {
	stock := &fakeStockRepo{
		entries: []*entity.StockEntry{
			{ID: 1, ProductID: 1, BranchID: 1, Quantity: dec("10"), ProductName: "Camiseta M", BranchName: "Centro"},
		},
		nextID: 1,
	}
	movement := &fakeMovementRepo{}
	transfer := &fakeTransferRepo{}
	products := &fakeProductRepo{products: map[int64]*entity.Product{
		1: {ID: 1, Name: "Camiseta M"},
	}}
	branches := &fakeBranchRepo{branches: map[int64]*entity.Branch{
		1: {ID: 1, Name: "Centro"},
		2: {ID: 2, Name: "Norte"},
	}}
	tx := &fakeTxRunner{stock: stock, movement: movement, transfer: transfer}
	return &fixture{
		uc:       inventory.NewUseCase(stock, movement, transfer, products, branches, tx),
		stock:    stock,
		movement: movement,
		transfer: transfer,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests SetStock
// ──────────────────────────────────────────────────────────────────────────────

func TestSetStock_SobrescribeCantidad(t *testing.T) {
	f := newFixture()

	err := f.uc.SetStock(context.Background(), dto.SetStockRequest{ID: 1, NuevaCantidad: decPtr("25.5")})
	require.NoError(t, err)

	assert.True(t, f.stock.quantityOf(1, 1).Equal(dec("25.5")),
		"la cantidad debe quedar sobrescrita al valor exacto")
}

func TestSetStock_PermiteNegativo(t *testing.T) {
	// Sin piso en cero: la sobrescritura acepta cualquier valor numérico.
	f := newFixture()

	err := f.uc.SetStock(context.Background(), dto.SetStockRequest{ID: 1, NuevaCantidad: decPtr("-3")})
	require.NoError(t, err)

	assert.True(t, f.stock.quantityOf(1, 1).Equal(dec("-3")))
}

func TestSetStock_SinCantidad_RetornaInvalido(t *testing.T) {
	f := newFixture()

	err := f.uc.SetStock(context.Background(), dto.SetStockRequest{ID: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.True(t, f.stock.quantityOf(1, 1).Equal(dec("10")),
		"una petición inválida no debe mutar el inventario")
}

func TestSetStock_IDCero_RetornaInvalido(t *testing.T) {
	f := newFixture()

	err := f.uc.SetStock(context.Background(), dto.SetStockRequest{ID: 0, NuevaCantidad: decPtr("5")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSetStock_NoGeneraMovimiento(t *testing.T) {
	// Stock y movimientos son bitácoras independientes.
	f := newFixture()

	require.NoError(t, f.uc.SetStock(context.Background(), dto.SetStockRequest{ID: 1, NuevaCantidad: decPtr("7")}))
	assert.Empty(t, f.movement.movements, "PATCH de stock no debe asentar en el libro")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests movimientos
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordMovement_TipoLibre(t *testing.T) {
	// El libro no impone un conjunto cerrado de tipos.
	f := newFixture()

	err := f.uc.RecordMovement(context.Background(), dto.RecordMovementRequest{
		IDProducto:     1,
		IDSucursal:     1,
		TipoMovimiento: "MERMA",
		Cantidad:       decPtr("-2"),
		Observacion:    "rotura en bodega",
	})
	require.NoError(t, err)
	require.Len(t, f.movement.movements, 1)
	assert.Equal(t, "MERMA", f.movement.movements[0].Type)
}

func TestRecordMovement_NoTocaInventario(t *testing.T) {
	f := newFixture()

	require.NoError(t, f.uc.RecordMovement(context.Background(), dto.RecordMovementRequest{
		IDProducto: 1, IDSucursal: 1, TipoMovimiento: "OUT", Cantidad: decPtr("4"),
	}))
	assert.True(t, f.stock.quantityOf(1, 1).Equal(dec("10")),
		"registrar un movimiento no debe mutar el inventario")
}

func TestRecordMovement_SinTipo_RetornaInvalido(t *testing.T) {
	f := newFixture()

	err := f.uc.RecordMovement(context.Background(), dto.RecordMovementRequest{
		IDProducto: 1, IDSucursal: 1, Cantidad: decPtr("4"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, f.movement.movements)
}

func TestListMovements_MasRecientePrimero(t *testing.T) {
	f := newFixture()

	for _, tipo := range []string{"IN", "OUT", "AJUSTE"} {
		require.NoError(t, f.uc.RecordMovement(context.Background(), dto.RecordMovementRequest{
			IDProducto: 1, IDSucursal: 1, TipoMovimiento: tipo, Cantidad: decPtr("1"),
		}))
	}

	list, err := f.uc.ListMovements(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "AJUSTE", list[0].TipoMovimiento, "el último asiento debe salir primero")
	assert.Equal(t, "IN", list[2].TipoMovimiento)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests traslados
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterTransfer_MueveStockYAsientaDoble(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.RegisterTransfer(context.Background(), dto.RegisterTransferRequest{
		IDProducto:        1,
		IDSucursalOrigen:  1,
		IDSucursalDestino: 2,
		Cantidad:          decPtr("4"),
		Observacion:       "reposición Norte",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.TransaccionID)
	assert.Equal(t, int64(1), resp.IDProducto)
	assert.Equal(t, "reposición Norte", resp.Observacion)

	assert.True(t, f.stock.quantityOf(1, 1).Equal(dec("6")), "origen debe quedar en 10-4")
	assert.True(t, f.stock.quantityOf(1, 2).Equal(dec("4")), "destino debe quedar en 0+4")

	require.Len(t, f.movement.movements, 2, "un traslado asienta salida y entrada")
	salida, entrada := f.movement.movements[0], f.movement.movements[1]
	assert.Equal(t, entity.MovementTypeTraslado, salida.Type)
	assert.True(t, salida.Quantity.Equal(dec("-4")), "la salida se asienta en negativo")
	assert.True(t, entrada.Quantity.Equal(dec("4")))
	assert.Equal(t, salida.TransactionID, entrada.TransactionID,
		"ambos asientos comparten transaccion_id")

	require.Len(t, f.transfer.transfers, 1)
	assert.Equal(t, salida.TransactionID, f.transfer.transfers[0].TransactionID)
}

func TestRegisterTransfer_StockInsuficiente(t *testing.T) {
	f := newFixture()

	_, err := f.uc.RegisterTransfer(context.Background(), dto.RegisterTransferRequest{
		IDProducto:        1,
		IDSucursalOrigen:  1,
		IDSucursalDestino: 2,
		Cantidad:          decPtr("11"),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.True(t, f.stock.quantityOf(1, 1).Equal(dec("10")), "el origen no debe mutar")
	assert.Empty(t, f.movement.movements, "sin asientos en el libro")
	assert.Empty(t, f.transfer.transfers)
}

func TestRegisterTransfer_MismaSucursal_RetornaInvalido(t *testing.T) {
	f := newFixture()

	_, err := f.uc.RegisterTransfer(context.Background(), dto.RegisterTransferRequest{
		IDProducto:        1,
		IDSucursalOrigen:  1,
		IDSucursalDestino: 1,
		Cantidad:          decPtr("1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterTransfer_CantidadCero_RetornaInvalido(t *testing.T) {
	f := newFixture()

	_, err := f.uc.RegisterTransfer(context.Background(), dto.RegisterTransferRequest{
		IDProducto:        1,
		IDSucursalOrigen:  1,
		IDSucursalDestino: 2,
		Cantidad:          decPtr("0"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterTransfer_DestinoAcumula(t *testing.T) {
	// Dos traslados hacia un par (producto, sucursal) que nació sin fila:
	// el ajuste en destino es aditivo, nunca una sobrescritura absoluta.
	f := newFixture()

	for _, cantidad := range []string{"4", "3"} {
		_, err := f.uc.RegisterTransfer(context.Background(), dto.RegisterTransferRequest{
			IDProducto:        1,
			IDSucursalOrigen:  1,
			IDSucursalDestino: 2,
			Cantidad:          decPtr(cantidad),
		})
		require.NoError(t, err)
	}

	assert.True(t, f.stock.quantityOf(1, 2).Equal(dec("7")), "destino debe acumular 4+3")
	assert.True(t, f.stock.quantityOf(1, 1).Equal(dec("3")), "origen debe quedar en 10-4-3")
}

func TestListTransfers_IncluyeProductoYObservacion(t *testing.T) {
	f := newFixture()

	_, err := f.uc.RegisterTransfer(context.Background(), dto.RegisterTransferRequest{
		IDProducto:        1,
		IDSucursalOrigen:  1,
		IDSucursalDestino: 2,
		Cantidad:          decPtr("2"),
		Observacion:       "reposición Norte",
	})
	require.NoError(t, err)

	list, err := f.uc.ListTransfers(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(1), list[0].IDProducto)
	assert.Equal(t, "reposición Norte", list[0].Observacion)
	assert.NotEmpty(t, list[0].TransaccionID)
}

func TestRegisterTransfer_ProductoInexistente(t *testing.T) {
	f := newFixture()

	_, err := f.uc.RegisterTransfer(context.Background(), dto.RegisterTransferRequest{
		IDProducto:        99,
		IDSucursalOrigen:  1,
		IDSucursalDestino: 2,
		Cantidad:          decPtr("1"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
