package usecase

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrwinner04/graph-ql-warehouse/internal/application/dto"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain/entity"
)

type orderFixture struct {
	uc         *OrderUseCase
	orders     *fakeOrderRepo
	warehouses *fakeWarehouseRepo
	items      *fakeOrderItemRepo
	products   *fakeProductRepo
	invoices   *fakeInvoiceCreator
}

func buildOrderUseCase(invoices *fakeInvoiceCreator) orderFixture {
	orders := newFakeOrderRepo()
	f := orderFixture{
		orders:     orders,
		warehouses: newFakeWarehouseRepo(),
		items:      newFakeOrderItemRepo(orders),
		products:   newFakeProductRepo(),
		invoices:   invoices,
	}
	if f.invoices == nil {
		f.invoices = &fakeInvoiceCreator{}
	}
	f.uc = NewOrderUseCase(f.orders, f.warehouses, f.items, f.products, f.invoices, testLogger())
	return f
}

func seedOrder(repo *fakeOrderRepo, id, companyID, number string) *entity.Order {
	o := &entity.Order{
		ID:        id,
		CompanyID: companyID,
		Number:    number,
		Type:      entity.OrderTypeSales,
		Date:      time.Now(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	_ = repo.Create(o)
	return o
}

func seedWarehouse(repo *fakeWarehouseRepo, id, companyID string, wtype entity.WarehouseType) {
	_ = repo.Create(&entity.Warehouse{ID: id, CompanyID: companyID, Name: "Bodega " + id, Type: wtype})
}

func TestOrderCreate_SinNumero_SeGenera(t *testing.T) {
	f := buildOrderUseCase(nil)

	resp, err := f.uc.Create(testCompanyID, testUserID, dto.CreateOrderRequest{Type: "sales"})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.Number, "ORD-"),
		"número generado debe llevar prefijo ORD-, vino %q", resp.Number)
	assert.Equal(t, testCompanyID, resp.CompanyID)
	assert.Equal(t, "sales", resp.Type)
}

// El número explícito que colisiona se sufija en vez de rechazarse: la
// creación de órdenes nunca falla por colisión de número.
func TestOrderCreate_NumeroColisionado_SeSufija(t *testing.T) {
	f := buildOrderUseCase(nil)
	seedOrder(f.orders, "o1", testCompanyID, "PED-100")

	resp, err := f.uc.Create(testCompanyID, testUserID, dto.CreateOrderRequest{
		Number: "PED-100",
		Type:   "purchase",
	})

	require.NoError(t, err)
	assert.NotEqual(t, "PED-100", resp.Number)
	assert.True(t, strings.HasPrefix(resp.Number, "PED-100-"),
		"el número colisionado se sufija, vino %q", resp.Number)
}

// La colisión es por empresa: el mismo número en otra empresa no cuenta.
func TestOrderCreate_NumeroDeOtraEmpresa_NoColisiona(t *testing.T) {
	f := buildOrderUseCase(nil)
	seedOrder(f.orders, "o1", otherCompanyID, "PED-100")

	resp, err := f.uc.Create(testCompanyID, testUserID, dto.CreateOrderRequest{
		Number: "PED-100",
		Type:   "sales",
	})

	require.NoError(t, err)
	assert.Equal(t, "PED-100", resp.Number)
}

func TestOrderCreate_TipoInvalido_BadRequest(t *testing.T) {
	f := buildOrderUseCase(nil)

	_, err := f.uc.Create(testCompanyID, testUserID, dto.CreateOrderRequest{Type: "rental"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

// Emisión automática: crear una orden dispara una factura para ella.
func TestOrderCreate_EmiteFacturaAutomatica(t *testing.T) {
	f := buildOrderUseCase(nil)

	resp, err := f.uc.Create(testCompanyID, testUserID, dto.CreateOrderRequest{Type: "sales"})

	require.NoError(t, err)
	require.Len(t, f.invoices.calls, 1)
	assert.Equal(t, resp.ID, f.invoices.calls[0])
}

// El fallo de la factura se registra y se traga: la orden ya creada no se
// revierte.
func TestOrderCreate_FalloDeFactura_NoTumbaLaOrden(t *testing.T) {
	f := buildOrderUseCase(&fakeInvoiceCreator{err: errors.New("secuencia agotada")})

	resp, err := f.uc.Create(testCompanyID, testUserID, dto.CreateOrderRequest{Type: "sales"})

	require.NoError(t, err, "el fallo de facturación no debe propagarse")
	stored, _ := f.orders.GetByID(resp.ID)
	require.NotNil(t, stored, "la orden debe quedar persistida")
	assert.Len(t, f.invoices.calls, 1)
}

func TestOrderGet_DeOtraEmpresa_NotFound(t *testing.T) {
	f := buildOrderUseCase(nil)
	seedOrder(f.orders, "o1", otherCompanyID, "PED-1")

	_, err := f.uc.Get("o1", testCompanyID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transferencias
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateTransfer_BodegaDestinoQuedaComoRegistro(t *testing.T) {
	f := buildOrderUseCase(nil)
	seedWarehouse(f.warehouses, "w1", testCompanyID, entity.WarehouseTypeSolid)
	seedWarehouse(f.warehouses, "w2", testCompanyID, entity.WarehouseTypeSolid)

	resp, err := f.uc.CreateTransfer(testCompanyID, testUserID, dto.TransferOrderRequest{
		FromWarehouseID: "w1",
		ToWarehouseID:   "w2",
		CustomerID:      "c1",
	})

	require.NoError(t, err)
	assert.Equal(t, "transfer", resp.Type)
	assert.Equal(t, "w2", resp.WarehouseID,
		"la bodega destino es la bodega de registro de la orden")
}

func TestCreateTransfer_MismaBodega_BadRequest(t *testing.T) {
	f := buildOrderUseCase(nil)
	seedWarehouse(f.warehouses, "w1", testCompanyID, entity.WarehouseTypeSolid)

	_, err := f.uc.CreateTransfer(testCompanyID, testUserID, dto.TransferOrderRequest{
		FromWarehouseID: "w1",
		ToWarehouseID:   "w1",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBadRequest)
	assert.Contains(t, err.Error(), "same warehouse")
}

func TestCreateTransfer_BodegaAjena_BadRequest(t *testing.T) {
	f := buildOrderUseCase(nil)
	seedWarehouse(f.warehouses, "w1", testCompanyID, entity.WarehouseTypeSolid)
	seedWarehouse(f.warehouses, "w2", otherCompanyID, entity.WarehouseTypeSolid)

	_, err := f.uc.CreateTransfer(testCompanyID, testUserID, dto.TransferOrderRequest{
		FromWarehouseID: "w1",
		ToWarehouseID:   "w2",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestCreateTransfer_SinBodegas_BadRequest(t *testing.T) {
	f := buildOrderUseCase(nil)

	_, err := f.uc.CreateTransfer(testCompanyID, testUserID, dto.TransferOrderRequest{})

	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update y borrado
// ──────────────────────────────────────────────────────────────────────────────

// En update la colisión de número sí se rechaza: el re-sufijado es solo para
// la creación.
func TestOrderUpdate_NumeroColisionado_Conflict(t *testing.T) {
	f := buildOrderUseCase(nil)
	seedOrder(f.orders, "o1", testCompanyID, "PED-1")
	seedOrder(f.orders, "o2", testCompanyID, "PED-2")

	number := "PED-1"
	_, err := f.uc.Update("o2", testCompanyID, testUserID, dto.UpdateOrderRequest{Number: &number})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestOrderUpdate_MismoNumeroPropio_Pasa(t *testing.T) {
	f := buildOrderUseCase(nil)
	seedOrder(f.orders, "o1", testCompanyID, "PED-1")

	number := "PED-1"
	resp, err := f.uc.Update("o1", testCompanyID, testUserID, dto.UpdateOrderRequest{Number: &number})

	require.NoError(t, err)
	assert.Equal(t, "PED-1", resp.Number)
}

// Mover la orden a otra bodega re-valida el contenido completo: todos los
// productos de las líneas vivas deben ser compatibles con el tipo destino.
func TestOrderUpdate_CambioDeBodegaConLineasIncompatibles_BadRequest(t *testing.T) {
	f := buildOrderUseCase(nil)
	seedWarehouse(f.warehouses, "w1", testCompanyID, "")
	seedWarehouse(f.warehouses, "w2", testCompanyID, entity.WarehouseTypeSolid)
	o := seedOrder(f.orders, "o1", testCompanyID, "PED-1")
	o.WarehouseID = "w1"
	_ = f.orders.Update(o)
	_ = f.products.Create(&entity.Product{
		ID: "p1", CompanyID: testCompanyID, Name: "Aceite",
		Type: entity.ProductTypeLiquid, Price: decimal.NewFromInt(9),
	})
	_ = f.items.Create(&entity.OrderItem{ID: "i1", OrderID: "o1", ProductID: "p1", Quantity: 2, Price: decimal.NewFromInt(9)})

	dest := "w2"
	_, err := f.uc.Update("o1", testCompanyID, testUserID, dto.UpdateOrderRequest{WarehouseID: &dest})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBadRequest)
	assert.Contains(t, err.Error(), "liquid")

	stored, _ := f.orders.GetByID("o1")
	assert.Equal(t, "w1", stored.WarehouseID, "la bodega no debe cambiar")
}

func TestOrderUpdate_CambioDeBodegaCompatible_Pasa(t *testing.T) {
	f := buildOrderUseCase(nil)
	seedWarehouse(f.warehouses, "w1", testCompanyID, entity.WarehouseTypeSolid)
	seedWarehouse(f.warehouses, "w2", testCompanyID, entity.WarehouseTypeSolid)
	o := seedOrder(f.orders, "o1", testCompanyID, "PED-1")
	o.WarehouseID = "w1"
	_ = f.orders.Update(o)
	_ = f.products.Create(&entity.Product{
		ID: "p1", CompanyID: testCompanyID, Name: "Tornillos",
		Type: entity.ProductTypeSolid, Price: decimal.NewFromInt(5),
	})
	_ = f.items.Create(&entity.OrderItem{ID: "i1", OrderID: "o1", ProductID: "p1", Quantity: 2, Price: decimal.NewFromInt(5)})

	dest := "w2"
	resp, err := f.uc.Update("o1", testCompanyID, testUserID, dto.UpdateOrderRequest{WarehouseID: &dest})

	require.NoError(t, err)
	assert.Equal(t, "w2", resp.WarehouseID)
}

func TestOrderUpdate_BodegaAjena_BadRequest(t *testing.T) {
	f := buildOrderUseCase(nil)
	seedWarehouse(f.warehouses, "w9", otherCompanyID, entity.WarehouseTypeSolid)
	seedOrder(f.orders, "o1", testCompanyID, "PED-1")

	dest := "w9"
	_, err := f.uc.Update("o1", testCompanyID, testUserID, dto.UpdateOrderRequest{WarehouseID: &dest})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestOrderDelete_OwnerBorraFisicamente(t *testing.T) {
	f := buildOrderUseCase(nil)
	seedOrder(f.orders, "o1", testCompanyID, "PED-1")

	err := f.uc.Delete("o1", testCompanyID, entity.RoleOwner)

	require.NoError(t, err)
	stored, _ := f.orders.GetByID("o1")
	assert.Nil(t, stored, "owner borra físicamente: la fila desaparece")
}

func TestOrderDelete_OperatorBorraLogicamente(t *testing.T) {
	f := buildOrderUseCase(nil)
	seedOrder(f.orders, "o1", testCompanyID, "PED-1")

	err := f.uc.Delete("o1", testCompanyID, entity.RoleOperator)

	require.NoError(t, err)
	stored, _ := f.orders.GetByID("o1")
	require.NotNil(t, stored, "operator conserva la fila")
	assert.NotNil(t, stored.DeletedAt, "con deleted_at marcado")
}

func TestOrderDelete_ViewerRechazado(t *testing.T) {
	f := buildOrderUseCase(nil)
	seedOrder(f.orders, "o1", testCompanyID, "PED-1")

	err := f.uc.Delete("o1", testCompanyID, entity.RoleViewer)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBadRequest)
	stored, _ := f.orders.GetByID("o1")
	require.NotNil(t, stored)
	assert.Nil(t, stored.DeletedAt, "viewer no toca la fila")
}

func TestOrderDelete_DeOtraEmpresa_NotFound(t *testing.T) {
	f := buildOrderUseCase(nil)
	seedOrder(f.orders, "o1", otherCompanyID, "PED-1")

	err := f.uc.Delete("o1", testCompanyID, entity.RoleOwner)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	stored, _ := f.orders.GetByID("o1")
	assert.NotNil(t, stored, "la orden ajena queda intacta")
}
