package usecase

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrwinner04/graph-ql-warehouse/internal/application/dto"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain/entity"
)

func buildInvoiceUseCase() (*InvoiceUseCase, *fakeInvoiceRepo, *fakeOrderRepo, *fakeOrderItemRepo) {
	invoices := newFakeInvoiceRepo()
	orders := newFakeOrderRepo()
	items := newFakeOrderItemRepo(orders)
	return NewInvoiceUseCase(invoices, orders, items), invoices, orders, items
}

func seedItem(repo *fakeOrderItemRepo, id, orderID, productID string, qty int, price string) {
	p, _ := decimal.NewFromString(price)
	_ = repo.Create(&entity.OrderItem{ID: id, OrderID: orderID, ProductID: productID, Quantity: qty, Price: p})
}

func TestInvoiceCreate_SinNumero_SeGeneraConPrefijo(t *testing.T) {
	uc, _, orders, _ := buildInvoiceUseCase()
	seedOrder(orders, "o1", testCompanyID, "PED-1")

	resp, err := uc.Create(testCompanyID, testUserID, dto.CreateInvoiceRequest{OrderID: "o1"})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.Number, "INV-"),
		"número generado debe llevar prefijo INV-, vino %q", resp.Number)
	assert.Equal(t, "pending", resp.Status, "el estado por defecto es pending")
}

// Al contrario que las órdenes, un número explícito colisionado se rechaza.
func TestInvoiceCreate_NumeroExplicitoColisionado_Conflict(t *testing.T) {
	uc, _, orders, _ := buildInvoiceUseCase()
	seedOrder(orders, "o1", testCompanyID, "PED-1")
	seedOrder(orders, "o2", testCompanyID, "PED-2")

	_, err := uc.Create(testCompanyID, testUserID, dto.CreateInvoiceRequest{OrderID: "o1", Number: "F-001"})
	require.NoError(t, err)

	_, err = uc.Create(testCompanyID, testUserID, dto.CreateInvoiceRequest{OrderID: "o2", Number: "F-001"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestInvoiceCreate_SinOrden_BadRequest(t *testing.T) {
	uc, _, _, _ := buildInvoiceUseCase()

	_, err := uc.Create(testCompanyID, testUserID, dto.CreateInvoiceRequest{})

	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestInvoiceCreate_OrdenDeOtraEmpresa_NotFound(t *testing.T) {
	uc, _, orders, _ := buildInvoiceUseCase()
	seedOrder(orders, "o1", otherCompanyID, "PED-1")

	_, err := uc.Create(testCompanyID, testUserID, dto.CreateInvoiceRequest{OrderID: "o1"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInvoiceCreate_EstadoInvalido_BadRequest(t *testing.T) {
	uc, _, orders, _ := buildInvoiceUseCase()
	seedOrder(orders, "o1", testCompanyID, "PED-1")

	_, err := uc.Create(testCompanyID, testUserID, dto.CreateInvoiceRequest{OrderID: "o1", Status: "draft"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

// El total nunca se almacena: se recalcula como SUM(quantity*price) sobre las
// líneas vivas de la orden en el momento de la lectura.
func TestInvoiceGet_TotalRecalculadoDeLasLineasVivas(t *testing.T) {
	uc, _, orders, items := buildInvoiceUseCase()
	seedOrder(orders, "o1", testCompanyID, "PED-1")
	seedItem(items, "i1", "o1", "p1", 3, "10.50") // 31.50
	seedItem(items, "i2", "o1", "p2", 2, "2.25")  // 4.50

	inv, err := uc.Create(testCompanyID, testUserID, dto.CreateInvoiceRequest{OrderID: "o1"})
	require.NoError(t, err)
	assert.Equal(t, "36.00", inv.Total)

	// Borrar lógicamente una línea cambia el total en la siguiente lectura.
	_, err = items.SoftDelete("i2")
	require.NoError(t, err)
	inv2, err := uc.Get(inv.ID, testCompanyID)
	require.NoError(t, err)
	assert.Equal(t, "31.50", inv2.Total)
}

func TestInvoiceGet_SinLineas_TotalCero(t *testing.T) {
	uc, _, orders, _ := buildInvoiceUseCase()
	seedOrder(orders, "o1", testCompanyID, "PED-1")

	inv, err := uc.Create(testCompanyID, testUserID, dto.CreateInvoiceRequest{OrderID: "o1"})

	require.NoError(t, err)
	assert.Equal(t, "0.00", inv.Total)
}

func TestInvoiceUpdate_OrdenNueva_PasaPorGuard(t *testing.T) {
	uc, _, orders, _ := buildInvoiceUseCase()
	seedOrder(orders, "o1", testCompanyID, "PED-1")
	seedOrder(orders, "o2", otherCompanyID, "PED-2")

	inv, err := uc.Create(testCompanyID, testUserID, dto.CreateInvoiceRequest{OrderID: "o1"})
	require.NoError(t, err)

	foreign := "o2"
	_, err = uc.Update(inv.ID, testCompanyID, testUserID, dto.UpdateInvoiceRequest{OrderID: &foreign})
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"reasignar la factura a una orden ajena debe fallar como NotFound")
}

func TestInvoiceDelete_PoliticaPorRol(t *testing.T) {
	uc, invoices, orders, _ := buildInvoiceUseCase()
	seedOrder(orders, "o1", testCompanyID, "PED-1")

	inv, err := uc.Create(testCompanyID, testUserID, dto.CreateInvoiceRequest{OrderID: "o1"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(inv.ID, testCompanyID, entity.RoleOperator))
	stored, _ := invoices.GetByID(inv.ID)
	require.NotNil(t, stored)
	assert.NotNil(t, stored.DeletedAt, "operator deja la fila con borrado lógico")
}

// CreateForOrder es la vía de la emisión automática: número generado, estado
// pending, fecha ahora.
func TestCreateForOrder_EquivaleACreateConDefaults(t *testing.T) {
	uc, _, orders, _ := buildInvoiceUseCase()
	seedOrder(orders, "o1", testCompanyID, "PED-1")

	inv, err := uc.CreateForOrder("o1", testCompanyID, testUserID)

	require.NoError(t, err)
	assert.Equal(t, "o1", inv.OrderID)
	assert.Equal(t, "pending", inv.Status)
	assert.True(t, strings.HasPrefix(inv.Number, "INV-"))
}
