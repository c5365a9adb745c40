package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrwinner04/graph-ql-warehouse/internal/domain"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain/entity"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain/repository"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestBestSellingProducts_LimiteSeNormaliza(t *testing.T) {
	reports := &fakeReportRepo{}
	uc := NewReportUseCase(reports, newFakeWarehouseRepo())

	cases := []struct {
		in   int
		want int
	}{
		{in: 0, want: 10},    // por defecto
		{in: -5, want: 10},   // negativo = por defecto
		{in: 42, want: 42},   // dentro del rango
		{in: 500, want: 100}, // tope superior
	}
	for _, tc := range cases {
		_, err := uc.BestSellingProducts(context.Background(), testCompanyID, tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, reports.lastLimit, "limit de entrada %d", tc.in)
	}
}

func TestBestSellingProducts_SumaIngresos(t *testing.T) {
	reports := &fakeReportRepo{
		bestSelling: []repository.BestSellingProduct{
			{ProductID: "p1", ProductName: "Tornillos", TotalQuantity: 30, TotalRevenue: dec("150.00"), AveragePrice: dec("5.00"), OrderCount: 3},
			{ProductID: "p2", ProductName: "Aceite", TotalQuantity: 10, TotalRevenue: dec("92.50"), AveragePrice: dec("9.25"), OrderCount: 2},
		},
	}
	uc := NewReportUseCase(reports, newFakeWarehouseRepo())

	out, err := uc.BestSellingProducts(context.Background(), testCompanyID, 10)

	require.NoError(t, err)
	assert.Equal(t, 2, out.TotalProducts)
	assert.Equal(t, "242.50", out.TotalRevenue)
	require.Len(t, out.Products, 2)
	assert.Equal(t, "150.00", out.Products[0].TotalRevenue)
	assert.Equal(t, "5.00", out.Products[0].AveragePrice)
}

func TestBestSellingProducts_SinVentas_ReporteVacio(t *testing.T) {
	uc := NewReportUseCase(&fakeReportRepo{}, newFakeWarehouseRepo())

	out, err := uc.BestSellingProducts(context.Background(), testCompanyID, 10)

	require.NoError(t, err)
	assert.Equal(t, 0, out.TotalProducts)
	assert.Equal(t, "0.00", out.TotalRevenue)
	assert.Empty(t, out.Products)
}

func TestAvailableStock_RecorreTodasLasBodegas(t *testing.T) {
	warehouses := newFakeWarehouseRepo()
	seedWarehouse(warehouses, "w1", testCompanyID, entity.WarehouseTypeSolid)
	seedWarehouse(warehouses, "w2", testCompanyID, entity.WarehouseTypeLiquid)
	reports := &fakeReportRepo{
		stock: map[string][]repository.StockItem{
			"w1": {
				{ProductID: "p1", ProductName: "Tornillos", AvailableQuantity: 10, AveragePrice: dec("5.00")},
				{ProductID: "p2", ProductName: "Clavos", AvailableQuantity: 4, AveragePrice: dec("2.50")},
			},
			// w2 sin existencias: debe aparecer igualmente, vacía.
		},
	}
	uc := NewReportUseCase(reports, warehouses)

	out, err := uc.AvailableStock(context.Background(), testCompanyID, "")

	require.NoError(t, err)
	require.Len(t, out, 2, "las bodegas sin existencias también se reportan")

	byID := make(map[string]int)
	for i, r := range out {
		byID[r.WarehouseID] = i
	}
	w1 := out[byID["w1"]]
	assert.Equal(t, 2, w1.TotalProducts)
	assert.Equal(t, "60.00", w1.TotalValue, "10*5.00 + 4*2.50")

	w2 := out[byID["w2"]]
	assert.Equal(t, 0, w2.TotalProducts)
	assert.Equal(t, "0.00", w2.TotalValue)
	assert.Empty(t, w2.Products)
}

func TestAvailableStock_FiltraUnaBodega(t *testing.T) {
	warehouses := newFakeWarehouseRepo()
	seedWarehouse(warehouses, "w1", testCompanyID, entity.WarehouseTypeSolid)
	seedWarehouse(warehouses, "w2", testCompanyID, entity.WarehouseTypeSolid)
	uc := NewReportUseCase(&fakeReportRepo{}, warehouses)

	out, err := uc.AvailableStock(context.Background(), testCompanyID, "w2")

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "w2", out[0].WarehouseID)
}

func TestAvailableStock_BodegaInexistente_BadRequest(t *testing.T) {
	warehouses := newFakeWarehouseRepo()
	seedWarehouse(warehouses, "w1", testCompanyID, entity.WarehouseTypeSolid)
	uc := NewReportUseCase(&fakeReportRepo{}, warehouses)

	_, err := uc.AvailableStock(context.Background(), testCompanyID, "w9")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBadRequest)
	assert.Contains(t, err.Error(), "Warehouse not found in company")
}

// Una bodega de otra empresa no es visible para el filtro.
func TestAvailableStock_BodegaDeOtraEmpresa_BadRequest(t *testing.T) {
	warehouses := newFakeWarehouseRepo()
	seedWarehouse(warehouses, "w1", otherCompanyID, entity.WarehouseTypeSolid)
	uc := NewReportUseCase(&fakeReportRepo{}, warehouses)

	_, err := uc.AvailableStock(context.Background(), testCompanyID, "w1")

	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestHighestStockPerWarehouse_ProyectaFilas(t *testing.T) {
	reports := &fakeReportRepo{
		highestStock: []repository.WarehouseProductStock{
			{WarehouseID: "w1", WarehouseName: "Norte", ProductID: "p1", ProductName: "Tornillos", TotalStock: 30},
			{WarehouseID: "w1", WarehouseName: "Norte", ProductID: "p2", ProductName: "Clavos", TotalStock: 12},
			{WarehouseID: "w2", WarehouseName: "Sur", ProductID: "p3", ProductName: "Aceite", TotalStock: 7},
		},
	}
	uc := NewReportUseCase(reports, newFakeWarehouseRepo())

	out, err := uc.HighestStockPerWarehouse(context.Background(), testCompanyID)

	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "Norte", out[0].WarehouseName)
	assert.Equal(t, 30, out[0].TotalStock)
}

func TestClientWithMostOrders_ConDatos(t *testing.T) {
	reports := &fakeReportRepo{
		topCustomer: &repository.CustomerOrderCount{CustomerID: "c1", CustomerName: "Acme", OrderCount: 8},
	}
	uc := NewReportUseCase(reports, newFakeWarehouseRepo())

	out, err := uc.ClientWithMostOrders(context.Background(), testCompanyID)

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "Acme", out.CustomerName)
	assert.Equal(t, 8, out.OrderCount)
}

// Empresa sin órdenes: nil sin error, no un error NotFound.
func TestClientWithMostOrders_SinOrdenes_Nil(t *testing.T) {
	uc := NewReportUseCase(&fakeReportRepo{}, newFakeWarehouseRepo())

	out, err := uc.ClientWithMostOrders(context.Background(), testCompanyID)

	require.NoError(t, err)
	assert.Nil(t, out)
}
