package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// BestSellingProduct fila del reporte de productos más vendidos
// (solo órdenes de venta).
type BestSellingProduct struct {
	ProductID     string
	ProductName   string
	ProductCode   string
	TotalQuantity int
	TotalRevenue  decimal.Decimal
	AveragePrice  decimal.Decimal
	OrderCount    int
}

// StockItem existencias agregadas de un producto en una bodega.
type StockItem struct {
	ProductID         string
	ProductName       string
	ProductCode       string
	AvailableQuantity int
	AveragePrice      decimal.Decimal
}

// WarehouseProductStock stock total de un producto dentro de una bodega,
// para el reporte de producto con mayor stock por bodega.
type WarehouseProductStock struct {
	WarehouseID   string
	WarehouseName string
	ProductID     string
	ProductName   string
	TotalStock    int
}

// CustomerOrderCount cliente con su número de órdenes vivas.
type CustomerOrderCount struct {
	CustomerID   string
	CustomerName string
	OrderCount   int
}

// ProductTypeConflict producto cuyo tipo impide re-tipificar una bodega.
type ProductTypeConflict struct {
	ProductID   string
	ProductName string
	ProductType string
}

// ReportRepository consultas de solo lectura sobre órdenes, líneas, productos
// y bodegas. Todas excluyen filas con borrado lógico en cada nivel del join y
// toleran resultados vacíos.
type ReportRepository interface {
	BestSellingProducts(ctx context.Context, companyID string, limit int) ([]BestSellingProduct, error)
	StockByWarehouse(ctx context.Context, companyID, warehouseID string) ([]StockItem, error)
	HighestStockPerWarehouse(ctx context.Context, companyID string) ([]WarehouseProductStock, error)
	ClientWithMostOrders(ctx context.Context, companyID string) (*CustomerOrderCount, error)
	WarehouseTypeConflicts(ctx context.Context, warehouseID, newType string) ([]ProductTypeConflict, error)
}
