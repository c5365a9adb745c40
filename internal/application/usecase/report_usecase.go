package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mrwinner04/graph-ql-warehouse/internal/application/dto"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain/repository"
)

const (
	defaultBestSellingLimit = 10
	maxBestSellingLimit     = 100
)

// ReportUseCase reportes agregados de inventario. Solo lectura: todas las
// consultas cruzan órdenes, líneas, productos y bodegas de la empresa del
// llamador y devuelven estructuras vacías cuando no hay datos.
type ReportUseCase struct {
	reports       repository.ReportRepository
	warehouseRepo repository.WarehouseRepository
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(reports repository.ReportRepository, warehouseRepo repository.WarehouseRepository) *ReportUseCase {
	return &ReportUseCase{reports: reports, warehouseRepo: warehouseRepo}
}

// BestSellingProducts productos más vendidos (solo órdenes de venta),
// ordenados por cantidad total descendente. El límite se normaliza al rango
// [1, 100] con 10 por defecto.
func (uc *ReportUseCase) BestSellingProducts(ctx context.Context, companyID string, limit int) (*dto.BestSellingProductsReport, error) {
	if limit <= 0 {
		limit = defaultBestSellingLimit
	}
	if limit > maxBestSellingLimit {
		limit = maxBestSellingLimit
	}
	rows, err := uc.reports.BestSellingProducts(ctx, companyID, limit)
	if err != nil {
		return nil, err
	}
	report := &dto.BestSellingProductsReport{
		Products:      make([]dto.BestSellingProductItem, 0, len(rows)),
		TotalProducts: len(rows),
	}
	revenue := decimal.Zero
	for _, r := range rows {
		revenue = revenue.Add(r.TotalRevenue)
		report.Products = append(report.Products, dto.BestSellingProductItem{
			ProductID:     r.ProductID,
			ProductName:   r.ProductName,
			ProductCode:   r.ProductCode,
			TotalQuantity: r.TotalQuantity,
			TotalRevenue:  r.TotalRevenue.StringFixed(2),
			AveragePrice:  r.AveragePrice.StringFixed(2),
			OrderCount:    r.OrderCount,
		})
	}
	report.TotalRevenue = revenue.StringFixed(2)
	return report, nil
}

// AvailableStock stock disponible por bodega. Con warehouseID se limita a esa
// bodega (que debe existir en la empresa); sin él se recorren todas las
// bodegas vivas, incluidas las que quedan sin existencias.
func (uc *ReportUseCase) AvailableStock(ctx context.Context, companyID, warehouseID string) ([]dto.AvailableStockReport, error) {
	warehouses, err := uc.warehouseRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	if warehouseID != "" {
		found := false
		for _, w := range warehouses {
			if w.ID == warehouseID {
				warehouses = warehouses[:0]
				warehouses = append(warehouses, w)
				found = true
				break
			}
		}
		if !found {
			return nil, domain.BadRequest("Warehouse not found in company")
		}
	}
	reports := make([]dto.AvailableStockReport, 0, len(warehouses))
	for _, w := range warehouses {
		items, err := uc.reports.StockByWarehouse(ctx, companyID, w.ID)
		if err != nil {
			return nil, err
		}
		report := dto.AvailableStockReport{
			WarehouseID:   w.ID,
			WarehouseName: w.Name,
			Products:      make([]dto.AvailableStockItem, 0, len(items)),
			TotalProducts: len(items),
		}
		value := decimal.Zero
		for _, it := range items {
			value = value.Add(it.AveragePrice.Mul(decimal.NewFromInt(int64(it.AvailableQuantity))))
			report.Products = append(report.Products, dto.AvailableStockItem{
				ProductID:         it.ProductID,
				ProductName:       it.ProductName,
				ProductCode:       it.ProductCode,
				AvailableQuantity: it.AvailableQuantity,
				AveragePrice:      it.AveragePrice.StringFixed(2),
			})
		}
		report.TotalValue = value.StringFixed(2)
		reports = append(reports, report)
	}
	return reports, nil
}

// HighestStockPerWarehouse productos por bodega ordenados por stock
// descendente dentro de cada grupo.
func (uc *ReportUseCase) HighestStockPerWarehouse(ctx context.Context, companyID string) ([]dto.WarehouseProductStockItem, error) {
	rows, err := uc.reports.HighestStockPerWarehouse(ctx, companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseProductStockItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.WarehouseProductStockItem{
			WarehouseID:   r.WarehouseID,
			WarehouseName: r.WarehouseName,
			ProductID:     r.ProductID,
			ProductName:   r.ProductName,
			TotalStock:    r.TotalStock,
		})
	}
	return items, nil
}

// ClientWithMostOrders cliente con más órdenes vivas; nil si la empresa no
// tiene órdenes.
func (uc *ReportUseCase) ClientWithMostOrders(ctx context.Context, companyID string) (*dto.TopCustomerResponse, error) {
	row, err := uc.reports.ClientWithMostOrders(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	return &dto.TopCustomerResponse{
		CustomerID:   row.CustomerID,
		CustomerName: row.CustomerName,
		OrderCount:   row.OrderCount,
	}, nil
}
