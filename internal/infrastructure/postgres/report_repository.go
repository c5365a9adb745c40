package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mrwinner04/graph-ql-warehouse/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para los reportes de inventario.
// Todos los joins excluyen borrado lógico en cada nivel: una línea viva de
// una orden borrada no cuenta.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// BestSellingProducts devuelve los `limit` productos con mayor cantidad
// vendida (solo órdenes de venta), con ingreso total y precio promedio.
func (r *ReportRepo) BestSellingProducts(ctx context.Context, companyID string, limit int) ([]repository.BestSellingProduct, error) {
	const query = `
	SELECT
	    p.id                                        AS product_id,
	    p.name                                      AS product_name,
	    COALESCE(p.code, '')                        AS product_code,
	    SUM(oi.quantity)                            AS total_quantity,
	    SUM(oi.quantity * oi.price)                 AS total_revenue,
	    AVG(oi.price)                               AS average_price,
	    COUNT(DISTINCT o.id)                        AS order_count
	FROM order_items oi
	JOIN orders   o ON o.id = oi.order_id AND o.deleted_at IS NULL
	JOIN products p ON p.id = oi.product_id AND p.deleted_at IS NULL
	WHERE o.company_id = $1
	  AND o.type = 'sales'
	  AND oi.deleted_at IS NULL
	GROUP BY p.id, p.name, p.code
	ORDER BY total_quantity DESC
	LIMIT $2`

	rows, err := r.pool.Query(ctx, query, companyID, limit)
	if err != nil {
		return nil, fmt.Errorf("reports.BestSellingProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.BestSellingProduct
	for rows.Next() {
		var row repository.BestSellingProduct
		if err := rows.Scan(
			&row.ProductID,
			&row.ProductName,
			&row.ProductCode,
			&row.TotalQuantity,
			&row.TotalRevenue,
			&row.AveragePrice,
			&row.OrderCount,
		); err != nil {
			return nil, fmt.Errorf("reports.BestSellingProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// StockByWarehouse existencias agregadas por producto dentro de una bodega.
// Solo devuelve productos con stock neto positivo; el precio reportado es el
// promedio de las líneas que lo componen.
func (r *ReportRepo) StockByWarehouse(ctx context.Context, companyID, warehouseID string) ([]repository.StockItem, error) {
	const query = `
	SELECT
	    p.id                        AS product_id,
	    p.name                      AS product_name,
	    COALESCE(p.code, '')        AS product_code,
	    SUM(oi.quantity)            AS available_quantity,
	    AVG(oi.price)               AS average_price
	FROM order_items oi
	JOIN orders   o ON o.id = oi.order_id AND o.deleted_at IS NULL
	JOIN products p ON p.id = oi.product_id AND p.deleted_at IS NULL
	WHERE o.company_id = $1
	  AND o.warehouse_id = $2
	  AND oi.deleted_at IS NULL
	GROUP BY p.id, p.name, p.code
	HAVING SUM(oi.quantity) > 0
	ORDER BY p.name`

	rows, err := r.pool.Query(ctx, query, companyID, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("reports.StockByWarehouse: %w", err)
	}
	defer rows.Close()

	var results []repository.StockItem
	for rows.Next() {
		var row repository.StockItem
		if err := rows.Scan(
			&row.ProductID,
			&row.ProductName,
			&row.ProductCode,
			&row.AvailableQuantity,
			&row.AveragePrice,
		); err != nil {
			return nil, fmt.Errorf("reports.StockByWarehouse scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// HighestStockPerWarehouse stock total por producto y bodega, agrupado por
// bodega y ordenado por stock descendente dentro de cada grupo.
func (r *ReportRepo) HighestStockPerWarehouse(ctx context.Context, companyID string) ([]repository.WarehouseProductStock, error) {
	const query = `
	SELECT
	    w.id                        AS warehouse_id,
	    w.name                      AS warehouse_name,
	    p.id                        AS product_id,
	    p.name                      AS product_name,
	    SUM(oi.quantity)            AS total_stock
	FROM order_items oi
	JOIN orders     o ON o.id = oi.order_id AND o.deleted_at IS NULL
	JOIN products   p ON p.id = oi.product_id AND p.deleted_at IS NULL
	JOIN warehouses w ON w.id = o.warehouse_id AND w.deleted_at IS NULL
	WHERE o.company_id = $1
	  AND oi.deleted_at IS NULL
	GROUP BY w.id, w.name, p.id, p.name
	ORDER BY w.id, total_stock DESC`

	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("reports.HighestStockPerWarehouse: %w", err)
	}
	defer rows.Close()

	var results []repository.WarehouseProductStock
	for rows.Next() {
		var row repository.WarehouseProductStock
		if err := rows.Scan(
			&row.WarehouseID,
			&row.WarehouseName,
			&row.ProductID,
			&row.ProductName,
			&row.TotalStock,
		); err != nil {
			return nil, fmt.Errorf("reports.HighestStockPerWarehouse scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// ClientWithMostOrders cliente con más órdenes vivas de la empresa; nil si
// la empresa aún no tiene órdenes.
func (r *ReportRepo) ClientWithMostOrders(ctx context.Context, companyID string) (*repository.CustomerOrderCount, error) {
	const query = `
	SELECT
	    c.id                        AS customer_id,
	    c.name                      AS customer_name,
	    COUNT(o.id)                 AS order_count
	FROM orders o
	JOIN customers c ON c.id = o.customer_id AND c.deleted_at IS NULL
	WHERE o.company_id = $1
	  AND o.deleted_at IS NULL
	GROUP BY c.id, c.name
	ORDER BY order_count DESC
	LIMIT 1`

	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("reports.ClientWithMostOrders: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	var row repository.CustomerOrderCount
	if err := rows.Scan(&row.CustomerID, &row.CustomerName, &row.OrderCount); err != nil {
		return nil, fmt.Errorf("reports.ClientWithMostOrders scan: %w", err)
	}
	return &row, rows.Err()
}

// WarehouseTypeConflicts productos vivos almacenados en la bodega cuyo tipo
// no coincide con el tipo propuesto. Vacío = el cambio de tipo es seguro.
func (r *ReportRepo) WarehouseTypeConflicts(ctx context.Context, warehouseID, newType string) ([]repository.ProductTypeConflict, error) {
	const query = `
	SELECT DISTINCT
	    p.id        AS product_id,
	    p.name      AS product_name,
	    p.type      AS product_type
	FROM order_items oi
	JOIN orders   o ON o.id = oi.order_id AND o.deleted_at IS NULL
	JOIN products p ON p.id = oi.product_id AND p.deleted_at IS NULL
	WHERE o.warehouse_id = $1
	  AND oi.deleted_at IS NULL
	  AND p.type <> $2
	ORDER BY p.name`

	rows, err := r.pool.Query(ctx, query, warehouseID, newType)
	if err != nil {
		return nil, fmt.Errorf("reports.WarehouseTypeConflicts: %w", err)
	}
	defer rows.Close()

	var results []repository.ProductTypeConflict
	for rows.Next() {
		var row repository.ProductTypeConflict
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.ProductType); err != nil {
			return nil, fmt.Errorf("reports.WarehouseTypeConflicts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
