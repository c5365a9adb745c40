package dto

// BestSellingProductItem fila del reporte de más vendidos.
type BestSellingProductItem struct {
	ProductID     string `json:"productId"`
	ProductName   string `json:"productName"`
	ProductCode   string `json:"productCode,omitempty"`
	TotalQuantity int    `json:"totalQuantity"`
	TotalRevenue  string `json:"totalRevenue"`
	AveragePrice  string `json:"averagePrice"`
	OrderCount    int    `json:"orderCount"`
}

// BestSellingProductsReport reporte completo con totales.
type BestSellingProductsReport struct {
	Products      []BestSellingProductItem `json:"products"`
	TotalProducts int                      `json:"totalProducts"`
	TotalRevenue  string                   `json:"totalRevenue"`
}

// AvailableStockItem existencias de un producto dentro de una bodega.
type AvailableStockItem struct {
	ProductID         string `json:"productId"`
	ProductName       string `json:"productName"`
	ProductCode       string `json:"productCode,omitempty"`
	AvailableQuantity int    `json:"availableQuantity"`
	AveragePrice      string `json:"averagePrice"`
}

// AvailableStockReport stock disponible de una bodega.
type AvailableStockReport struct {
	WarehouseID   string               `json:"warehouseId"`
	WarehouseName string               `json:"warehouseName"`
	Products      []AvailableStockItem `json:"products"`
	TotalProducts int                  `json:"totalProducts"`
	TotalValue    string               `json:"totalValue"`
}

// WarehouseProductStockItem fila del reporte producto-con-mayor-stock:
// agrupado por bodega, stock descendente dentro del grupo.
type WarehouseProductStockItem struct {
	WarehouseID   string `json:"warehouseId"`
	WarehouseName string `json:"warehouseName"`
	ProductID     string `json:"productId"`
	ProductName   string `json:"productName"`
	TotalStock    int    `json:"totalStock"`
}

// TopCustomerResponse cliente con más órdenes vivas de la empresa.
type TopCustomerResponse struct {
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName"`
	OrderCount   int    `json:"orderCount"`
}
