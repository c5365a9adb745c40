package dto

import "time"

// CreateOrderRequest alta de orden. Number es opcional: si se omite se
// genera; si colisiona dentro de la empresa se sufija, nunca se rechaza.
type CreateOrderRequest struct {
	Number      string     `json:"number"` // opcional
	Type        string     `json:"type"`   // sales | purchase | transfer
	CustomerID  string     `json:"customerId"`
	WarehouseID string     `json:"warehouseId"`
	Date        *time.Time `json:"date"` // opcional, por defecto ahora
}

// UpdateOrderRequest actualización parcial. Campos nil = sin cambio.
type UpdateOrderRequest struct {
	Number      *string    `json:"number"`
	Type        *string    `json:"type"`
	CustomerID  *string    `json:"customerId"`
	WarehouseID *string    `json:"warehouseId"`
	Date        *time.Time `json:"date"`
}

// TransferOrderRequest orden de transferencia entre dos bodegas de la
// empresa. La bodega destino queda como bodega de registro de la orden.
type TransferOrderRequest struct {
	FromWarehouseID string     `json:"fromWarehouseId"`
	ToWarehouseID   string     `json:"toWarehouseId"`
	CustomerID      string     `json:"customerId"`
	Number          string     `json:"number"` // opcional
	Date            *time.Time `json:"date"`   // opcional
}

// OrderResponse proyección de Order hacia la API.
type OrderResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"companyId"`
	Number      string    `json:"number"`
	Type        string    `json:"type"`
	CustomerID  string    `json:"customerId"`
	WarehouseID string    `json:"warehouseId"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
