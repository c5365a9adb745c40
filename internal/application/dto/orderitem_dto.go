package dto

import "time"

// CreateOrderItemRequest alta de línea de orden. Quantity debe ser positiva;
// Price viaja como string decimal exacto.
type CreateOrderItemRequest struct {
	OrderID   string `json:"orderId"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}

// UpdateOrderItemRequest actualización parcial. Campos nil = sin cambio.
type UpdateOrderItemRequest struct {
	Quantity *int    `json:"quantity"`
	Price    *string `json:"price"`
}

// OrderItemResponse proyección de OrderItem hacia la API.
type OrderItemResponse struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"orderId"`
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	Price     string    `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
