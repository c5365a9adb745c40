package dto

import "time"

// CreateInvoiceRequest alta directa de factura (flujo excepcional; lo normal
// es la emisión automática al crear la orden). Number explícito colisionado
// se rechaza con Conflict, a diferencia del número de orden.
type CreateInvoiceRequest struct {
	OrderID string     `json:"orderId"`
	Number  string     `json:"number"` // opcional
	Date    *time.Time `json:"date"`   // opcional
	Status  string     `json:"status"` // opcional, por defecto pending
}

// UpdateInvoiceRequest actualización parcial. Campos nil = sin cambio.
type UpdateInvoiceRequest struct {
	OrderID *string    `json:"orderId"`
	Number  *string    `json:"number"`
	Date    *time.Time `json:"date"`
	Status  *string    `json:"status"`
}

// InvoiceResponse proyección de Invoice hacia la API. Total es derivado
// (SUM(quantity*price) de las líneas vivas de la orden), nunca almacenado.
type InvoiceResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"companyId"`
	OrderID   string    `json:"orderId"`
	Number    string    `json:"number"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`
	Total     string    `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
