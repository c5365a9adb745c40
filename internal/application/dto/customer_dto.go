package dto

import "time"

// CreateCustomerRequest alta de cliente o proveedor.
type CreateCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"` // opcional
	Type  string `json:"type"`  // customer | supplier
}

// UpdateCustomerRequest actualización parcial. Campos nil = sin cambio.
type UpdateCustomerRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Type  *string `json:"type"`
}

// CustomerResponse proyección de Customer hacia la API.
type CustomerResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"companyId"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
