package dto

import "time"

// CreateProductRequest alta de producto. Price viaja como string decimal
// exacto ("10.00"), nunca como float.
type CreateProductRequest struct {
	Name  string `json:"name"`
	Code  string `json:"code"` // opcional
	Price string `json:"price"`
	Type  string `json:"type"` // solid | liquid
}

// UpdateProductRequest actualización parcial. Campos nil = sin cambio.
type UpdateProductRequest struct {
	Name  *string `json:"name"`
	Code  *string `json:"code"`
	Price *string `json:"price"`
	Type  *string `json:"type"`
}

// ProductResponse proyección de Product hacia la API. Price con dos
// decimales fijos.
type ProductResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"companyId"`
	Name      string    `json:"name"`
	Code      string    `json:"code,omitempty"`
	Price     string    `json:"price"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
