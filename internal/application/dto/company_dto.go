package dto

import "time"

// UpdateCompanyRequest actualización parcial de la empresa.
type UpdateCompanyRequest struct {
	Name *string `json:"name"`
}

// CompanyResponse proyección de Company hacia la API.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
