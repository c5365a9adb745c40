package dto

import "time"

// CreateWarehouseRequest alta de bodega. Type puede omitirse: la bodega queda
// sin especializar y acepta cualquier producto hasta que se le asigne tipo.
type CreateWarehouseRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"` // opcional
	Type    string `json:"type"`    // solid | liquid | "" (sin especializar)
}

// UpdateWarehouseRequest actualización parcial. Campos nil = sin cambio.
// Cambiar Type dispara el guard de re-tipificación (productos incompatibles).
type UpdateWarehouseRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Type    *string `json:"type"`
}

// WarehouseResponse proyección de Warehouse hacia la API.
type WarehouseResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"companyId"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	Type      string    `json:"type,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
