package entity

import "time"

// WarehouseType tipo de almacenamiento de la bodega. Comparte valores con
// ProductType; se compara por string en el validador de compatibilidad.
type WarehouseType string

const (
	WarehouseTypeSolid  WarehouseType = "solid"
	WarehouseTypeLiquid WarehouseType = "liquid"
)

// Warehouse representa una bodega de la empresa. Type queda vacío hasta que
// la bodega se especializa; mientras esté vacío acepta cualquier producto.
// Name es único por empresa.
type Warehouse struct {
	ID         string
	CompanyID  string
	Name       string
	Address    string        // opcional
	Type       WarehouseType // "" = sin especializar
	ModifiedBy string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

// OwnerCompany implementa access.CompanyOwned.
func (w *Warehouse) OwnerCompany() string { return w.CompanyID }
