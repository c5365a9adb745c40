package entity

import "time"

// Company representa una organización/tenant del sistema. Es la única entidad
// sin company_id: toda fila de las demás tablas referencia a una Company.
type Company struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // nil = activa
}

// OwnerCompany implementa access.CompanyOwned: la empresa se posee a sí misma.
func (c *Company) OwnerCompany() string { return c.ID }
