package entity

import "time"

// CustomerType distingue clientes de proveedores dentro de la misma tabla.
type CustomerType string

const (
	CustomerTypeCustomer CustomerType = "customer"
	CustomerTypeSupplier CustomerType = "supplier"
)

// Customer representa un cliente o proveedor de la empresa.
// Email (si se informa) es único dentro de la empresa.
type Customer struct {
	ID         string
	CompanyID  string
	Name       string
	Email      string // opcional
	Type       CustomerType
	ModifiedBy string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

// OwnerCompany implementa access.CompanyOwned.
func (c *Customer) OwnerCompany() string { return c.CompanyID }
