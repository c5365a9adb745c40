package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductType tipo físico del producto. Determina en qué bodegas puede
// almacenarse: un producto solo es compatible con bodegas del mismo tipo.
type ProductType string

const (
	ProductTypeSolid  ProductType = "solid"
	ProductTypeLiquid ProductType = "liquid"
)

// Product representa un producto del catálogo de la empresa.
// Name es único por empresa; Code (opcional) también.
type Product struct {
	ID         string
	CompanyID  string
	Name       string
	Code       string // opcional, único por empresa si se informa
	Price      decimal.Decimal
	Type       ProductType
	ModifiedBy string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

// OwnerCompany implementa access.CompanyOwned.
func (p *Product) OwnerCompany() string { return p.CompanyID }
