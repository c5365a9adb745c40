package entity

import "time"

// OrderType clase de orden.
type OrderType string

const (
	OrderTypeSales    OrderType = "sales"
	OrderTypePurchase OrderType = "purchase"
	OrderTypeTransfer OrderType = "transfer"
)

// Valid indica si el tipo es uno de los conocidos.
func (t OrderType) Valid() bool {
	switch t {
	case OrderTypeSales, OrderTypePurchase, OrderTypeTransfer:
		return true
	}
	return false
}

// Order representa una orden de venta, compra o transferencia.
// Number es único por empresa. Para transferencias, WarehouseID es la bodega
// destino (bodega de registro de la orden).
type Order struct {
	ID          string
	CompanyID   string
	Number      string
	Type        OrderType
	CustomerID  string
	WarehouseID string
	Date        time.Time
	ModifiedBy  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// OwnerCompany implementa access.CompanyOwned.
func (o *Order) OwnerCompany() string { return o.CompanyID }
