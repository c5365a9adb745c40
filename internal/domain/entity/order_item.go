package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem representa una línea de una orden. A lo sumo existe una línea por
// par (OrderID, ProductID): los cambios de cantidad van por update, no por un
// segundo insert. No lleva company_id propio: el tenant se resuelve a través
// de la orden.
type OrderItem struct {
	ID         string
	OrderID    string
	ProductID  string
	Quantity   int
	Price      decimal.Decimal
	ModifiedBy string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}
