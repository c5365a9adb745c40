package repository

import (
	"github.com/shopspring/decimal"

	"github.com/mrwinner04/graph-ql-warehouse/internal/domain/entity"
)

// OrderItemRepository define el puerto de persistencia para OrderItem.
// FindByOrderAndProduct excluye filas con borrado lógico: sostiene la regla
// de "una línea por par (orden, producto)" sobre las líneas vivas.
// ListByCompany resuelve la empresa vía join con la orden (las líneas no
// llevan company_id) y exige vivas ambas filas.
// OrderTotal suma quantity*price de las líneas vivas de la orden (el total de
// la factura nunca se almacena).
type OrderItemRepository interface {
	Create(item *entity.OrderItem) error
	GetByID(id string) (*entity.OrderItem, error)
	FindByOrderAndProduct(orderID, productID string) (*entity.OrderItem, error)
	ListByCompany(companyID string) ([]*entity.OrderItem, error)
	ListByOrder(orderID string) ([]*entity.OrderItem, error)
	ListByProduct(productID string) ([]*entity.OrderItem, error)
	OrderTotal(orderID string) (decimal.Decimal, error)
	Update(item *entity.OrderItem) error
	HardDelete(id string) (int64, error)
	SoftDelete(id string) (int64, error)
}
