package repository

import "github.com/mrwinner04/graph-ql-warehouse/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	FindIDByNumber(companyID, number string) (string, error) // "" si no existe
	ListByCompany(companyID string) ([]*entity.Order, error)
	ListByCustomer(customerID string) ([]*entity.Order, error)
	ListByWarehouse(warehouseID string) ([]*entity.Order, error)
	Update(order *entity.Order) error
	HardDelete(id, companyID string) (int64, error)
	SoftDelete(id, companyID string) (int64, error)
}
