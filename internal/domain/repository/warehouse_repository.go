package repository

import "github.com/mrwinner04/graph-ql-warehouse/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse.
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	FindIDByName(companyID, name string) (string, error) // "" si no existe
	ListByCompany(companyID string) ([]*entity.Warehouse, error)
	Update(warehouse *entity.Warehouse) error
	HardDelete(id, companyID string) (int64, error)
	SoftDelete(id, companyID string) (int64, error)
}
