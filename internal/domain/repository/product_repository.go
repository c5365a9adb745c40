package repository

import "github.com/mrwinner04/graph-ql-warehouse/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	FindIDByName(companyID, name string) (string, error) // "" si no existe
	FindIDByCode(companyID, code string) (string, error) // "" si no existe
	ListByCompany(companyID string) ([]*entity.Product, error)
	Update(product *entity.Product) error
	HardDelete(id, companyID string) (int64, error)
	SoftDelete(id, companyID string) (int64, error)
}
