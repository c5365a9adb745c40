package repository

import "github.com/mrwinner04/graph-ql-warehouse/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	FindIDByEmail(companyID, email string) (string, error) // "" si no existe
	ListByCompany(companyID string) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	HardDelete(id, companyID string) (int64, error)
	SoftDelete(id, companyID string) (int64, error)
}
