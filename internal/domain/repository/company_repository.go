package repository

import "github.com/mrwinner04/graph-ql-warehouse/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	ListAll() ([]*entity.Company, error)
	Update(company *entity.Company) error
}
