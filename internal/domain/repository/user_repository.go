package repository

import "github.com/mrwinner04/graph-ql-warehouse/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
// GetByID resuelve también filas con borrado lógico (lookups internos);
// ListByCompany y FindByEmail las excluyen.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	FindIDByEmail(email string) (string, error) // "" si no existe (unicidad global)
	ListByCompany(companyID string) ([]*entity.User, error)
	Update(user *entity.User) error
	HardDelete(id, companyID string) (int64, error)
	SoftDelete(id, companyID string) (int64, error)
}
