package repository

import "github.com/mrwinner04/graph-ql-warehouse/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	FindIDByNumber(companyID, number string) (string, error) // "" si no existe
	ListByCompany(companyID string) ([]*entity.Invoice, error)
	ListByOrder(orderID string) ([]*entity.Invoice, error)
	Update(invoice *entity.Invoice) error
	HardDelete(id, companyID string) (int64, error)
	SoftDelete(id, companyID string) (int64, error)
}
