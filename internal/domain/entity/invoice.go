package entity

import "time"

// InvoiceStatus estado de cobro de la factura.
type InvoiceStatus string

const (
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
)

// Invoice representa la factura de una orden. Number es único por empresa y
// se genera automáticamente si no se informa. El total NO se persiste: se
// recalcula siempre como SUM(quantity * price) sobre las líneas vivas de la
// orden, de modo que sigue siendo consistente aunque las líneas cambien
// después de emitida.
type Invoice struct {
	ID         string
	CompanyID  string
	OrderID    string
	Number     string
	Date       time.Time
	Status     InvoiceStatus
	ModifiedBy string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

// OwnerCompany implementa access.CompanyOwned.
func (i *Invoice) OwnerCompany() string { return i.CompanyID }
