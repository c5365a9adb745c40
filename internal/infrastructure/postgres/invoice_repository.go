package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mrwinner04/graph-ql-warehouse/internal/domain"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain/entity"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación del puerto InvoiceRepository sobre PostgreSQL (usable con pool o tx).
// No hay columna total: el monto se recalcula siempre desde las líneas de la orden.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador de persistencia para facturas.
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, company_id, order_id, number, date, status, COALESCE(modified_by, ''), created_at, updated_at, deleted_at`

// Create persiste una nueva factura.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, company_id, order_id, number, date, status, modified_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.CompanyID, invoice.OrderID, invoice.Number, invoice.Date,
		string(invoice.Status), invoice.ModifiedBy, invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict("Invoice with this number already exists in your company")
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID (incluye filas con borrado lógico).
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	var inv entity.Invoice
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&inv.ID, &inv.CompanyID, &inv.OrderID, &inv.Number, &inv.Date, &inv.Status,
		&inv.ModifiedBy, &inv.CreatedAt, &inv.UpdatedAt, &inv.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// FindIDByNumber devuelve el ID de la factura activa de la empresa con ese
// número, o "" si no existe.
func (r *InvoiceRepo) FindIDByNumber(companyID, number string) (string, error) {
	var id string
	err := r.q.QueryRow(context.Background(),
		`SELECT id FROM invoices WHERE company_id = $1 AND number = $2 AND deleted_at IS NULL`,
		companyID, number,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("find invoice id by number: %w", err)
	}
	return id, nil
}

// ListByCompany lista facturas activas de la empresa.
func (r *InvoiceRepo) ListByCompany(companyID string) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices
		WHERE company_id = $1 AND deleted_at IS NULL ORDER BY created_at DESC`
	return r.list(query, companyID)
}

// ListByOrder lista facturas activas de la orden.
func (r *InvoiceRepo) ListByOrder(orderID string) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices
		WHERE order_id = $1 AND deleted_at IS NULL ORDER BY created_at DESC`
	return r.list(query, orderID)
}

func (r *InvoiceRepo) list(query string, arg any) ([]*entity.Invoice, error) {
	rows, err := r.q.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.CompanyID, &inv.OrderID, &inv.Number, &inv.Date, &inv.Status,
			&inv.ModifiedBy, &inv.CreatedAt, &inv.UpdatedAt, &inv.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// Update actualiza una factura existente.
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	query := `
		UPDATE invoices SET number = $2, date = $3, status = $4, modified_by = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.Number, invoice.Date, string(invoice.Status),
		invoice.ModifiedBy, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict("Invoice with this number already exists in your company")
		}
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// HardDelete elimina físicamente la factura de la empresa.
func (r *InvoiceRepo) HardDelete(id, companyID string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM invoices WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return 0, fmt.Errorf("hard delete invoice: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// SoftDelete marca la factura como borrada sin tocar la fila.
func (r *InvoiceRepo) SoftDelete(id, companyID string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE invoices SET deleted_at = now() WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL`,
		id, companyID)
	if err != nil {
		return 0, fmt.Errorf("soft delete invoice: %w", err)
	}
	return cmd.RowsAffected(), nil
}
