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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador de persistencia para clientes/proveedores.
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente o proveedor. Email vacío se guarda como NULL.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, company_id, name, email, type, modified_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.CompanyID, customer.Name, nullIfEmpty(customer.Email),
		string(customer.Type), customer.ModifiedBy, customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict("Customer with this email already exists in your company")
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID (incluye filas con borrado lógico).
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `
		SELECT id, company_id, name, COALESCE(email, ''), type, COALESCE(modified_by, ''), created_at, updated_at, deleted_at
		FROM customers WHERE id = $1`
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.CompanyID, &c.Name, &c.Email, &c.Type, &c.ModifiedBy,
		&c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// FindIDByEmail devuelve el ID del cliente activo de la empresa con ese
// email, o "" si no existe.
func (r *CustomerRepo) FindIDByEmail(companyID, email string) (string, error) {
	var id string
	err := r.q.QueryRow(context.Background(),
		`SELECT id FROM customers WHERE company_id = $1 AND email = $2 AND deleted_at IS NULL`,
		companyID, email,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("find customer id by email: %w", err)
	}
	return id, nil
}

// ListByCompany lista clientes activos de la empresa.
func (r *CustomerRepo) ListByCompany(companyID string) ([]*entity.Customer, error) {
	query := `
		SELECT id, company_id, name, COALESCE(email, ''), type, COALESCE(modified_by, ''), created_at, updated_at, deleted_at
		FROM customers WHERE company_id = $1 AND deleted_at IS NULL ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.Name, &c.Email, &c.Type, &c.ModifiedBy,
			&c.CreatedAt, &c.UpdatedAt, &c.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza un cliente existente.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers SET name = $2, email = $3, type = $4, modified_by = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, nullIfEmpty(customer.Email), string(customer.Type),
		customer.ModifiedBy, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict("Customer with this email already exists in your company")
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// HardDelete elimina físicamente al cliente de la empresa.
func (r *CustomerRepo) HardDelete(id, companyID string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM customers WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return 0, fmt.Errorf("hard delete customer: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// SoftDelete marca al cliente como borrado sin tocar la fila.
func (r *CustomerRepo) SoftDelete(id, companyID string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE customers SET deleted_at = now() WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL`,
		id, companyID)
	if err != nil {
		return 0, fmt.Errorf("soft delete customer: %w", err)
	}
	return cmd.RowsAffected(), nil
}
