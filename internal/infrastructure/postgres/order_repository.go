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

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para órdenes.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, company_id, number, type, customer_id, warehouse_id, date, COALESCE(modified_by, ''), created_at, updated_at, deleted_at`

// Create persiste una nueva orden.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, company_id, number, type, customer_id, warehouse_id, date, modified_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.CompanyID, order.Number, string(order.Type), order.CustomerID,
		order.WarehouseID, order.Date, order.ModifiedBy, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict("Order with this number already exists in your company")
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID (incluye filas con borrado lógico).
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.CompanyID, &o.Number, &o.Type, &o.CustomerID, &o.WarehouseID,
		&o.Date, &o.ModifiedBy, &o.CreatedAt, &o.UpdatedAt, &o.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// FindIDByNumber devuelve el ID de la orden activa de la empresa con ese
// número, o "" si no existe.
func (r *OrderRepo) FindIDByNumber(companyID, number string) (string, error) {
	var id string
	err := r.q.QueryRow(context.Background(),
		`SELECT id FROM orders WHERE company_id = $1 AND number = $2 AND deleted_at IS NULL`,
		companyID, number,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("find order id by number: %w", err)
	}
	return id, nil
}

// ListByCompany lista órdenes activas de la empresa.
func (r *OrderRepo) ListByCompany(companyID string) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders
		WHERE company_id = $1 AND deleted_at IS NULL ORDER BY created_at DESC`
	return r.list(query, companyID)
}

// ListByCustomer lista órdenes activas del cliente.
func (r *OrderRepo) ListByCustomer(customerID string) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders
		WHERE customer_id = $1 AND deleted_at IS NULL ORDER BY created_at DESC`
	return r.list(query, customerID)
}

// ListByWarehouse lista órdenes activas de la bodega.
func (r *OrderRepo) ListByWarehouse(warehouseID string) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders
		WHERE warehouse_id = $1 AND deleted_at IS NULL ORDER BY created_at DESC`
	return r.list(query, warehouseID)
}

func (r *OrderRepo) list(query string, arg any) ([]*entity.Order, error) {
	rows, err := r.q.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.CompanyID, &o.Number, &o.Type, &o.CustomerID, &o.WarehouseID,
			&o.Date, &o.ModifiedBy, &o.CreatedAt, &o.UpdatedAt, &o.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Update actualiza una orden existente.
func (r *OrderRepo) Update(order *entity.Order) error {
	query := `
		UPDATE orders SET number = $2, type = $3, customer_id = $4, warehouse_id = $5, date = $6, modified_by = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.Number, string(order.Type), order.CustomerID, order.WarehouseID,
		order.Date, order.ModifiedBy, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict("Order with this number already exists in your company")
		}
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// HardDelete elimina físicamente la orden de la empresa.
func (r *OrderRepo) HardDelete(id, companyID string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM orders WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return 0, fmt.Errorf("hard delete order: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// SoftDelete marca la orden como borrada sin tocar la fila.
func (r *OrderRepo) SoftDelete(id, companyID string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE orders SET deleted_at = now() WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL`,
		id, companyID)
	if err != nil {
		return 0, fmt.Errorf("soft delete order: %w", err)
	}
	return cmd.RowsAffected(), nil
}
