package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/mrwinner04/graph-ql-warehouse/internal/domain"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain/entity"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain/repository"
)

var _ repository.OrderItemRepository = (*OrderItemRepo)(nil)

// OrderItemRepo implementación del puerto OrderItemRepository sobre PostgreSQL (usable con pool o tx).
// Las líneas no llevan company_id: el tenant se resuelve vía la orden en la capa de aplicación.
type OrderItemRepo struct {
	q Querier
}

// NewOrderItemRepository construye el adaptador de persistencia para líneas de orden.
func NewOrderItemRepository(q Querier) *OrderItemRepo {
	return &OrderItemRepo{q: q}
}

const orderItemColumns = `id, order_id, product_id, quantity, price, COALESCE(modified_by, ''), created_at, updated_at, deleted_at`

// Create persiste una nueva línea de orden.
func (r *OrderItemRepo) Create(item *entity.OrderItem) error {
	query := `
		INSERT INTO order_items (id, order_id, product_id, quantity, price, modified_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.OrderID, item.ProductID, item.Quantity, item.Price,
		item.ModifiedBy, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.BadRequest("This product is already added to the order. Use updateOrderItem to modify quantity.")
		}
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// GetByID obtiene una línea por ID (incluye filas con borrado lógico).
func (r *OrderItemRepo) GetByID(id string) (*entity.OrderItem, error) {
	query := `SELECT ` + orderItemColumns + ` FROM order_items WHERE id = $1`
	var it entity.OrderItem
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.Price, &it.ModifiedBy,
		&it.CreatedAt, &it.UpdatedAt, &it.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order item: %w", err)
	}
	return &it, nil
}

// FindByOrderAndProduct busca la línea viva del par (orden, producto).
// Sostiene la regla de una línea por producto dentro de la orden.
func (r *OrderItemRepo) FindByOrderAndProduct(orderID, productID string) (*entity.OrderItem, error) {
	query := `SELECT ` + orderItemColumns + ` FROM order_items
		WHERE order_id = $1 AND product_id = $2 AND deleted_at IS NULL`
	var it entity.OrderItem
	err := r.q.QueryRow(context.Background(), query, orderID, productID).Scan(
		&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.Price, &it.ModifiedBy,
		&it.CreatedAt, &it.UpdatedAt, &it.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find order item by order and product: %w", err)
	}
	return &it, nil
}

// ListByCompany lista líneas vivas de la empresa. La empresa se resuelve vía
// join con la orden, excluyendo órdenes con borrado lógico.
func (r *OrderItemRepo) ListByCompany(companyID string) ([]*entity.OrderItem, error) {
	query := `SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.price, COALESCE(oi.modified_by, ''),
			oi.created_at, oi.updated_at, oi.deleted_at
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.company_id = $1 AND oi.deleted_at IS NULL AND o.deleted_at IS NULL
		ORDER BY oi.created_at`
	return r.list(query, companyID)
}

// ListByOrder lista líneas vivas de la orden.
func (r *OrderItemRepo) ListByOrder(orderID string) ([]*entity.OrderItem, error) {
	query := `SELECT ` + orderItemColumns + ` FROM order_items
		WHERE order_id = $1 AND deleted_at IS NULL ORDER BY created_at`
	return r.list(query, orderID)
}

// ListByProduct lista líneas vivas que referencian al producto.
func (r *OrderItemRepo) ListByProduct(productID string) ([]*entity.OrderItem, error) {
	query := `SELECT ` + orderItemColumns + ` FROM order_items
		WHERE product_id = $1 AND deleted_at IS NULL ORDER BY created_at`
	return r.list(query, productID)
}

func (r *OrderItemRepo) list(query string, arg any) ([]*entity.OrderItem, error) {
	rows, err := r.q.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.Price, &it.ModifiedBy,
			&it.CreatedAt, &it.UpdatedAt, &it.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// OrderTotal suma quantity*price de las líneas vivas de la orden. El total
// nunca se almacena: se recalcula en cada lectura.
func (r *OrderItemRepo) OrderTotal(orderID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity * price), 0) FROM order_items WHERE order_id = $1 AND deleted_at IS NULL`,
		orderID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("order total: %w", err)
	}
	return total, nil
}

// Update actualiza cantidad y precio de una línea.
func (r *OrderItemRepo) Update(item *entity.OrderItem) error {
	query := `
		UPDATE order_items SET quantity = $2, price = $3, modified_by = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Quantity, item.Price, item.ModifiedBy, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order item: %w", err)
	}
	return nil
}

// HardDelete elimina físicamente la línea.
func (r *OrderItemRepo) HardDelete(id string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM order_items WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("hard delete order item: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// SoftDelete marca la línea como borrada sin tocar la fila.
func (r *OrderItemRepo) SoftDelete(id string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE order_items SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return 0, fmt.Errorf("soft delete order item: %w", err)
	}
	return cmd.RowsAffected(), nil
}
