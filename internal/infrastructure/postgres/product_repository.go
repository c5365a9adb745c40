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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. Code vacío se guarda como NULL.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, company_id, name, code, price, type, modified_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.CompanyID, product.Name, nullIfEmpty(product.Code),
		product.Price, string(product.Type), product.ModifiedBy, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict("Product with this name already exists in your company")
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID (incluye filas con borrado lógico).
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, company_id, name, COALESCE(code, ''), price, type, COALESCE(modified_by, ''), created_at, updated_at, deleted_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.CompanyID, &p.Name, &p.Code, &p.Price, &p.Type, &p.ModifiedBy,
		&p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// FindIDByName devuelve el ID del producto activo de la empresa con ese
// nombre, o "" si no existe.
func (r *ProductRepo) FindIDByName(companyID, name string) (string, error) {
	var id string
	err := r.q.QueryRow(context.Background(),
		`SELECT id FROM products WHERE company_id = $1 AND name = $2 AND deleted_at IS NULL`,
		companyID, name,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("find product id by name: %w", err)
	}
	return id, nil
}

// FindIDByCode devuelve el ID del producto activo de la empresa con ese
// código, o "" si no existe.
func (r *ProductRepo) FindIDByCode(companyID, code string) (string, error) {
	var id string
	err := r.q.QueryRow(context.Background(),
		`SELECT id FROM products WHERE company_id = $1 AND code = $2 AND deleted_at IS NULL`,
		companyID, code,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("find product id by code: %w", err)
	}
	return id, nil
}

// ListByCompany lista productos activos de la empresa.
func (r *ProductRepo) ListByCompany(companyID string) ([]*entity.Product, error) {
	query := `
		SELECT id, company_id, name, COALESCE(code, ''), price, type, COALESCE(modified_by, ''), created_at, updated_at, deleted_at
		FROM products WHERE company_id = $1 AND deleted_at IS NULL ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.Name, &p.Code, &p.Price, &p.Type, &p.ModifiedBy,
			&p.CreatedAt, &p.UpdatedAt, &p.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, code = $3, price = $4, type = $5, modified_by = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, nullIfEmpty(product.Code), product.Price,
		string(product.Type), product.ModifiedBy, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict("Product with this name already exists in your company")
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// HardDelete elimina físicamente el producto de la empresa.
func (r *ProductRepo) HardDelete(id, companyID string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM products WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return 0, fmt.Errorf("hard delete product: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// SoftDelete marca el producto como borrado sin tocar la fila.
func (r *ProductRepo) SoftDelete(id, companyID string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET deleted_at = now() WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL`,
		id, companyID)
	if err != nil {
		return 0, fmt.Errorf("soft delete product: %w", err)
	}
	return cmd.RowsAffected(), nil
}
