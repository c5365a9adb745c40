package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mrwinner04/graph-ql-warehouse/internal/application/access"
	"github.com/mrwinner04/graph-ql-warehouse/internal/application/dto"
	"github.com/mrwinner04/graph-ql-warehouse/internal/application/validate"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain/entity"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain/repository"
)

// ProductUseCase CRUD de productos. Name y Code (si se informa) son únicos
// por empresa.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List lista los productos vivos de la empresa.
func (uc *ProductUseCase) List(companyID string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Get resuelve un producto por id validando pertenencia a la empresa.
func (uc *ProductUseCase) Get(id, companyID string) (*dto.ProductResponse, error) {
	product, err := access.ResolveWithAccess(func() (*entity.Product, error) {
		return uc.repo.GetByID(id)
	}, companyID, "Product")
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Create crea un producto validando unicidad de nombre y código.
func (uc *ProductUseCase) Create(companyID, userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.BadRequest("Product name is required")
	}
	ptype := entity.ProductType(in.Type)
	if ptype != entity.ProductTypeSolid && ptype != entity.ProductTypeLiquid {
		return nil, domain.BadRequest("Product type must be 'solid' or 'liquid'")
	}
	price, err := parsePrice(in.Price)
	if err != nil {
		return nil, err
	}
	if err := validate.FieldUniqueInCompany(func(v string) (string, error) {
		return uc.repo.FindIDByName(companyID, v)
	}, "name", in.Name, "Product", "", nil); err != nil {
		return nil, err
	}
	if err := validate.FieldUniqueInCompany(func(v string) (string, error) {
		return uc.repo.FindIDByCode(companyID, v)
	}, "code", in.Code, "Product", "", nil); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		Name:       strings.TrimSpace(in.Name),
		Code:       strings.TrimSpace(in.Code),
		Price:      price,
		Type:       ptype,
		ModifiedBy: userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto de la empresa revalidando unicidades sobre
// los campos que cambian.
func (uc *ProductUseCase) Update(id, companyID, userID string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := access.ResolveWithAccess(func() (*entity.Product, error) {
		return uc.repo.GetByID(id)
	}, companyID, "Product")
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if err := validate.FieldUniqueInCompany(func(v string) (string, error) {
			return uc.repo.FindIDByName(companyID, v)
		}, "name", *in.Name, "Product", id, nil); err != nil {
			return nil, err
		}
		product.Name = strings.TrimSpace(*in.Name)
	}
	if in.Code != nil {
		if err := validate.FieldUniqueInCompany(func(v string) (string, error) {
			return uc.repo.FindIDByCode(companyID, v)
		}, "code", *in.Code, "Product", id, nil); err != nil {
			return nil, err
		}
		product.Code = strings.TrimSpace(*in.Code)
	}
	if in.Price != nil {
		price, err := parsePrice(*in.Price)
		if err != nil {
			return nil, err
		}
		product.Price = price
	}
	if in.Type != nil {
		ptype := entity.ProductType(*in.Type)
		if ptype != entity.ProductTypeSolid && ptype != entity.ProductTypeLiquid {
			return nil, domain.BadRequest("Product type must be 'solid' or 'liquid'")
		}
		product.Type = ptype
	}
	product.ModifiedBy = userID
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete aplica la política de borrado por rol tras el guard de empresa.
func (uc *ProductUseCase) Delete(id, companyID string, role entity.UserRole) error {
	if _, err := access.ResolveWithAccess(func() (*entity.Product, error) {
		return uc.repo.GetByID(id)
	}, companyID, "Product"); err != nil {
		return err
	}
	return access.DeleteByRole(uc.repo, id, companyID, role, "Product")
}

// parsePrice convierte el string decimal del request. Rechaza negativos.
func parsePrice(s string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, domain.BadRequest("Price must be a decimal string, got '%s'", s)
	}
	if price.IsNegative() {
		return decimal.Zero, domain.BadRequest("Price cannot be negative")
	}
	return price, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		CompanyID: p.CompanyID,
		Name:      p.Name,
		Code:      p.Code,
		Price:     p.Price.StringFixed(2),
		Type:      string(p.Type),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
