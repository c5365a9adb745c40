package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mrwinner04/graph-ql-warehouse/internal/application/access"
	"github.com/mrwinner04/graph-ql-warehouse/internal/application/dto"
	"github.com/mrwinner04/graph-ql-warehouse/internal/application/validate"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain/entity"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain/repository"
)

// CustomerUseCase CRUD de clientes/proveedores de la empresa.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// List lista los clientes vivos de la empresa.
func (uc *CustomerUseCase) List(companyID string) ([]dto.CustomerResponse, error) {
	list, err := uc.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCustomerResponse(c))
	}
	return items, nil
}

// Get resuelve un cliente por id validando pertenencia a la empresa.
func (uc *CustomerUseCase) Get(id, companyID string) (*dto.CustomerResponse, error) {
	customer, err := access.ResolveWithAccess(func() (*entity.Customer, error) {
		return uc.repo.GetByID(id)
	}, companyID, "Customer")
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Create crea un cliente. El email (si se informa) es único por empresa.
func (uc *CustomerUseCase) Create(companyID, userID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.BadRequest("Customer name is required")
	}
	ctype := entity.CustomerType(in.Type)
	if ctype != entity.CustomerTypeCustomer && ctype != entity.CustomerTypeSupplier {
		return nil, domain.BadRequest("Customer type must be 'customer' or 'supplier'")
	}
	if err := validate.FieldUniqueInCompany(func(v string) (string, error) {
		return uc.repo.FindIDByEmail(companyID, v)
	}, "email", in.Email, "Customer", "", validate.LowerTrim); err != nil {
		return nil, err
	}

	now := time.Now()
	customer := &entity.Customer{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		Name:       strings.TrimSpace(in.Name),
		Email:      validate.LowerTrim(in.Email),
		Type:       ctype,
		ModifiedBy: userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Update actualiza un cliente de la empresa.
func (uc *CustomerUseCase) Update(id, companyID, userID string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := access.ResolveWithAccess(func() (*entity.Customer, error) {
		return uc.repo.GetByID(id)
	}, companyID, "Customer")
	if err != nil {
		return nil, err
	}
	if in.Email != nil {
		if err := validate.FieldUniqueInCompany(func(v string) (string, error) {
			return uc.repo.FindIDByEmail(companyID, v)
		}, "email", *in.Email, "Customer", id, validate.LowerTrim); err != nil {
			return nil, err
		}
		customer.Email = validate.LowerTrim(*in.Email)
	}
	if in.Name != nil {
		customer.Name = strings.TrimSpace(*in.Name)
	}
	if in.Type != nil {
		ctype := entity.CustomerType(*in.Type)
		if ctype != entity.CustomerTypeCustomer && ctype != entity.CustomerTypeSupplier {
			return nil, domain.BadRequest("Customer type must be 'customer' or 'supplier'")
		}
		customer.Type = ctype
	}
	customer.ModifiedBy = userID
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete aplica la política de borrado por rol tras el guard de empresa.
func (uc *CustomerUseCase) Delete(id, companyID string, role entity.UserRole) error {
	if _, err := access.ResolveWithAccess(func() (*entity.Customer, error) {
		return uc.repo.GetByID(id)
	}, companyID, "Customer"); err != nil {
		return err
	}
	return access.DeleteByRole(uc.repo, id, companyID, role, "Customer")
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		Name:      c.Name,
		Email:     c.Email,
		Type:      string(c.Type),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
