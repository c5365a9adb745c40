package usecase

import (
	"strings"
	"time"

	"github.com/mrwinner04/graph-ql-warehouse/internal/application/dto"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain/entity"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain/repository"
)

// CompanyUseCase casos de uso sobre la empresa. El alta va por el registro de
// auth; aquí quedan el listado (solo owners), la consulta y la actualización.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// List lista todas las empresas. El router restringe la operación a owners.
func (uc *CompanyUseCase) List() ([]dto.CompanyResponse, error) {
	list, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompanyResponse(c))
	}
	return items, nil
}

// GetOwn devuelve la empresa del llamador. No hay acceso cruzado: el id
// siempre sale del token, nunca del request.
func (uc *CompanyUseCase) GetOwn(companyID string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.NotFound("Company not found")
	}
	return toCompanyResponse(company), nil
}

// Update actualiza la empresa del llamador.
func (uc *CompanyUseCase) Update(companyID string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.NotFound("Company not found")
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.BadRequest("Company name is required")
		}
		company.Name = name
	}
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
