package usecase

import (
	"context"
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

// WarehouseUseCase CRUD de bodegas. Cambiar el tipo de una bodega que aún
// contiene productos incompatibles se rechaza (guard de re-tipificación).
type WarehouseUseCase struct {
	repo    repository.WarehouseRepository
	reports repository.ReportRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository, reports repository.ReportRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo, reports: reports}
}

// List lista las bodegas vivas de la empresa.
func (uc *WarehouseUseCase) List(companyID string) ([]dto.WarehouseResponse, error) {
	list, err := uc.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return items, nil
}

// Get resuelve una bodega por id validando pertenencia a la empresa.
func (uc *WarehouseUseCase) Get(id, companyID string) (*dto.WarehouseResponse, error) {
	warehouse, err := access.ResolveWithAccess(func() (*entity.Warehouse, error) {
		return uc.repo.GetByID(id)
	}, companyID, "Warehouse")
	if err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// Create crea una bodega. Name único por empresa; Type puede quedar vacío.
func (uc *WarehouseUseCase) Create(companyID, userID string, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.BadRequest("Warehouse name is required")
	}
	wtype := entity.WarehouseType(in.Type)
	if wtype != "" && wtype != entity.WarehouseTypeSolid && wtype != entity.WarehouseTypeLiquid {
		return nil, domain.BadRequest("Warehouse type must be 'solid' or 'liquid'")
	}
	if err := validate.FieldUniqueInCompany(func(v string) (string, error) {
		return uc.repo.FindIDByName(companyID, v)
	}, "name", in.Name, "Warehouse", "", nil); err != nil {
		return nil, err
	}

	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		Name:       strings.TrimSpace(in.Name),
		Address:    strings.TrimSpace(in.Address),
		Type:       wtype,
		ModifiedBy: userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// Update actualiza una bodega. Un cambio de tipo escanea primero las órdenes
// y líneas vivas de la bodega: si algún producto enlazado quedaría con tipo
// incompatible, se rechaza listando los conflictos.
func (uc *WarehouseUseCase) Update(ctx context.Context, id, companyID, userID string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	warehouse, err := access.ResolveWithAccess(func() (*entity.Warehouse, error) {
		return uc.repo.GetByID(id)
	}, companyID, "Warehouse")
	if err != nil {
		return nil, err
	}
	if in.Type != nil {
		wtype := entity.WarehouseType(*in.Type)
		if wtype != entity.WarehouseTypeSolid && wtype != entity.WarehouseTypeLiquid {
			return nil, domain.BadRequest("Warehouse type must be 'solid' or 'liquid'")
		}
		if wtype != warehouse.Type {
			conflicts, err := uc.reports.WarehouseTypeConflicts(ctx, id, string(wtype))
			if err != nil {
				return nil, err
			}
			if err := validate.WarehouseTypeChangeSafe(conflicts, wtype); err != nil {
				return nil, err
			}
		}
		warehouse.Type = wtype
	}
	if in.Name != nil {
		if err := validate.FieldUniqueInCompany(func(v string) (string, error) {
			return uc.repo.FindIDByName(companyID, v)
		}, "name", *in.Name, "Warehouse", id, nil); err != nil {
			return nil, err
		}
		warehouse.Name = strings.TrimSpace(*in.Name)
	}
	if in.Address != nil {
		warehouse.Address = strings.TrimSpace(*in.Address)
	}
	warehouse.ModifiedBy = userID
	warehouse.UpdatedAt = time.Now()
	if err := uc.repo.Update(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// Delete aplica la política de borrado por rol tras el guard de empresa.
func (uc *WarehouseUseCase) Delete(id, companyID string, role entity.UserRole) error {
	if _, err := access.ResolveWithAccess(func() (*entity.Warehouse, error) {
		return uc.repo.GetByID(id)
	}, companyID, "Warehouse"); err != nil {
		return err
	}
	return access.DeleteByRole(uc.repo, id, companyID, role, "Warehouse")
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	return &dto.WarehouseResponse{
		ID:        w.ID,
		CompanyID: w.CompanyID,
		Name:      w.Name,
		Address:   w.Address,
		Type:      string(w.Type),
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
