package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mrwinner04/graph-ql-warehouse/internal/application/access"
	"github.com/mrwinner04/graph-ql-warehouse/internal/application/auth"
	"github.com/mrwinner04/graph-ql-warehouse/internal/application/dto"
	"github.com/mrwinner04/graph-ql-warehouse/internal/application/validate"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain/entity"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain/repository"
)

// UserUseCase gestión de usuarios dentro de la empresa del llamador.
// El router restringe el alta a owners.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List lista los usuarios vivos de la empresa.
func (uc *UserUseCase) List(companyID string) ([]dto.UserResponse, error) {
	list, err := uc.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *auth.ToUserResponse(u))
	}
	return items, nil
}

// Get resuelve un usuario por id validando pertenencia a la empresa.
func (uc *UserUseCase) Get(id, companyID string) (*dto.UserResponse, error) {
	user, err := access.ResolveWithAccess(func() (*entity.User, error) {
		return uc.repo.GetByID(id)
	}, companyID, "User")
	if err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Create crea un usuario en la empresa del llamador. Email único global.
func (uc *UserUseCase) Create(companyID string, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := validate.FieldUniqueGlobally(uc.repo.FindIDByEmail, "email", in.Email, "User", "", validate.LowerTrim); err != nil {
		return nil, err
	}
	role := entity.UserRole(in.Role)
	if role == "" {
		role = entity.RoleViewer
	}
	if !role.Valid() {
		return nil, domain.BadRequest("invalid role '%s'", in.Role)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		Email:        validate.LowerTrim(in.Email),
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(in.Name),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Update actualiza un usuario de la empresa. El email nuevo revalida la
// unicidad global excluyendo la propia fila.
func (uc *UserUseCase) Update(id, companyID string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := access.ResolveWithAccess(func() (*entity.User, error) {
		return uc.repo.GetByID(id)
	}, companyID, "User")
	if err != nil {
		return nil, err
	}
	if in.Email != nil {
		if err := validate.FieldUniqueGlobally(uc.repo.FindIDByEmail, "email", *in.Email, "User", id, validate.LowerTrim); err != nil {
			return nil, err
		}
		user.Email = validate.LowerTrim(*in.Email)
	}
	if in.Name != nil {
		user.Name = strings.TrimSpace(*in.Name)
	}
	if in.Role != nil {
		role := entity.UserRole(*in.Role)
		if !role.Valid() {
			return nil, domain.BadRequest("invalid role '%s'", *in.Role)
		}
		user.Role = role
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Delete aplica la política de borrado por rol tras el guard de empresa.
func (uc *UserUseCase) Delete(id, companyID string, role entity.UserRole) error {
	if _, err := access.ResolveWithAccess(func() (*entity.User, error) {
		return uc.repo.GetByID(id)
	}, companyID, "User"); err != nil {
		return err
	}
	return access.DeleteByRole(uc.repo, id, companyID, role, "User")
}
