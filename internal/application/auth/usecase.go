// Package auth implementa registro, login y cambio de contraseña. Es el
// colaborador externo del núcleo: a partir de aquí toda llamada autenticada
// lleva la tripleta {userID, companyID, role} en el token y el núcleo la
// acepta sin re-verificar credenciales.
package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mrwinner04/graph-ql-warehouse/internal/application/dto"
	"github.com/mrwinner04/graph-ql-warehouse/internal/application/validate"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain/entity"
	"github.com/mrwinner04/graph-ql-warehouse/internal/domain/repository"
	"github.com/mrwinner04/graph-ql-warehouse/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, companyRepo repository.CompanyRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, companyRepo: companyRepo, jwtCfg: jwtCfg}
}

// Register crea la empresa y su primer usuario en una sola llamada. El email
// es único globalmente (no por empresa); el rol por defecto es owner.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if err := validate.FieldUniqueGlobally(uc.userRepo.FindIDByEmail, "email", in.Email, "User", "", validate.LowerTrim); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.CompanyName) == "" {
		return nil, domain.BadRequest("Company name is required")
	}

	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.CompanyName),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.companyRepo.Create(company); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := entity.UserRole(in.Role)
	if role == "" {
		role = entity.RoleOwner
	}
	if !role.Valid() {
		return nil, domain.BadRequest("invalid role '%s'", in.Role)
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    company.ID,
		Email:        validate.LowerTrim(in.Email),
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(in.Name),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return &dto.RegisterResponse{User: *ToUserResponse(user)}, nil
}

// Login verifica email/password y genera el JWT con {userID, companyID, role}.
// Credencial inválida y usuario inexistente devuelven el mismo error.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(validate.LowerTrim(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.Unauthorized("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.Unauthorized("Invalid credentials")
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.CompanyID, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		User:        *ToUserResponse(user),
	}, nil
}

// ChangePassword verifica la contraseña actual y re-hashea la nueva.
func (uc *AuthUseCase) ChangePassword(userID string, in dto.ChangePasswordRequest) (*dto.ChangePasswordResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.Unauthorized("User not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return nil, domain.Unauthorized("Current password is incorrect")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return &dto.ChangePasswordResponse{Success: true, Message: "Password changed successfully"}, nil
}

// ToUserResponse proyecta User hacia la API sin el hash de contraseña.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
