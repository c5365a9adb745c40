package entity

import "time"

// UserRole rol de un usuario dentro de su empresa.
type UserRole string

// Roles válidos. Gobiernan qué mutaciones puede ejecutar el usuario y cómo
// se comporta el borrado (ver política de borrado por rol).
const (
	RoleOwner    UserRole = "owner"    // todo, incluido borrado físico y gestión de usuarios
	RoleOperator UserRole = "operator" // CRUD de entidades; sus borrados son lógicos
	RoleViewer   UserRole = "viewer"   // solo lectura
)

// Valid indica si el rol es uno de los conocidos.
func (r UserRole) Valid() bool {
	switch r {
	case RoleOwner, RoleOperator, RoleViewer:
		return true
	}
	return false
}

// User representa un usuario del sistema (pertenece a una Company).
// Email es único globalmente, no por empresa.
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string // bcrypt, nunca plano en dominio después de persistir
	Name         string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// OwnerCompany implementa access.CompanyOwned.
func (u *User) OwnerCompany() string { return u.CompanyID }
