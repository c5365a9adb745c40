package dto

// RegisterRequest alta de empresa + usuario owner en una sola llamada.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	CompanyName string `json:"companyName"`
	Role        string `json:"role"` // opcional, por defecto owner
}

// RegisterResponse usuario creado (la empresa viene embebida en el usuario).
type RegisterResponse struct {
	User UserResponse `json:"user"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token JWT con {user_id, company_id, role} y el usuario.
type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	User        UserResponse `json:"user"`
}

// ChangePasswordRequest cambio de contraseña del usuario autenticado.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangePasswordResponse resultado del cambio.
type ChangePasswordResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
