package dto

// LoginRequest credenciales del administrador (el acceso es por teléfono).
type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// AdminProfileDTO perfil del administrador autenticado, sin credenciales.
type AdminProfileDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// LoginResponse token JWT más el perfil.
type LoginResponse struct {
	Token string          `json:"token"`
	User  AdminProfileDTO `json:"user"`
}
