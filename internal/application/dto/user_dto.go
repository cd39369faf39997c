package dto

// LoginRequest entrada del formulario o del JSON de login.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required,max=50"`
	Password string `json:"password" form:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse salida con el token de sesión firmado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
