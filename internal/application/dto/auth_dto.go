package dto

// LoginRequest body para POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token de sesión opaco más el usuario autenticado.
type LoginResponse struct {
	Token   string       `json:"token"`
	Usuario UserResponse `json:"usuario"`
}
