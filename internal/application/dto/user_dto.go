package dto

import "time"

// CreateUserRequest body para POST /usuarios (solo admin).
type CreateUserRequest struct {
	Nombre     string `json:"nombre" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	Rol        string `json:"rol" validate:"required,oneof=admin vendedor bodeguero"`
	IDSucursal int64  `json:"id_sucursal" validate:"required,gt=0"`
}

// UserResponse representación de un usuario en respuestas (sin hash).
type UserResponse struct {
	ID         int64     `json:"id"`
	Nombre     string    `json:"nombre"`
	Email      string    `json:"email"`
	Rol        string    `json:"rol"`
	IDSucursal int64     `json:"id_sucursal"`
	Sucursal   string    `json:"sucursal,omitempty"`
	CreadoEn   time.Time `json:"creado_en"`
}
