package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrUserNotFound         = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists   = errors.New("el email ya está registrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrForbidden            = errors.New("acceso denegado")
	ErrInsufficientStock    = errors.New("stock insuficiente")
	ErrNoOpenCashSession    = errors.New("no hay caja abierta")
	ErrCashSessionOpen      = errors.New("ya existe una caja abierta para la sucursal")
	ErrCashSessionNotClosed = errors.New("la caja no está cerrada")
	ErrSessionExpired       = errors.New("sesión expirada")
)
