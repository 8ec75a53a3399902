package repository

import "github.com/puntoclave/retail-api/internal/domain/entity"

// SessionRepository define el puerto de persistencia para sesiones opacas.
type SessionRepository interface {
	Create(session *entity.Session) error
	// Resolve devuelve la sesión y su usuario para un token, o nil, nil si el
	// token no existe. No filtra por expiración; eso lo decide el caso de uso.
	Resolve(token string) (*entity.Session, *entity.User, error)
	Delete(token string) error
}
