package repository

import "github.com/puntoclave/retail-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	// ListNonAdmin lista los usuarios cuyo rol no es admin, con nombre de
	// sucursal. Los admin quedan fuera de los listados generales.
	ListNonAdmin() ([]*entity.User, error)
}
