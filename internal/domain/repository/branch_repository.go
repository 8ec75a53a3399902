package repository

import "github.com/puntoclave/retail-api/internal/domain/entity"

// BranchRepository define el puerto de persistencia para sucursales.
type BranchRepository interface {
	Create(branch *entity.Branch) error
	GetByID(id int64) (*entity.Branch, error)
	List() ([]*entity.Branch, error)
}
