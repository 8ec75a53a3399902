package repository

import "github.com/puntoclave/retail-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para productos (variantes).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	List() ([]*entity.Product, error)
}
