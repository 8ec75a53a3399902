package usecase

import (
	"github.com/puntoclave/retail-api/internal/application/dto"
	"github.com/puntoclave/retail-api/internal/domain"
	"github.com/puntoclave/retail-api/internal/domain/entity"
	"github.com/puntoclave/retail-api/internal/domain/repository"
)

// ProductUseCase aplica reglas de negocio para productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso con el puerto de persistencia.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto (variante).
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	product := &entity.Product{Name: in.Nombre}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return productToResponse(product), nil
}

// GetByID obtiene un producto por ID, o nil.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return productToResponse(product), nil
}

// List lista todos los productos.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *productToResponse(p))
	}
	return out, nil
}

func productToResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{ID: p.ID, Nombre: p.Name, CreadoEn: p.CreatedAt}
}
