package usecase

import (
	"github.com/puntoclave/retail-api/internal/application/dto"
	"github.com/puntoclave/retail-api/internal/domain"
	"github.com/puntoclave/retail-api/internal/domain/entity"
	"github.com/puntoclave/retail-api/internal/domain/repository"
)

// BranchUseCase aplica reglas de negocio para sucursales.
type BranchUseCase struct {
	repo repository.BranchRepository
}

// NewBranchUseCase construye el caso de uso con el puerto de persistencia.
func NewBranchUseCase(repo repository.BranchRepository) *BranchUseCase {
	return &BranchUseCase{repo: repo}
}

// Create crea una sucursal.
func (uc *BranchUseCase) Create(in dto.CreateBranchRequest) (*dto.BranchResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	branch := &entity.Branch{Name: in.Nombre}
	if err := uc.repo.Create(branch); err != nil {
		return nil, err
	}
	return branchToResponse(branch), nil
}

// GetByID obtiene una sucursal por ID, o nil.
func (uc *BranchUseCase) GetByID(id int64) (*dto.BranchResponse, error) {
	branch, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, nil
	}
	return branchToResponse(branch), nil
}

// List lista todas las sucursales.
func (uc *BranchUseCase) List() ([]dto.BranchResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.BranchResponse, 0, len(list))
	for _, b := range list {
		out = append(out, *branchToResponse(b))
	}
	return out, nil
}

func branchToResponse(b *entity.Branch) *dto.BranchResponse {
	return &dto.BranchResponse{ID: b.ID, Nombre: b.Name, CreadoEn: b.CreatedAt}
}
