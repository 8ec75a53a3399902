package usecase

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/puntoclave/retail-api/internal/application/dto"
	"github.com/puntoclave/retail-api/internal/domain"
	"github.com/puntoclave/retail-api/internal/domain/entity"
	"github.com/puntoclave/retail-api/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para usuarios.
type UserUseCase struct {
	userRepo   repository.UserRepository
	branchRepo repository.BranchRepository
}

// NewUserUseCase construye el caso de uso con los puertos de persistencia.
func NewUserUseCase(userRepo repository.UserRepository, branchRepo repository.BranchRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, branchRepo: branchRepo}
}

// Create crea un usuario: hashea el password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	branch, err := uc.branchRepo.GetByID(in.IDSucursal)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Name:         in.Nombre,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Rol,
		BranchID:     in.IDSucursal,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	user.BranchName = branch.Name
	resp := userToResponse(user)
	return &resp, nil
}

// ListNonAdmin lista los usuarios no admin con su sucursal.
func (uc *UserUseCase) ListNonAdmin() ([]dto.UserResponse, error) {
	list, err := uc.userRepo.ListNonAdmin()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, userToResponse(u))
	}
	return out, nil
}

func userToResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:         u.ID,
		Nombre:     u.Name,
		Email:      u.Email,
		Rol:        u.Role,
		IDSucursal: u.BranchID,
		Sucursal:   u.BranchName,
		CreadoEn:   u.CreatedAt,
	}
}
