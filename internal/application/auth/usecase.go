package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/puntoclave/retail-api/internal/application/dto"
	"github.com/puntoclave/retail-api/internal/domain"
	"github.com/puntoclave/retail-api/internal/domain/entity"
	"github.com/puntoclave/retail-api/internal/domain/repository"
)

// Identity es la identidad resuelta de una sesión válida.
type Identity struct {
	UserID   int64
	Name     string
	Email    string
	Role     string
	BranchID int64
}

// IsAdmin indica si la identidad tiene rol admin.
func (i Identity) IsAdmin() bool { return i.Role == entity.RoleAdmin }

// UseCase casos de uso de autenticación: login, logout y resolución de
// sesiones. Los tokens son opacos, generados con crypto/rand y almacenados
// en el servidor; borrar la fila revoca la sesión de inmediato.
type UseCase struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	ttl         time.Duration
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, ttl time.Duration) *UseCase {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &UseCase{userRepo: userRepo, sessionRepo: sessionRepo, ttl: ttl}
}

// Login verifica email/password, crea una sesión y devuelve token + usuario.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := newToken()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	session := &entity.Session{
		Token:     token,
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(uc.ttl),
	}
	if err := uc.sessionRepo.Create(session); err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Usuario: toUserResponse(user),
	}, nil
}

// Logout revoca la sesión del token. Un token desconocido no es error.
func (uc *UseCase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return domain.ErrUnauthorized
	}
	return uc.sessionRepo.Delete(token)
}

// Resolve valida un token opaco y devuelve la identidad del usuario.
// Un token desconocido o vencido se rechaza como no autorizado; la sesión
// vencida se revoca de paso.
func (uc *UseCase) Resolve(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}
	session, user, err := uc.sessionRepo.Resolve(token)
	if err != nil {
		return nil, err
	}
	if session == nil || user == nil {
		return nil, domain.ErrUnauthorized
	}
	if session.Expired(time.Now()) {
		_ = uc.sessionRepo.Delete(token)
		return nil, domain.ErrSessionExpired
	}
	return &Identity{
		UserID:   user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
		BranchID: user.BranchID,
	}, nil
}

// newToken genera un token de sesión opaco de 32 bytes aleatorios.
func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generar token de sesión: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
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
