package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/puntoclave/retail-api/internal/application/auth"
	"github.com/puntoclave/retail-api/internal/application/dto"
	"github.com/puntoclave/retail-api/internal/domain"
	"github.com/puntoclave/retail-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users []*entity.User
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	for _, e := range f.users {
		if e.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	u.ID = int64(len(f.users) + 1)
	f.users = append(f.users, u)
	return nil
}

func (f *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ListNonAdmin() ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		if u.Role != entity.RoleAdmin {
			out = append(out, u)
		}
	}
	return out, nil
}

type fakeSessionRepo struct {
	sessions map[string]*entity.Session
	users    *fakeUserRepo
}

func (f *fakeSessionRepo) Create(s *entity.Session) error {
	f.sessions[s.Token] = s
	return nil
}

func (f *fakeSessionRepo) Resolve(token string) (*entity.Session, *entity.User, error) {
	s, ok := f.sessions[token]
	if !ok {
		return nil, nil, nil
	}
	u, err := f.users.GetByID(s.UserID)
	return s, u, err
}

func (f *fakeSessionRepo) Delete(token string) error {
	delete(f.sessions, token)
	return nil
}

func newAuthFixture(t *testing.T, ttl time.Duration) (*auth.UseCase, *fakeSessionRepo) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreta123"), bcrypt.MinCost)
	require.NoError(t, err)
	users := &fakeUserRepo{users: []*entity.User{{
		ID:           1,
		Name:         "Ana",
		Email:        "ana@tienda.co",
		PasswordHash: string(hash),
		Role:         entity.RoleVendedor,
		BranchID:     1,
	}}}
	sessions := &fakeSessionRepo{sessions: map[string]*entity.Session{}, users: users}
	return auth.NewUseCase(users, sessions, ttl), sessions
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests login / logout
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas(t *testing.T) {
	uc, sessions := newAuthFixture(t, time.Hour)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "ana@tienda.co", Password: "secreta123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token, "el login debe emitir un token opaco")
	assert.Equal(t, "ana@tienda.co", resp.Usuario.Email)

	_, ok := sessions.sessions[resp.Token]
	assert.True(t, ok, "la sesión debe quedar almacenada en el servidor")
}

func TestLogin_TokensDistintosPorLogin(t *testing.T) {
	uc, _ := newAuthFixture(t, time.Hour)

	in := dto.LoginRequest{Email: "ana@tienda.co", Password: "secreta123"}
	a, err := uc.Login(context.Background(), in)
	require.NoError(t, err)
	b, err := uc.Login(context.Background(), in)
	require.NoError(t, err)

	assert.NotEqual(t, a.Token, b.Token)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _ := newAuthFixture(t, time.Hour)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "ana@tienda.co", Password: "equivocada",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailDesconocido(t *testing.T) {
	uc, _ := newAuthFixture(t, time.Hour)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "nadie@tienda.co", Password: "secreta123",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_EmailInvalido_RetornaInvalido(t *testing.T) {
	uc, _ := newAuthFixture(t, time.Hour)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "no-es-un-email", Password: "secreta123",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogout_RevocaLaSesion(t *testing.T) {
	uc, _ := newAuthFixture(t, time.Hour)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "ana@tienda.co", Password: "secreta123",
	})
	require.NoError(t, err)

	require.NoError(t, uc.Logout(context.Background(), resp.Token))

	_, err = uc.Resolve(context.Background(), resp.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"un token revocado debe rechazarse de inmediato")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests resolución de sesiones
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_SesionValida(t *testing.T) {
	uc, _ := newAuthFixture(t, time.Hour)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "ana@tienda.co", Password: "secreta123",
	})
	require.NoError(t, err)

	identity, err := uc.Resolve(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), identity.UserID)
	assert.Equal(t, entity.RoleVendedor, identity.Role)
	assert.False(t, identity.IsAdmin())
}

func TestResolve_TokenVacio(t *testing.T) {
	uc, _ := newAuthFixture(t, time.Hour)

	_, err := uc.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestResolve_TokenDesconocido(t *testing.T) {
	uc, _ := newAuthFixture(t, time.Hour)

	_, err := uc.Resolve(context.Background(), "token-que-no-existe")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestResolve_SesionVencida_SeRevoca(t *testing.T) {
	uc, sessions := newAuthFixture(t, time.Hour)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "ana@tienda.co", Password: "secreta123",
	})
	require.NoError(t, err)

	// Vencer la sesión por detrás del caso de uso.
	sessions.sessions[resp.Token].ExpiresAt = time.Now().Add(-time.Minute)

	_, err = uc.Resolve(context.Background(), resp.Token)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)

	_, ok := sessions.sessions[resp.Token]
	assert.False(t, ok, "la sesión vencida debe borrarse al detectarla")
}
