package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/puntoclave/retail-api/internal/domain"
	"github.com/puntoclave/retail-api/internal/domain/entity"
	"github.com/puntoclave/retail-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO usuarios (nombre, email, password_hash, rol, id_sucursal, creado_en)
		VALUES ($1, $2, $3, $4, $5, now())
		RETURNING id, creado_en`
	err := r.pool.QueryRow(context.Background(), query,
		user.Name, user.Email, user.PasswordHash, user.Role, user.BranchID,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	query := `
		SELECT id, nombre, email, password_hash, rol, id_sucursal, creado_en
		FROM usuarios WHERE id = $1`
	var u entity.User
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.BranchID, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return &u, nil
}

// FindByEmail obtiene un usuario por email (para login).
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	query := `
		SELECT id, nombre, email, password_hash, rol, id_sucursal, creado_en
		FROM usuarios WHERE email = $1 LIMIT 1`
	var u entity.User
	err := r.pool.QueryRow(context.Background(), query, email).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.BranchID, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

// ListNonAdmin lista los usuarios cuyo rol no es admin, con nombre de sucursal.
func (r *UserRepo) ListNonAdmin() ([]*entity.User, error) {
	query := `
		SELECT u.id, u.nombre, u.email, u.rol, u.id_sucursal, u.creado_en, s.nombre
		FROM usuarios u
		JOIN sucursales s ON s.id = u.id_sucursal
		WHERE u.rol <> 'admin'
		ORDER BY u.nombre, u.id`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.BranchID,
			&u.CreatedAt, &u.BranchName); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
