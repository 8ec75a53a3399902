package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/puntoclave/retail-api/internal/domain/entity"
	"github.com/puntoclave/retail-api/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo implementación del puerto SessionRepository sobre PostgreSQL.
type SessionRepo struct {
	pool *pgxpool.Pool
}

// NewSessionRepository construye el adaptador de persistencia para sesiones.
func NewSessionRepository(pool *pgxpool.Pool) *SessionRepo {
	return &SessionRepo{pool: pool}
}

// Create persiste una sesión nueva.
func (r *SessionRepo) Create(session *entity.Session) error {
	query := `
		INSERT INTO sesiones (token, id_usuario, creada_en, expira_en)
		VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(context.Background(), query,
		session.Token, session.UserID, session.CreatedAt, session.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// Resolve devuelve la sesión y su usuario para un token, o nil, nil si no existe.
func (r *SessionRepo) Resolve(token string) (*entity.Session, *entity.User, error) {
	query := `
		SELECT se.token, se.id_usuario, se.creada_en, se.expira_en,
		       u.id, u.nombre, u.email, u.rol, u.id_sucursal, u.creado_en
		FROM sesiones se
		JOIN usuarios u ON u.id = se.id_usuario
		WHERE se.token = $1`
	var s entity.Session
	var u entity.User
	err := r.pool.QueryRow(context.Background(), query, token).Scan(
		&s.Token, &s.UserID, &s.CreatedAt, &s.ExpiresAt,
		&u.ID, &u.Name, &u.Email, &u.Role, &u.BranchID, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("resolve session: %w", err)
	}
	return &s, &u, nil
}

// Delete revoca una sesión. Borrar un token inexistente no es error.
func (r *SessionRepo) Delete(token string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM sesiones WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
