package entity

import "time"

// Session es una sesión de autenticación con token opaco almacenado en el
// servidor. Revocable: borrar la fila invalida el token de inmediato.
type Session struct {
	Token     string
	UserID    int64
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired indica si la sesión ya venció en el instante now.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
