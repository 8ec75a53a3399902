package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin     = "admin"
	RoleVendedor  = "vendedor"
	RoleBodeguero = "bodeguero"
)

// User representa un usuario del sistema, asignado a una sucursal.
// Los usuarios admin se excluyen de los listados generales.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string // bcrypt, nunca en claro después de persistir
	Role         string // admin, vendedor, bodeguero
	BranchID     int64
	CreatedAt    time.Time

	BranchName string
}
