package entity

import "time"

// Branch representa una sucursal del negocio. Las filas de inventario,
// movimientos, cajas y usuarios la referencian; una vez referenciada no se
// modifica desde estos flujos.
type Branch struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
