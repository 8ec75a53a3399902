package entity

import "time"

// Product representa un producto a nivel de variante (el id referencia la
// variante concreta que se almacena y se mueve entre sucursales).
type Product struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
