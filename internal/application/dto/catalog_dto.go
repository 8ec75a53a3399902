package dto

import "time"

// CreateBranchRequest body para POST /sucursales.
type CreateBranchRequest struct {
	Nombre string `json:"nombre" validate:"required"`
}

// BranchResponse representación de una sucursal en respuestas.
type BranchResponse struct {
	ID       int64     `json:"id"`
	Nombre   string    `json:"nombre"`
	CreadoEn time.Time `json:"creado_en"`
}

// CreateProductRequest body para POST /productos.
type CreateProductRequest struct {
	Nombre string `json:"nombre" validate:"required"`
}

// ProductResponse representación de un producto en respuestas.
type ProductResponse struct {
	ID       int64     `json:"id"`
	Nombre   string    `json:"nombre"`
	CreadoEn time.Time `json:"creado_en"`
}
