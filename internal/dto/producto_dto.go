package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ProductoRequest is the whitelist shared by create and update. Pointers
// distinguish an absent field from a zero value.
type ProductoRequest struct {
	Nombre      *string          `json:"nombre"`
	PrecioUni   *decimal.Decimal `json:"precioUni"`
	Descripcion *string          `json:"descripcion"`
	Categoria   *string          `json:"categoria"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// ProductoResponse is a product with both references as bare ids.
type ProductoResponse struct {
	ID          uuid.UUID       `json:"id"`
	Nombre      string          `json:"nombre"`
	PrecioUni   decimal.Decimal `json:"precioUni"`
	Descripcion string          `json:"descripcion"`
	Disponible  bool            `json:"disponible"`
	Categoria   uuid.UUID       `json:"categoria"`
	Usuario     uuid.UUID       `json:"usuario"`
}

// CategoriaResumen is the {descripcion, usuario} projection of a category.
type CategoriaResumen struct {
	ID          uuid.UUID `json:"id"`
	Descripcion string    `json:"descripcion"`
	Usuario     uuid.UUID `json:"usuario"`
}

// CategoriaRef is a category projected on a field it does not have (nombre),
// leaving only its id.
type CategoriaRef struct {
	ID uuid.UUID `json:"id"`
}

// ProductoDetalle is a product with categoria and usuario populated.
type ProductoDetalle struct {
	ID          uuid.UUID         `json:"id"`
	Nombre      string            `json:"nombre"`
	PrecioUni   decimal.Decimal   `json:"precioUni"`
	Descripcion string            `json:"descripcion"`
	Disponible  bool              `json:"disponible"`
	Categoria   *CategoriaResumen `json:"categoria"`
	Usuario     *UsuarioResumen   `json:"usuario"`
}

// ProductoBusqueda is a search hit: categoria populated, usuario as id.
type ProductoBusqueda struct {
	ID          uuid.UUID       `json:"id"`
	Nombre      string          `json:"nombre"`
	PrecioUni   decimal.Decimal `json:"precioUni"`
	Descripcion string          `json:"descripcion"`
	Disponible  bool            `json:"disponible"`
	Categoria   *CategoriaRef   `json:"categoria"`
	Usuario     uuid.UUID       `json:"usuario"`
}

type ProductoEnvelope struct {
	OK       bool             `json:"ok"`
	Producto ProductoResponse `json:"producto"`
	Message  string           `json:"message,omitempty"`
}

type ProductoDetalleEnvelope struct {
	OK       bool            `json:"ok"`
	Producto ProductoDetalle `json:"producto"`
}

type ProductoListResponse struct {
	OK        bool              `json:"ok"`
	Total     int64             `json:"total"`
	Productos []ProductoDetalle `json:"productos"`
}

type ProductoBusquedaResponse struct {
	OK        bool               `json:"ok"`
	Productos []ProductoBusqueda `json:"productos"`
}
