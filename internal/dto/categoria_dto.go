package dto

import "github.com/google/uuid"

// ── Request DTOs ──────────────────────────────────────────────────────────────

// CategoriaRequest is the whitelist for create and update. Any other body
// field (usuario included) is dropped during binding.
type CategoriaRequest struct {
	Descripcion *string `json:"descripcion"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

// CategoriaResponse is a category with its usuario reference as a bare id.
type CategoriaResponse struct {
	ID          uuid.UUID `json:"id"`
	Descripcion string    `json:"descripcion"`
	Usuario     uuid.UUID `json:"usuario"`
}

// CategoriaConUsuario is a category with usuario populated.
type CategoriaConUsuario struct {
	ID          uuid.UUID       `json:"id"`
	Descripcion string          `json:"descripcion"`
	Usuario     *UsuarioResumen `json:"usuario"`
}

type CategoriaEnvelope struct {
	OK        bool              `json:"ok"`
	Categoria CategoriaResponse `json:"categoria"`
}

type CategoriaListResponse struct {
	OK         bool                  `json:"ok"`
	Total      int64                 `json:"total"`
	Categorias []CategoriaConUsuario `json:"categorias"`
}
