package dto

import "github.com/google/uuid"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CrearUsuarioRequest struct {
	Nombre   string  `json:"nombre"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Img      *string `json:"img"`
	Role     string  `json:"role"`
}

// ActualizarUsuarioRequest is the update whitelist; password and google are
// never writable through it.
type ActualizarUsuarioRequest struct {
	Nombre *string `json:"nombre"`
	Email  *string `json:"email"`
	Img    *string `json:"img"`
	Role   *string `json:"role"`
	Estado *bool   `json:"estado"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UsuarioResponse struct {
	ID     uuid.UUID `json:"id"`
	Nombre string    `json:"nombre"`
	Email  string    `json:"email"`
	Img    *string   `json:"img,omitempty"`
	Role   string    `json:"role"`
	Estado bool      `json:"estado"`
	Google bool      `json:"google"`
}

// UsuarioResumen is the {nombre, email} projection used when populating.
type UsuarioResumen struct {
	ID     uuid.UUID `json:"id"`
	Nombre string    `json:"nombre"`
	Email  string    `json:"email"`
}

type LoginResponse struct {
	OK      bool            `json:"ok"`
	Usuario UsuarioResponse `json:"usuario"`
	Token   string          `json:"token"`
}

type UsuarioEnvelope struct {
	OK      bool            `json:"ok"`
	Usuario UsuarioResponse `json:"usuario"`
}

type UsuarioListResponse struct {
	OK       bool              `json:"ok"`
	Usuarios []UsuarioResponse `json:"usuarios"`
	Cuantos  int64             `json:"cuantos"`
}
