package handler

import (
	"net/http"

	"cafe/internal/dto"
	"cafe/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary Login de usuario
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} apierror.Response
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, "Usuario", &req) {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		responderError(c, http.StatusBadRequest, err, "")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ── Usuarios Handler ─────────────────────────────────────────────────────────

type UsuariosHandler struct{ svc service.AuthService }

func NewUsuariosHandler(svc service.AuthService) *UsuariosHandler {
	return &UsuariosHandler{svc: svc}
}

// Listar godoc
// @Summary Lista usuarios activos
// @Tags usuarios
// @Produce json
// @Security Token
// @Param desde query int false "Offset" default(0)
// @Param limite query int false "Tamaño de página" default(5)
// @Success 200 {object} dto.UsuarioListResponse
// @Failure 400 {object} apierror.Response
// @Router /usuario [get]
func (h *UsuariosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.ListarUsuarios(c.Request.Context(), paginacion(c))
	if err != nil {
		responderError(c, http.StatusBadRequest, err, "")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear godoc
// @Summary Crea un usuario (requiere ADMIN_ROLE)
// @Tags usuarios
// @Accept json
// @Produce json
// @Security Token
// @Param body body dto.CrearUsuarioRequest true "Usuario"
// @Success 200 {object} dto.UsuarioEnvelope
// @Failure 400 {object} apierror.Response
// @Failure 403 {object} apierror.Response
// @Router /usuario [post]
func (h *UsuariosHandler) Crear(c *gin.Context) {
	var req dto.CrearUsuarioRequest
	if !bindAndValidate(c, "Usuario", &req) {
		return
	}
	resp, err := h.svc.CrearUsuario(c.Request.Context(), req)
	if err != nil {
		responderError(c, http.StatusBadRequest, err, "")
		return
	}
	c.JSON(http.StatusOK, dto.UsuarioEnvelope{OK: true, Usuario: *resp})
}

// Actualizar godoc
// @Summary Actualiza un usuario (requiere ADMIN_ROLE)
// @Tags usuarios
// @Accept json
// @Produce json
// @Security Token
// @Param id path string true "ID del usuario"
// @Param body body dto.ActualizarUsuarioRequest true "Cambios"
// @Success 200 {object} dto.UsuarioEnvelope
// @Failure 400 {object} apierror.Response
// @Failure 403 {object} apierror.Response
// @Router /usuario/{id} [put]
func (h *UsuariosHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarUsuarioRequest
	if !bindAndValidate(c, "Usuario", &req) {
		return
	}
	resp, err := h.svc.ActualizarUsuario(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		responderError(c, http.StatusBadRequest, err, "Usuario no encontrado.")
		return
	}
	c.JSON(http.StatusOK, dto.UsuarioEnvelope{OK: true, Usuario: *resp})
}

// Desactivar godoc
// @Summary Desactiva un usuario (estado=false, requiere ADMIN_ROLE)
// @Tags usuarios
// @Produce json
// @Security Token
// @Param id path string true "ID del usuario"
// @Success 200 {object} dto.UsuarioEnvelope
// @Failure 400 {object} apierror.Response
// @Failure 403 {object} apierror.Response
// @Router /usuario/{id} [delete]
func (h *UsuariosHandler) Desactivar(c *gin.Context) {
	resp, err := h.svc.DesactivarUsuario(c.Request.Context(), c.Param("id"))
	if err != nil {
		responderError(c, http.StatusBadRequest, err, "Usuario no encontrado.")
		return
	}
	c.JSON(http.StatusOK, dto.UsuarioEnvelope{OK: true, Usuario: *resp})
}
