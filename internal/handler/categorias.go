package handler

import (
	"net/http"

	"cafe/internal/dto"
	"cafe/internal/middleware"
	"cafe/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoriasHandler struct{ svc service.CategoriaService }

func NewCategoriasHandler(svc service.CategoriaService) *CategoriasHandler {
	return &CategoriasHandler{svc: svc}
}

// Listar godoc
// @Summary Lista categorías paginadas
// @Tags categorias
// @Produce json
// @Param desde query int false "Offset" default(0)
// @Param limite query int false "Tamaño de página" default(5)
// @Success 200 {object} dto.CategoriaListResponse
// @Failure 400 {object} apierror.Response
// @Router /categoria [get]
func (h *CategoriasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context(), paginacion(c))
	if err != nil {
		responderError(c, http.StatusBadRequest, err, "")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorID godoc
// @Summary Obtiene una categoría
// @Tags categorias
// @Produce json
// @Param id path string true "ID de la categoría"
// @Success 200 {object} dto.CategoriaEnvelope
// @Failure 400 {object} apierror.Response
// @Router /categoria/{id} [get]
func (h *CategoriasHandler) ObtenerPorID(c *gin.Context) {
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		responderError(c, http.StatusBadRequest, err, "No existe categoría con ese ID.")
		return
	}
	c.JSON(http.StatusOK, dto.CategoriaEnvelope{OK: true, Categoria: *resp})
}

// Crear godoc
// @Summary Crea una categoría
// @Tags categorias
// @Accept json
// @Produce json
// @Security Token
// @Param body body dto.CategoriaRequest true "Categoría"
// @Success 200 {object} dto.CategoriaEnvelope
// @Failure 500 {object} apierror.Response
// @Router /categoria [post]
func (h *CategoriasHandler) Crear(c *gin.Context) {
	var req dto.CategoriaRequest
	if !bindAndValidate(c, "Categoria", &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req, middleware.GetUsuarioID(c))
	if err != nil {
		responderError(c, http.StatusInternalServerError, err, "")
		return
	}
	c.JSON(http.StatusOK, dto.CategoriaEnvelope{OK: true, Categoria: *resp})
}

// Actualizar godoc
// @Summary Actualiza la descripción de una categoría
// @Tags categorias
// @Accept json
// @Produce json
// @Security Token
// @Param id path string true "ID de la categoría"
// @Param body body dto.CategoriaRequest true "Cambios"
// @Success 200 {object} dto.CategoriaEnvelope
// @Failure 400 {object} apierror.Response
// @Router /categoria/{id} [put]
func (h *CategoriasHandler) Actualizar(c *gin.Context) {
	var req dto.CategoriaRequest
	if !bindAndValidate(c, "Categoria", &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), c.Param("id"), req, middleware.GetUsuarioID(c))
	if err != nil {
		responderError(c, http.StatusBadRequest, err, "El id no existe")
		return
	}
	c.JSON(http.StatusOK, dto.CategoriaEnvelope{OK: true, Categoria: *resp})
}

// Eliminar godoc
// @Summary Borra una categoría (requiere ADMIN_ROLE)
// @Tags categorias
// @Produce json
// @Security Token
// @Param id path string true "ID de la categoría"
// @Success 200 {object} dto.CategoriaEnvelope
// @Failure 400 {object} apierror.Response
// @Failure 403 {object} apierror.Response
// @Failure 500 {object} apierror.Response
// @Router /categoria/{id} [delete]
func (h *CategoriasHandler) Eliminar(c *gin.Context) {
	resp, err := h.svc.Eliminar(c.Request.Context(), c.Param("id"))
	if err != nil {
		responderError(c, http.StatusInternalServerError, err, "Categoría no encontrada.")
		return
	}
	c.JSON(http.StatusOK, dto.CategoriaEnvelope{OK: true, Categoria: *resp})
}
