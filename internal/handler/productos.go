package handler

import (
	"net/http"

	"cafe/internal/dto"
	"cafe/internal/middleware"
	"cafe/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductosHandler struct{ svc service.ProductoService }

func NewProductosHandler(svc service.ProductoService) *ProductosHandler {
	return &ProductosHandler{svc: svc}
}

// Listar godoc
// @Summary Lista productos disponibles
// @Tags productos
// @Produce json
// @Security Token
// @Param desde query int false "Offset" default(0)
// @Param limite query int false "Tamaño de página" default(5)
// @Success 200 {object} dto.ProductoListResponse
// @Failure 400 {object} apierror.Response
// @Router /producto [get]
func (h *ProductosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context(), paginacion(c))
	if err != nil {
		responderError(c, http.StatusBadRequest, err, "")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorID godoc
// @Summary Obtiene un producto con categoría y usuario
// @Tags productos
// @Produce json
// @Security Token
// @Param id path string true "ID del producto"
// @Success 200 {object} dto.ProductoDetalleEnvelope
// @Failure 400 {object} apierror.Response
// @Failure 500 {object} apierror.Response
// @Router /producto/{id} [get]
func (h *ProductosHandler) ObtenerPorID(c *gin.Context) {
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		responderError(c, http.StatusInternalServerError, err, "No existe producto con ese ID.")
		return
	}
	c.JSON(http.StatusOK, dto.ProductoDetalleEnvelope{OK: true, Producto: *resp})
}

// Buscar godoc
// @Summary Busca productos por nombre
// @Tags productos
// @Produce json
// @Security Token
// @Param termino path string true "Texto a buscar"
// @Success 200 {object} dto.ProductoBusquedaResponse
// @Failure 500 {object} apierror.Response
// @Router /producto/buscar/{termino} [get]
func (h *ProductosHandler) Buscar(c *gin.Context) {
	productos, err := h.svc.Buscar(c.Request.Context(), c.Param("termino"))
	if err != nil {
		responderError(c, http.StatusInternalServerError, err, "")
		return
	}
	c.JSON(http.StatusOK, dto.ProductoBusquedaResponse{OK: true, Productos: productos})
}

// Crear godoc
// @Summary Crea un producto
// @Tags productos
// @Accept json
// @Produce json
// @Security Token
// @Param body body dto.ProductoRequest true "Producto"
// @Success 200 {object} dto.ProductoEnvelope
// @Failure 500 {object} apierror.Response
// @Router /producto [post]
func (h *ProductosHandler) Crear(c *gin.Context) {
	var req dto.ProductoRequest
	if !bindAndValidate(c, "Producto", &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req, middleware.GetUsuarioID(c))
	if err != nil {
		responderError(c, http.StatusInternalServerError, err, "")
		return
	}
	c.JSON(http.StatusOK, dto.ProductoEnvelope{OK: true, Producto: *resp})
}

// Actualizar godoc
// @Summary Actualiza nombre, precio, descripción o categoría
// @Tags productos
// @Accept json
// @Produce json
// @Security Token
// @Param id path string true "ID del producto"
// @Param body body dto.ProductoRequest true "Cambios"
// @Success 200 {object} dto.ProductoEnvelope
// @Failure 400 {object} apierror.Response
// @Router /producto/{id} [put]
func (h *ProductosHandler) Actualizar(c *gin.Context) {
	var req dto.ProductoRequest
	if !bindAndValidate(c, "Producto", &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), c.Param("id"), req, middleware.GetUsuarioID(c))
	if err != nil {
		responderError(c, http.StatusBadRequest, err, "El id no existe.")
		return
	}
	c.JSON(http.StatusOK, dto.ProductoEnvelope{OK: true, Producto: *resp})
}

// Desactivar godoc
// @Summary Marca un producto como no disponible
// @Tags productos
// @Produce json
// @Security Token
// @Param id path string true "ID del producto"
// @Success 200 {object} dto.ProductoEnvelope
// @Failure 400 {object} apierror.Response
// @Failure 500 {object} apierror.Response
// @Router /producto/{id} [delete]
func (h *ProductosHandler) Desactivar(c *gin.Context) {
	resp, err := h.svc.Desactivar(c.Request.Context(), c.Param("id"))
	if err != nil {
		responderError(c, http.StatusInternalServerError, err, "El id no existe.")
		return
	}
	c.JSON(http.StatusOK, dto.ProductoEnvelope{OK: true, Producto: *resp, Message: "Producto borrado."})
}
