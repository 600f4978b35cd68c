package handler

import (
	"errors"
	"net/http"
	"strings"

	"cafe/internal/apierror"
	"cafe/internal/dto"
	"cafe/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// bindAndValidate binds the JSON body and runs go-playground/validator tags.
// Returns false after writing a 400 when either step fails.
func bindAndValidate(c *gin.Context, modelo string, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		var ves validator.ValidationErrors
		if !errors.As(err, &ves) {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return false
		}
		fields := make(map[string]apierror.FieldError, len(ves))
		for _, fe := range ves {
			path := strings.ToLower(fe.Field())
			fields[path] = apierror.FieldError{
				Message: "Path `" + path + "` is required.",
				Kind:    fe.Tag(),
				Path:    path,
			}
		}
		c.JSON(http.StatusBadRequest, apierror.FromError(apierror.NewValidation(modelo, fields)))
		return false
	}
	return true
}

// paginacion reads ?desde&limite.
func paginacion(c *gin.Context) dto.Paginacion {
	return dto.NuevaPaginacion(c.Query("desde"), c.Query("limite"))
}

// responderError writes err with the status chosen by the route. Not-found
// errors use notFound as the message; everything else keeps its own shape.
func responderError(c *gin.Context, status int, err error, notFound string) {
	if errors.Is(err, service.ErrNoEncontrado) {
		c.JSON(http.StatusBadRequest, apierror.New(notFound))
		return
	}
	if status >= http.StatusInternalServerError {
		// logged by middleware.ErrorHandler
		_ = c.Error(err)
	}
	c.JSON(status, apierror.FromError(err))
}
