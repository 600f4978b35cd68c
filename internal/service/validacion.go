package service

import (
	"errors"
	"fmt"
	"strings"

	"cafe/internal/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrNoEncontrado is returned when the id in the request does not resolve to a
// document. Handlers choose the status code and message per route.
var ErrNoEncontrado = errors.New("documento no encontrado")

var validate = validator.New()

// Field names that differ from the lower-camel form of the Go field.
var pathOverrides = map[string]string{
	"CategoriaID":  "categoria",
	"UsuarioID":    "usuario",
	"PasswordHash": "password",
	"PrecioUni":    "precioUni",
}

func pathDe(field string) string {
	if p, ok := pathOverrides[field]; ok {
		return p
	}
	return strings.ToLower(field[:1]) + field[1:]
}

func mensajeDe(path, tag string, value any) string {
	switch tag {
	case "required":
		return fmt.Sprintf("Path `%s` is required.", path)
	case "oneof":
		return fmt.Sprintf("%v no es un rol válido", value)
	default:
		return fmt.Sprintf("Path `%s` is invalid (%v).", path, value)
	}
}

// validarModelo runs the struct tags of a model and converts failures into an
// apierror.ValidationError keyed by JSON path.
func validarModelo(modelo string, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}
	fields := make(map[string]apierror.FieldError, len(ves))
	for _, fe := range ves {
		path := pathDe(fe.StructField())
		fields[path] = apierror.FieldError{
			Message: mensajeDe(path, fe.Tag(), fe.Value()),
			Kind:    fe.Tag(),
			Path:    path,
		}
	}
	return apierror.NewValidation(modelo, fields)
}

// validarCampo validates a single value being written by an update.
func validarCampo(modelo, path string, value any, tag string) error {
	if err := validate.Var(value, tag); err != nil {
		kind := tag
		var ves validator.ValidationErrors
		if errors.As(err, &ves) && len(ves) > 0 {
			kind = ves[0].Tag()
		}
		return apierror.NewValidation(modelo, map[string]apierror.FieldError{
			path: {Message: mensajeDe(path, kind, value), Kind: kind, Path: path},
		})
	}
	return nil
}

// conRequerido adds a missing-field error for path to err, which is either nil
// or the ValidationError returned by validarModelo.
func conRequerido(err error, modelo, path string) error {
	fields := map[string]apierror.FieldError{}
	var ve *apierror.ValidationError
	if errors.As(err, &ve) {
		for k, v := range ve.Errors {
			fields[k] = v
		}
	} else if err != nil {
		return err
	}
	fields[path] = apierror.FieldError{Message: mensajeDe(path, "required", nil), Kind: "required", Path: path}
	return apierror.NewValidation(modelo, fields)
}

// parseID converts a path/body id into a uuid, reporting a CastError the way
// the store would for a malformed reference.
func parseID(modelo, path, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apierror.NewCast(modelo, path, raw)
	}
	return id, nil
}
