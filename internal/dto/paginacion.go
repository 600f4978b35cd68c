package dto

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

const (
	DesdeDefault  = 0
	LimiteDefault = 5
)

func init() {
	// precioUni travels as a JSON number, not a quoted string.
	decimal.MarshalJSONWithoutQuotes = true
}

// Paginacion is the skip/limit window for list endpoints.
// Limite == 0 means no limit; a negative Limite caps at its absolute value.
type Paginacion struct {
	Desde  int
	Limite int
}

// NuevaPaginacion coerces the raw desde/limite query values. Missing values
// take the defaults; non-numeric values coerce to 0.
func NuevaPaginacion(desde, limite string) Paginacion {
	p := Paginacion{Desde: DesdeDefault, Limite: LimiteDefault}
	if desde != "" {
		p.Desde = aEntero(desde)
	}
	if limite != "" {
		p.Limite = aEntero(limite)
	}
	return p
}

// aEntero reads a query value as a base-10 number: leading zeros are not
// octal, exponents and surrounding blanks are accepted, fractions truncate.
// Anything else is 0.
func aEntero(raw string) int {
	f := cast.ToFloat64(strings.TrimSpace(raw))
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
		return 0
	}
	return int(f)
}
