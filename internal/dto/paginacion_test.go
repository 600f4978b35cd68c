package dto

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNuevaPaginacion(t *testing.T) {
	cases := []struct {
		name          string
		desde, limite string
		want          Paginacion
	}{
		{"defaults", "", "", Paginacion{Desde: 0, Limite: 5}},
		{"explicit", "10", "3", Paginacion{Desde: 10, Limite: 3}},
		{"non-numeric desde", "abc", "", Paginacion{Desde: 0, Limite: 5}},
		{"non-numeric limite", "", "xyz", Paginacion{Desde: 0, Limite: 0}},
		{"leading zero is decimal", "010", "", Paginacion{Desde: 10, Limite: 5}},
		{"leading zero with 8", "08", "09", Paginacion{Desde: 8, Limite: 9}},
		{"exponent", "1e1", "", Paginacion{Desde: 10, Limite: 5}},
		{"surrounding blanks", " 5 ", "", Paginacion{Desde: 5, Limite: 5}},
		{"fraction truncates", "2.9", "", Paginacion{Desde: 2, Limite: 5}},
		{"negative limite kept", "", "-3", Paginacion{Desde: 0, Limite: -3}},
		{"infinity", "Infinity", "", Paginacion{Desde: 0, Limite: 5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NuevaPaginacion(tc.desde, tc.limite))
		})
	}
}

func TestPrecioUni_IsJSONNumber(t *testing.T) {
	b, err := json.Marshal(ProductoResponse{PrecioUni: decimal.RequireFromString("12.5")})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"precioUni":12.5`)
}
