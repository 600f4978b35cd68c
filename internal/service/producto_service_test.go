package service_test

import (
	"context"
	"testing"

	"cafe/internal/apierror"
	"cafe/internal/dto"
	"cafe/internal/model"
	"cafe/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func newProductoFixture(t *testing.T) (*stubProductoRepo, service.ProductoService, *model.Categoria, *model.Usuario) {
	t.Helper()
	repo := newStubProductoRepo()
	u := &model.Usuario{ID: uuid.New(), Nombre: "Ana", Email: "ana@cafe.test"}
	cat := &model.Categoria{ID: uuid.New(), Descripcion: "Bebidas", UsuarioID: u.ID}
	repo.usuarios[u.ID] = u
	repo.categorias[cat.ID] = cat
	return repo, service.NewProductoService(repo), cat, u
}

func crearProducto(t *testing.T, svc service.ProductoService, nombre string, cat uuid.UUID, autor uuid.UUID) *dto.ProductoResponse {
	t.Helper()
	resp, err := svc.Crear(context.Background(), dto.ProductoRequest{
		Nombre:      strPtr(nombre),
		PrecioUni:   decPtr("3.75"),
		Descripcion: strPtr("rico"),
		Categoria:   strPtr(cat.String()),
	}, autor)
	require.NoError(t, err)
	return resp
}

func TestProductoCrear_RoundTrip(t *testing.T) {
	_, svc, cat, u := newProductoFixture(t)

	created := crearProducto(t, svc, "Cortado", cat.ID, u.ID)
	assert.True(t, created.Disponible)
	assert.Equal(t, u.ID, created.Usuario)

	got, err := svc.ObtenerPorID(context.Background(), created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Cortado", got.Nombre)
	assert.True(t, decimal.RequireFromString("3.75").Equal(got.PrecioUni))
	assert.Equal(t, "rico", got.Descripcion)
	require.NotNil(t, got.Categoria)
	assert.Equal(t, "Bebidas", got.Categoria.Descripcion)
	require.NotNil(t, got.Usuario)
	assert.Equal(t, "Ana", got.Usuario.Nombre)
}

func TestProductoCrear_MissingRequiredFields(t *testing.T) {
	_, svc, _, _ := newProductoFixture(t)

	_, err := svc.Crear(context.Background(), dto.ProductoRequest{Descripcion: strPtr("sin nombre")}, uuid.New())
	var ve *apierror.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Errors, "nombre")
	assert.Contains(t, ve.Errors, "precioUni")
	assert.Contains(t, ve.Errors, "categoria")
}

func TestProductoCrear_ZeroPriceAccepted(t *testing.T) {
	_, svc, cat, u := newProductoFixture(t)

	resp, err := svc.Crear(context.Background(), dto.ProductoRequest{
		Nombre: strPtr("Agua de cortesía"), PrecioUni: decPtr("0"), Categoria: strPtr(cat.ID.String()),
	}, u.ID)
	require.NoError(t, err)
	assert.True(t, resp.PrecioUni.IsZero())
}

func TestProductoCrear_MalformedCategoria(t *testing.T) {
	_, svc, _, _ := newProductoFixture(t)

	_, err := svc.Crear(context.Background(), dto.ProductoRequest{
		Nombre: strPtr("Latte"), PrecioUni: decPtr("2"), Categoria: strPtr("bebidas"),
	}, uuid.New())
	var ce *apierror.CastError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "categoria", ce.Path)
}

func TestProductoActualizar_WhitelistAndRestamp(t *testing.T) {
	_, svc, cat, u := newProductoFixture(t)
	created := crearProducto(t, svc, "Cortado", cat.ID, u.ID)
	editor := uuid.New()

	updated, err := svc.Actualizar(context.Background(), created.ID.String(), dto.ProductoRequest{
		PrecioUni: decPtr("4.10"),
	}, editor)
	require.NoError(t, err)
	assert.Equal(t, "Cortado", updated.Nombre, "absent fields are left untouched")
	assert.True(t, decimal.RequireFromString("4.10").Equal(updated.PrecioUni))
	assert.Equal(t, editor, updated.Usuario)
	assert.True(t, updated.Disponible)
}

func TestProductoActualizar_NotFound(t *testing.T) {
	_, svc, _, _ := newProductoFixture(t)

	_, err := svc.Actualizar(context.Background(), uuid.NewString(), dto.ProductoRequest{Nombre: strPtr("x")}, uuid.New())
	assert.ErrorIs(t, err, service.ErrNoEncontrado)
}

func TestProductoDesactivar_IdempotentSoftDelete(t *testing.T) {
	_, svc, cat, u := newProductoFixture(t)
	created := crearProducto(t, svc, "Mocha", cat.ID, u.ID)

	first, err := svc.Desactivar(context.Background(), created.ID.String())
	require.NoError(t, err)
	second, err := svc.Desactivar(context.Background(), created.ID.String())
	require.NoError(t, err)

	assert.False(t, first.Disponible)
	assert.Equal(t, first, second)
	expected := *created
	expected.Disponible = false
	assert.Equal(t, expected, *second, "only disponible changes")

	got, err := svc.ObtenerPorID(context.Background(), created.ID.String())
	require.NoError(t, err, "unavailable products stay reachable by id")
	assert.False(t, got.Disponible)
}

func TestProductoListar_ExcludesUnavailable(t *testing.T) {
	_, svc, cat, u := newProductoFixture(t)
	for _, n := range []string{"Té", "Café", "Agua", "Jugo"} {
		crearProducto(t, svc, n, cat.ID, u.ID)
	}
	borrado := crearProducto(t, svc, "Batido", cat.ID, u.ID)
	_, err := svc.Desactivar(context.Background(), borrado.ID.String())
	require.NoError(t, err)

	resp, err := svc.Listar(context.Background(), dto.Paginacion{Desde: 0, Limite: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(4), resp.Total)
	require.Len(t, resp.Productos, 2)
	assert.Equal(t, "Agua", resp.Productos[0].Nombre)
	assert.Equal(t, "Café", resp.Productos[1].Nombre)
	for _, p := range resp.Productos {
		assert.True(t, p.Disponible)
	}
}

func TestProductoBuscar(t *testing.T) {
	_, svc, cat, u := newProductoFixture(t)
	crearProducto(t, svc, "Cafe Americano", cat.ID, u.ID)
	crearProducto(t, svc, "CAFE con leche", cat.ID, u.ID)
	crearProducto(t, svc, "Té", cat.ID, u.ID)

	found, err := svc.Buscar(context.Background(), "cafe")
	require.NoError(t, err)
	require.Len(t, found, 2)
	for _, p := range found {
		require.NotNil(t, p.Categoria)
		assert.Equal(t, cat.ID, p.Categoria.ID)
	}
}
