package service_test

import (
	"context"
	"testing"

	"cafe/internal/apierror"
	"cafe/internal/config"
	"cafe/internal/dto"
	"cafe/internal/model"
	"cafe/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSeed = "test_seed_32_chars_minimum_value!"

func newTestCfg() *config.Config {
	return &config.Config{Seed: testSeed, CaducidadTokenHoras: 1, BcryptCost: bcrypt.MinCost}
}

func seedUsuario(t *testing.T, repo *stubUsuarioRepo, email, password, role string, estado bool) *model.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &model.Usuario{
		ID: uuid.New(), Nombre: "Test User", Email: email,
		PasswordHash: string(hash), Role: role, Estado: estado,
	}
	repo.users[u.ID] = u
	return u
}

func TestLogin_Success(t *testing.T) {
	repo := newStubUsuarioRepo()
	u := seedUsuario(t, repo, "admin@cafe.test", "secreto1", model.RolAdmin, true)
	svc := service.NewAuthService(repo, newTestCfg())

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Email: "admin@cafe.test", Password: "secreto1"})
	require.NoError(t, err)
	assert.True(t, resp.OK)
	assert.Equal(t, u.ID, resp.Usuario.ID)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSeed), nil
	})
	require.NoError(t, err)
	assert.Equal(t, u.ID.String(), claims["usuario_id"])
	assert.Equal(t, model.RolAdmin, claims["role"])
}

func TestLogin_Failures(t *testing.T) {
	repo := newStubUsuarioRepo()
	seedUsuario(t, repo, "ana@cafe.test", "secreto1", model.RolUsuario, true)
	seedUsuario(t, repo, "baja@cafe.test", "secreto1", model.RolUsuario, false)
	svc := service.NewAuthService(repo, newTestCfg())

	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "nadie@cafe.test", Password: "secreto1"})
	assert.ErrorIs(t, err, service.ErrEmailIncorrecto)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Email: "ana@cafe.test", Password: "otra"})
	assert.ErrorIs(t, err, service.ErrPasswordIncorrecto)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Email: "baja@cafe.test", Password: "secreto1"})
	assert.ErrorIs(t, err, service.ErrEmailIncorrecto)
}

func TestCrearUsuario_HashesAndDefaultsRole(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := service.NewAuthService(repo, newTestCfg())

	resp, err := svc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		Nombre: "Nuevo", Email: "nuevo@cafe.test", Password: "clave123",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RolUsuario, resp.Role)
	assert.True(t, resp.Estado)

	stored := repo.users[resp.ID]
	require.NotNil(t, stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("clave123")))
}

func TestCrearUsuario_Validation(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := service.NewAuthService(repo, newTestCfg())

	_, err := svc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		Nombre: "X", Email: "x@cafe.test", Role: "SUPER_ROLE",
	})
	var ve *apierror.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "SUPER_ROLE no es un rol válido", ve.Errors["role"].Message)
	assert.Contains(t, ve.Errors, "password")
}

func TestCrearUsuario_DuplicateEmail(t *testing.T) {
	repo := newStubUsuarioRepo()
	seedUsuario(t, repo, "ana@cafe.test", "secreto1", model.RolUsuario, true)
	svc := service.NewAuthService(repo, newTestCfg())

	_, err := svc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		Nombre: "Ana 2", Email: "ana@cafe.test", Password: "clave123",
	})
	var ve *apierror.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "unique", ve.Errors["email"].Kind)
}

func TestListarUsuarios_OnlyActive(t *testing.T) {
	repo := newStubUsuarioRepo()
	seedUsuario(t, repo, "a@cafe.test", "secreto1", model.RolUsuario, true)
	seedUsuario(t, repo, "b@cafe.test", "secreto1", model.RolUsuario, true)
	seedUsuario(t, repo, "c@cafe.test", "secreto1", model.RolUsuario, false)
	svc := service.NewAuthService(repo, newTestCfg())

	resp, err := svc.ListarUsuarios(context.Background(), dto.NuevaPaginacion("", ""))
	require.NoError(t, err)
	assert.Len(t, resp.Usuarios, 2)
	assert.Equal(t, int64(2), resp.Cuantos)
}

func TestActualizarYDesactivarUsuario(t *testing.T) {
	repo := newStubUsuarioRepo()
	u := seedUsuario(t, repo, "ana@cafe.test", "secreto1", model.RolUsuario, true)
	svc := service.NewAuthService(repo, newTestCfg())

	role := model.RolAdmin
	updated, err := svc.ActualizarUsuario(context.Background(), u.ID.String(), dto.ActualizarUsuarioRequest{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, model.RolAdmin, updated.Role)

	bad := "ROOT"
	_, err = svc.ActualizarUsuario(context.Background(), u.ID.String(), dto.ActualizarUsuarioRequest{Role: &bad})
	var ve *apierror.ValidationError
	assert.ErrorAs(t, err, &ve)

	off, err := svc.DesactivarUsuario(context.Background(), u.ID.String())
	require.NoError(t, err)
	assert.False(t, off.Estado)

	_, err = svc.DesactivarUsuario(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, service.ErrNoEncontrado)
}
