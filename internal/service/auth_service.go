package service

import (
	"context"
	"errors"
	"time"

	"cafe/internal/apierror"
	"cafe/internal/config"
	"cafe/internal/dto"
	"cafe/internal/model"
	"cafe/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailIncorrecto    = errors.New("(Usuario) o contraseña incorrectos")
	ErrPasswordIncorrecto = errors.New("Usuario o (contraseña) incorrectos")
)

const modeloUsuario = "Usuario"

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error)
	ListarUsuarios(ctx context.Context, p dto.Paginacion) (*dto.UsuarioListResponse, error)
	ActualizarUsuario(ctx context.Context, id string, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error)
	DesactivarUsuario(ctx context.Context, id string) (*dto.UsuarioResponse, error)
}

type authService struct {
	repo repository.UsuarioRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.UsuarioRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func mapUsuario(u model.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID: u.ID, Nombre: u.Nombre, Email: u.Email, Img: u.Img,
		Role: u.Role, Estado: u.Estado, Google: u.Google,
	}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmailIncorrecto
		}
		return nil, err
	}
	if !user.Estado {
		return nil, ErrEmailIncorrecto
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrPasswordIncorrecto
	}

	token, err := s.generateToken(user, time.Duration(s.cfg.CaducidadTokenHoras)*time.Hour)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{OK: true, Usuario: mapUsuario(*user), Token: token}, nil
}

func (s *authService) CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	role := req.Role
	if role == "" {
		role = model.RolUsuario
	}
	user := &model.Usuario{
		Nombre: req.Nombre,
		Email:  req.Email,
		Img:    req.Img,
		Role:   role,
		Estado: true,
	}
	err := validarModelo(modeloUsuario, user)
	if req.Password == "" {
		err = conRequerido(err, modeloUsuario, "password")
	}
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost())
	if err != nil {
		return nil, err
	}
	user.PasswordHash = string(hash)

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, emailDuplicado(err)
	}
	resp := mapUsuario(*user)
	return &resp, nil
}

func (s *authService) ListarUsuarios(ctx context.Context, p dto.Paginacion) (*dto.UsuarioListResponse, error) {
	users, err := s.repo.List(ctx, p)
	if err != nil {
		return nil, err
	}
	cuantos, err := s.repo.CountActivos(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UsuarioResponse, len(users))
	for i, u := range users {
		resp[i] = mapUsuario(u)
	}
	return &dto.UsuarioListResponse{OK: true, Usuarios: resp, Cuantos: cuantos}, nil
}

func (s *authService) ActualizarUsuario(ctx context.Context, id string, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	uid, err := parseID(modeloUsuario, "id", id)
	if err != nil {
		return nil, err
	}
	cambios := map[string]any{}
	if req.Nombre != nil {
		if err := validarCampo(modeloUsuario, "nombre", *req.Nombre, "required"); err != nil {
			return nil, err
		}
		cambios["nombre"] = *req.Nombre
	}
	if req.Email != nil {
		if err := validarCampo(modeloUsuario, "email", *req.Email, "required,email"); err != nil {
			return nil, err
		}
		cambios["email"] = *req.Email
	}
	if req.Img != nil {
		cambios["img"] = *req.Img
	}
	if req.Role != nil {
		if err := validarCampo(modeloUsuario, "role", *req.Role, "oneof=ADMIN_ROLE USER_ROLE"); err != nil {
			return nil, err
		}
		cambios["role"] = *req.Role
	}
	if req.Estado != nil {
		cambios["estado"] = *req.Estado
	}

	var user *model.Usuario
	if len(cambios) == 0 {
		user, err = s.repo.FindByID(ctx, uid)
	} else {
		user, err = s.repo.Update(ctx, uid, cambios)
	}
	if err != nil {
		return nil, emailDuplicado(noEncontrado(err))
	}
	resp := mapUsuario(*user)
	return &resp, nil
}

func (s *authService) DesactivarUsuario(ctx context.Context, id string) (*dto.UsuarioResponse, error) {
	uid, err := parseID(modeloUsuario, "id", id)
	if err != nil {
		return nil, err
	}
	user, err := s.repo.SoftDelete(ctx, uid)
	if err != nil {
		return nil, noEncontrado(err)
	}
	resp := mapUsuario(*user)
	return &resp, nil
}

func (s *authService) bcryptCost() int {
	if s.cfg.BcryptCost < bcrypt.MinCost {
		return bcrypt.DefaultCost
	}
	return s.cfg.BcryptCost
}

func (s *authService) generateToken(user *model.Usuario, duration time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"usuario_id": user.ID.String(),
		"nombre":     user.Nombre,
		"email":      user.Email,
		"role":       user.Role,
		"exp":        now.Add(duration).Unix(),
		"iat":        now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Seed))
}

// emailDuplicado turns a unique-index violation into the validation error the
// client sees for a taken email.
func emailDuplicado(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apierror.NewValidation(modeloUsuario, map[string]apierror.FieldError{
			"email": {Message: "email debe de ser único", Kind: "unique", Path: "email"},
		})
	}
	return err
}
