package service

import (
	"context"
	"errors"

	"cafe/internal/dto"
	"cafe/internal/model"
	"cafe/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// CategoriaService defines business operations for product categories.
type CategoriaService interface {
	Listar(ctx context.Context, p dto.Paginacion) (*dto.CategoriaListResponse, error)
	ObtenerPorID(ctx context.Context, id string) (*dto.CategoriaResponse, error)
	Crear(ctx context.Context, req dto.CategoriaRequest, autor uuid.UUID) (*dto.CategoriaResponse, error)
	Actualizar(ctx context.Context, id string, req dto.CategoriaRequest, autor uuid.UUID) (*dto.CategoriaResponse, error)
	Eliminar(ctx context.Context, id string) (*dto.CategoriaResponse, error)
}

type categoriaService struct {
	repo repository.CategoriaRepository
}

func NewCategoriaService(repo repository.CategoriaRepository) CategoriaService {
	return &categoriaService{repo: repo}
}

const modeloCategoria = "Categoria"

// mapCategoria converts a model to a DTO response.
func mapCategoria(c model.Categoria) dto.CategoriaResponse {
	return dto.CategoriaResponse{
		ID:          c.ID,
		Descripcion: c.Descripcion,
		Usuario:     c.UsuarioID,
	}
}

func mapUsuarioResumen(u *model.Usuario) *dto.UsuarioResumen {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResumen{ID: u.ID, Nombre: u.Nombre, Email: u.Email}
}

// Listar fetches the page and the collection total concurrently. Both reads are
// independent, so under concurrent writes total may not match the page.
func (s *categoriaService) Listar(ctx context.Context, p dto.Paginacion) (*dto.CategoriaListResponse, error) {
	var (
		list  []model.Categoria
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		list, err = s.repo.Listar(gctx, p)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.repo.Contar(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]dto.CategoriaConUsuario, 0, len(list))
	for _, c := range list {
		result = append(result, dto.CategoriaConUsuario{
			ID:          c.ID,
			Descripcion: c.Descripcion,
			Usuario:     mapUsuarioResumen(c.Usuario),
		})
	}
	return &dto.CategoriaListResponse{OK: true, Total: total, Categorias: result}, nil
}

func (s *categoriaService) ObtenerPorID(ctx context.Context, id string) (*dto.CategoriaResponse, error) {
	uid, err := parseID(modeloCategoria, "id", id)
	if err != nil {
		return nil, err
	}
	c, err := s.repo.ObtenerPorID(ctx, uid)
	if err != nil {
		return nil, noEncontrado(err)
	}
	resp := mapCategoria(*c)
	return &resp, nil
}

func (s *categoriaService) Crear(ctx context.Context, req dto.CategoriaRequest, autor uuid.UUID) (*dto.CategoriaResponse, error) {
	c := &model.Categoria{UsuarioID: autor}
	if req.Descripcion != nil {
		c.Descripcion = *req.Descripcion
	}
	if err := validarModelo(modeloCategoria, c); err != nil {
		return nil, err
	}
	if err := s.repo.Crear(ctx, c); err != nil {
		return nil, err
	}
	resp := mapCategoria(*c)
	return &resp, nil
}

// Actualizar writes only descripcion from the request; usuario is always the
// caller, whatever the body says.
func (s *categoriaService) Actualizar(ctx context.Context, id string, req dto.CategoriaRequest, autor uuid.UUID) (*dto.CategoriaResponse, error) {
	uid, err := parseID(modeloCategoria, "id", id)
	if err != nil {
		return nil, err
	}
	cambios := map[string]any{"usuario_id": autor}
	if req.Descripcion != nil {
		if err := validarCampo(modeloCategoria, "descripcion", *req.Descripcion, "required"); err != nil {
			return nil, err
		}
		cambios["descripcion"] = *req.Descripcion
	}

	c, err := s.repo.Actualizar(ctx, uid, cambios)
	if err != nil {
		return nil, noEncontrado(err)
	}
	resp := mapCategoria(*c)
	return &resp, nil
}

func (s *categoriaService) Eliminar(ctx context.Context, id string) (*dto.CategoriaResponse, error) {
	uid, err := parseID(modeloCategoria, "id", id)
	if err != nil {
		return nil, err
	}
	c, err := s.repo.Eliminar(ctx, uid)
	if err != nil {
		return nil, noEncontrado(err)
	}
	resp := mapCategoria(*c)
	return &resp, nil
}

// noEncontrado maps the store's not-found error onto ErrNoEncontrado and passes
// every other error through.
func noEncontrado(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNoEncontrado
	}
	return err
}
