package service

import (
	"context"

	"cafe/internal/dto"
	"cafe/internal/model"
	"cafe/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ProductoService defines the business logic contract for products.
type ProductoService interface {
	Listar(ctx context.Context, p dto.Paginacion) (*dto.ProductoListResponse, error)
	ObtenerPorID(ctx context.Context, id string) (*dto.ProductoDetalle, error)
	Buscar(ctx context.Context, termino string) ([]dto.ProductoBusqueda, error)
	Crear(ctx context.Context, req dto.ProductoRequest, autor uuid.UUID) (*dto.ProductoResponse, error)
	Actualizar(ctx context.Context, id string, req dto.ProductoRequest, autor uuid.UUID) (*dto.ProductoResponse, error)
	// Desactivar is the soft delete: disponible=false, every other field kept.
	// Repeating it on an unavailable product succeeds.
	Desactivar(ctx context.Context, id string) (*dto.ProductoResponse, error)
}

type productoService struct {
	repo repository.ProductoRepository
}

func NewProductoService(repo repository.ProductoRepository) ProductoService {
	return &productoService{repo: repo}
}

const modeloProducto = "Producto"

func mapProducto(p model.Producto) dto.ProductoResponse {
	return dto.ProductoResponse{
		ID:          p.ID,
		Nombre:      p.Nombre,
		PrecioUni:   p.PrecioUni,
		Descripcion: p.Descripcion,
		Disponible:  p.Disponible,
		Categoria:   p.CategoriaID,
		Usuario:     p.UsuarioID,
	}
}

func mapProductoDetalle(p model.Producto) dto.ProductoDetalle {
	d := dto.ProductoDetalle{
		ID:          p.ID,
		Nombre:      p.Nombre,
		PrecioUni:   p.PrecioUni,
		Descripcion: p.Descripcion,
		Disponible:  p.Disponible,
		Usuario:     mapUsuarioResumen(p.Usuario),
	}
	if p.Categoria != nil {
		d.Categoria = &dto.CategoriaResumen{
			ID:          p.Categoria.ID,
			Descripcion: p.Categoria.Descripcion,
			Usuario:     p.Categoria.UsuarioID,
		}
	}
	return d
}

func (s *productoService) Listar(ctx context.Context, p dto.Paginacion) (*dto.ProductoListResponse, error) {
	var (
		productos []model.Producto
		total     int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		productos, err = s.repo.List(gctx, p)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.repo.CountDisponibles(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	data := make([]dto.ProductoDetalle, 0, len(productos))
	for _, pr := range productos {
		data = append(data, mapProductoDetalle(pr))
	}
	return &dto.ProductoListResponse{OK: true, Total: total, Productos: data}, nil
}

func (s *productoService) ObtenerPorID(ctx context.Context, id string) (*dto.ProductoDetalle, error) {
	uid, err := parseID(modeloProducto, "id", id)
	if err != nil {
		return nil, err
	}
	p, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return nil, noEncontrado(err)
	}
	d := mapProductoDetalle(*p)
	return &d, nil
}

func (s *productoService) Buscar(ctx context.Context, termino string) ([]dto.ProductoBusqueda, error) {
	productos, err := s.repo.Search(ctx, termino)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoBusqueda, 0, len(productos))
	for _, p := range productos {
		b := dto.ProductoBusqueda{
			ID:          p.ID,
			Nombre:      p.Nombre,
			PrecioUni:   p.PrecioUni,
			Descripcion: p.Descripcion,
			Disponible:  p.Disponible,
			Usuario:     p.UsuarioID,
		}
		if p.Categoria != nil {
			b.Categoria = &dto.CategoriaRef{ID: p.Categoria.ID}
		}
		out = append(out, b)
	}
	return out, nil
}

func (s *productoService) Crear(ctx context.Context, req dto.ProductoRequest, autor uuid.UUID) (*dto.ProductoResponse, error) {
	p := &model.Producto{UsuarioID: autor, Disponible: true}
	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		p.Descripcion = *req.Descripcion
	}
	if req.Categoria != nil && *req.Categoria != "" {
		cid, err := parseID(modeloProducto, "categoria", *req.Categoria)
		if err != nil {
			return nil, err
		}
		p.CategoriaID = cid
	}
	err := validarModelo(modeloProducto, p)
	if req.PrecioUni == nil {
		err = conRequerido(err, modeloProducto, "precioUni")
	} else {
		p.PrecioUni = *req.PrecioUni
	}
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	resp := mapProducto(*p)
	return &resp, nil
}

// Actualizar writes the whitelisted fields present in the request and
// re-stamps usuario with the caller.
func (s *productoService) Actualizar(ctx context.Context, id string, req dto.ProductoRequest, autor uuid.UUID) (*dto.ProductoResponse, error) {
	uid, err := parseID(modeloProducto, "id", id)
	if err != nil {
		return nil, err
	}
	cambios := map[string]any{"usuario_id": autor}
	if req.Nombre != nil {
		if err := validarCampo(modeloProducto, "nombre", *req.Nombre, "required"); err != nil {
			return nil, err
		}
		cambios["nombre"] = *req.Nombre
	}
	if req.PrecioUni != nil {
		cambios["precio_uni"] = *req.PrecioUni
	}
	if req.Descripcion != nil {
		cambios["descripcion"] = *req.Descripcion
	}
	if req.Categoria != nil {
		cid, err := parseID(modeloProducto, "categoria", *req.Categoria)
		if err != nil {
			return nil, err
		}
		cambios["categoria_id"] = cid
	}

	p, err := s.repo.Update(ctx, uid, cambios)
	if err != nil {
		return nil, noEncontrado(err)
	}
	resp := mapProducto(*p)
	return &resp, nil
}

func (s *productoService) Desactivar(ctx context.Context, id string) (*dto.ProductoResponse, error) {
	uid, err := parseID(modeloProducto, "id", id)
	if err != nil {
		return nil, err
	}
	p, err := s.repo.SoftDelete(ctx, uid)
	if err != nil {
		return nil, noEncontrado(err)
	}
	resp := mapProducto(*p)
	return &resp, nil
}
