package service_test

import (
	"context"
	"sort"
	"strings"

	"cafe/internal/dto"
	"cafe/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── In-memory repository stubs ────────────────────────────────────────────────

func ventana[T any](items []T, p dto.Paginacion) []T {
	if p.Desde > 0 {
		if p.Desde >= len(items) {
			return nil
		}
		items = items[p.Desde:]
	}
	limite := p.Limite
	if limite < 0 {
		limite = -limite
	}
	if limite > 0 && limite < len(items) {
		items = items[:limite]
	}
	return items
}

type stubCategoriaRepo struct {
	categorias map[uuid.UUID]*model.Categoria
	usuarios   map[uuid.UUID]*model.Usuario
	err        error
}

func newStubCategoriaRepo() *stubCategoriaRepo {
	return &stubCategoriaRepo{
		categorias: make(map[uuid.UUID]*model.Categoria),
		usuarios:   make(map[uuid.UUID]*model.Usuario),
	}
}

func (r *stubCategoriaRepo) Crear(_ context.Context, c *model.Categoria) error {
	if r.err != nil {
		return r.err
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	cp := *c
	r.categorias[c.ID] = &cp
	return nil
}

func (r *stubCategoriaRepo) Listar(_ context.Context, p dto.Paginacion) ([]model.Categoria, error) {
	if r.err != nil {
		return nil, r.err
	}
	list := make([]model.Categoria, 0, len(r.categorias))
	for _, c := range r.categorias {
		cp := *c
		cp.Usuario = r.usuarios[c.UsuarioID]
		list = append(list, cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Descripcion < list[j].Descripcion })
	return ventana(list, p), nil
}

func (r *stubCategoriaRepo) Contar(_ context.Context) (int64, error) {
	return int64(len(r.categorias)), r.err
}

func (r *stubCategoriaRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Categoria, error) {
	c, ok := r.categorias[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *stubCategoriaRepo) Actualizar(_ context.Context, id uuid.UUID, cambios map[string]any) (*model.Categoria, error) {
	c, ok := r.categorias[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if v, ok := cambios["descripcion"]; ok {
		c.Descripcion = v.(string)
	}
	if v, ok := cambios["usuario_id"]; ok {
		c.UsuarioID = v.(uuid.UUID)
	}
	cp := *c
	return &cp, nil
}

func (r *stubCategoriaRepo) Eliminar(_ context.Context, id uuid.UUID) (*model.Categoria, error) {
	c, ok := r.categorias[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	delete(r.categorias, id)
	return c, nil
}

type stubProductoRepo struct {
	productos  map[uuid.UUID]*model.Producto
	categorias map[uuid.UUID]*model.Categoria
	usuarios   map[uuid.UUID]*model.Usuario
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{
		productos:  make(map[uuid.UUID]*model.Producto),
		categorias: make(map[uuid.UUID]*model.Categoria),
		usuarios:   make(map[uuid.UUID]*model.Usuario),
	}
}

func (r *stubProductoRepo) poblar(p model.Producto) model.Producto {
	p.Categoria = r.categorias[p.CategoriaID]
	p.Usuario = r.usuarios[p.UsuarioID]
	return p
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cp := *p
	r.productos[p.ID] = &cp
	return nil
}

func (r *stubProductoRepo) List(_ context.Context, p dto.Paginacion) ([]model.Producto, error) {
	var list []model.Producto
	for _, pr := range r.productos {
		if pr.Disponible {
			list = append(list, r.poblar(*pr))
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Nombre < list[j].Nombre })
	return ventana(list, p), nil
}

func (r *stubProductoRepo) CountDisponibles(_ context.Context) (int64, error) {
	var n int64
	for _, pr := range r.productos {
		if pr.Disponible {
			n++
		}
	}
	return n, nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := r.poblar(*p)
	return &out, nil
}

func (r *stubProductoRepo) Search(_ context.Context, termino string) ([]model.Producto, error) {
	var out []model.Producto
	for _, p := range r.productos {
		if strings.Contains(strings.ToLower(p.Nombre), strings.ToLower(termino)) {
			cp := *p
			if _, ok := r.categorias[p.CategoriaID]; ok {
				cp.Categoria = &model.Categoria{ID: p.CategoriaID}
			}
			out = append(out, cp)
		}
	}
	return out, nil
}

func (r *stubProductoRepo) Update(_ context.Context, id uuid.UUID, cambios map[string]any) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	for k, v := range cambios {
		switch k {
		case "nombre":
			p.Nombre = v.(string)
		case "precio_uni":
			p.PrecioUni = v.(decimal.Decimal)
		case "descripcion":
			p.Descripcion = v.(string)
		case "categoria_id":
			p.CategoriaID = v.(uuid.UUID)
		case "usuario_id":
			p.UsuarioID = v.(uuid.UUID)
		case "disponible":
			p.Disponible = v.(bool)
		}
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductoRepo) SoftDelete(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	return r.Update(ctx, id, map[string]any{"disponible": false})
}

type stubUsuarioRepo struct {
	users map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{users: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return gorm.ErrDuplicatedKey
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *stubUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *stubUsuarioRepo) List(_ context.Context, p dto.Paginacion) ([]model.Usuario, error) {
	var list []model.Usuario
	for _, u := range r.users {
		if u.Estado {
			list = append(list, *u)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Nombre < list[j].Nombre })
	return ventana(list, p), nil
}

func (r *stubUsuarioRepo) CountActivos(_ context.Context) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.Estado {
			n++
		}
	}
	return n, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, id uuid.UUID, cambios map[string]any) (*model.Usuario, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	for k, v := range cambios {
		switch k {
		case "nombre":
			u.Nombre = v.(string)
		case "email":
			u.Email = v.(string)
		case "role":
			u.Role = v.(string)
		case "estado":
			u.Estado = v.(bool)
		}
	}
	cp := *u
	return &cp, nil
}

func (r *stubUsuarioRepo) SoftDelete(ctx context.Context, id uuid.UUID) (*model.Usuario, error) {
	return r.Update(ctx, id, map[string]any{"estado": false})
}
