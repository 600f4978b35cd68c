package repository

import (
	"context"
	"strings"

	"cafe/internal/dto"
	"cafe/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductoRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	// List returns one page of available products sorted by nombre, with
	// Categoria {descripcion, usuario} and Usuario {nombre, email} populated.
	List(ctx context.Context, p dto.Paginacion) ([]model.Producto, error)
	CountDisponibles(ctx context.Context) (int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error)
	// Search matches nombre case-insensitively against the literal termino.
	Search(ctx context.Context, termino string) ([]model.Producto, error)
	Update(ctx context.Context, id uuid.UUID, cambios map[string]any) (*model.Producto, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (*model.Producto, error)
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

var columnasListado = []string{
	"id", "nombre", "precio_uni", "descripcion", "disponible", "categoria_id", "usuario_id",
}

// likeEscaper neutralizes LIKE wildcards so the term is matched literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) List(ctx context.Context, p dto.Paginacion) ([]model.Producto, error) {
	var productos []model.Producto
	q := r.db.WithContext(ctx).
		Select(columnasListado).
		Where("disponible = ?", true).
		Preload("Categoria", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "descripcion", "usuario_id")
		}).
		Preload("Usuario", seleccionarUsuarioResumen).
		Order("nombre asc")
	err := paginar(q, p).Find(&productos).Error
	return productos, err
}

func (r *productoRepo) CountDisponibles(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Producto{}).Where("disponible = ?", true).Count(&total).Error
	return total, err
}

func (r *productoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).
		Preload("Categoria", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "descripcion", "usuario_id")
		}).
		Preload("Usuario", seleccionarUsuarioResumen).
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) Search(ctx context.Context, termino string) ([]model.Producto, error) {
	var productos []model.Producto
	patron := "%" + likeEscaper.Replace(strings.ToLower(termino)) + "%"
	err := r.db.WithContext(ctx).
		Where(`LOWER(nombre) LIKE ? ESCAPE '\'`, patron).
		Preload("Categoria", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id")
		}).
		Find(&productos).Error
	return productos, err
}

func (r *productoRepo) Update(ctx context.Context, id uuid.UUID, cambios map[string]any) (*model.Producto, error) {
	return actualizarPorID[model.Producto](ctx, r.db, id, cambios)
}

func (r *productoRepo) SoftDelete(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	return actualizarPorID[model.Producto](ctx, r.db, id, map[string]any{"disponible": false})
}
