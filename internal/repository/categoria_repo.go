package repository

import (
	"context"

	"cafe/internal/dto"
	"cafe/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoriaRepository defines CRUD operations for Categoria.
type CategoriaRepository interface {
	Crear(ctx context.Context, c *model.Categoria) error
	// Listar returns one page sorted by descripcion with Usuario populated.
	Listar(ctx context.Context, p dto.Paginacion) ([]model.Categoria, error)
	Contar(ctx context.Context) (int64, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Categoria, error)
	Actualizar(ctx context.Context, id uuid.UUID, cambios map[string]any) (*model.Categoria, error)
	// Eliminar physically removes the row and returns it as it was.
	Eliminar(ctx context.Context, id uuid.UUID) (*model.Categoria, error)
}

type categoriaRepository struct{ db *gorm.DB }

func NewCategoriaRepository(db *gorm.DB) CategoriaRepository {
	return &categoriaRepository{db: db}
}

func (r *categoriaRepository) Crear(ctx context.Context, c *model.Categoria) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoriaRepository) Listar(ctx context.Context, p dto.Paginacion) ([]model.Categoria, error) {
	var list []model.Categoria
	q := r.db.WithContext(ctx).
		Preload("Usuario", seleccionarUsuarioResumen).
		Order("descripcion asc")
	err := paginar(q, p).Find(&list).Error
	return list, err
}

func (r *categoriaRepository) Contar(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Categoria{}).Count(&total).Error
	return total, err
}

func (r *categoriaRepository) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Categoria, error) {
	var c model.Categoria
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoriaRepository) Actualizar(ctx context.Context, id uuid.UUID, cambios map[string]any) (*model.Categoria, error) {
	return actualizarPorID[model.Categoria](ctx, r.db, id, cambios)
}

func (r *categoriaRepository) Eliminar(ctx context.Context, id uuid.UUID) (*model.Categoria, error) {
	var c model.Categoria
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&c, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Categoria{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}
