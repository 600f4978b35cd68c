package repository

import (
	"context"

	"cafe/internal/dto"
	"cafe/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UsuarioRepository interface {
	Create(ctx context.Context, u *model.Usuario) error
	FindByEmail(ctx context.Context, email string) (*model.Usuario, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Usuario, error)
	// List returns one page of active users sorted by nombre.
	List(ctx context.Context, p dto.Paginacion) ([]model.Usuario, error)
	CountActivos(ctx context.Context) (int64, error)
	Update(ctx context.Context, id uuid.UUID, cambios map[string]any) (*model.Usuario, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (*model.Usuario, error)
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) Create(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *usuarioRepo) FindByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) List(ctx context.Context, p dto.Paginacion) ([]model.Usuario, error) {
	var users []model.Usuario
	q := r.db.WithContext(ctx).Where("estado = ?", true).Order("nombre asc")
	err := paginar(q, p).Find(&users).Error
	return users, err
}

func (r *usuarioRepo) CountActivos(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Usuario{}).Where("estado = ?", true).Count(&total).Error
	return total, err
}

func (r *usuarioRepo) Update(ctx context.Context, id uuid.UUID, cambios map[string]any) (*model.Usuario, error) {
	return actualizarPorID[model.Usuario](ctx, r.db, id, cambios)
}

func (r *usuarioRepo) SoftDelete(ctx context.Context, id uuid.UUID) (*model.Usuario, error) {
	return actualizarPorID[model.Usuario](ctx, r.db, id, map[string]any{"estado": false})
}
