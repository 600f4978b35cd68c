package repository

import (
	"context"

	"cafe/internal/dto"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// paginar applies a skip/limit window. A zero limit means no limit, a
// negative one caps at its absolute value, and a negative skip is zero.
func paginar(q *gorm.DB, p dto.Paginacion) *gorm.DB {
	if p.Desde > 0 {
		q = q.Offset(p.Desde)
	}
	switch {
	case p.Limite > 0:
		q = q.Limit(p.Limite)
	case p.Limite < 0:
		q = q.Limit(-p.Limite)
	}
	return q
}

// actualizarPorID applies cambios to the row with the given id and returns the
// row as stored afterwards. A missing row yields gorm.ErrRecordNotFound.
func actualizarPorID[T any](ctx context.Context, db *gorm.DB, id uuid.UUID, cambios map[string]any) (*T, error) {
	var out T
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var actual T
		if err := tx.First(&actual, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&actual).Updates(cambios).Error; err != nil {
			return err
		}
		return tx.First(&out, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func seleccionarUsuarioResumen(tx *gorm.DB) *gorm.DB {
	return tx.Select("id", "nombre", "email")
}
