package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Categoria classifies products. UsuarioID is stamped with the last writer.
type Categoria struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Descripcion string    `gorm:"not null" validate:"required"`
	UsuarioID   uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Usuario *Usuario `gorm:"foreignKey:UsuarioID"`
}

// TableName overrides GORM's default singular → plural logic for Spanish names.
func (Categoria) TableName() string { return "categorias" }

func (c *Categoria) BeforeCreate(_ *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
