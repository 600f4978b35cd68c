package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Producto is a catalog entry. Disponible=false is the soft-deleted state;
// there is no transition back to available.
type Producto struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Nombre      string          `gorm:"index;not null" validate:"required"`
	PrecioUni   decimal.Decimal `gorm:"type:numeric;not null"`
	Descripcion string
	CategoriaID uuid.UUID `gorm:"type:uuid;index;not null" validate:"required"`
	UsuarioID   uuid.UUID `gorm:"type:uuid;index"`
	Disponible  bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Categoria *Categoria `gorm:"foreignKey:CategoriaID"`
	Usuario   *Usuario   `gorm:"foreignKey:UsuarioID"`
}

func (Producto) TableName() string { return "productos" }

func (p *Producto) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
