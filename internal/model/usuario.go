package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RolAdmin   = "ADMIN_ROLE"
	RolUsuario = "USER_ROLE"
)

// Usuario stores the accounts that own categories and products.
// Rol: "ADMIN_ROLE" | "USER_ROLE"
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Nombre       string    `gorm:"not null"             validate:"required"`
	Email        string    `gorm:"uniqueIndex;not null" validate:"required,email"`
	PasswordHash string    `gorm:"not null"`
	Img          *string
	Role         string `gorm:"type:varchar(20);not null;default:'USER_ROLE'" validate:"oneof=ADMIN_ROLE USER_ROLE"`
	Estado       bool   `gorm:"not null;default:true"`
	Google       bool   `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Usuario) TableName() string { return "usuarios" }

func (u *Usuario) BeforeCreate(_ *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
