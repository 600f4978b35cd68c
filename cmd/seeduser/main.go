// cmd/seeduser/main.go crea o actualiza el usuario administrador.
// Uso: ADMIN_EMAIL=... ADMIN_PASSWORD=... go run ./cmd/seeduser
package main

import (
	"context"
	"os"

	"cafe/internal/config"
	"cafe/internal/infra"
	"cafe/internal/model"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"
)

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	email := envOr("ADMIN_EMAIL", "admin@cafe.local")
	password := envOr("ADMIN_PASSWORD", "123456")
	nombre := envOr("ADMIN_NOMBRE", "Administrador")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cfg.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("bcrypt error")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect error")
	}

	admin := &model.Usuario{
		Nombre:       nombre,
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RolAdmin,
		Estado:       true,
	}
	err = db.WithContext(context.Background()).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"nombre", "password_hash", "role", "estado", "updated_at"}),
		}).
		Create(admin).Error
	if err != nil {
		log.Fatal().Err(err).Msg("upsert error")
	}
	log.Info().Str("email", email).Msg("usuario ADMIN_ROLE creado/actualizado")
}
