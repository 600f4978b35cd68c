package infra

import (
	"fmt"
	"time"

	"cafe/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GormConfig is shared by the server and the tests so both build the schema
// the same way. Foreign keys are not created: a product may keep pointing at
// a removed category, which then populates as null. TranslateError maps
// unique violations to gorm.ErrDuplicatedKey.
func GormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
	}
}

// NewDatabase establishes a GORM connection backed by pgx and brings the schema
// up to date.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), GormConfig())
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}

// RunMigrations creates or updates the three collections and applies the
// index patches AutoMigrate cannot express. Safe to run repeatedly.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Usuario{},
		&model.Categoria{},
		&model.Producto{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL statements that back the list
// queries: available products sorted by nombre, categories sorted by
// descripcion. Plain CREATE INDEX IF NOT EXISTS runs on postgres and sqlite.
func applySchemaPatches(db *gorm.DB) error {
	patches := []struct{ descr, sql string }{
		{"idx_productos_disponible_nombre",
			`CREATE INDEX IF NOT EXISTS idx_productos_disponible_nombre ON productos (disponible, nombre)`},
		{"idx_categorias_descripcion",
			`CREATE INDEX IF NOT EXISTS idx_categorias_descripcion ON categorias (descripcion)`},
		{"idx_usuarios_estado_nombre",
			`CREATE INDEX IF NOT EXISTS idx_usuarios_estado_nombre ON usuarios (estado, nombre)`},
	}
	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", p.descr, err)
		}
	}
	return nil
}
