package infra

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestRunMigrations_Idempotent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), GormConfig())
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, RunMigrations(db))
	require.NoError(t, RunMigrations(db), "second run must be a no-op")

	for _, table := range []string{"usuarios", "categorias", "productos"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.True(t, db.Migrator().HasIndex("productos", "idx_productos_disponible_nombre"))
}

func TestNewRedis_EmptyURLDisables(t *testing.T) {
	rdb, err := NewRedis("")
	assert.NoError(t, err)
	assert.Nil(t, rdb)
}

func TestNewRedis_BadURL(t *testing.T) {
	_, err := NewRedis("not-a-redis-url")
	assert.Error(t, err)
}
