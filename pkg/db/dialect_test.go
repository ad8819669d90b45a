package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"

	"github.com/dimaswi/pos-emas/internal/config"
)

func testConfig(dbType string) config.Config {
	return config.Config{
		DBType:     dbType,
		DBHost:     "localhost",
		DBPort:     "5432",
		DBName:     "posemas",
		DBUser:     "postgres",
		DBPassword: "secret",
		DBSSLMode:  "disable",
	}
}

func TestDialect_Postgres(t *testing.T) {
	d, err := Dialect(testConfig("postgres"))
	require.NoError(t, err)

	pg, ok := d.(*postgres.Dialector)
	require.True(t, ok)
	assert.Contains(t, pg.DSN, "dbname=posemas")
	assert.Contains(t, pg.DSN, "sslmode=disable")
}

func TestDialect_MySQL(t *testing.T) {
	cfg := testConfig("mysql")
	cfg.DBPort = "3306"
	d, err := Dialect(cfg)
	require.NoError(t, err)

	my, ok := d.(*mysql.Dialector)
	require.True(t, ok)
	assert.Contains(t, my.DSN, "tcp(localhost:3306)/posemas")
}

func TestDialect_SQLiteUsesConfiguredName(t *testing.T) {
	d, err := Dialect(testConfig("sqlite"))
	require.NoError(t, err)

	sq, ok := d.(*sqlite.Dialector)
	require.True(t, ok)
	assert.Equal(t, "posemas.db", sq.DSN)
}

func TestDialect_Unsupported(t *testing.T) {
	_, err := Dialect(testConfig("oracle"))
	assert.Error(t, err)
}
