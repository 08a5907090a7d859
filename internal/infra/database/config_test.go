package database

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-web/pkg/resource"
)

func TestConfigFromProperties(t *testing.T) {
	t.Setenv("DATABASE_TEST_HOST", "db.internal")
	path := filepath.Join(t.TempDir(), "application.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
app:
  db:
    client: gorm
    host: ${DATABASE_TEST_HOST:localhost}
    port: 5433
    username: web
    password: secret
    database: web
    max-open-conns: 4
    conn-max-lifetime: 1m
`), 0o600))
	require.NoError(t, resource.Init(path))

	config := ConfigFromProperties()

	assert.Equal(t, ClientGorm, config.Client)
	assert.Equal(t, "public", config.Schema)
	assert.Equal(t, 4, config.MaxOpenConns)
	assert.Equal(t, time.Minute, config.ConnMaxLifetime)
	assert.Equal(t,
		"host='db.internal' port='5433' user='web' password='secret' dbname='web' sslmode='disable' search_path='public'",
		config.DSN())
}

func TestDSNQuotesValues(t *testing.T) {
	config := Config{
		Host:     "localhost",
		Port:     "5432",
		Username: "web",
		Password: "",
		Database: "web",
		SSLMode:  "disable",
		Schema:   "public",
	}
	assert.Contains(t, config.DSN(), "password='' dbname='web'")

	config.Password = `it's a \secret`
	assert.Contains(t, config.DSN(), `password='it\'s a \\secret'`)
}

