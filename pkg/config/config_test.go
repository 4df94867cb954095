package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverMySQL, cfg.Database.Driver)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.True(t, cfg.Database.ReadOnlyTx)
	assert.Equal(t, 10*time.Second, cfg.Database.ConnectTimeout)
	assert.Equal(t, 500, cfg.Query.DefaultLimit)
	assert.Zero(t, cfg.Query.MaxLimit)
	assert.Equal(t, time.Hour, cfg.Cache.CatalogTTL)
	assert.False(t, cfg.Documents.Enabled)
	assert.Equal(t, "kmq-gateway", cfg.JWT.Issuer)
}

func TestLoadFromEnvironment(t *testing.T) {
	chdirTemp(t)
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_PATH", "/var/lib/kmq/kmq.db")
	t.Setenv("QUERY_MAX_LIMIT", "2000")
	t.Setenv("CATALOG_CACHE_TTL", "not-a-duration")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/var/lib/kmq/kmq.db", cfg.Database.Path)
	assert.Equal(t, 2000, cfg.Query.MaxLimit)
	assert.Equal(t, time.Hour, cfg.Cache.CatalogTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoadReadsDotEnv(t *testing.T) {
	chdirTemp(t)
	require.NoError(t, os.WriteFile(".env", []byte("PORT=9090\nENABLE_DOCUMENTS=true\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("PORT")
		_ = os.Unsetenv("ENABLE_DOCUMENTS")
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Documents.Enabled)
}

func TestLocation(t *testing.T) {
	assert.Equal(t, time.Local, (&Config{}).Location())
	assert.Equal(t, time.Local, (&Config{Timezone: "Mars/Olympus"}).Location())
	assert.Equal(t, "America/Los_Angeles", (&Config{Timezone: "America/Los_Angeles"}).Location().String())
}
