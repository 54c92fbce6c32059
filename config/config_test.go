package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/footyhub/footyhub/database"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, database.DriverSQLite, cfg.Driver())
	assert.Equal(t, "footyhub.db", cfg.DatabaseURL)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, 100, cfg.MaxPageSize)
	assert.Equal(t, 10*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.OIDCEnabled())
}

func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "8081")
	t.Setenv("DB_DRIVER", "pgx")
	t.Setenv("DATABASE_URL", "postgres://footyhub@localhost/footyhub")
	t.Setenv("MAX_PAGE_SIZE", "25")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("OIDC_DOMAIN", "login.example.com")
	t.Setenv("OIDC_CLIENT_ID", "footyhub")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, database.DriverPostgres, cfg.Driver())
	assert.Equal(t, 25, cfg.MaxPageSize)
	assert.Equal(t, 3*time.Second, cfg.UpstreamTimeout)
	assert.True(t, cfg.OIDCEnabled())
}

func TestValidateRejectsUnknownDriver(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_DRIVER", "mysql")

	_, err := Load()
	assert.ErrorContains(t, err, "DB_DRIVER")
}

func TestValidateRejectsUnknownLogFormat(t *testing.T) {
	cfg := &Config{Port: 3000, DBDriver: "sqlite3", LogFormat: "xml"}

	assert.ErrorContains(t, cfg.Validate(), "LOG_FORMAT")
}
