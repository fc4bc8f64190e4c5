package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, "server: {}\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "redis", cfg.BannedList.Backend)
	assert.Equal(t, "banned:emails", cfg.BannedList.Key)
}

func TestLoad_ParsesValues(t *testing.T) {
	path := writeConfig(t, `
server:
  host: 0.0.0.0
  port: 9090
  allowed_origins:
    - http://localhost:5173
redis:
  addr: redis.internal:6379
  db: 2
banned_list:
  backend: postgres
  key: tenant1:banned
postgres:
  dsn: postgres://spamguard@db/spamguard
metrics:
  enabled: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "redis.internal:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "postgres", cfg.BannedList.Backend)
	assert.Equal(t, "tenant1:banned", cfg.BannedList.Key)
	assert.Equal(t, "postgres://spamguard@db/spamguard", cfg.Postgres.DSN)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_RejectsUnknownBackend(t *testing.T) {
	path := writeConfig(t, "banned_list:\n  backend: dynamo\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	path := writeConfig(t, "redis:\n  addr: from-file:6379\n")

	t.Setenv("REDIS_ADDR", "from-env:6379")
	t.Setenv("BANNED_LIST_KEY", "env:banned")
	t.Setenv("PORT", "7070")

	cfg, err := LoadFromEnv(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env:6379", cfg.Redis.Addr)
	assert.Equal(t, "env:banned", cfg.BannedList.Key)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestLoadFromEnv_RejectsInvalidBackendOverride(t *testing.T) {
	path := writeConfig(t, "server: {}\n")

	t.Setenv("BANNED_LIST_BACKEND", "memcached")

	_, err := LoadFromEnv(path)
	assert.Error(t, err)
}
