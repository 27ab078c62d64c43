package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadAppliesDefaults(t *testing.T) {
	s, err := Load(envOf(map[string]string{
		"DB_DSN":     "user:pass@tcp(localhost:3306)/blog",
		"REDIS_ADDR": "localhost:6379",
		"JWT_SECRET": "secret",
		"BATCH_SIZE": "not-a-number",
	}))
	require.NoError(t, err)

	assert.Equal(t, "development", s.AppEnv)
	assert.Equal(t, "8080", s.AppPort)
	assert.Equal(t, DriverMySQL, s.DBDriver)
	assert.Equal(t, 100, s.BatchSize)
	assert.Equal(t, int64(1000), s.FeedSize)
	assert.Equal(t, 0, s.RedisDB)
}

func TestLoadReadsValues(t *testing.T) {
	s, err := Load(envOf(map[string]string{
		"APP_ENV":    "production",
		"APP_PORT":   "9000",
		"DB_DRIVER":  DriverPostgres,
		"DB_DSN":     "postgres://localhost/blog",
		"REDIS_ADDR": "redis:6379",
		"REDIS_DB":   "3",
		"JWT_SECRET": "secret",
		"BATCH_SIZE": "25",
		"FEED_SIZE":  "50",
	}))
	require.NoError(t, err)

	assert.Equal(t, "9000", s.AppPort)
	assert.Equal(t, DriverPostgres, s.DBDriver)
	assert.Equal(t, 3, s.RedisDB)
	assert.Equal(t, 25, s.BatchSize)
	assert.Equal(t, int64(50), s.FeedSize)
}

func TestLoadRequiresKeys(t *testing.T) {
	for _, missing := range []string{"DB_DSN", "REDIS_ADDR", "JWT_SECRET"} {
		env := map[string]string{
			"DB_DSN":     "dsn",
			"REDIS_ADDR": "addr",
			"JWT_SECRET": "secret",
		}
		delete(env, missing)

		_, err := Load(envOf(env))
		assert.ErrorContains(t, err, missing)
	}
}

func TestOpenDBRejectsUnknownDriver(t *testing.T) {
	_, err := OpenDB("oracle", "dsn", true)
	assert.Error(t, err)
}

func TestLoadDotEnvFeedsLoggerEnv(t *testing.T) {
	t.Setenv("APP_ENV", "")
	require.NoError(t, os.Unsetenv("APP_ENV"))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_ENV=production\n"), 0o600))

	require.True(t, LoadDotEnv(path))
	assert.Equal(t, "production", os.Getenv("APP_ENV"))

	prod, err := NewLogger(os.Getenv("APP_ENV"))
	require.NoError(t, err)
	assert.False(t, prod.Core().Enabled(zap.DebugLevel))

	dev, err := NewLogger("development")
	require.NoError(t, err)
	assert.True(t, dev.Core().Enabled(zap.DebugLevel))
}

func TestLoadDotEnvKeepsExistingVariables(t *testing.T) {
	t.Setenv("APP_ENV", "staging")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_ENV=production\n"), 0o600))

	require.True(t, LoadDotEnv(path))
	assert.Equal(t, "staging", os.Getenv("APP_ENV"))
	assert.False(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}
