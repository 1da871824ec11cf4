package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FromEnvFile(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("TOUR_API_SERVICE_KEY", "")
	t.Setenv("APP_NAME", "")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"DATABASE_URL=postgres://u:p@localhost:5432/tour\n"+
			"TOUR_API_SERVICE_KEY=abc==\n"+
			"CACHE_LIST_TTL=5m\n"+
			"CORS_ALLOWED_ORIGINS=https://a.example, ,https://b.example\n"+
			"REDIS_ENABLED=true\n"+
			"REDIS_ADDRESS=localhost:6379\n"), 0o600))
	// godotenv не перезаписывает уже выставленные переменные
	require.NoError(t, os.Unsetenv("DATABASE_URL"))
	require.NoError(t, os.Unsetenv("TOUR_API_SERVICE_KEY"))
	for _, k := range []string{"CACHE_LIST_TTL", "CORS_ALLOWED_ORIGINS", "REDIS_ENABLED", "REDIS_ADDRESS"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "tour-service", cfg.AppName)
	assert.Equal(t, "abc==", cfg.TourAPI.ServiceKey)
	assert.Equal(t, 5*time.Minute, cfg.Redis.ListTTL)
	assert.Equal(t, 6*time.Hour, cfg.Redis.DetailTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Rest.AllowedOrigins)
	assert.True(t, cfg.Redis.Enabled)
	assert.False(t, cfg.RabbitMQ.Enabled)
	assert.Equal(t, 30*time.Minute, cfg.Feeds.IdleTTL)
}

func TestLoadConfig_RequiresServiceKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DATABASE_URL=postgres://localhost/tour\n"), 0o600))
	t.Setenv("DATABASE_URL", "")
	require.NoError(t, os.Unsetenv("DATABASE_URL"))
	t.Setenv("TOUR_API_SERVICE_KEY", "")

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "TOUR_API_SERVICE_KEY")
}

func TestGetEnvHelpers_FallBackOnGarbage(t *testing.T) {
	t.Setenv("X_INT", "ten")
	t.Setenv("X_DUR", "-1s")
	t.Setenv("X_BOOL", "maybe")

	assert.Equal(t, 7, getEnvAsInt("X_INT", 7))
	assert.Equal(t, time.Second, getEnvAsDuration("X_DUR", time.Second))
	assert.True(t, getEnvAsBool("X_BOOL", true))
}
