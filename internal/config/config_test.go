package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("RECRUITING_PORT", "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 10, cfg.Recommendations.Limit)
	assert.Equal(t, 3, cfg.Insights.BestMatches)
	assert.False(t, cfg.Log.JSON)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 1000, cfg.RateLimit.DefaultLimit)
	assert.Equal(t, time.Minute, cfg.RateLimit.DefaultWindow)
}

func TestLoad_RateLimitFromEnv(t *testing.T) {
	t.Setenv("RECRUITING_RATE_LIMIT_ENABLED", "false")
	t.Setenv("RECRUITING_RATE_LIMIT_DEFAULT_WINDOW", "30s")
	t.Setenv("RECRUITING_RATE_LIMIT_ALLOWLIST", "10.0.0.1, 10.0.0.2")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.DefaultWindow)
	assert.Equal(t, "10.0.0.1, 10.0.0.2", cfg.RateLimit.Allowlist)
}

func TestLoad_YAMLFile(t *testing.T) {
	content := `
port: 9090
environment: production
log:
  json: true
  debug: true
matching:
  workers: 8
recommendations:
  limit: 5
`
	path := filepath.Join(t.TempDir(), "recruiting.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "production", cfg.Environment)
	assert.True(t, cfg.Log.JSON)
	assert.True(t, cfg.Log.Debug)
	assert.Equal(t, 8, cfg.Matching.Workers)
	assert.Equal(t, 5, cfg.Recommendations.Limit)
	assert.Equal(t, 3, cfg.Insights.BestMatches)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recruiting.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 9090\n"), 0644))

	t.Setenv("RECRUITING_PORT", "7070")
	t.Setenv("RECRUITING_RECOMMENDATIONS_LIMIT", "20")
	t.Setenv("DATABASE_URL", "postgres://localhost/recruiting")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, 20, cfg.Recommendations.Limit)
	assert.Equal(t, "postgres://localhost/recruiting", cfg.DatabaseURL)
	assert.NoError(t, cfg.RequireDatabase())
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load("/nonexistent/path/recruiting.yaml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recruiting.yaml")
	require.NoError(t, os.WriteFile(path, []byte("environment: staging\n"), 0644))

	cfg, err := Load(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config error")
}

func TestRequireDatabase(t *testing.T) {
	cfg := &Config{}
	assert.ErrorIs(t, cfg.RequireDatabase(), ErrMissingDatabaseURL)
}

func TestEngineConfig(t *testing.T) {
	cfg := &Config{}
	ec, err := cfg.EngineConfig()
	require.NoError(t, err)
	assert.Equal(t, 0.4, ec.Weights.Skills)

	path := filepath.Join(t.TempDir(), "matching.yaml")
	require.NoError(t, os.WriteFile(path, []byte("overshoot_penalty: 0.2\n"), 0644))
	cfg.Matching.ConfigFile = path

	ec, err = cfg.EngineConfig()
	require.NoError(t, err)
	assert.Equal(t, 0.2, ec.OvershootPenalty)
}
