package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
postgres:
  dsn: postgres://localhost/greens
nats:
  url: nats://localhost:4222
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Engine.LeaderboardSize)
	assert.Equal(t, 5, cfg.Engine.TxRetryAttempts)
	assert.Equal(t, 60, cfg.Engine.TierAuditIntervalMinutes)
	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, "development", cfg.Observability.Environment)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
postgres:
  dsn: postgres://localhost/greens
nats:
  url: nats://localhost:4222
engine:
  leaderboard_size: 25
`)

	t.Setenv("NATS_URL", "nats://nats.internal:4222")
	t.Setenv("LEADERBOARD_SIZE", "15")
	t.Setenv("TRACE_SAMPLE_RATE", "0.25")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "nats://nats.internal:4222", cfg.NATS.URL)
	assert.Equal(t, 15, cfg.Engine.LeaderboardSize)
	assert.Equal(t, 0.25, cfg.Observability.TraceSampleRate)
}

func TestLoadConfigRequiresDSN(t *testing.T) {
	path := writeConfigFile(t, `
nats:
  url: nats://localhost:4222
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DSN")
}

func TestLoadConfigMissingFileFallsBackToEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/greens")
	t.Setenv("NATS_URL", "nats://env:4222")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "postgres://env/greens", cfg.Postgres.DSN)
	assert.Equal(t, "nats://env:4222", cfg.NATS.URL)
}
