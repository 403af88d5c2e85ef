package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "shiplyne", cfg.PostgresDatabase)
	assert.Equal(t, "file://migrations/reference-data", cfg.MigrationsPath)
	assert.Equal(t, "poll", cfg.TrackingMode)
	assert.Equal(t, 5*time.Second, cfg.TrackingInterval)
	assert.Equal(t, 10*time.Minute, cfg.ViewIdleTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.Brokers())
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	content := "SERVER_ADDRESS=:9090\nTRACKING_MODE=push\nKAFKA_BROKERS=k1:9092, k2:9092\nLOG_FORMAT=json\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600))
	t.Setenv("SERVER_ADDRESS", ":7070")
	t.Setenv("TRACKING_INTERVAL", "250ms")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.ServerAddress)
	assert.Equal(t, "push", cfg.TrackingMode)
	assert.Equal(t, 250*time.Millisecond, cfg.TrackingInterval)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Brokers())
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"TRACKING_MODE", "carrier-pigeon"},
		{"TRACKING_INTERVAL", "0s"},
		{"VIEW_IDLE_TIMEOUT", "-1m"},
		{"LOG_LEVEL", "loud"},
		{"LOG_FORMAT", "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := LoadConfig(t.TempDir())
			assert.Error(t, err)
		})
	}
}
