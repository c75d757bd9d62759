package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("GENOME_OWNER", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "local", cfg.DefaultOwner)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("GENOME_STORE_PATH", "/var/lib/genomes")
	t.Setenv("GENOME_OWNER", "ops")
	t.Setenv("ENABLE_EVENT_LOG", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "/var/lib/genomes", cfg.StorePath)
	assert.Equal(t, "ops", cfg.DefaultOwner)
	assert.True(t, cfg.EnableEventLog)
}

func TestLoadConfigRejectsUnknownEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "staging")

	_, err := LoadConfig()
	assert.Error(t, err)
}
