package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "stdout", cfg.Output)
	assert.False(t, cfg.Debug)
}

func TestInitRejectsInvalidLevel(t *testing.T) {
	err := Init(&Config{Level: "not-a-level"})
	assert.Error(t, err)
}

func TestInitDebugOverridesLevel(t *testing.T) {
	require.NoError(t, Init(&Config{Level: "error", Debug: true}))
	assert.Equal(t, zerolog.DebugLevel, GetLogger().GetLevel())
}

func TestNewLogger(t *testing.T) {
	log, err := NewLogger(&Config{Level: "warn"})
	require.NoError(t, err)
	require.NotNil(t, log)

	// Events below the configured level must be disabled.
	assert.False(t, log.Info().Enabled())
	assert.True(t, log.Error().Enabled())
}

func TestNewLoggerInvalidLevel(t *testing.T) {
	log, err := NewLogger(&Config{Level: "bogus"})
	assert.Error(t, err)
	assert.Nil(t, log)
}

func TestTestLoggerDiscardsEverything(t *testing.T) {
	log := NewTestLogger()

	assert.False(t, log.Info().Enabled())
	assert.False(t, log.Error().Enabled())
}
