package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBadAddr = errors.New("listen_addr is required")

type testServerConfig struct {
	ListenAddr string `json:"listen_addr"`
	LogLevel   string `json:"log_level"`
}

type validatedConfig struct {
	ListenAddr string `json:"listen_addr"`
}

func (c *validatedConfig) Validate() error {
	if c.ListenAddr == "" {
		return errBadAddr
	}

	return nil
}

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "homelab.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadAndValidate(t *testing.T) {
	t.Parallel()

	path := writeTempConfig(t, `{"listen_addr": ":5000", "log_level": "debug"}`)

	var cfg testServerConfig

	c := NewConfig(nil)
	require.NoError(t, c.LoadAndValidate(context.Background(), path, &cfg))

	assert.Equal(t, ":5000", cfg.ListenAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadAndValidateRejectsNonPointer(t *testing.T) {
	t.Parallel()

	c := NewConfig(nil)

	err := c.LoadAndValidate(context.Background(), "ignored.json", testServerConfig{})
	assert.ErrorIs(t, err, errInvalidConfigPtr)
}

func TestLoadAndValidateMissingFile(t *testing.T) {
	t.Parallel()

	var cfg testServerConfig

	c := NewConfig(nil)
	err := c.LoadAndValidate(context.Background(), filepath.Join(t.TempDir(), "absent.json"), &cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadAndValidateMalformedJSON(t *testing.T) {
	t.Parallel()

	path := writeTempConfig(t, `{"listen_addr": `)

	var cfg testServerConfig

	c := NewConfig(nil)
	assert.Error(t, c.LoadAndValidate(context.Background(), path, &cfg))
}

func TestLoadAndValidateRunsValidator(t *testing.T) {
	t.Parallel()

	path := writeTempConfig(t, `{"listen_addr": ""}`)

	var cfg validatedConfig

	c := NewConfig(nil)
	err := c.LoadAndValidate(context.Background(), path, &cfg)
	assert.ErrorIs(t, err, errBadAddr)
}
