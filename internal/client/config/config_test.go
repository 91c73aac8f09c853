package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "localhost", c.ServerHost)
	assert.Equal(t, "https://school-backend-wzms.onrender.com", c.RemoteOrigin)
	assert.Equal(t, 30*time.Second, c.PollInterval)
	assert.Equal(t, "session.db", c.SessionDBPath)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "localhost", cfg.ServerHost)
	assert.Equal(t, 30*time.Second, cfg.PollInterval)
	assert.Equal(t, "session.db", cfg.SessionDBPath)
}
