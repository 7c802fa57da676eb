package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8000", c.BaseURL)
	assert.True(t, c.UseSimulatedBackend)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	os.Args = []string{"testbin"}
	t.Cleanup(func() { os.Args = origArgs })

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:8000", cfg.BaseURL)
	assert.True(t, cfg.UseSimulatedBackend)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestParseEnv_Overlays(t *testing.T) {
	t.Setenv(envBaseURL, "https://api.example.com")
	t.Setenv(envUseMock, "false")
	t.Setenv(envRequestTimeout, "10s")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "https://api.example.com", c.BaseURL)
	assert.False(t, c.UseSimulatedBackend)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
}

func TestParseEnv_IgnoresMalformedValues(t *testing.T) {
	t.Setenv(envUseMock, "maybe")
	t.Setenv(envRequestTimeout, "soon")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.True(t, c.UseSimulatedBackend)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
}
