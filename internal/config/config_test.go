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

	assert.Equal(t, "https://api.thecatapi.com/v1", c.APIBaseURL)
	assert.Empty(t, c.APIKey)
	assert.Equal(t, "catkeeper.db", c.DatabaseDSN)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.Equal(t, 2*time.Second, c.ProbeTimeout)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, 8, c.ImageFetchWorkers)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "https://api.thecatapi.com/v1", cfg.APIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}
