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

	assert.Equal(t, "exchange.db", c.DatabaseDSN)
	assert.Equal(t, "gemini-3-flash-preview", c.TextModel)
	assert.Equal(t, "gemini-2.5-flash-image", c.ImageModel)
	assert.Equal(t, "https://api.qrserver.com/v1/create-qr-code/", c.QRServiceEndpoint)
	assert.Equal(t, 3500*time.Millisecond, c.ArchiveCloseDelay)
	assert.Equal(t, 3, c.InterruptEvery)
	assert.Empty(t, c.GeminiAPIKey)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, 3, cfg.InterruptEvery)
	assert.Equal(t, "exchange.db", cfg.DatabaseDSN)
}
