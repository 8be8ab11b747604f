package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson_OverlaysValues(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "conf.json")
	payload := `{
		"database_dsn": "json.db",
		"share_url": "https://json.example",
		"archive_close_delay_ms": 1200,
		"interrupt_every": 7
	}`
	require.NoError(t, os.WriteFile(file, []byte(payload), 0o644))

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd", "-c", file}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "json.db", cfg.DatabaseDSN)
	assert.Equal(t, "https://json.example", cfg.ShareURL)
	assert.Equal(t, 1200*time.Millisecond, cfg.ArchiveCloseDelay)
	assert.Equal(t, 7, cfg.InterruptEvery)
	// untouched by the file
	assert.Equal(t, "https://api.qrserver.com/v1/create-qr-code/", cfg.QRServiceEndpoint)
}

func TestParseJson_NoConfigFlag_IsNoop(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd"}

	cfg := &Config{}
	cfg.LoadDefaults()
	require.NotPanics(t, func() { parseJson(cfg) })
	assert.Equal(t, "exchange.db", cfg.DatabaseDSN)
}

func TestParseJson_UnreadableFile_Panics(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd", "-c", filepath.Join(t.TempDir(), "missing.json")}

	cfg := &Config{}
	cfg.LoadDefaults()
	require.Panics(t, func() { parseJson(cfg) })
}

func TestParseEnv_ReadsAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("EXCHANGE_DB", "env.db")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
	assert.Equal(t, "env.db", cfg.DatabaseDSN)
}
