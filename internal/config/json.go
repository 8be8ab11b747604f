package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/sunyue-dev/time-exchange/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. The archive
// close delay is specified as integer milliseconds.
type JsonConfig struct {
	DatabaseDSN         string `json:"database_dsn"`
	ShareURL            string `json:"share_url"`
	QRServiceEndpoint   string `json:"qr_service_endpoint"`
	ArchiveCloseDelayMs int    `json:"archive_close_delay_ms"`
	InterruptEvery      int    `json:"interrupt_every"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path is resolved from the -c or -config flags via
// flagx.JsonConfigFlags(); if empty, no JSON is loaded. Read or unmarshal
// errors panic (caller should recover if desired). Zero-valued JSON fields
// leave the corresponding Config fields untouched.
//
// Intended usage is: defaults -> parseJson -> parseFlags -> parseEnv, where
// later stages override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.ShareURL != "" {
		cfg.ShareURL = jc.ShareURL
	}
	if jc.QRServiceEndpoint != "" {
		cfg.QRServiceEndpoint = jc.QRServiceEndpoint
	}
	if jc.ArchiveCloseDelayMs > 0 {
		cfg.ArchiveCloseDelay = time.Duration(jc.ArchiveCloseDelayMs) * time.Millisecond
	}
	if jc.InterruptEvery > 0 {
		cfg.InterruptEvery = jc.InterruptEvery
	}
}
