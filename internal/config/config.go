package config

import "time"

// Config holds runtime settings for the Time Exchange client.
//
// Fields:
//   - DatabaseDSN: path of the local SQLite database file.
//   - GeminiAPIKey: key for the generative-AI service; when empty the client
//     runs with deterministic fallback content only.
//   - TextModel / ImageModel: model names used for text and image generation.
//   - ShareURL: the address encoded into the profile share card.
//   - QRServiceEndpoint: remote QR-rendering service base URL.
//   - ArchiveCloseDelay: how long the archived-post reflection stays on screen
//     before returning to the feed.
//   - InterruptEvery: after how many witnessed moments the interrupt screen is
//     shown.
type Config struct {
	DatabaseDSN       string
	GeminiAPIKey      string
	TextModel         string
	ImageModel        string
	ShareURL          string
	QRServiceEndpoint string
	ArchiveCloseDelay time.Duration
	InterruptEvery    int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "exchange.db"
	c.TextModel = "gemini-3-flash-preview"
	c.ImageModel = "gemini-2.5-flash-image"
	c.ShareURL = "https://time-exchange.app"
	c.QRServiceEndpoint = "https://api.qrserver.com/v1/create-qr-code/"
	c.ArchiveCloseDelay = 3500 * time.Millisecond
	c.InterruptEvery = 3
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), command-line flags, and finally the environment. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	parseEnv(cfg)
	return cfg
}
