package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded first if present; real environment
// variables win over .env entries (godotenv does not override existing vars).
//
// Recognized variables:
//
//	GEMINI_API_KEY      key for the generative-AI service
//	EXCHANGE_DB         path to the local database file
//	EXCHANGE_SHARE_URL  share URL for the profile card
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.GeminiAPIKey = v
	}
	if v := os.Getenv("EXCHANGE_DB"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv("EXCHANGE_SHARE_URL"); v != "" {
		cfg.ShareURL = v
	}
}
