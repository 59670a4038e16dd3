package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the client configuration. Environment variables provide the
// defaults; command-line flags may override them.
type Config struct {
	ServerURL string `env:"ELEARN_SERVER_URL" envDefault:"http://localhost:8000"`
	WSBaseURL string `env:"ELEARN_WS_URL"`
	DBPath    string `env:"ELEARN_DB_PATH" envDefault:"elearn-client.db"`
}

// FromEnv loads configuration from environment variables. When no websocket
// URL is configured it is derived from the server URL.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.WSBaseURL == "" {
		cfg.WSBaseURL = DeriveWSBaseURL(cfg.ServerURL)
	}
	return cfg, nil
}

// DeriveWSBaseURL maps an http(s) server URL onto its ws(s) counterpart
func DeriveWSBaseURL(serverURL string) string {
	switch {
	case strings.HasPrefix(serverURL, "https://"):
		return "wss://" + strings.TrimPrefix(serverURL, "https://")
	case strings.HasPrefix(serverURL, "http://"):
		return "ws://" + strings.TrimPrefix(serverURL, "http://")
	default:
		return serverURL
	}
}
