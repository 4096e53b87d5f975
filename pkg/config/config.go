// Package config loads CLI configuration from a JSON file with
// environment variable overrides.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the CLI needs to build a client.
type Config struct {
	Token           string `json:"token" env:"WAGRAPH_TOKEN"`
	BotID           string `json:"bot_id" env:"WAGRAPH_BOT_ID"`
	APIVersion      string `json:"api_version" env:"WAGRAPH_API_VERSION"`
	BaseURL         string `json:"base_url" env:"WAGRAPH_BASE_URL"`
	ParsedResponses bool   `json:"parsed_responses" env:"WAGRAPH_PARSED_RESPONSES"`
	HTTPTimeoutSecs int    `json:"http_timeout_secs" env:"WAGRAPH_HTTP_TIMEOUT_SECS"`
	LogLevel        string `json:"log_level" env:"WAGRAPH_LOG_LEVEL"`
	Environment     string `json:"environment" env:"WAGRAPH_ENV"`
}

// Default returns a Config with sensible defaults. Token and BotID have
// no default; they come from the file, the environment or `wagraph auth`.
func Default() *Config {
	return &Config{
		APIVersion:      "v23.0",
		ParsedResponses: true,
		HTTPTimeoutSecs: 30,
		LogLevel:        "info",
		Environment:     "production",
	}
}

// DefaultPath is where the CLI looks for its config file.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".wagraph", "config.json")
}

// Load reads the config file at path (missing file is not an error) and
// applies environment overrides on top.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// fall through to env overrides
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("applying env overrides: %w", err)
	}
	return cfg, nil
}

// Save writes the config as indented JSON, creating the directory if
// needed. The file is user-only: it holds the bearer token.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o600)
}

// HTTPTimeout converts the configured timeout to a duration.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSecs) * time.Second
}
