package internal

import (
	"fmt"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/tinyland-inc/wagraph/pkg/client"
	"github.com/tinyland-inc/wagraph/pkg/config"
	"github.com/tinyland-inc/wagraph/pkg/logger"
	"github.com/tinyland-inc/wagraph/pkg/transport"
)

const Logo = "💬"

var (
	version   = "dev"
	gitCommit string
	buildTime string
	goVersion string
)

func GetConfigPath() string {
	return config.DefaultPath()
}

func LoadConfig() (*config.Config, error) {
	return config.Load(GetConfigPath())
}

// NewClient builds the API client and its logger from the loaded config.
func NewClient(cfg *config.Config) (*client.Client, zerolog.Logger, error) {
	log, err := logger.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("building logger: %w", err)
	}

	opts := []client.Option{
		client.WithHTTPClient(transport.NewLoggingClient(cfg.HTTPTimeout(), log)),
		client.WithLogger(log),
	}
	if cfg.APIVersion != "" {
		opts = append(opts, client.WithAPIVersion(cfg.APIVersion))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, client.WithBaseURL(cfg.BaseURL))
	}
	if cfg.ParsedResponses {
		opts = append(opts, client.WithParsedResponses())
	}

	c, err := client.New(cfg.Token, opts...)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	return c, log, nil
}

// ResolveBotID prefers the --bot flag over the configured bot id.
func ResolveBotID(cfg *config.Config, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if cfg.BotID != "" {
		return cfg.BotID, nil
	}
	return "", fmt.Errorf("no bot id: pass --bot or set bot_id in %s", GetConfigPath())
}

// FormatVersion returns the version string with optional git commit
func FormatVersion() string {
	v := version
	if gitCommit != "" {
		v += fmt.Sprintf(" (git: %s)", gitCommit)
	}
	return v
}

// FormatBuildInfo returns build time and go version info
func FormatBuildInfo() (string, string) {
	build := buildTime
	goVer := goVersion
	if goVer == "" {
		goVer = runtime.Version()
	}
	return build, goVer
}

// GetVersion returns the version string
func GetVersion() string {
	return version
}
