// Package config loads service configuration from an optional YAML file
// with environment variable overrides on top.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file the CLI looks for when no --config
// flag is given. A missing file at this path is not an error; the
// defaults plus environment variables apply.
const DefaultPath = "ensgraph.yaml"

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Server   ServerConfig   `yaml:"server"`
	LogLevel string         `yaml:"log_level" env:"ENSGRAPH_LOG_LEVEL"`
}

type DatabaseConfig struct {
	// DSN selects the backend by scheme: postgres:// or sqlite://.
	DSN string `yaml:"dsn" env:"ENSGRAPH_DATABASE_DSN"`
}

type ServerConfig struct {
	Address         string        `yaml:"address" env:"ENSGRAPH_SERVER_ADDRESS"`
	Port            int           `yaml:"port" env:"ENSGRAPH_SERVER_PORT"`
	CORSOrigins     []string      `yaml:"cors_origins" env:"ENSGRAPH_CORS_ORIGINS"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"ENSGRAPH_SHUTDOWN_TIMEOUT"`
}

func defaults() Config {
	return Config{
		Database: DatabaseConfig{
			DSN: "sqlite://ensgraph.db",
		},
		Server: ServerConfig{
			Address:         "0.0.0.0",
			Port:            8000,
			CORSOrigins:     []string{"http://localhost:3000"},
			ShutdownTimeout: 10 * time.Second,
		},
		LogLevel: "info",
	}
}

// Load reads the YAML file at path, applies environment overrides, and
// validates the result. The file may be absent when path is DefaultPath.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist) && path == DefaultPath:
		// Fall through to env and defaults.
	default:
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("loading config from environment: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	dsn := strings.TrimSpace(cfg.Database.DSN)
	if dsn == "" {
		return fmt.Errorf("database dsn is required")
	}
	if !strings.HasPrefix(dsn, "postgres://") &&
		!strings.HasPrefix(dsn, "postgresql://") &&
		!strings.HasPrefix(dsn, "sqlite://") {
		return fmt.Errorf("unsupported database dsn scheme: %s", dsn)
	}
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", cfg.Server.Port)
	}
	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}
	return nil
}
