package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the runtime settings for the binaries. Values come from an
// optional YAML file and are overridden by environment variables, so a plain
// `go run ./cmd/demo` works with no file present.
type Config struct {
	ListenAddr string   `yaml:"listen_addr"`
	Database   Database `yaml:"database"`
	// RabbitMQURL is optional; when empty no events are published.
	RabbitMQURL string `yaml:"rabbitmq_url"`
}

// Database selects the backing store. Driver is "sqlite" (default, local
// file) or "postgres"; Path is the sqlite file, DSN the postgres connection
// string.
type Database struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
	DSN    string `yaml:"dsn"`
}

const (
	DefaultListenAddr = ":8080"
	DefaultDriver     = "sqlite"
	DefaultSQLitePath = "orgstore.db"
)

// Load reads the YAML file at path when it exists, then applies environment
// overrides and defaults. A missing file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		b, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(b, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("DB_DRIVER"); v != "" {
		cfg.Database.Driver = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("DB_DSN"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("RABBITMQ_URL"); v != "" {
		cfg.RabbitMQURL = v
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = DefaultListenAddr
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = DefaultDriver
	}
	if cfg.Database.Driver == "sqlite" && cfg.Database.Path == "" {
		cfg.Database.Path = DefaultSQLitePath
	}
	if cfg.Database.Driver == "postgres" && cfg.Database.DSN == "" {
		return nil, fmt.Errorf("postgres driver requires DB_DSN")
	}

	return cfg, nil
}
