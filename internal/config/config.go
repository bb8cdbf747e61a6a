package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config holds application-level settings loaded from the environment.
// LLM settings live in the llm package and are loaded separately.
type Config struct {
	// DBPath is the sqlite database file. Empty means ~/.metis/metis.db.
	DBPath string `env:"METIS_DB"`

	// NoColor disables ANSI styling when set to any non-empty value.
	// https://no-color.org/
	NoColor string `env:"NO_COLOR"`

	// Debug enables service execution logging on stderr.
	Debug bool `env:"METIS_DEBUG"`
}

// Load reads configuration from environment variables and fills in the
// default database location when METIS_DB is unset.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home dir: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".metis", "metis.db")
	}

	return cfg, nil
}

// ColorEnabled reports whether styled output should be used.
func (c Config) ColorEnabled() bool {
	return c.NoColor == ""
}
