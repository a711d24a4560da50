package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// envSecrets carries credentials that must stay out of the config
// file. GEMINI_API_KEYS is a comma-separated list; leaving it unset
// selects the deterministic (offline) classifier and summarizer.
type envSecrets struct {
	GeminiAPIKeys []string `env:"GEMINI_API_KEYS" envSeparator:","`
}

// Load reads the YAML config file, overlays environment secrets, and
// validates the result (filling defaults in place).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	var secrets envSecrets
	if err := env.Parse(&secrets); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	cfg.Gemini.APIKeys = secrets.GeminiAPIKeys

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
