// Package config provides process configuration loading and validation.
// Values come from the environment (a .env file is loaded by main before
// this runs); a missing credential is a fatal startup condition, never a
// per-request error.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/misbah/resumeai/internal/llm"
)

// Environment variable names.
const (
	EnvAPIKey = "GEMINI_API_KEY"
	EnvModel  = "RESUMEAI_MODEL"
	EnvPort   = "PORT"
)

// Config holds the process-wide settings.
type Config struct {
	APIKey string `validate:"required"`
	Model  string `validate:"required"`
	Port   int    `validate:"gte=1,lte=65535"`
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		APIKey: os.Getenv(EnvAPIKey),
		Model:  os.Getenv(EnvModel),
		Port:   8080,
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s is not set; add it to the environment or a .env file", EnvAPIKey)
	}
	if cfg.Model == "" {
		cfg.Model = llm.DefaultModel
	}
	if p := os.Getenv(EnvPort); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", EnvPort, p, err)
		}
		cfg.Port = port
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
