// Package config provides configuration loading and validation for the
// analyzer service. Values come from the environment; a .env file is loaded
// by main before the config is read.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// Defaults.
const (
	DefaultPort            = 8080
	DefaultLanguage        = "en-US"
	DefaultRetention       = 24 * time.Hour
	DefaultSweepInterval   = time.Hour
	DefaultLanguageToolURL = "https://api.languagetool.org"
	DefaultRateLimit       = 60
)

// Config holds the service configuration.
type Config struct {
	// Port is the HTTP listen port.
	Port int `validate:"gt=0,lte=65535"`
	// DatabaseURL selects the PostgreSQL store when set; empty selects the
	// transient in-memory store.
	DatabaseURL string
	// GeminiAPIKey enables the AI content-suggestion collaborator when set.
	GeminiAPIKey string
	// LanguageToolURL is the grammar collaborator endpoint. Empty disables
	// grammar checking (the scorer treats that as "no issues").
	LanguageToolURL string `validate:"omitempty,url"`
	// Language is the grammar check language code.
	Language string
	// Retention is how long uploads are kept in the in-memory store.
	Retention time.Duration `validate:"gt=0"`
	// SweepInterval is how often expired uploads are purged.
	SweepInterval time.Duration `validate:"gt=0"`
	// UseBrowser enables the headless-browser fallback for job URL fetches.
	UseBrowser bool
	// RateLimit is the per-client requests-per-minute cap on analysis
	// endpoints. Zero disables limiting.
	RateLimit int `validate:"gte=0"`
}

// Load builds a Config from the environment with defaults applied.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            DefaultPort,
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		LanguageToolURL: DefaultLanguageToolURL,
		Language:        DefaultLanguage,
		Retention:       DefaultRetention,
		SweepInterval:   DefaultSweepInterval,
		RateLimit:       DefaultRateLimit,
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}
	if v, ok := os.LookupEnv("LANGUAGETOOL_URL"); ok {
		cfg.LanguageToolURL = v
	}
	if v := os.Getenv("GRAMMAR_LANGUAGE"); v != "" {
		cfg.Language = v
	}
	if v := os.Getenv("RETENTION_HOURS"); v != "" {
		hours, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid RETENTION_HOURS %q: %w", v, err)
		}
		cfg.Retention = time.Duration(hours) * time.Hour
	}
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT %q: %w", v, err)
		}
		cfg.RateLimit = limit
	}
	if v := os.Getenv("USE_BROWSER"); v != "" {
		useBrowser, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid USE_BROWSER %q: %w", v, err)
		}
		cfg.UseBrowser = useBrowser
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
