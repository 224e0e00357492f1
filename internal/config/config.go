package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all client configuration, sourced from environment variables
// with an optional .env file loaded by main.
type Config struct {
	BaseURL     string        `mapstructure:"MEDREC_BASE_URL"`
	HTTPTimeout time.Duration `mapstructure:"MEDREC_HTTP_TIMEOUT"`
	DataDir     string        `mapstructure:"MEDREC_DATA_DIR"`
	LogLevel    string        `mapstructure:"MEDREC_LOG_LEVEL"`
	LogFile     string        `mapstructure:"MEDREC_LOG_FILE"`
	MetricsAddr string        `mapstructure:"MEDREC_METRICS_ADDR"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("MEDREC_BASE_URL", "http://localhost:5000")
	v.SetDefault("MEDREC_HTTP_TIMEOUT", "30s")
	v.SetDefault("MEDREC_LOG_LEVEL", "info")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("MEDREC_BASE_URL")
	v.BindEnv("MEDREC_HTTP_TIMEOUT")
	v.BindEnv("MEDREC_DATA_DIR")
	v.BindEnv("MEDREC_LOG_LEVEL")
	v.BindEnv("MEDREC_LOG_FILE")
	v.BindEnv("MEDREC_METRICS_ADDR")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("MEDREC_BASE_URL is required")
	}

	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}

	if cfg.DataDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve user config dir: %w", err)
		}
		cfg.DataDir = filepath.Join(base, "medrec")
	}

	return cfg, nil
}
