// Package config resolves runtime settings from .perihelion.yaml,
// PERIHELION_* environment variables and CLI flags.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/papapumpkin/perihelion/internal/category"
	"github.com/papapumpkin/perihelion/internal/source"
)

// ErrInvalidSource is returned when the data source settings are unusable.
var ErrInvalidSource = errors.New("invalid data source")

// Config holds all runtime configuration for a game.
// Values are populated from .perihelion.yaml, PERIHELION_* env vars, and CLI flags.
type Config struct {
	Source        string        `mapstructure:"source"`
	APIURL        string        `mapstructure:"api_url"`
	DataFile      string        `mapstructure:"data_file"`
	HTTPTimeout   time.Duration `mapstructure:"http_timeout"`
	CacheTTL      time.Duration `mapstructure:"cache_ttl"`
	Categories    []string      `mapstructure:"categories"`
	Seed          int64         `mapstructure:"seed"`
	Reveal        bool          `mapstructure:"reveal"`
	TelemetryPath string        `mapstructure:"telemetry_path"`
	TUI           bool          `mapstructure:"tui"`
	Verbose       bool          `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("source", source.ModeWebsite.String())
	viper.SetDefault("api_url", source.DefaultURL)
	viper.SetDefault("data_file", "")
	viper.SetDefault("http_timeout", 30*time.Second)
	viper.SetDefault("cache_ttl", 10*time.Minute)
	viper.SetDefault("categories", categoryKeys(category.All))
	viper.SetDefault("seed", 0)
	viper.SetDefault("reveal", false)
	viper.SetDefault("telemetry_path", "")
	viper.SetDefault("tui", false)
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the source settings and category names.
func (c Config) Validate() error {
	mode, err := source.ParseMode(c.Source)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSource, err)
	}
	if mode == source.ModeFile && c.DataFile == "" {
		return fmt.Errorf("%w: source %q needs data_file", ErrInvalidSource, c.Source)
	}
	if _, err := c.Settings(); err != nil {
		return err
	}
	return nil
}

// Mode returns the parsed data source mode. Call Validate first.
func (c Config) Mode() source.Mode {
	m, _ := source.ParseMode(c.Source)
	return m
}

// Settings returns the enabled categories named in the config.
func (c Config) Settings() (category.Settings, error) {
	s, err := category.ParseSettings(c.Categories)
	if err != nil {
		return category.Settings{}, fmt.Errorf("categories: %w", err)
	}
	if err := s.Validate(); err != nil {
		return category.Settings{}, fmt.Errorf("categories: %w", err)
	}
	return s, nil
}

func categoryKeys(cats []category.Category) []string {
	keys := make([]string, len(cats))
	for i, c := range cats {
		keys[i] = c.Key()
	}
	return keys
}
