// Package config loads ls-pyramid settings from an optional YAML file and
// LSPYRAMID_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix for all settings.
const envPrefix = "LSPYRAMID"

// Color modes for rendered output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds all runtime settings.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Export ExportConfig `mapstructure:"export"`
	Render RenderConfig `mapstructure:"render"`
	Sky    SkyConfig    `mapstructure:"sky"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // console or json
}

// ExportConfig controls JSON export.
type ExportConfig struct {
	Path string `mapstructure:"path"` // file written by the demo
}

// RenderConfig controls text rendering.
type RenderConfig struct {
	Color string `mapstructure:"color"` // auto, always or never
}

// SkyConfig sizes the sky plot.
type SkyConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// newViper builds a viper instance with the LSPYRAMID_ env prefix and a
// "." → "_" key replacer, so "log.level" reads LSPYRAMID_LOG_LEVEL.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("export.path", "star_pyramid.json")
	v.SetDefault("render.color", ColorAuto)
	v.SetDefault("sky.width", 48)
	v.SetDefault("sky.height", 20)
}

// Default returns the built-in configuration with env overrides applied.
func Default() (*Config, error) {
	return Load("")
}

// Load reads the YAML file at path (skipped when path is empty), merges
// LSPYRAMID_* environment overrides and defaults, and validates the result.
func Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %q: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	c.Render.Color = strings.ToLower(strings.TrimSpace(c.Render.Color))
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error

	switch c.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format %q is not one of console, json", c.Log.Format))
	}
	switch c.Render.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, fmt.Errorf("render.color %q is not one of auto, always, never", c.Render.Color))
	}
	if strings.TrimSpace(c.Export.Path) == "" {
		errs = append(errs, errors.New("export.path must not be empty"))
	}
	if c.Sky.Width < 8 || c.Sky.Height < 4 {
		errs = append(errs, fmt.Errorf("sky size %dx%d is below the 8x4 minimum", c.Sky.Width, c.Sky.Height))
	}

	return errors.Join(errs...)
}
