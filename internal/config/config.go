// Package config loads qgates CLI settings from defaults, an optional
// qgates.yaml file and QGATES_* environment variables.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/qgates/internal/unitary"
)

// ErrInvalidConfig is returned when a loaded value is outside its domain.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix namespaces environment overrides, e.g. QGATES_LOG_LEVEL.
const EnvPrefix = "QGATES"

// Config represents the qgates configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Check  CheckConfig  `mapstructure:"check"`
	Output OutputConfig `mapstructure:"output"`
}

// LogConfig represents logger configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CheckConfig represents the unitarity check policy.
type CheckConfig struct {
	Epsilon float64 `mapstructure:"epsilon"`
}

// OutputConfig represents terminal output settings.
type OutputConfig struct {
	Color bool `mapstructure:"color"`
}

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

var validFormats = map[string]bool{"console": true, "json": true}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "info", Format: "console"},
		Check:  CheckConfig{Epsilon: unitary.DefaultEpsilon},
		Output: OutputConfig{Color: true},
	}
}

// Load reads configuration. When path is empty, qgates.yaml is searched in
// the working directory and $HOME/.config/qgates; a missing file is not an
// error. An explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()

	d := Default()
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("check.epsilon", d.Check.Epsilon)
	v.SetDefault("output.color", d.Output.Color)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("qgates")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "qgates"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Normalize lowercases the enumerated string fields.
func (c *Config) Normalize() {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
}

// Validate checks every field against its domain. It does not modify c.
func (c *Config) Validate() error {
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("log.level %q: %w", c.Log.Level, ErrInvalidConfig)
	}
	if !validFormats[c.Log.Format] {
		return fmt.Errorf("log.format %q: %w", c.Log.Format, ErrInvalidConfig)
	}
	if math.IsNaN(c.Check.Epsilon) || math.IsInf(c.Check.Epsilon, 0) || c.Check.Epsilon < 0 {
		return fmt.Errorf("check.epsilon %v: %w", c.Check.Epsilon, ErrInvalidConfig)
	}

	return nil
}
