package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	apperrors "noondeals/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	FallbackStock int           `yaml:"fallback_stock" envconfig:"FALLBACK_STOCK" validate:"min=1"`
	Summaries     bool          `yaml:"summaries" envconfig:"SUMMARIES"`
	Deals         []DealConfig  `yaml:"deals" ignored:"true" validate:"dive"`
	Logging       LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// DealConfig maps one input column to a deal code. A deal is active
// only when its code is non-empty; empty codes keep the slot inactive.
type DealConfig struct {
	Column string `yaml:"column" validate:"required_with=Code"`
	Code   string `yaml:"code"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"omitempty,oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"omitempty,oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"omitempty,oneof=stdout file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

var validate = validator.New()

// Load loads configuration from defaults, an optional YAML file, and
// environment variables, in that order of precedence (env wins).
// An empty path probes the default config file locations.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = findConfigFile()
	} else if _, err := os.Stat(path); err != nil {
		return nil, apperrors.NewConfigError(fmt.Sprintf("config file %s not readable", path), err)
	}

	if path != "" {
		if err := loadFromFile(path, cfg); err != nil {
			return nil, apperrors.NewConfigError(fmt.Sprintf("failed to load config from %s", path), err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, apperrors.NewConfigError("failed to load config from environment", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromFile unmarshals the YAML file over the current values,
// so keys absent from the file keep their defaults.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			first := verrs[0]
			msg := fmt.Sprintf("invalid configuration: %s failed %q validation", fieldPath(first), first.Tag())
			return apperrors.NewConfigError(msg, err)
		}
		return apperrors.NewConfigError("invalid configuration", err)
	}

	if c.Logging.FilePath == "" && c.Logging.Output != "stdout" && c.Logging.Output != "" {
		return apperrors.NewConfigError("logging.file_path is required when logging to a file", nil)
	}

	return nil
}

// ActiveDeals returns the deals whose trimmed code is non-empty,
// in configuration order.
func (c *Config) ActiveDeals() []DealConfig {
	var active []DealConfig
	for _, d := range c.Deals {
		if strings.TrimSpace(d.Code) != "" {
			active = append(active, d)
		}
	}
	return active
}

// fieldPath renders a validator namespace without the leading struct name
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// findConfigFile returns the first config file found in the default
// locations, or empty when none exists.
func findConfigFile() string {
	for _, location := range configFileLocations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}
	return ""
}

// configFileLocations are probed in order when no -config flag is given
var configFileLocations = []string{
	"dealgen.yaml",
	"configs/dealgen.yaml",
}

// Default returns default configuration: the three standard deal slots
// inactive, summaries on, fallback stock 10, JSON logging to stdout.
func Default() *Config {
	return &Config{
		FallbackStock: DefaultFallbackStock,
		Summaries:     true,
		Deals: []DealConfig{
			{Column: "Spotlight"},
			{Column: "Mega"},
			{Column: "Flashsale"},
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "stdout",
			FilePath: DefaultLogFile,
		},
	}
}
