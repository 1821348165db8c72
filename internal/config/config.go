// Package config loads the YAML configuration of the dict command.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Config represents the command configuration.
type Config struct {
	LogLevel       slog.Level           `yaml:"log_level"`
	Servers        []string             `yaml:"servers"`
	ClientName     string               `yaml:"client_name"`
	DialTimeout    time.Duration        `yaml:"dial_timeout"`
	Defaults       DefaultsConfig       `yaml:"defaults"`
	CircuitBreaker CircuitBreakerConfig `yaml:"circuit_breaker"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Servers, validation.Required, validation.Each(validation.Required)),
		validation.Field(&c.DialTimeout, validation.Min(time.Duration(0))),
	); err != nil {
		return err
	}
	if err := c.Defaults.Validate(); err != nil {
		return err
	}
	return c.CircuitBreaker.Validate()
}

// DefaultsConfig holds the database and strategy used when a query does not
// name one.
type DefaultsConfig struct {
	Database string `yaml:"database"`
	Strategy string `yaml:"strategy"`
}

// Validate validates the defaults.
func (c *DefaultsConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Database, validation.Required),
		validation.Field(&c.Strategy, validation.Required),
	)
}

// CircuitBreakerConfig holds the circuit breaker settings. The breaker is
// off unless Enabled is set.
type CircuitBreakerConfig struct {
	Enabled     bool          `yaml:"enabled"`
	MaxRequests uint32        `yaml:"max_requests"`
	Interval    time.Duration `yaml:"interval"`
	Timeout     time.Duration `yaml:"timeout"`
}

// Validate validates the circuit breaker configuration.
func (c *CircuitBreakerConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.MaxRequests, validation.When(c.Enabled, validation.Required)),
		validation.Field(&c.Interval, validation.Min(time.Duration(0))),
		validation.Field(&c.Timeout, validation.When(c.Enabled, validation.Required, validation.Min(time.Duration(0)))),
	)
}

// NewDefaultConfig returns a Config pointing at dict.org.
func NewDefaultConfig() *Config {
	return &Config{
		LogLevel:    slog.LevelWarn,
		Servers:     []string{"dict.org"},
		DialTimeout: 10 * time.Second,
		Defaults: DefaultsConfig{
			Database: "*",
			Strategy: ".",
		},
		CircuitBreaker: CircuitBreakerConfig{
			MaxRequests: 1,
			Interval:    time.Minute,
			Timeout:     30 * time.Second,
		},
	}
}

// Validator is implemented by configurations that can check themselves.
type Validator interface {
	Validate() error
}

// Load reads a YAML file into target, expanding environment variables
// first, and validates the result.
func Load[T any](filename string, target *T) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", filename, err)
	}

	expanded := os.ExpandEnv(string(data))

	if err := yaml.Unmarshal([]byte(expanded), target); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}

	return validate(target)
}

// LoadOrDefault loads filename over the defaults. An empty filename skips
// the file and validates the defaults alone.
func LoadOrDefault(filename string) (*Config, error) {
	cfg := NewDefaultConfig()
	if filename == "" {
		return cfg, validate(cfg)
	}
	if err := Load(filename, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(target any) error {
	if validator, ok := target.(Validator); ok {
		if err := validator.Validate(); err != nil {
			return fmt.Errorf("config validation failed: %w", err)
		}
	}
	return nil
}
