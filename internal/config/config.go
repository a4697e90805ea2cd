package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yigit/gpacalc/internal/domain/grading"
	"github.com/yigit/gpacalc/internal/pkg/validation"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port         string `yaml:"port" env:"SERVER_PORT"`
		Mode         string `yaml:"mode" env:"SERVER_MODE"`
		ReadTimeout  string `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
		WriteTimeout string `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
	} `yaml:"server"`

	Session struct {
		Secret          string `yaml:"secret" env:"SESSION_SECRET"`
		Issuer          string `yaml:"issuer" env:"SESSION_ISSUER"`
		TokenExpiration string `yaml:"token_expiration" env:"SESSION_TOKEN_EXPIRATION"`
		IdleTimeout     string `yaml:"idle_timeout" env:"SESSION_IDLE_TIMEOUT"`
		SweepInterval   string `yaml:"sweep_interval" env:"SESSION_SWEEP_INTERVAL"`
	} `yaml:"session"`

	Grading struct {
		Scale []grading.GradeEntry `yaml:"scale"`
	} `yaml:"grading"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	I18n struct {
		DefaultLocale string `yaml:"default_locale" env:"I18N_DEFAULT_LOCALE"`
	} `yaml:"i18n"`
}

// LoadConfig loads configuration from a file and environment variables.
// A missing file is not an error; defaults and environment apply.
func LoadConfig(configPath string) (*Config, error) {
	// Load default config with sane defaults
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	// Validate config
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.ReadTimeout = "10s"
	config.Server.WriteTimeout = "10s"

	// Session defaults
	config.Session.Issuer = "gpacalc"
	config.Session.TokenExpiration = "12h"
	config.Session.IdleTimeout = "2h"
	config.Session.SweepInterval = "5m"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"

	// I18n defaults
	config.I18n.DefaultLocale = "en-US"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if strings.TrimSpace(config.Server.Port) == "" {
		return fmt.Errorf("server port is required")
	}

	if config.IsProduction() && config.Session.Secret == "" {
		return fmt.Errorf("session secret is required in production mode")
	}

	durations := map[string]string{
		"server read timeout":      config.Server.ReadTimeout,
		"server write timeout":     config.Server.WriteTimeout,
		"session token expiration": config.Session.TokenExpiration,
		"session idle timeout":     config.Session.IdleTimeout,
		"session sweep interval":   config.Session.SweepInterval,
	}
	for name, value := range durations {
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid %s format: %w", name, err)
		}
		if d <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}

	if !validation.NewStringValidation(config.I18n.DefaultLocale).WithPattern(validation.CompiledPatterns.Locale).Validate() {
		return fmt.Errorf("invalid default locale %q", config.I18n.DefaultLocale)
	}

	if _, err := config.GradeScale(); err != nil {
		return fmt.Errorf("invalid grading scale: %w", err)
	}

	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return strings.ToLower(c.Server.Mode) == "production"
}

// GradeScale builds the configured grade scale, falling back to the
// default nine-tier scale when none is configured.
func (c *Config) GradeScale() (*grading.GradeScale, error) {
	if len(c.Grading.Scale) == 0 {
		return grading.DefaultScale(), nil
	}
	return grading.NewGradeScale(c.Grading.Scale)
}
