package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// loadFromEnv overrides configuration sections with environment variables.
// Unset variables leave the file or default value in place.
func loadFromEnv(config *Config) error {
	sections := []struct {
		name   string
		target interface{}
	}{
		{"server", &config.Server},
		{"session", &config.Session},
		{"logging", &config.Logging},
		{"i18n", &config.I18n},
	}

	for _, section := range sections {
		if err := env.Parse(section.target); err != nil {
			return fmt.Errorf("parse %s env: %w", section.name, err)
		}
	}

	return nil
}
