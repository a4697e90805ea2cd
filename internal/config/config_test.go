package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigDefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Mode)
	assert.Equal(t, "12h", cfg.Session.TokenExpiration)
	assert.Equal(t, "en-US", cfg.I18n.DefaultLocale)

	scale, err := cfg.GradeScale()
	require.NoError(t, err)
	assert.Equal(t, 9, scale.Len())
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
logging:
  level: debug
  format: text
grading:
  scale:
    - symbol: A
      points: 4
    - symbol: B
      points: 3
    - symbol: F
      points: 0
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)

	scale, err := cfg.GradeScale()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "F"}, scale.Symbols())
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "server:\n  port: \"9090\"\n")
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("SESSION_SECRET", "from-env")
	t.Setenv("I18N_DEFAULT_LOCALE", "ar")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "from-env", cfg.Session.Secret)
	assert.Equal(t, "ar", cfg.I18n.DefaultLocale)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"bad duration":       "session:\n  idle_timeout: soon\n",
		"negative duration":  "session:\n  sweep_interval: -1m\n",
		"production secret":  "server:\n  mode: production\n",
		"scale out of range": "grading:\n  scale:\n    - symbol: A\n      points: 5\n",
		"bad locale":         "i18n:\n  default_locale: \"!!\"\n",
		"malformed yaml":     "server: [\n",
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}
