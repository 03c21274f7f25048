package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/raggedy/internal/logfields"
)

// Environment variables that override configuration values.
const (
	EnvLogLevel    = "RAGGEDY_LOG_LEVEL"
	EnvLogFormat   = "RAGGEDY_LOG_FORMAT"
	EnvFormat      = "RAGGEDY_FORMAT"
	EnvMetricsFile = "RAGGEDY_METRICS_FILE"
)

var envFiles = []string{".env", ".env.local"}

// LoadEnvFiles loads .env and .env.local from dir, normally the directory of
// the config file. Variables already present in the process environment are
// kept. Missing files are ignored. It returns the files that were loaded.
func LoadEnvFiles(dir string) []string {
	var loaded []string
	for _, name := range envFiles {
		envPath := filepath.Join(dir, name)
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Load(envPath); err != nil {
			slog.Warn("Failed to load env file", logfields.Path(envPath), logfields.Error(err))
			continue
		}
		loaded = append(loaded, envPath)
	}
	return loaded
}

// ApplyEnv overrides fields from RAGGEDY_* variables that are set and non-empty.
func (c *Config) ApplyEnv() {
	overrides := []struct {
		key    string
		target *string
	}{
		{EnvLogLevel, &c.LogLevel},
		{EnvLogFormat, &c.LogFormat},
		{EnvFormat, &c.Format},
		{EnvMetricsFile, &c.MetricsFile},
	}
	for _, o := range overrides {
		if v := os.Getenv(o.key); v != "" {
			*o.target = v
		}
	}
}
