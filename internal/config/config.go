// Package config holds the run configuration for raggedy: defaults, an
// optional YAML file, environment overrides and validation.
package config

import (
	"bytes"
	stderrors "errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/raggedy/internal/foundation/errors"
)

// Config holds the run options for a scan. Start from Default.
type Config struct {
	LogLevel    string `yaml:"log_level"`    // debug, info, warn, error
	LogFormat   string `yaml:"log_format"`   // text or json
	Format      string `yaml:"format"`       // json or yaml
	Output      string `yaml:"output"`       // file path; empty means stdout
	MetricsFile string `yaml:"metrics_file"` // Prometheus textfile; empty disables metrics
}

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "text",
		Format:    "json",
	}
}

// Load reads a YAML configuration file on top of the defaults. Environment
// variables in the file are expanded and unknown keys are rejected.
func Load(configPath string) (*Config, error) {
	// #nosec G304 -- the path is supplied by the user on the command line.
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigError("configuration file not found").
				WithContext("path", configPath).
				Build()
		}
		return nil, errors.ConfigError("failed to read config file").
			WithContext("path", configPath).
			WithCause(err).
			Build()
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader([]byte(os.ExpandEnv(string(data)))))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, errors.ConfigError("failed to parse config file").
			WithContext("path", configPath).
			WithCause(err).
			Build()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
