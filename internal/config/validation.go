package config

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/raggedy/internal/foundation/errors"
	"git.home.luguber.info/inful/raggedy/internal/foundation/normalization"
)

var (
	logLevels = normalization.NewNormalizer(map[string]string{
		"debug":   "debug",
		"info":    "info",
		"warn":    "warn",
		"warning": "warn",
		"error":   "error",
	})
	logFormats = normalization.NewNormalizer(map[string]string{
		"text": "text",
		"json": "json",
	})
	formats = normalization.NewNormalizer(map[string]string{
		"json": "json",
		"yaml": "yaml",
		"yml":  "yaml",
	})
)

// Validate checks every enumerated option and rewrites accepted spellings to
// their canonical form (e.g. "WARNING" becomes "warn", "yml" becomes "yaml").
func (c *Config) Validate() error {
	fields := []struct {
		name   string
		target *string
		n      *normalization.Normalizer[string]
	}{
		{"log_level", &c.LogLevel, logLevels},
		{"log_format", &c.LogFormat, logFormats},
		{"format", &c.Format, formats},
	}
	for _, f := range fields {
		canonical, ok := f.n.Normalize(*f.target)
		if !ok {
			return errors.ValidationError(fmt.Sprintf("invalid %s %q (allowed: %s)",
				f.name, *f.target, strings.Join(f.n.ValidKeys(), ", "))).
				WithContext("field", f.name).
				Build()
		}
		*f.target = canonical
	}
	return nil
}
