package config

import (
	sderrors "github.com/typemark/shapediff/internal/errors"
)

// Validate checks a defaulted configuration for invalid values.
// Returns non-fatal warnings and the first fatal error, if any.
func Validate(cfg *Config) ([]string, error) {
	var warnings []string

	if cfg.Suite.Tolerance != nil && *cfg.Suite.Tolerance < 0 {
		return warnings, sderrors.Configf("tolerance must be non-negative, got %v", *cfg.Suite.Tolerance)
	}
	if cfg.Suite.Size <= 0 {
		return warnings, sderrors.Configf("size must be positive, got %v", cfg.Suite.Size)
	}
	if cfg.Suite.Timeout < 0 {
		return warnings, sderrors.Configf("timeout must be non-negative, got %v", cfg.Suite.Timeout)
	}

	for _, text := range cfg.Suite.Texts {
		if text == "" {
			return warnings, sderrors.Config("texts must not contain empty strings")
		}
	}

	if cfg.Suite.Tolerance != nil && *cfg.Suite.Tolerance == 0 {
		warnings = append(warnings, "tolerance is 0: numeric leaves must match exactly")
	}
	if cfg.Suite.Timeout == 0 {
		warnings = append(warnings, "timeout is 0: producer invocations may hang indefinitely")
	}

	return warnings, nil
}
