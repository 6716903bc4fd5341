package config

import (
	"fmt"
	"strings"

	"github.com/bnema/lrucache/internal/logging"
)

// validateConfig performs validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateCache(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateOutput(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateCache(config *Config) []string {
	if config.Cache.Capacity <= 0 {
		return []string{fmt.Sprintf("cache.capacity must be greater than zero (got %d)", config.Cache.Capacity)}
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if _, err := logging.ParseLevel(config.Logging.Level); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level %q is not one of trace, debug, info, warn, error", config.Logging.Level))
	}
	if !logging.ValidFormat(config.Logging.Format) {
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format %q must be console or json", config.Logging.Format))
	}
	return validationErrors
}

func validateOutput(config *Config) []string {
	switch config.Output.Format {
	case OutputStyled, OutputPlain:
		return nil
	default:
		return []string{fmt.Sprintf("output.format %q must be styled or plain", config.Output.Format)}
	}
}
