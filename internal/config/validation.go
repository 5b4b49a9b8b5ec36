// internal/config/validation.go - Configuration validation
package config

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/valpere/geoconv/internal"
	"github.com/valpere/geoconv/pkg/esri"
)

// Validate validates the configuration structure and values
func Validate(config *Config) error {
	if err := validateCodec(&config.Codec); err != nil {
		return errors.Wrap(err, "codec configuration invalid")
	}

	if err := validateSource(&config.Source); err != nil {
		return errors.Wrap(err, "source configuration invalid")
	}

	if err := validateOutput(&config.Output); err != nil {
		return errors.Wrap(err, "output configuration invalid")
	}

	if err := validateBatch(&config.Batch); err != nil {
		return errors.Wrap(err, "batch configuration invalid")
	}

	if err := validateLogging(&config.Logging); err != nil {
		return errors.Wrap(err, "logging configuration invalid")
	}

	return nil
}

// validateCodec validates dialect names and Esri options
func validateCodec(config *CodecConfig) error {
	if _, err := internal.ParseFormat(config.From); err != nil {
		return errors.Wrap(err, "from")
	}

	if _, err := internal.ParseFormat(config.To); err != nil {
		return errors.Wrap(err, "to")
	}

	return esri.ValidateOptions(&esri.Options{
		SpatialReference: config.SpatialReference,
		FeatureIDKey:     config.FeatureIDKey,
	})
}

// validateSource validates fetching parameters
func validateSource(config *SourceConfig) error {
	if config.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}

	if config.MaxRetries < 0 {
		return errors.New("max_retries must be non-negative")
	}

	if config.RetryDelay < 0 {
		return errors.New("retry_delay must be non-negative")
	}

	if config.UserAgent == "" {
		return errors.New("user_agent cannot be empty")
	}

	return nil
}

// validateOutput validates output configuration parameters
func validateOutput(config *OutputConfig) error {
	if config.Extension == "" {
		return errors.New("extension cannot be empty")
	}

	if !strings.HasPrefix(config.Extension, ".") {
		return errors.Errorf("extension must start with a dot, got %q", config.Extension)
	}

	return nil
}

// validateBatch validates batch processing configuration parameters
func validateBatch(config *BatchConfig) error {
	if config.Concurrency <= 0 {
		return errors.New("concurrency must be positive")
	}

	if config.Concurrency > 1000 {
		return errors.New("concurrency must not exceed 1000")
	}

	if config.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}

	if _, err := filepath.Match(config.Pattern, ""); err != nil {
		return errors.Wrapf(err, "invalid pattern %q", config.Pattern)
	}

	return nil
}

// validateLogging validates logging configuration parameters
func validateLogging(config *LoggingConfig) error {
	validLevels := []string{"trace", "debug", "info", "warn", "error", "fatal", "panic"}
	if !contains(validLevels, config.Level) {
		return errors.Errorf("invalid log level: %s, must be one of %v", config.Level, validLevels)
	}

	validFormats := []string{"text", "json"}
	if !contains(validFormats, config.Format) {
		return errors.Errorf("invalid log format: %s, must be one of %v", config.Format, validFormats)
	}

	return nil
}

// contains checks if a string slice contains a specific string (case-insensitive)
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if strings.EqualFold(s, item) {
			return true
		}
	}
	return false
}
