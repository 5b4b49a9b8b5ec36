// internal/config/config.go - Configuration management
package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/valpere/geoconv/internal"
	"github.com/valpere/geoconv/pkg/codec"
	"github.com/valpere/geoconv/pkg/esri"
	"github.com/valpere/geoconv/pkg/geojson"
)

// Config represents the complete application configuration
type Config struct {
	Codec   CodecConfig   `mapstructure:"codec"`
	Source  SourceConfig  `mapstructure:"source"`
	Output  OutputConfig  `mapstructure:"output"`
	Batch   BatchConfig   `mapstructure:"batch"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CodecConfig selects the conversion direction and Esri encoding options
type CodecConfig struct {
	From             string `mapstructure:"from"`
	To               string `mapstructure:"to"`
	SpatialReference string `mapstructure:"spatial_reference"`
	FeatureIDKey     string `mapstructure:"feature_id_key"`
}

// SourceConfig controls how input documents are fetched
type SourceConfig struct {
	Timeout    time.Duration     `mapstructure:"timeout"`
	MaxRetries int               `mapstructure:"max_retries"`
	RetryDelay time.Duration     `mapstructure:"retry_delay"`
	UserAgent  string            `mapstructure:"user_agent"`
	Headers    map[string]string `mapstructure:"headers"`
}

// OutputConfig contains output formatting configuration
type OutputConfig struct {
	Directory   string `mapstructure:"directory"`
	Extension   string `mapstructure:"extension"`
	Compression bool   `mapstructure:"compression"`
	Pretty      bool   `mapstructure:"pretty"`
}

// BatchConfig contains batch processing configuration
type BatchConfig struct {
	Concurrency int           `mapstructure:"concurrency"`
	Timeout     time.Duration `mapstructure:"timeout"`
	FailOnError bool          `mapstructure:"fail_on_error"`
	Pattern     string        `mapstructure:"pattern"`
	Recursive   bool          `mapstructure:"recursive"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Format  string `mapstructure:"format"`
	Verbose bool   `mapstructure:"verbose"`
}

// Load loads configuration from defaults, the config file, environment and
// bound flags, in increasing priority
func Load() (*Config, error) {
	setDefaults()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal configuration")
	}

	if err := Validate(&config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return &config, nil
}

// setDefaults configures default values for all configuration options
func setDefaults() {
	// Codec defaults
	viper.SetDefault("codec.from", string(internal.FormatGeoJSON))
	viper.SetDefault("codec.to", string(internal.FormatEsri))
	viper.SetDefault("codec.spatial_reference", esri.DefaultSpatialReference)
	viper.SetDefault("codec.feature_id_key", esri.DefaultFeatureIDKey)

	// Source defaults
	viper.SetDefault("source.timeout", 30*time.Second)
	viper.SetDefault("source.max_retries", 3)
	viper.SetDefault("source.retry_delay", time.Second)
	viper.SetDefault("source.user_agent", "geoconv/1.0")

	// Output defaults
	viper.SetDefault("output.extension", ".json")
	viper.SetDefault("output.pretty", false)
	viper.SetDefault("output.compression", false)

	// Batch defaults
	viper.SetDefault("batch.concurrency", 10)
	viper.SetDefault("batch.timeout", 5*time.Minute)
	viper.SetDefault("batch.fail_on_error", false)
	viper.SetDefault("batch.pattern", "*.json")
	viper.SetDefault("batch.recursive", false)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
	viper.SetDefault("logging.verbose", false)
}

// EsriOptions returns the Esri codec options carried by the configuration
func (c *Config) EsriOptions() *esri.Options {
	return &esri.Options{
		SpatialReference: c.Codec.SpatialReference,
		FeatureIDKey:     c.Codec.FeatureIDKey,
	}
}

// NewCodec builds the codec for a dialect name
func (c *Config) NewCodec(name string) (codec.Codec, error) {
	format, err := internal.ParseFormat(name)
	if err != nil {
		return nil, err
	}

	switch format {
	case internal.FormatGeoJSON:
		return geojson.NewCodec(), nil
	case internal.FormatEsri:
		esriCodec, err := esri.NewCodecWithOptions(c.EsriOptions())
		if err != nil {
			return nil, internal.NewError(internal.ErrorCodeConfig, "invalid esri options", err)
		}
		return esriCodec, nil
	}
	return nil, internal.NewError(internal.ErrorCodeConfig, "unsupported format "+name, nil)
}

// Converter builds the decode-then-encode pipeline from codec.from to codec.to
func (c *Config) Converter() (*codec.Converter, error) {
	from, err := c.NewCodec(c.Codec.From)
	if err != nil {
		return nil, errors.Wrap(err, "source codec")
	}
	to, err := c.NewCodec(c.Codec.To)
	if err != nil {
		return nil, errors.Wrap(err, "target codec")
	}
	return codec.NewConverter(from, to), nil
}

// DetermineSourceType classifies an input argument: empty or "-" is stdin,
// an http(s) URL is remote, anything else is a local path
func DetermineSourceType(input string) internal.SourceType {
	switch {
	case input == "" || input == "-":
		return internal.SourceTypeStdin
	case strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://"):
		return internal.SourceTypeHTTP
	default:
		return internal.SourceTypeLocal
	}
}
