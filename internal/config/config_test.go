// internal/config/config_test.go - Unit tests for configuration loading
package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valpere/geoconv/internal"
	"github.com/valpere/geoconv/pkg/esri"
	"github.com/valpere/geoconv/pkg/geojson"
)

func loadDefaults(t *testing.T) *Config {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Load()
	require.NoError(t, err)
	return cfg
}

func TestLoadDefaults(t *testing.T) {
	cfg := loadDefaults(t)

	assert.Equal(t, "geojson", cfg.Codec.From)
	assert.Equal(t, "esri", cfg.Codec.To)
	assert.Equal(t, `{"wkid":4326}`, cfg.Codec.SpatialReference)
	assert.Equal(t, "OBJECTID", cfg.Codec.FeatureIDKey)
	assert.Equal(t, 30*time.Second, cfg.Source.Timeout)
	assert.Equal(t, 3, cfg.Source.MaxRetries)
	assert.Equal(t, ".json", cfg.Output.Extension)
	assert.Equal(t, 10, cfg.Batch.Concurrency)
	assert.Equal(t, "*.json", cfg.Batch.Pattern)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("codec.from", "esri")
	viper.Set("codec.to", "geojson")
	viper.Set("batch.timeout", "90s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "esri", cfg.Codec.From)
	assert.Equal(t, 90*time.Second, cfg.Batch.Timeout)

	viper.Set("codec.to", "wkt")
	_, err = Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"unknown from", func(c *Config) { c.Codec.From = "kml" }, true},
		{"case-insensitive format", func(c *Config) { c.Codec.To = "ESRI" }, false},
		{"bad spatial reference", func(c *Config) { c.Codec.SpatialReference = "4326" }, true},
		{"empty id key", func(c *Config) { c.Codec.FeatureIDKey = "" }, true},
		{"zero timeout", func(c *Config) { c.Source.Timeout = 0 }, true},
		{"negative retries", func(c *Config) { c.Source.MaxRetries = -1 }, true},
		{"extension without dot", func(c *Config) { c.Output.Extension = "json" }, true},
		{"zero concurrency", func(c *Config) { c.Batch.Concurrency = 0 }, true},
		{"too much concurrency", func(c *Config) { c.Batch.Concurrency = 1001 }, true},
		{"bad pattern", func(c *Config) { c.Batch.Pattern = "[" }, true},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, true},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := loadDefaults(t)
			tt.mutate(cfg)
			err := Validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewCodec(t *testing.T) {
	cfg := loadDefaults(t)

	c, err := cfg.NewCodec("geojson")
	require.NoError(t, err)
	assert.IsType(t, &geojson.Codec{}, c)

	c, err = cfg.NewCodec("Esri")
	require.NoError(t, err)
	assert.IsType(t, &esri.Codec{}, c)

	_, err = cfg.NewCodec("wkb")
	assert.Error(t, err)
	assert.Equal(t, internal.ErrorCodeValidation, internal.ErrorCodeOf(err))

	cfg.Codec.FeatureIDKey = ""
	_, err = cfg.NewCodec("esri")
	assert.Equal(t, internal.ErrorCodeConfig, internal.ErrorCodeOf(err))
}

func TestConverter(t *testing.T) {
	cfg := loadDefaults(t)

	converter, err := cfg.Converter()
	require.NoError(t, err)

	out, err := converter.Convert(`{"type":"Point","coordinates":[-58.7109375,47.4609375]}`)
	require.NoError(t, err)
	assert.Equal(t, `{"x":-58.7109375,"y":47.4609375,"spatialReference":{"wkid":4326}}`, out)
}

func TestDetermineSourceType(t *testing.T) {
	tests := []struct {
		input string
		want  internal.SourceType
	}{
		{"", internal.SourceTypeStdin},
		{"-", internal.SourceTypeStdin},
		{"https://example.com/a.json", internal.SourceTypeHTTP},
		{"http://localhost:8080/a.json", internal.SourceTypeHTTP},
		{"data/a.json", internal.SourceTypeLocal},
		{"/tmp/a.json.gz", internal.SourceTypeLocal},
	}

	for _, tt := range tests {
		if got := DetermineSourceType(tt.input); got != tt.want {
			t.Errorf("DetermineSourceType(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}
