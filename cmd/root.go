// cmd/root.go - Root command implementation
package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/valpere/geoconv/internal/config"
	"github.com/valpere/geoconv/internal/logger"
)

var (
	cfgFile   string
	appConfig *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "geoconv",
	Short: "Convert geometry documents between GeoJSON and Esri JSON",
	Long: `geoconv converts geometry documents between the GeoJSON dialect and the
Esri (ArcGIS REST) JSON dialect. Points, paths, polygons with holes, their multi
variants, features and feature collections are supported in both directions.

Input can be a local file (optionally gzip-compressed), an HTTP(S) URL or stdin.

Examples:
  # GeoJSON file to Esri JSON on stdout
  geoconv convert --input parcels.geojson

  # Esri JSON from a feature service to a GeoJSON file
  geoconv convert --from esri --to geojson --input "https://example.com/query?f=json" --output out.geojson

  # Convert a directory with 20 workers
  geoconv batch --input-dir ./in --output-dir ./out --concurrency 20

  # Describe a document
  geoconv info --from esri --input layer.json`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return errors.Wrap(err, "failed to load configuration")
		}

		if err := logger.Setup(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Verbose); err != nil {
			return err
		}

		if used := viper.ConfigFileUsed(); used != "" {
			log.Debug().Str("file", used).Msg("using config file")
		}

		appConfig = cfg
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.geoconv.yaml)")

	// Codec flags
	rootCmd.PersistentFlags().String("from", "geojson", "input dialect (geojson, esri)")
	rootCmd.PersistentFlags().String("to", "esri", "output dialect (geojson, esri)")
	rootCmd.PersistentFlags().String("spatial-reference", `{"wkid":4326}`, "spatial reference JSON attached to Esri output, empty to omit")
	rootCmd.PersistentFlags().String("feature-id-key", "OBJECTID", "Esri attribute holding the feature id")

	// Output flags
	rootCmd.PersistentFlags().Bool("pretty", false, "pretty print JSON output")
	rootCmd.PersistentFlags().Bool("compression", false, "gzip output files")

	// Logging flags
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")

	// Processing flags
	rootCmd.PersistentFlags().Int("concurrency", 10, "number of concurrent conversions")
	rootCmd.PersistentFlags().Duration("timeout", 30*time.Second, "request timeout (HTTP source)")
	rootCmd.PersistentFlags().Int("retries", 3, "number of retry attempts")

	// Bind flags to viper
	bindFlag("codec.from", "from")
	bindFlag("codec.to", "to")
	bindFlag("codec.spatial_reference", "spatial-reference")
	bindFlag("codec.feature_id_key", "feature-id-key")
	bindFlag("output.pretty", "pretty")
	bindFlag("output.compression", "compression")
	bindFlag("logging.verbose", "verbose")
	bindFlag("logging.level", "log-level")
	bindFlag("logging.format", "log-format")
	bindFlag("batch.concurrency", "concurrency")
	bindFlag("source.timeout", "timeout")
	bindFlag("source.max_retries", "retries")
}

// bindFlag binds a persistent flag to a configuration key
func bindFlag(key, flag string) {
	cobra.CheckErr(viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".geoconv" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".geoconv")
	}

	// Environment variables, e.g. GEOCONV_CODEC_FROM
	viper.SetEnvPrefix("GEOCONV")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			cobra.CheckErr(errors.Wrap(err, "failed to read config file"))
		}
	}
}
