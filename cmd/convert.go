// cmd/convert.go - Single document conversion command
package cmd

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/valpere/geoconv/internal"
	"github.com/valpere/geoconv/internal/output"
	"github.com/valpere/geoconv/internal/source"
	"github.com/valpere/geoconv/pkg/codec"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert [input]",
	Short: "Convert a single document between dialects",
	Long: `Convert a single geometry document from the --from dialect to the --to dialect.

The input is a file path, an HTTP(S) URL or "-" for stdin, given with --input or as
the only argument. Gzip-compressed input is detected and inflated.

Examples:
  # GeoJSON to Esri JSON on stdout
  geoconv convert --input parcels.geojson

  # Esri JSON from stdin to pretty GeoJSON
  cat layer.json | geoconv convert --from esri --to geojson --pretty

  # Omit the spatial reference and write a compressed file
  geoconv convert parcels.geojson --spatial-reference "" --output parcels.json --compression`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	// Input flags
	convertCmd.Flags().StringP("input", "i", "", "input file path, URL or - for stdin (default: stdin)")

	// Output flags
	convertCmd.Flags().StringP("output", "o", "", "output file path (default: stdout)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	if input == "" && len(args) == 1 {
		input = args[0]
	}

	converter, err := appConfig.Converter()
	if err != nil {
		return err
	}

	response, err := fetchInput(cmd, input)
	if err != nil {
		return err
	}

	log.Debug().
		Str("input", response.Request.Location).
		Int("bytes", response.Size).
		Bool("compressed", response.Compressed).
		Msg("input read")

	converted, err := converter.Convert(string(response.Data))
	if err != nil {
		code := internal.ErrorCodeEncode
		if codec.IsDecodeError(err) {
			code = internal.ErrorCodeDecode
		}
		return internal.NewError(code, "conversion failed", err)
	}

	writer, err := output.NewWriter(&output.WriterConfig{
		Pretty:      appConfig.Output.Pretty,
		Compression: appConfig.Output.Compression,
	}, outputPath, cmd.OutOrStdout())
	if err != nil {
		return errors.Wrap(err, "failed to create writer")
	}

	if err := writer.Write(converted); err != nil {
		writer.Close()
		return errors.Wrap(err, "failed to write output")
	}
	if err := writer.Close(); err != nil {
		return errors.Wrap(err, "failed to close output")
	}

	if fw, ok := writer.(*output.FileWriter); ok {
		log.Info().
			Str("from", appConfig.Codec.From).
			Str("to", appConfig.Codec.To).
			Str("output", fw.Name()).
			Int64("bytes", fw.Size()).
			Msg("document converted")
	}

	return nil
}

// fetchInput reads one document from a file, URL or stdin
func fetchInput(cmd *cobra.Command, input string) (*source.Response, error) {
	factory := source.NewFetcherFactory(appConfig, cmd.InOrStdin())
	fetcher, err := factory.CreateFetcher(input)
	if err != nil {
		return nil, err
	}

	// each HTTP attempt is bounded by source.timeout
	response, err := fetcher.FetchWithRetry(cmd.Context(), source.NewRequest(input))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", displayName(input))
	}
	return response, nil
}

// displayName names an input location in messages
func displayName(input string) string {
	if input == "" || input == "-" {
		return "stdin"
	}
	return input
}
