// cmd/info.go - Document inspection command
package cmd

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	"github.com/valpere/geoconv/internal"
	"github.com/valpere/geoconv/pkg/orbconv"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info [input]",
	Short: "Describe a document",
	Long: `Decode a document with the --from dialect and print a JSON summary: the
top-level type, validity, feature and geometry counts, coordinate dimension,
bounding box, planar area of polygons and planar length of paths.

Examples:
  geoconv info --input parcels.geojson
  geoconv info --from esri layer.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().StringP("input", "i", "", "input file path, URL or - for stdin (default: stdin)")
}

func runInfo(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	if input == "" && len(args) == 1 {
		input = args[0]
	}

	decoder, err := appConfig.NewCodec(appConfig.Codec.From)
	if err != nil {
		return err
	}

	response, err := fetchInput(cmd, input)
	if err != nil {
		return err
	}

	obj, err := decoder.Decode(string(response.Data))
	if err != nil {
		return internal.NewError(internal.ErrorCodeDecode, "failed to decode "+displayName(input), err)
	}

	summary, err := orbconv.Summarize(obj)
	if err != nil {
		return errors.Wrap(err, "failed to summarize")
	}

	data, err := json.Marshal(summary)
	if err != nil {
		return errors.Wrap(err, "failed to encode summary")
	}

	_, err = cmd.OutOrStdout().Write(pretty.Pretty(data))
	return err
}
