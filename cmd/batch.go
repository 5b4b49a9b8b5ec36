// cmd/batch.go - Batch processing command
package cmd

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"github.com/valpere/geoconv/internal/batch"
	"github.com/valpere/geoconv/internal/source"
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Convert every matching document in a directory",
	Long: `Convert every document in --input-dir whose name matches --pattern and write
one output file per input into --output-dir. Subdirectories are mirrored when
--recursive is set. Conversions run concurrently on a bounded worker pool.

A failed document is logged and skipped. With --fail-on-error the first failure
cancels the conversions not yet finished and the command exits non-zero.

Examples:
  # Convert GeoJSON files to Esri JSON
  geoconv batch --input-dir ./geojson --output-dir ./esri --pattern "*.geojson"

  # Esri JSON tree back to GeoJSON, compressed, 20 workers
  geoconv batch --from esri --to geojson --input-dir ./esri --output-dir ./geojson \
    --recursive --compression --extension .geojson --concurrency 20`,
	Args: cobra.NoArgs,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	// Input flags
	batchCmd.Flags().String("input-dir", "", "directory holding the input documents")
	batchCmd.Flags().String("pattern", "*.json", "file name pattern of input documents")
	batchCmd.Flags().Bool("recursive", false, "scan subdirectories")

	// Output flags
	batchCmd.Flags().String("output-dir", "./output", "output directory")
	batchCmd.Flags().String("extension", ".json", "extension of output files")

	// Processing flags
	batchCmd.Flags().Bool("fail-on-error", false, "stop processing on first error")
	batchCmd.Flags().Duration("batch-timeout", 5*time.Minute, "time limit for the whole batch")

	// Progress flags
	batchCmd.Flags().Bool("progress", false, "show a progress line instead of per-file log entries")

	cobra.CheckErr(batchCmd.MarkFlagRequired("input-dir"))

	cobra.CheckErr(viper.BindPFlag("batch.pattern", batchCmd.Flags().Lookup("pattern")))
	cobra.CheckErr(viper.BindPFlag("batch.recursive", batchCmd.Flags().Lookup("recursive")))
	cobra.CheckErr(viper.BindPFlag("batch.fail_on_error", batchCmd.Flags().Lookup("fail-on-error")))
	cobra.CheckErr(viper.BindPFlag("batch.timeout", batchCmd.Flags().Lookup("batch-timeout")))
	cobra.CheckErr(viper.BindPFlag("output.directory", batchCmd.Flags().Lookup("output-dir")))
	cobra.CheckErr(viper.BindPFlag("output.extension", batchCmd.Flags().Lookup("extension")))
}

func runBatch(cmd *cobra.Command, args []string) error {
	inputDir, _ := cmd.Flags().GetString("input-dir")
	showProgress, _ := cmd.Flags().GetBool("progress")

	converter, err := appConfig.Converter()
	if err != nil {
		return err
	}

	jobConfig := &batch.JobConfig{
		Concurrency: appConfig.Batch.Concurrency,
		Timeout:     appConfig.Batch.Timeout,
		FailOnError: appConfig.Batch.FailOnError,
		Pretty:      appConfig.Output.Pretty,
		Compression: appConfig.Output.Compression,
		Extension:   appConfig.Output.Extension,
	}

	jobs, err := batch.PlanJobs(inputDir, appConfig.Output.Directory, appConfig.Batch.Pattern, appConfig.Batch.Recursive, jobConfig)
	if err != nil {
		return errors.Wrap(err, "failed to list input documents")
	}
	if len(jobs) == 0 {
		return errors.Errorf("no files in %s match %q", inputDir, appConfig.Batch.Pattern)
	}

	log.Info().
		Int("files", len(jobs)).
		Str("from", appConfig.Codec.From).
		Str("to", appConfig.Codec.To).
		Int("concurrency", jobConfig.Concurrency).
		Msg("starting batch")

	var reporter batch.ProgressReporter
	if showProgress {
		reporter = NewConsoleProgressReporter(cmd.ErrOrStderr())
	}

	factory := source.NewFetcherFactory(appConfig, cmd.InOrStdin())
	processor := batch.NewProcessor(factory, converter, jobConfig)
	coordinator := batch.NewCoordinator(processor, reporter, jobConfig)

	progress, err := coordinator.Run(cmd.Context(), jobs)
	if err != nil {
		if progress == nil {
			return err
		}
		failures := multierr.Errors(err)
		if jobConfig.FailOnError || progress.SuccessJobs == 0 {
			return errors.Wrapf(failures[0], "batch failed with %d error(s)", len(failures))
		}
	}

	return nil
}

// ConsoleProgressReporter draws a single progress line
type ConsoleProgressReporter struct {
	out        io.Writer
	lastUpdate time.Time
	mutex      sync.Mutex
}

// NewConsoleProgressReporter creates a new console progress reporter
func NewConsoleProgressReporter(out io.Writer) *ConsoleProgressReporter {
	return &ConsoleProgressReporter{out: out}
}

// ReportJobComplete redraws the progress line, at most once per second
func (r *ConsoleProgressReporter) ReportJobComplete(result *batch.JobResult, progress *batch.JobProgress) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if time.Since(r.lastUpdate) < time.Second && progress.ProcessedJobs < progress.TotalJobs {
		return
	}

	fmt.Fprintf(r.out, "\rProgress: %.1f%% (%d/%d files, %d failed, %.2f files/sec)",
		progress.CalculateProgress(), progress.ProcessedJobs, progress.TotalJobs,
		progress.FailedJobs, progress.Throughput)

	r.lastUpdate = time.Now()
}

// ReportBatchComplete prints the summary and the failed inputs
func (r *ConsoleProgressReporter) ReportBatchComplete(progress *batch.JobProgress, err error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	stats := progress.Stats()
	fmt.Fprintf(r.out, "\nProcessed: %d files\n", progress.ProcessedJobs)
	fmt.Fprintf(r.out, "Success: %d, Failed: %d\n", stats.ProcessedFiles, stats.FailedFiles)
	fmt.Fprintf(r.out, "Read: %d bytes, Written: %d bytes\n", stats.BytesRead, stats.BytesWritten)
	fmt.Fprintf(r.out, "Duration: %v\n", stats.Duration())
	fmt.Fprintf(r.out, "Throughput: %.2f files/second\n", stats.Throughput)

	for _, failure := range multierr.Errors(err) {
		fmt.Fprintf(r.out, "Failed: %v\n", failure)
	}
}
