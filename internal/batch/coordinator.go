// internal/batch/coordinator.go - Batch coordination implementation
package batch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/multierr"

	"github.com/valpere/geoconv/internal"
	"github.com/valpere/geoconv/internal/output"
	"github.com/valpere/geoconv/internal/source"
)

// Coordinator runs jobs on a bounded worker pool and aggregates their outcome
type Coordinator struct {
	processor JobProcessor
	reporter  ProgressReporter
	config    *JobConfig
	mutex     sync.Mutex
}

// NewCoordinator creates a new batch coordinator. A nil reporter logs progress.
func NewCoordinator(processor JobProcessor, reporter ProgressReporter, config *JobConfig) *Coordinator {
	if reporter == nil {
		reporter = NewLogReporter()
	}
	return &Coordinator{
		processor: processor,
		reporter:  reporter,
		config:    config,
	}
}

// Run processes every job and returns the final progress together with the
// combined job errors. With FailOnError the first failure cancels the jobs not
// yet finished.
func (c *Coordinator) Run(ctx context.Context, jobs []*Job) (*JobProgress, error) {
	if err := c.validate(jobs); err != nil {
		return nil, internal.NewError(internal.ErrorCodeValidation, "batch validation failed", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	progress := NewJobProgress(len(jobs))
	var errs error

	p := pool.New().
		WithMaxGoroutines(c.config.Concurrency).
		WithContext(ctx)
	if c.config.FailOnError {
		p = p.WithCancelOnError()
	}

	for _, job := range jobs {
		p.Go(func(ctx context.Context) error {
			result := c.processor.Process(ctx, job)

			c.mutex.Lock()
			progress.record(result)
			if result.Error != nil {
				errs = multierr.Append(errs, fmt.Errorf("%s: %w", job.Input, result.Error))
			}
			c.reporter.ReportJobComplete(result, progress)
			c.mutex.Unlock()

			if c.config.FailOnError {
				return result.Error
			}
			return nil
		})
	}

	// job errors are already collected in errs
	_ = p.Wait()

	progress.EndTime = time.Now()
	progress.UpdateThroughput()
	c.reporter.ReportBatchComplete(progress, errs)

	return progress, errs
}

// validate checks the configuration and job list before running
func (c *Coordinator) validate(jobs []*Job) error {
	if c.config == nil {
		return fmt.Errorf("job configuration is required")
	}

	if len(jobs) == 0 {
		return fmt.Errorf("at least one job is required")
	}

	if c.config.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive")
	}

	if c.config.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}

	outputs := make(map[string]string, len(jobs))
	for i, job := range jobs {
		if job == nil || job.Input == "" || job.Output == "" {
			return fmt.Errorf("job %d is missing input or output", i)
		}
		if other, exists := outputs[job.Output]; exists {
			return fmt.Errorf("inputs %s and %s both write %s", other, job.Input, job.Output)
		}
		outputs[job.Output] = job.Input
	}

	return nil
}

// PlanJobs lists the files in inputDir matching pattern and pairs each with
// its output path below outputDir, mirroring subdirectories
func PlanJobs(inputDir, outputDir, pattern string, recursive bool, config *JobConfig) ([]*Job, error) {
	files, err := source.ListFiles(inputDir, pattern, recursive)
	if err != nil {
		return nil, err
	}

	jobs := make([]*Job, 0, len(files))
	for i, file := range files {
		jobs = append(jobs, &Job{
			ID:     i,
			Input:  file,
			Output: output.RelativeOutputPath(file, inputDir, outputDir, config.Extension, config.Compression),
		})
	}
	return jobs, nil
}

// LogReporter reports progress through the global zerolog logger
type LogReporter struct{}

// NewLogReporter creates a new zerolog progress reporter
func NewLogReporter() *LogReporter {
	return &LogReporter{}
}

// ReportJobComplete logs one finished job
func (r *LogReporter) ReportJobComplete(result *JobResult, progress *JobProgress) {
	if result.Error != nil {
		log.Warn().
			Err(result.Error).
			Str("input", result.Job.Input).
			Str("status", result.Status.String()).
			Msg("conversion failed")
		return
	}

	log.Info().
		Str("input", result.Job.Input).
		Str("output", result.Output).
		Int64("processed", progress.ProcessedJobs).
		Int64("total", progress.TotalJobs).
		Float64("percent", progress.CalculateProgress()).
		Msg("conversion complete")
}

// ReportBatchComplete logs the batch summary
func (r *LogReporter) ReportBatchComplete(progress *JobProgress, err error) {
	event := log.Info()
	if err != nil {
		event = log.Warn().Int("errors", len(multierr.Errors(err)))
	}

	event.
		Int64("total", progress.TotalJobs).
		Int64("succeeded", progress.SuccessJobs).
		Int64("failed", progress.FailedJobs).
		Int64("bytes_read", progress.BytesRead).
		Int64("bytes_written", progress.BytesWritten).
		Dur("duration", progress.EndTime.Sub(progress.StartTime)).
		Float64("throughput", progress.Throughput).
		Msg("batch complete")
}
