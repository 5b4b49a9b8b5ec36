// internal/batch/processor.go - Single job execution
package batch

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/valpere/geoconv/internal"
	"github.com/valpere/geoconv/internal/output"
	"github.com/valpere/geoconv/internal/source"
	"github.com/valpere/geoconv/pkg/codec"
)

// Processor fetches, converts and writes one document per job
type Processor struct {
	fetchers  FetcherCreator
	converter Converter
	config    *JobConfig
}

// NewProcessor creates a new job processor with the specified components
func NewProcessor(fetchers FetcherCreator, converter Converter, config *JobConfig) *Processor {
	return &Processor{
		fetchers:  fetchers,
		converter: converter,
		config:    config,
	}
}

// Process runs a job to completion. Failures are reported in the result.
func (p *Processor) Process(ctx context.Context, job *Job) *JobResult {
	start := time.Now()
	result := &JobResult{Job: job, Status: JobStatusPending}

	finish := func(err error) *JobResult {
		result.Duration = time.Since(start)
		switch {
		case err == nil:
			result.Status = JobStatusCompleted
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			result.Status = JobStatusCanceled
			result.Error = err
		default:
			result.Status = JobStatusFailed
			result.Error = err
		}
		return result
	}

	if err := ctx.Err(); err != nil {
		return finish(err)
	}

	fetcher, err := p.fetchers.CreateFetcher(job.Input)
	if err != nil {
		return finish(err)
	}

	response, err := fetcher.FetchWithRetry(ctx, source.NewRequest(job.Input))
	if err != nil {
		return finish(err)
	}
	result.BytesRead = int64(response.Size)

	converted, err := p.converter.Convert(string(response.Data))
	if err != nil {
		code := internal.ErrorCodeEncode
		if codec.IsDecodeError(err) {
			code = internal.ErrorCodeDecode
		}
		return finish(internal.NewError(code, "conversion of "+job.Input+" failed", err))
	}

	written, path, err := p.write(job.Output, converted)
	result.BytesWritten = written
	result.Output = path
	if err != nil {
		return finish(err)
	}

	log.Debug().
		Str("input", job.Input).
		Str("output", path).
		Int("bytes", response.Size).
		Dur("duration", time.Since(start)).
		Msg("converted")

	return finish(nil)
}

// write stores the converted text, returning the byte count and final path
func (p *Processor) write(path, text string) (int64, string, error) {
	writer, err := output.NewFileWriter(&output.WriterConfig{
		Pretty:      p.config.Pretty,
		Compression: p.config.Compression,
	}, path)
	if err != nil {
		return 0, path, err
	}

	if err := writer.Write(text); err != nil {
		writer.Close()
		return writer.Size(), writer.Name(), err
	}

	if err := writer.Close(); err != nil {
		return writer.Size(), writer.Name(), err
	}
	return writer.Size(), writer.Name(), nil
}
