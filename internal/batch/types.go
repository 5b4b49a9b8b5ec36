// internal/batch/types.go - Batch processing types
package batch

import (
	"context"
	"time"

	"github.com/valpere/geoconv/internal"
	"github.com/valpere/geoconv/internal/source"
)

// Job represents the conversion of one input document into one output file
type Job struct {
	ID     int    `json:"id"`
	Input  string `json:"input"`
	Output string `json:"output"`
}

// JobConfig contains configuration for a batch run
type JobConfig struct {
	Concurrency int           `json:"concurrency"`
	Timeout     time.Duration `json:"timeout"`
	FailOnError bool          `json:"fail_on_error"`
	Pretty      bool          `json:"pretty"`
	Compression bool          `json:"compression"`
	Extension   string        `json:"extension"`
}

// JobStatus represents the outcome of a job
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
	JobStatusCanceled  JobStatus = "canceled"
)

// JobResult represents the result of processing a job
type JobResult struct {
	Job          *Job          `json:"job"`
	Status       JobStatus     `json:"status"`
	BytesRead    int64         `json:"bytes_read"`
	BytesWritten int64         `json:"bytes_written"`
	Output       string        `json:"output,omitempty"`
	Duration     time.Duration `json:"duration"`
	Error        error         `json:"error,omitempty"`
}

// FetcherCreator selects a fetcher for an input location
type FetcherCreator interface {
	CreateFetcher(location string) (source.Fetcher, error)
}

// Converter turns document text of one dialect into another
type Converter interface {
	Convert(text string) (string, error)
}

// JobProcessor executes a single job
type JobProcessor interface {
	Process(ctx context.Context, job *Job) *JobResult
}

// ProgressReporter defines the interface for reporting batch progress
type ProgressReporter interface {
	ReportJobComplete(result *JobResult, progress *JobProgress)
	ReportBatchComplete(progress *JobProgress, err error)
}

// JobProgress tracks the progress of a batch run
type JobProgress struct {
	TotalJobs     int64     `json:"total_jobs"`
	ProcessedJobs int64     `json:"processed_jobs"`
	SuccessJobs   int64     `json:"success_jobs"`
	FailedJobs    int64     `json:"failed_jobs"`
	BytesRead     int64     `json:"bytes_read"`
	BytesWritten  int64     `json:"bytes_written"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Throughput    float64   `json:"throughput"`
}

// NewJobConfig creates a new job configuration with default values
func NewJobConfig() *JobConfig {
	return &JobConfig{
		Concurrency: 10,
		Timeout:     5 * time.Minute,
		FailOnError: false,
		Extension:   ".json",
	}
}

// NewJobProgress creates a new progress tracker for total jobs
func NewJobProgress(total int) *JobProgress {
	return &JobProgress{
		TotalJobs: int64(total),
		StartTime: time.Now(),
	}
}

// record folds a job result into the progress counters
func (p *JobProgress) record(result *JobResult) {
	p.ProcessedJobs++
	if result.Error != nil {
		p.FailedJobs++
	} else {
		p.SuccessJobs++
	}
	p.BytesRead += result.BytesRead
	p.BytesWritten += result.BytesWritten
	p.UpdateThroughput()
}

// CalculateProgress calculates the completion percentage
func (p *JobProgress) CalculateProgress() float64 {
	if p.TotalJobs == 0 {
		return 0
	}
	return float64(p.ProcessedJobs) / float64(p.TotalJobs) * 100
}

// UpdateThroughput updates the jobs-per-second rate based on elapsed time
func (p *JobProgress) UpdateThroughput() {
	elapsed := time.Since(p.StartTime)
	if elapsed.Seconds() > 0 && p.ProcessedJobs > 0 {
		p.Throughput = float64(p.ProcessedJobs) / elapsed.Seconds()
	}
}

// IsComplete reports whether a result is final
func (s JobStatus) IsComplete() bool {
	return s == JobStatusCompleted || s == JobStatusFailed || s == JobStatusCanceled
}

// String returns a string representation of the job status
func (s JobStatus) String() string {
	return string(s)
}

// Stats converts the progress into application processing statistics
func (p *JobProgress) Stats() *internal.ProcessingStats {
	return &internal.ProcessingStats{
		TotalFiles:     p.TotalJobs,
		ProcessedFiles: p.SuccessJobs,
		FailedFiles:    p.FailedJobs,
		BytesRead:      p.BytesRead,
		BytesWritten:   p.BytesWritten,
		StartTime:      p.StartTime,
		EndTime:        p.EndTime,
		Throughput:     p.Throughput,
	}
}
