// internal/batch/batch_test.go - Unit tests for batch conversion
package batch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/valpere/geoconv/internal"
	"github.com/valpere/geoconv/internal/config"
	"github.com/valpere/geoconv/internal/source"
	"github.com/valpere/geoconv/pkg/codec"
	"github.com/valpere/geoconv/pkg/esri"
	"github.com/valpere/geoconv/pkg/geojson"
)

type recordingReporter struct {
	mu       sync.Mutex
	results  []*JobResult
	finished *JobProgress
	err      error
}

func (r *recordingReporter) ReportJobComplete(result *JobResult, _ *JobProgress) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, result)
}

func (r *recordingReporter) ReportBatchComplete(progress *JobProgress, err error) {
	r.finished = progress
	r.err = err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func newTestProcessor(cfg *JobConfig) *Processor {
	factory := source.NewFetcherFactory(&config.Config{}, nil)
	converter := codec.NewConverter(geojson.NewCodec(), esri.NewCodec())
	return NewProcessor(factory, converter, cfg)
}

func TestRunConvertsDirectory(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()

	writeFile(t, filepath.Join(in, "point.geojson"), `{"type":"Point","coordinates":[1,2]}`)
	writeFile(t, filepath.Join(in, "nested", "line.geojson"), `{"type":"LineString","coordinates":[[0,0],[1,1]]}`)
	writeFile(t, filepath.Join(in, "broken.geojson"), `{"type":"Feature"}`)
	writeFile(t, filepath.Join(in, "ignored.txt"), `not json`)

	cfg := NewJobConfig()
	cfg.Concurrency = 2

	jobs, err := PlanJobs(in, out, "*.geojson", true, cfg)
	require.NoError(t, err)
	require.Len(t, jobs, 3)

	reporter := &recordingReporter{}
	progress, err := NewCoordinator(newTestProcessor(cfg), reporter, cfg).Run(context.Background(), jobs)

	require.Error(t, err)
	errs := multierr.Errors(err)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "broken.geojson")
	assert.Contains(t, errs[0].Error(), "geometry key not found")
	assert.Equal(t, internal.ErrorCodeDecode, internal.ErrorCodeOf(errs[0]))

	assert.Equal(t, int64(3), progress.TotalJobs)
	assert.Equal(t, int64(3), progress.ProcessedJobs)
	assert.Equal(t, int64(2), progress.SuccessJobs)
	assert.Equal(t, int64(1), progress.FailedJobs)
	assert.Equal(t, 100.0, progress.CalculateProgress())
	assert.False(t, progress.EndTime.IsZero())
	assert.Len(t, reporter.results, 3)
	assert.Same(t, progress, reporter.finished)

	data, err := os.ReadFile(filepath.Join(out, "point.json"))
	require.NoError(t, err)
	assert.Equal(t, `{"x":1,"y":2,"spatialReference":{"wkid":4326}}`+"\n", string(data))

	data, err = os.ReadFile(filepath.Join(out, "nested", "line.json"))
	require.NoError(t, err)
	assert.Equal(t, `{"paths":[[[0,0],[1,1]]],"spatialReference":{"wkid":4326}}`+"\n", string(data))

	_, err = os.Stat(filepath.Join(out, "broken.json"))
	assert.True(t, os.IsNotExist(err))

	stats := progress.Stats()
	assert.Equal(t, int64(2), stats.ProcessedFiles)
	assert.Equal(t, int64(1), stats.FailedFiles)
	assert.Equal(t, progress.BytesWritten, stats.BytesWritten)
	assert.Positive(t, stats.BytesRead)
}

func TestProcessResultStatus(t *testing.T) {
	in := t.TempDir()
	writeFile(t, filepath.Join(in, "a.geojson"), `{"type":"Point","coordinates":[1,2]}`)

	cfg := NewJobConfig()
	cfg.Compression = true
	p := newTestProcessor(cfg)

	job := &Job{Input: filepath.Join(in, "a.geojson"), Output: filepath.Join(in, "out", "a.json")}
	result := p.Process(context.Background(), job)
	require.NoError(t, result.Error)
	assert.Equal(t, JobStatusCompleted, result.Status)
	assert.Equal(t, job.Output+".gz", result.Output)
	assert.True(t, result.Status.IsComplete())

	missing := p.Process(context.Background(), &Job{Input: filepath.Join(in, "nope.geojson"), Output: filepath.Join(in, "x.json")})
	assert.Equal(t, JobStatusFailed, missing.Status)
	assert.Equal(t, internal.ErrorCodeNotFound, internal.ErrorCodeOf(missing.Error))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	canceled := p.Process(ctx, job)
	assert.Equal(t, JobStatusCanceled, canceled.Status)
}

type stubProcessor struct {
	calls atomic.Int64
	fail  string
}

func (s *stubProcessor) Process(ctx context.Context, job *Job) *JobResult {
	s.calls.Add(1)
	if job.Input == s.fail {
		return &JobResult{Job: job, Status: JobStatusFailed, Error: internal.NewError(internal.ErrorCodeDecode, "bad input", nil)}
	}
	select {
	case <-ctx.Done():
		return &JobResult{Job: job, Status: JobStatusCanceled, Error: ctx.Err()}
	case <-time.After(10 * time.Millisecond):
	}
	return &JobResult{Job: job, Status: JobStatusCompleted, BytesWritten: 1}
}

func stubJobs(n int) []*Job {
	jobs := make([]*Job, n)
	for i := range jobs {
		name := string(rune('a' + i))
		jobs[i] = &Job{ID: i, Input: name, Output: name + ".json"}
	}
	return jobs
}

func TestRunContinuesPastFailures(t *testing.T) {
	cfg := NewJobConfig()
	cfg.Concurrency = 1
	stub := &stubProcessor{fail: "a"}

	progress, err := NewCoordinator(stub, &recordingReporter{}, cfg).Run(context.Background(), stubJobs(4))
	require.Error(t, err)
	assert.Equal(t, int64(4), stub.calls.Load())
	assert.Equal(t, int64(3), progress.SuccessJobs)
	assert.Equal(t, int64(3), progress.BytesWritten)
}

func TestRunFailOnErrorCancelsRemaining(t *testing.T) {
	cfg := NewJobConfig()
	cfg.Concurrency = 1
	cfg.FailOnError = true
	stub := &stubProcessor{fail: "a"}

	progress, err := NewCoordinator(stub, &recordingReporter{}, cfg).Run(context.Background(), stubJobs(4))
	require.Error(t, err)
	assert.Equal(t, int64(0), progress.SuccessJobs)
	assert.Equal(t, int64(4), progress.FailedJobs)
	assert.Equal(t, internal.ErrorCodeDecode, internal.ErrorCodeOf(multierr.Errors(err)[0]))
}

func TestRunValidation(t *testing.T) {
	cfg := NewJobConfig()
	c := NewCoordinator(&stubProcessor{}, nil, cfg)

	_, err := c.Run(context.Background(), nil)
	assert.Equal(t, internal.ErrorCodeValidation, internal.ErrorCodeOf(err))

	_, err = c.Run(context.Background(), []*Job{{Input: "a", Output: "x.json"}, {Input: "b", Output: "x.json"}})
	assert.Error(t, err)

	cfg.Concurrency = 0
	_, err = c.Run(context.Background(), stubJobs(1))
	assert.Error(t, err)
}

func TestPlanJobs(t *testing.T) {
	in := t.TempDir()
	writeFile(t, filepath.Join(in, "a.json"), `{}`)
	writeFile(t, filepath.Join(in, "sub", "b.json"), `{}`)

	cfg := NewJobConfig()
	cfg.Extension = ".esri.json"

	jobs, err := PlanJobs(in, "out", "*.json", false, cfg)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, filepath.Join("out", "a.esri.json"), jobs[0].Output)

	_, err = PlanJobs(filepath.Join(in, "missing"), "out", "*.json", false, cfg)
	assert.Equal(t, internal.ErrorCodeNotFound, internal.ErrorCodeOf(err))
}
