// internal/source/local_fetcher.go - Local file and stdin fetching
package source

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/valpere/geoconv/internal"
)

// LocalFetcher implements the Fetcher interface for local file system access
type LocalFetcher struct {
	maxRetries int
}

// NewLocalFetcher creates a new local file fetcher
func NewLocalFetcher() *LocalFetcher {
	return &LocalFetcher{maxRetries: 2}
}

// Fetch reads a file, inflating it when it is gzip-compressed
func (f *LocalFetcher) Fetch(ctx context.Context, request *Request) (*Response, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return &Response{Request: request, Error: err}, err
	}

	filePath := request.Location
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		code := internal.ErrorCodeFileSystem
		if errors.Is(err, fs.ErrNotExist) {
			code = internal.ErrorCodeNotFound
		}
		statErr := internal.NewError(code, fmt.Sprintf("cannot access file: %s", filePath), err)
		return &Response{
			Request:   request,
			FetchTime: time.Since(start),
			Error:     statErr,
		}, statErr
	}

	if !fileInfo.Mode().IsRegular() {
		typeErr := internal.NewError(internal.ErrorCodeValidation, fmt.Sprintf("path is not a regular file: %s", filePath), nil)
		return &Response{
			Request:   request,
			FetchTime: time.Since(start),
			Error:     typeErr,
		}, typeErr
	}

	raw, err := os.ReadFile(filePath)
	if err != nil {
		readErr := internal.NewError(internal.ErrorCodeFileSystem, fmt.Sprintf("failed to read file: %s", filePath), err)
		return &Response{
			Request:   request,
			FetchTime: time.Since(start),
			Error:     readErr,
		}, readErr
	}

	return buildResponse(request, raw, start)
}

// FetchWithRetry retries transient file system errors
func (f *LocalFetcher) FetchWithRetry(ctx context.Context, request *Request) (*Response, error) {
	var lastResponse *Response
	var lastErr error

	for attempt := 0; attempt <= f.maxRetries; attempt++ {
		if attempt > 0 {
			if err := sleep(ctx, time.Duration(attempt*100)*time.Millisecond); err != nil {
				return lastResponse, errors.Wrap(err, "retry cancelled")
			}
		}

		response, err := f.Fetch(ctx, request)
		if err == nil {
			return response, nil
		}

		lastResponse = response
		lastErr = err

		if !shouldRetryLocal(err) {
			break
		}
	}

	return lastResponse, lastErr
}

// shouldRetryLocal retries only generic file system errors
func shouldRetryLocal(err error) bool {
	return internal.ErrorCodeOf(err) == internal.ErrorCodeFileSystem
}

// StdinFetcher reads a single document from a reader, normally os.Stdin
type StdinFetcher struct {
	reader io.Reader
}

// NewStdinFetcher creates a fetcher over r
func NewStdinFetcher(r io.Reader) *StdinFetcher {
	return &StdinFetcher{reader: r}
}

// Fetch reads the whole stream
func (f *StdinFetcher) Fetch(ctx context.Context, request *Request) (*Response, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return &Response{Request: request, Error: err}, err
	}

	raw, err := io.ReadAll(f.reader)
	if err != nil {
		readErr := internal.NewError(internal.ErrorCodeFileSystem, "failed to read standard input", err)
		return &Response{Request: request, Error: readErr}, readErr
	}

	return buildResponse(request, raw, start)
}

// FetchWithRetry is Fetch; a consumed stream cannot be read again
func (f *StdinFetcher) FetchWithRetry(ctx context.Context, request *Request) (*Response, error) {
	return f.Fetch(ctx, request)
}

func buildResponse(request *Request, raw []byte, start time.Time) (*Response, error) {
	data, compressed, err := decompress(raw)
	if err != nil {
		return &Response{
			Request:   request,
			FetchTime: time.Since(start),
			Error:     err,
		}, err
	}

	return &Response{
		Request:    request,
		Data:       data,
		StatusCode: 200,
		Size:       len(data),
		FetchTime:  time.Since(start),
		Compressed: compressed,
	}, nil
}

// ListFiles returns regular files under dir whose base name matches
// pattern, sorted by path. Subdirectories are scanned only when recursive.
func ListFiles(dir, pattern string, recursive bool) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, internal.NewError(internal.ErrorCodeNotFound, fmt.Sprintf("input directory not found: %s", dir), err)
	}
	if !info.IsDir() {
		return nil, internal.NewError(internal.ErrorCodeValidation, fmt.Sprintf("not a directory: %s", dir), nil)
	}

	var files []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != dir && !recursive {
				return filepath.SkipDir
			}
			return nil
		}

		matched, err := filepath.Match(pattern, d.Name())
		if err != nil {
			return err
		}
		if matched && d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, internal.NewError(internal.ErrorCodeFileSystem, "failed to scan input directory", err)
	}

	sort.Strings(files)
	return files, nil
}
