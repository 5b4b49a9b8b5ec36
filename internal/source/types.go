// internal/source/types.go - Input document fetching types
package source

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/valpere/geoconv/internal"
)

// Request identifies one input document: a file path, a URL or "-" for stdin
type Request struct {
	Location string            `json:"location"`
	Headers  map[string]string `json:"headers,omitempty"`
}

// Response carries the fetched document text
type Response struct {
	Request    *Request      `json:"request"`
	Data       []byte        `json:"data"`
	Headers    http.Header   `json:"headers"`
	StatusCode int           `json:"status_code"`
	Size       int           `json:"size"`
	FetchTime  time.Duration `json:"fetch_time"`
	Compressed bool          `json:"compressed"`
	Error      error         `json:"error,omitempty"`
}

// Fetcher defines the interface for reading input documents
type Fetcher interface {
	Fetch(ctx context.Context, request *Request) (*Response, error)
	FetchWithRetry(ctx context.Context, request *Request) (*Response, error)
}

// NewRequest creates a request for a location
func NewRequest(location string) *Request {
	return &Request{
		Location: location,
		Headers:  make(map[string]string),
	}
}

var gzipMagic = []byte{0x1f, 0x8b}

// isGzip reports whether data starts with the gzip magic number
func isGzip(data []byte) bool {
	return bytes.HasPrefix(data, gzipMagic)
}

// decompress inflates gzip data and returns other data unchanged
func decompress(data []byte) ([]byte, bool, error) {
	if !isGzip(data) {
		return data, false, nil
	}

	reader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, true, internal.NewError(internal.ErrorCodeValidation, "failed to create gzip reader", err)
	}
	defer reader.Close()

	inflated, err := io.ReadAll(reader)
	if err != nil {
		return nil, true, internal.NewError(internal.ErrorCodeValidation, "failed to inflate gzip data", err)
	}
	return inflated, true, nil
}

// sleep waits for d or until ctx is done
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
