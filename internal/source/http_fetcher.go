// internal/source/http_fetcher.go - HTTP document fetching with retries
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/valpere/geoconv/internal"
	"github.com/valpere/geoconv/internal/config"
)

// HTTPFetcher implements the Fetcher interface using HTTP requests
type HTTPFetcher struct {
	client *http.Client
	config *config.SourceConfig
}

// NewHTTPFetcher creates a new HTTP-based document fetcher
func NewHTTPFetcher(cfg *config.Config) *HTTPFetcher {
	transport := &http.Transport{
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		MaxConnsPerHost:     cfg.Batch.Concurrency,
	}

	return &HTTPFetcher{
		client: &http.Client{
			Timeout:   cfg.Source.Timeout,
			Transport: transport,
		},
		config: &cfg.Source,
	}
}

// Fetch retrieves a single document. Gzip bodies are inflated whether the
// server flags them with Content-Encoding or not.
func (f *HTTPFetcher) Fetch(ctx context.Context, request *Request) (*Response, error) {
	start := time.Now()

	req, err := f.buildHTTPRequest(ctx, request)
	if err != nil {
		buildErr := internal.NewError(internal.ErrorCodeValidation, "failed to build HTTP request", err)
		return &Response{Request: request, Error: buildErr}, buildErr
	}

	resp, err := f.client.Do(req)
	if err != nil {
		netErr := internal.NewError(internal.ErrorCodeNetwork, "HTTP request failed", err)
		return &Response{
			Request:   request,
			FetchTime: time.Since(start),
			Error:     netErr,
		}, netErr
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		readErr := internal.NewError(internal.ErrorCodeNetwork, "failed to read response body", err)
		return &Response{
			Request:    request,
			StatusCode: resp.StatusCode,
			Headers:    resp.Header,
			FetchTime:  time.Since(start),
			Error:      readErr,
		}, readErr
	}

	response := &Response{
		Request:    request,
		Headers:    resp.Header,
		StatusCode: resp.StatusCode,
		FetchTime:  time.Since(start),
	}

	if resp.StatusCode != http.StatusOK {
		code := internal.ErrorCodeNetwork
		if resp.StatusCode == http.StatusNotFound {
			code = internal.ErrorCodeNotFound
		}
		response.Error = internal.NewError(code, fmt.Sprintf("HTTP %d: %s", resp.StatusCode, resp.Status), nil)
		return response, response.Error
	}

	data, compressed, err := decompress(raw)
	if err != nil {
		response.Error = err
		return response, err
	}

	response.Data = data
	response.Size = len(data)
	response.Compressed = compressed
	return response, nil
}

// FetchWithRetry retries network failures and server errors with quadratic
// backoff
func (f *HTTPFetcher) FetchWithRetry(ctx context.Context, request *Request) (*Response, error) {
	var lastResponse *Response
	var lastErr error

	for attempt := 0; attempt <= f.config.MaxRetries; attempt++ {
		if attempt > 0 {
			backoffDelay := time.Duration(attempt*attempt) * f.config.RetryDelay
			log.Debug().
				Str("url", request.Location).
				Int("attempt", attempt).
				Dur("backoff", backoffDelay).
				Msg("Retrying request")
			if err := sleep(ctx, backoffDelay); err != nil {
				return lastResponse, errors.Wrap(err, "retry cancelled")
			}
		}

		response, err := f.Fetch(ctx, request)
		if err == nil {
			return response, nil
		}

		lastResponse = response
		lastErr = err

		if !f.shouldRetry(response) {
			break
		}
	}

	return lastResponse, errors.Wrapf(lastErr, "failed after %d attempts", f.config.MaxRetries+1)
}

// buildHTTPRequest constructs an HTTP request for a document URL
func (f *HTTPFetcher) buildHTTPRequest(ctx context.Context, request *Request) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, request.Location, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create HTTP request")
	}

	req.Header.Set("Accept", "application/json, application/geo+json")
	req.Header.Set("User-Agent", f.config.UserAgent)

	for key, value := range f.config.Headers {
		req.Header.Set(key, value)
	}

	for key, value := range request.Headers {
		req.Header.Set(key, value)
	}

	return req, nil
}

// shouldRetry determines whether a failed request should be retried
func (f *HTTPFetcher) shouldRetry(response *Response) bool {
	if response == nil {
		return true
	}

	// Client errors are permanent
	if response.StatusCode >= 400 && response.StatusCode < 500 {
		return false
	}

	if internal.ErrorCodeOf(response.Error) == internal.ErrorCodeValidation {
		return false
	}

	// Server errors and transport failures (no status) are retried
	return response.StatusCode >= 500 || response.StatusCode == 0
}
