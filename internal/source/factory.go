// internal/source/factory.go - Fetcher selection
package source

import (
	"io"

	"github.com/valpere/geoconv/internal"
	"github.com/valpere/geoconv/internal/config"
)

// FetcherFactory creates appropriate fetchers based on configuration
type FetcherFactory struct {
	config *config.Config
	stdin  io.Reader
}

// NewFetcherFactory creates a new fetcher factory reading "-" from stdin
func NewFetcherFactory(cfg *config.Config, stdin io.Reader) *FetcherFactory {
	return &FetcherFactory{
		config: cfg,
		stdin:  stdin,
	}
}

// CreateFetcher returns the fetcher that serves location
func (f *FetcherFactory) CreateFetcher(location string) (Fetcher, error) {
	sourceType := config.DetermineSourceType(location)

	switch sourceType {
	case internal.SourceTypeHTTP:
		return NewHTTPFetcher(f.config), nil
	case internal.SourceTypeLocal:
		return NewLocalFetcher(), nil
	case internal.SourceTypeStdin:
		return NewStdinFetcher(f.stdin), nil
	}
	return nil, internal.NewError(internal.ErrorCodeValidation, "unsupported source type: "+string(sourceType), nil)
}
