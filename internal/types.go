// internal/types.go - Common types for internal packages
package internal

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Format names a JSON dialect
type Format string

const (
	FormatGeoJSON Format = "geojson"
	FormatEsri    Format = "esri"
)

// Formats lists every supported dialect
var Formats = []Format{FormatGeoJSON, FormatEsri}

// ParseFormat accepts a dialect name case-insensitively
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(string(f), name) {
			return f, nil
		}
	}
	return "", NewError(ErrorCodeValidation, "unknown format "+name, nil)
}

// SourceType represents where input documents come from
type SourceType string

const (
	SourceTypeHTTP  SourceType = "http"
	SourceTypeLocal SourceType = "local"
	SourceTypeStdin SourceType = "stdin"
)

// ProcessingStats represents metrics for batch conversions
type ProcessingStats struct {
	TotalFiles     int64
	ProcessedFiles int64
	FailedFiles    int64
	BytesRead      int64
	BytesWritten   int64
	StartTime      time.Time
	EndTime        time.Time
	Throughput     float64
}

// Duration returns the elapsed processing time
func (s *ProcessingStats) Duration() time.Duration {
	if s.EndTime.IsZero() {
		return time.Since(s.StartTime)
	}
	return s.EndTime.Sub(s.StartTime)
}

// Error represents application-specific errors
type Error struct {
	Code    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap exposes the cause to errors.Is and errors.As
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new application error
func NewError(code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// ErrorCodeOf returns the code of the first application error in err's
// chain, or an empty string
func ErrorCodeOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// ErrorCode constants for common error types
const (
	ErrorCodeNetwork    = "NETWORK_ERROR"
	ErrorCodeValidation = "VALIDATION_ERROR"
	ErrorCodeConfig     = "CONFIG_ERROR"
	ErrorCodeNotFound   = "NOT_FOUND"
	ErrorCodeTimeout    = "TIMEOUT_ERROR"
	ErrorCodeFileSystem = "FILESYSTEM_ERROR"
	ErrorCodeDecode     = "DECODE_ERROR"
	ErrorCodeEncode     = "ENCODE_ERROR"
)
