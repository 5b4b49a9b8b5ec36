// internal/output/types.go - Output handling types
package output

import (
	"io"
	"path/filepath"
	"strings"
)

// Writer defines the interface for writing converted documents to a destination
type Writer interface {
	Write(text string) error
	Close() error
}

// Formatter defines the interface for laying out converted document text
type Formatter interface {
	Format(text string) []byte
}

// Destination represents an output destination (file, stdout, etc.)
type Destination interface {
	io.WriteCloser
	Name() string
	Size() int64
}

// WriterConfig contains configuration for creating writers
type WriterConfig struct {
	Pretty      bool
	Compression bool
}

// OutputPath derives the file a converted input is written to: the input's
// base name with its extension replaced, placed in dir. A ".gz" suffix on the
// input is ignored and re-added when compression is on.
func OutputPath(input, dir, extension string, compression bool) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, ".gz")
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." || base == string(filepath.Separator) {
		base = "output"
	}

	name := base + extension
	if compression {
		name += ".gz"
	}
	return filepath.Join(dir, name)
}

// RelativeOutputPath is OutputPath for an input found under root, keeping the
// input's subdirectory below dir
func RelativeOutputPath(input, root, dir, extension string, compression bool) string {
	rel, err := filepath.Rel(root, filepath.Dir(input))
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = ""
	}
	return OutputPath(input, filepath.Join(dir, rel), extension, compression)
}
