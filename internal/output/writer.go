// internal/output/writer.go - Output writing implementation
package output

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/valpere/geoconv/internal"
)

// FileWriter writes output to a file with optional compression
type FileWriter struct {
	formatter   Formatter
	destination Destination
}

// NewFileWriter creates a new file-based writer. With compression on, ".gz" is
// appended to path unless already present.
func NewFileWriter(config *WriterConfig, path string) (*FileWriter, error) {
	dest, err := newFileDestination(path, config.Compression)
	if err != nil {
		return nil, err
	}

	return &FileWriter{
		formatter:   NewFormatter(config.Pretty),
		destination: dest,
	}, nil
}

// Write writes one converted document
func (w *FileWriter) Write(text string) error {
	if _, err := w.destination.Write(w.formatter.Format(text)); err != nil {
		return internal.NewError(internal.ErrorCodeFileSystem, "write to "+w.destination.Name()+" failed", err)
	}
	return nil
}

// Close flushes and closes the underlying destination
func (w *FileWriter) Close() error {
	return w.destination.Close()
}

// Name returns the path being written
func (w *FileWriter) Name() string {
	return w.destination.Name()
}

// Size returns the number of uncompressed bytes written so far
func (w *FileWriter) Size() int64 {
	return w.destination.Size()
}

// StdoutWriter writes output to standard output
type StdoutWriter struct {
	formatter Formatter
	out       io.Writer
}

// NewStdoutWriter creates a writer over out, os.Stdout when nil
func NewStdoutWriter(out io.Writer, pretty bool) *StdoutWriter {
	if out == nil {
		out = os.Stdout
	}
	return &StdoutWriter{
		formatter: NewFormatter(pretty),
		out:       out,
	}
}

// Write writes one converted document
func (w *StdoutWriter) Write(text string) error {
	if _, err := w.out.Write(w.formatter.Format(text)); err != nil {
		return errors.Wrap(err, "write to stdout failed")
	}
	return nil
}

// Close is a no-op for stdout writer
func (w *StdoutWriter) Close() error {
	return nil
}

// fileDestination implements the Destination interface for file output
type fileDestination struct {
	file   *os.File
	writer io.WriteCloser
	name   string
	size   int64
}

// newFileDestination creates a new file destination with optional compression
func newFileDestination(path string, compression bool) (*fileDestination, error) {
	if compression && !strings.HasSuffix(path, ".gz") {
		path += ".gz"
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, internal.NewError(internal.ErrorCodeFileSystem, "failed to create directory", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, internal.NewError(internal.ErrorCodeFileSystem, "failed to create file", err)
	}

	var writer io.WriteCloser = file
	if compression {
		writer = gzip.NewWriter(file)
	}

	return &fileDestination{
		file:   file,
		writer: writer,
		name:   path,
	}, nil
}

// Write implements io.Writer
func (d *fileDestination) Write(p []byte) (n int, err error) {
	n, err = d.writer.Write(p)
	d.size += int64(n)
	return n, err
}

// Close implements io.Closer
func (d *fileDestination) Close() error {
	if d.writer != d.file {
		if err := d.writer.Close(); err != nil {
			d.file.Close()
			return internal.NewError(internal.ErrorCodeFileSystem, "failed to flush "+d.name, err)
		}
	}
	if err := d.file.Close(); err != nil {
		return internal.NewError(internal.ErrorCodeFileSystem, "failed to close "+d.name, err)
	}
	return nil
}

// Name returns the destination file path
func (d *fileDestination) Name() string {
	return d.name
}

// Size returns the number of bytes written
func (d *fileDestination) Size() int64 {
	return d.size
}

// NewWriter creates the appropriate writer for a destination: stdout for ""
// or "-", a file otherwise
func NewWriter(config *WriterConfig, destination string, stdout io.Writer) (Writer, error) {
	if destination == "" || destination == "-" {
		return NewStdoutWriter(stdout, config.Pretty), nil
	}
	return NewFileWriter(config, destination)
}
