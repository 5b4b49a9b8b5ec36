// internal/output/formatter.go - Output formatting implementation
package output

import (
	"github.com/tidwall/pretty"
)

// JSONFormatter lays out converted JSON text, compact as produced by the
// codecs or indented for reading
type JSONFormatter struct {
	pretty bool
}

// NewFormatter creates a formatter
func NewFormatter(pretty bool) *JSONFormatter {
	return &JSONFormatter{pretty: pretty}
}

// Format returns the document followed by a newline
func (f *JSONFormatter) Format(text string) []byte {
	if f.pretty {
		// pretty.Pretty terminates its output with a newline
		return pretty.PrettyOptions([]byte(text), &pretty.Options{
			Width:    80,
			Prefix:   "",
			Indent:   "  ",
			SortKeys: false,
		})
	}

	data := make([]byte, 0, len(text)+1)
	data = append(data, text...)
	return append(data, '\n')
}
