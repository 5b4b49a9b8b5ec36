// cmd/cmd_test.go - Command level tests
package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valpere/geoconv/internal"
)

// execute runs the root command. Flag values persist between runs, so every
// test passes the flags it depends on.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestConvertFileToStdout(t *testing.T) {
	path := writeInput(t, t.TempDir(), "point.geojson", `{"type":"Point","coordinates":[1,2]}`)

	out, err := execute(t, "", "convert", "--from", "geojson", "--to", "esri", "--pretty=false",
		"--log-level", "error", "--input", path, "--output", "")
	require.NoError(t, err)
	assert.Equal(t, `{"x":1,"y":2,"spatialReference":{"wkid":4326}}`+"\n", out)
}

func TestConvertStdinToFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "out", "point.geojson")

	out, err := execute(t, `{"x":1,"y":2,"spatialReference":{"wkid":4326}}`,
		"convert", "--from", "esri", "--to", "geojson", "--pretty=false",
		"--log-level", "error", "--input", "-", "--output", target)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, `{"type":"Point","coordinates":[1,2]}`+"\n", string(data))
}

func TestConvertDecodeError(t *testing.T) {
	path := writeInput(t, t.TempDir(), "feature.geojson", `{"type":"Feature"}`)

	_, err := execute(t, "", "convert", "--from", "geojson", "--to", "esri",
		"--log-level", "error", "--input", path, "--output", "")
	require.Error(t, err)
	assert.Equal(t, internal.ErrorCodeDecode, internal.ErrorCodeOf(err))
	assert.Contains(t, err.Error(), "geometry key not found")
}

func TestInfo(t *testing.T) {
	path := writeInput(t, t.TempDir(), "square.geojson",
		`{"type":"Polygon","coordinates":[[[0,0],[0,10],[10,10],[10,0],[0,0]]]}`)

	out, err := execute(t, "", "info", "--from", "geojson", "--log-level", "error", "--input", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"type": "Polygon"`)
	assert.Contains(t, out, `"valid": true`)
	assert.Contains(t, out, `"area": 100`)
}

func TestBatch(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	writeInput(t, in, "a.geojson", `{"type":"Point","coordinates":[1,2]}`)
	writeInput(t, in, "b.geojson", `{"type":"MultiPoint","coordinates":[[1,2],[3,4]]}`)

	_, err := execute(t, "", "batch", "--from", "geojson", "--to", "esri", "--pretty=false",
		"--compression=false", "--log-level", "error", "--input-dir", in, "--output-dir", out,
		"--pattern", "*.geojson", "--extension", ".json", "--concurrency", "2")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(out, "b.json"))
	require.NoError(t, err)
	assert.Equal(t, `{"points":[[1,2],[3,4]],"spatialReference":{"wkid":4326}}`+"\n", string(data))

	_, err = os.Stat(filepath.Join(out, "a.json"))
	assert.NoError(t, err)
}

func TestBatchNoMatches(t *testing.T) {
	_, err := execute(t, "", "batch", "--log-level", "error", "--input-dir", t.TempDir(),
		"--output-dir", t.TempDir(), "--pattern", "*.nothing")
	assert.Error(t, err)
}
