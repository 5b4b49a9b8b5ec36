// internal/logger/logger_test.go - Unit tests for logger setup
package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWriterJSON(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	var buf bytes.Buffer
	require.NoError(t, SetupWriter(&buf, "warn", "json", false))

	log.Info().Msg("hidden")
	log.Warn().Str("file", "a.json").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"file":"a.json"`)
	assert.Contains(t, out, `"level":"warn"`)
}

func TestSetupWriterVerbose(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	var buf bytes.Buffer
	require.NoError(t, SetupWriter(&buf, "error", "text", true))
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	log.Debug().Msg("details")
	assert.Contains(t, buf.String(), "details")
}

func TestSetupWriterInvalidLevel(t *testing.T) {
	assert.Error(t, SetupWriter(&bytes.Buffer{}, "loud", "json", false))
}
