package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	lg, err := New("TEST", ColorCyan, &buf)
	require.NoError(t, err)

	lg.Info("generation finished")
	lg.Warning("seed ignored")
	lg.Error("no entry opening")

	out := buf.String()
	assert.Contains(t, out, "[TEST]")
	assert.Contains(t, out, "[INFO]")
	assert.Contains(t, out, "[WARN]")
	assert.Contains(t, out, "[ERROR]")
	assert.Contains(t, out, "generation finished")
}

func TestLoggerRequiresPrefix(t *testing.T) {
	var buf bytes.Buffer
	_, err := New("", ColorBlue, &buf)
	assert.Error(t, err)
}
