package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestJSONLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewJSONLogger(zapcore.InfoLevel, zapcore.AddSync(&buf))
	log.Debug("hidden")
	log.Info("slab read", zap.String("file", "a.raw"))
	require.NoError(t, log.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "slab read", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "a.raw", entry["file"])
}

func TestConsoleLoggerMultipleWriters(t *testing.T) {
	t.Parallel()

	var a, b bytes.Buffer
	log := NewConsoleLogger(zapcore.DebugLevel, zapcore.AddSync(&a), zapcore.AddSync(&b))
	log.Debug("hello")
	assert.Contains(t, a.String(), "hello")
	assert.Contains(t, b.String(), "DEBUG")
}

func TestNew(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	_, err := New("json", "warn", zapcore.AddSync(&buf))
	require.NoError(t, err)
	_, err = New("", "", zapcore.AddSync(&buf))
	require.NoError(t, err)

	_, err = New("xml", "info", zapcore.AddSync(&buf))
	assert.Error(t, err)
	_, err = New("json", "loud", zapcore.AddSync(&buf))
	assert.Error(t, err)
}
