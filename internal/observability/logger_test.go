package observability

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/phanxgames/vectorgrid/internal/config"
)

func testLoggerConfig() config.LoggerConfig {
	return config.NewDefaultConfig().Logger
}

func TestNewLoggerConsole(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(testLoggerConfig(), zapcore.AddSync(&buf))

	logger.Info("vector finalized", zap.Uint32("vector", 3))
	logger.Debug("hidden at info level")
	require.NoError(t, logger.Sync())

	out := buf.String()
	assert.Contains(t, out, "vector finalized")
	assert.Contains(t, out, colorGreen+"INFO"+colorReset)
	assert.Contains(t, out, "vectorgrid.")
	assert.NotContains(t, out, "hidden at info level")
}

func TestNewLoggerJSONLevel(t *testing.T) {
	cfg := testLoggerConfig()
	cfg.Format = "json"
	cfg.Level = "debug"

	var buf bytes.Buffer
	logger := NewLogger(cfg, zapcore.AddSync(&buf))
	logger.Debug("resultant updated", zap.Float64("x", 540))
	require.NoError(t, logger.Sync())

	out := buf.String()
	assert.Contains(t, out, `"level":"DEBUG"`)
	assert.Contains(t, out, `"logger":"vectorgrid"`)
	assert.Contains(t, out, `"x":540`)
}

func TestNewLoggerBadLevelFallsBackToInfo(t *testing.T) {
	cfg := testLoggerConfig()
	cfg.Level = "loud"

	var buf bytes.Buffer
	logger := NewLogger(cfg, zapcore.AddSync(&buf))
	assert.True(t, logger.Core().Enabled(zap.InfoLevel))
	assert.False(t, logger.Core().Enabled(zap.DebugLevel))
}

func TestNewLoggerFile(t *testing.T) {
	cfg := testLoggerConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "vectorgrid.log")

	var buf bytes.Buffer
	logger := NewLogger(cfg, zapcore.AddSync(&buf))
	logger.Warn("screenshot failed", zap.String("label", "one"))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	line := strings.TrimSpace(string(data))
	assert.True(t, strings.HasPrefix(line, "{"), "file output is JSON: %s", line)
	assert.Contains(t, line, `"msg":"screenshot failed"`)
	assert.Contains(t, buf.String(), "screenshot failed")
}

func TestColorizedLevelEncoder(t *testing.T) {
	tests := []struct {
		level zapcore.Level
		color string
	}{
		{zapcore.DebugLevel, colorCyan},
		{zapcore.InfoLevel, colorGreen},
		{zapcore.WarnLevel, colorYellow},
		{zapcore.ErrorLevel, colorRed},
		{zapcore.FatalLevel, colorMagenta},
	}
	for _, tt := range tests {
		enc := &sliceEncoder{}
		colorizedLevelEncoder(tt.level, enc)
		require.Len(t, enc.elems, 1)
		assert.Equal(t, tt.color+strings.ToUpper(tt.level.String())+colorReset, enc.elems[0])
	}
}

func TestSyncIgnoresNop(t *testing.T) {
	assert.NotPanics(t, func() { Sync(zap.NewNop()) })
}

// sliceEncoder collects appended strings.
type sliceEncoder struct {
	zapcore.PrimitiveArrayEncoder
	elems []string
}

func (s *sliceEncoder) AppendString(v string) { s.elems = append(s.elems, v) }
