package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"WARNING", LevelWarn},
		{"error", LevelError},
		{"verbose", LevelInfo},
		{"", LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.input), "ParseLevel(%q)", tt.input)
	}
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "UNKNOWN", Level(42).String())
}

func TestLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn)
	l.SetOutput(&buf)

	l.Debug("debug %d", 1)
	l.Info("info %d", 2)
	l.Warn("warn %d", 3)
	l.Error("error %d", 4)

	out := buf.String()
	assert.NotContains(t, out, "debug 1")
	assert.NotContains(t, out, "info 2")
	assert.Contains(t, out, "warn 3")
	assert.Contains(t, out, "error 4")
	assert.Contains(t, out, "WARN")
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelError)
	l.SetOutput(&buf)

	l.Info("hidden")
	l.SetLevel(LevelDebug)
	l.Debug("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithFormat(LevelInfo, FormatJSON)
	l.SetOutput(&buf)

	l.Info("exported %d stars", 10)

	line := strings.TrimSpace(buf.String())
	assert.True(t, strings.HasPrefix(line, "{"), "got %q", line)
	assert.Contains(t, line, `"msg":"exported 10 stars"`)
}

func TestLogger_Named(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromCore(core).Named("demo")

	l.Debug("generated %s", "triangle")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "demo", entries[0].LoggerName)
	assert.Equal(t, "generated triangle", entries[0].Message)
}

func TestLogger_NamedKeepsNameAfterSetOutput(t *testing.T) {
	parent := NewWithFormat(LevelInfo, FormatJSON)
	child := parent.Named("demo").Named("export")

	var buf bytes.Buffer
	child.SetOutput(&buf)
	child.Info("wrote %s", "star_pyramid.json")

	line := strings.TrimSpace(buf.String())
	assert.Contains(t, line, `"logger":"demo.export"`)
	assert.Contains(t, line, `"msg":"wrote star_pyramid.json"`)

	parent.SetLevel(LevelError)
	buf.Reset()
	child.Info("hidden")
	assert.Empty(t, buf.String(), "child shares the parent level")
}

func TestDiscard(t *testing.T) {
	l := Discard()
	// Must not panic.
	l.Debug("x")
	l.Error("y")
	assert.NoError(t, l.Sync())
}
