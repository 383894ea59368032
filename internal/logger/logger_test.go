package logger

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedLogger(buf *bytes.Buffer, level Level) *Logger {
	l := New(buf, level, false)
	l.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 6_000_000, time.UTC) }
	return l
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]Level{
		"debug":   LevelDebug,
		"DEBUG":   LevelDebug,
		"info":    LevelInfo,
		"warn":    LevelWarn,
		"warning": LevelWarn,
		" error ": LevelError,
		"none":    LevelNone,
		"off":     LevelNone,
		"bogus":   LevelInfo,
		"":        LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestLoggerFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := fixedLogger(&buf, LevelDebug)
	l.Info("scanning %s", "src")

	assert.Equal(t, "[03:04:05.006 INFO] scanning src\n", buf.String())
}

func TestLoggerThreshold(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := fixedLogger(&buf, LevelWarn)
	l.Debug("d")
	l.Info("i")
	l.Warn("w")
	l.Error("e")

	out := buf.String()
	assert.NotContains(t, out, "DEBUG")
	assert.NotContains(t, out, "INFO")
	assert.Contains(t, out, "WARN] w")
	assert.Contains(t, out, "ERROR] e")
}

func TestLoggerNone(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := fixedLogger(&buf, LevelInfo).WithLevel(LevelNone)
	l.Error("nothing")

	assert.Empty(t, buf.String())
	assert.Equal(t, LevelNone, l.Level())
}

func TestNoopSatisfiesInterface(t *testing.T) {
	t.Parallel()

	var l Interface = Noop{}
	l.Info("ignored")
}
