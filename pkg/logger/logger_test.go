package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []LogEntry {
	t.Helper()

	var entries []LogEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var e LogEntry
		require.NoError(t, json.Unmarshal([]byte(line), &e), line)
		entries = append(entries, e)
	}
	return entries
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Output: &buf, Level: LevelWarn})

	log.Debug("debug")
	log.Info("info")
	log.Warn("warn")
	log.Error("error")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "WARN", entries[0].Level)
	assert.Equal(t, "warn", entries[0].Message)
	assert.Equal(t, "ERROR", entries[1].Level)
}

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	base := New(Options{Output: &buf, Level: LevelDebug, Service: "studentmgr"})
	base.now = func() time.Time { return time.Date(2025, 5, 30, 12, 0, 0, 0, time.UTC) }

	log := base.WithSessionID("abc").With(Operation("add_student"))
	log.Info("student added", StudentID(7), Err(errors.New("boom")))

	// Parent logger is not affected by With.
	base.Info("plain")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)

	first := entries[0]
	assert.Equal(t, "2025-05-30T12:00:00Z", first.Timestamp)
	assert.Equal(t, "studentmgr", first.Service)
	assert.Equal(t, "abc", first.Fields[SessionIDKey])
	assert.Equal(t, "add_student", first.Fields["operation"])
	assert.Equal(t, float64(7), first.Fields["student_id"])
	assert.Equal(t, "boom", first.Fields["error"])

	assert.Empty(t, entries[1].Fields)
}

func TestLogger_Caller(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Output: &buf, Level: LevelInfo, AddCaller: true})
	log.Info("where")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Caller, "logger_test.go:"), entries[0].Caller)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		" INFO ":  LevelInfo,
		"warning": LevelWarn,
		"error":   LevelError,
		"":        LevelWarn,
		"loud":    LevelWarn,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestParseOutput(t *testing.T) {
	w, err := ParseOutput("")
	require.NoError(t, err)
	assert.Equal(t, os.Stderr, w)

	w, err = ParseOutput("stdout")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, w)

	w, err = ParseOutput("discard")
	require.NoError(t, err)
	assert.Equal(t, io.Discard, w)

	_, err = ParseOutput("syslog")
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	log := Nop()
	for _, level := range []Level{LevelDebug, LevelInfo, LevelWarn, LevelError} {
		assert.False(t, log.Enabled(level), level.String())
	}
}
