package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLogger_NotNil verifies that NewLogger returns a non-nil *Logger.
func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("test")
	require.NotNil(t, l)
}

// TestNewWriterLogger_RoleField verifies that every log entry contains the
// expected "role" field.
func TestNewWriterLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger("test-role", &buf)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
	assert.Equal(t, "hello", entry["message"])
}

// TestNewWriterLogger_ContainsTimestamp verifies that log entries contain a timestamp field.
func TestNewWriterLogger_ContainsTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger("ts-role", &buf)

	l.Info().Msg("ts check")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

// TestNewWriterLogger_CallerField verifies that entries carry the caller
// location.
func TestNewWriterLogger_CallerField(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger("caller-role", &buf)

	l.Info().Msg("caller check")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	caller, ok := entry[zerolog.CallerFieldName].(string)
	require.True(t, ok, "expected caller field in log entry")
	assert.Contains(t, caller, "logger_test.go:")
}

// TestNewLogger_LeavesGlobalsUntouched verifies that building a logger does
// not change package-level zerolog settings shared with other loggers.
func TestNewLogger_LeavesGlobalsUntouched(t *testing.T) {
	fieldName := zerolog.CallerFieldName

	NewLogger("globals-role")
	NewWriterLogger("globals-role", &bytes.Buffer{})

	assert.Equal(t, fieldName, zerolog.CallerFieldName)

	var buf bytes.Buffer
	l := zerolog.New(&buf)
	l.Info().Caller().Msg("")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Contains(t, entry[zerolog.CallerFieldName], "logger_test.go:")
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{name: "empty defaults to info", in: "", want: zerolog.InfoLevel},
		{name: "debug", in: "debug", want: zerolog.DebugLevel},
		{name: "upper case and spaces", in: "  WARN ", want: zerolog.WarnLevel},
		{name: "unknown", in: "loud", want: zerolog.NoLevel, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestWithLevel_FiltersBelowLevel verifies that WithLevel drops entries below
// the requested level and keeps the rest.
func TestWithLevel_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger("level-role", &buf).WithLevel(zerolog.WarnLevel)

	l.Info().Msg("dropped")
	assert.Empty(t, buf.String())

	l.Warn().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}

// TestGetChildLogger_InheritsFields verifies that the child logger inherits
// context fields (e.g. "role") from the parent.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewWriterLogger("inherited-role", &buf)

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)

	child.Info().Msg("child message")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "inherited-role", entry["role"])
}

// TestFromContext_ReturnsAttachedLogger verifies that FromContext returns the
// logger that was previously attached to the context via zerolog.
func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("ctx-key", "ctx-value").Logger()
	ctx := zl.WithContext(context.Background())

	l := FromContext(ctx)
	require.NotNil(t, l)

	l.Info().Msg("from context")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ctx-value", entry["ctx-key"])
}

func TestFromContextOr_FallbackWhenMissing(t *testing.T) {
	fallback := Nop()
	assert.Same(t, fallback, FromContextOr(context.Background(), fallback))
}

func TestFromContextOr_PrefersContextLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("login_cycle", "abc").Logger()
	ctx := zl.WithContext(context.Background())

	l := FromContextOr(ctx, Nop())
	l.Info().Msg("cycle")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "abc", entry["login_cycle"])
}

