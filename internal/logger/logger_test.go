package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// TestParseLogLevel verifies level names map to zap levels and unknown names are rejected.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug":  zapcore.DebugLevel,
		" INFO ": zapcore.InfoLevel,
		"warn":   zapcore.WarnLevel,
		"error":  zapcore.ErrorLevel,
		"fatal":  zapcore.FatalLevel,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok, s)
		require.Equal(t, lvl, got)
	}

	_, ok := ParseLogLevel("loud")
	require.False(t, ok)
}

// TestContextHelpers checks that named and annotated loggers travel in the context.
func TestContextHelpers(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	ctx := ToContext(context.Background(), New(&buf, zapcore.DebugLevel))
	ctx = WithName(ctx, "registry")
	ctx = WithKV(ctx, "alarm", "07:00 on Monday")

	InfoKV(ctx, "Alarm snoozed", "snooze_count", 1)

	out := buf.String()
	require.Contains(t, out, "registry")
	require.Contains(t, out, "Alarm snoozed")
	require.Contains(t, out, "07:00 on Monday")
	require.Contains(t, out, "snooze_count")
}

// TestFromContext_FallsBackToGlobal ensures a bare context yields the global logger.
func TestFromContext_FallsBackToGlobal(t *testing.T) {
	t.Parallel()

	require.Same(t, Logger(), FromContext(context.Background()))
}
