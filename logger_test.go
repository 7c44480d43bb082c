package prism

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggerIsNeverNil(t *testing.T) {
	SetLogger(nil)
	require.NotNil(t, Logger())
	require.NotPanics(t, func() {
		Logger().Info("discarded")
	})
}

func TestSetLoggerRoutesOutput(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))
	SetLogger(l)
	require.Same(t, l, Logger())

	Logger().Info("hello", "driver", "gl")
	require.Contains(t, buf.String(), "msg=hello")
	require.Contains(t, buf.String(), "driver=gl")
}

func TestLogLevelFromEnvironment(t *testing.T) {
	t.Setenv("PRISM_LOG_LEVEL", "debug")
	lvl, ok := levelFromEnv()
	require.True(t, ok)
	require.Equal(t, slog.LevelDebug, lvl)

	t.Setenv("PRISM_LOG_LEVEL", "WARN")
	lvl, ok = levelFromEnv()
	require.True(t, ok)
	require.Equal(t, slog.LevelWarn, lvl)

	t.Setenv("PRISM_LOG_LEVEL", "chatty")
	_, ok = levelFromEnv()
	require.False(t, ok)

	t.Setenv("PRISM_LOG_LEVEL", "")
	_, ok = levelFromEnv()
	require.False(t, ok)
}
