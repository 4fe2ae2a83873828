package log

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLog_NoopWithoutInit(t *testing.T) {
	require.NotPanics(t, func() {
		Debug(CatMenu, "ignored", "k", "v")
	})
	require.Nil(t, NewListener(context.Background()))
}

func TestLog_WritesStructuredEntry(t *testing.T) {
	var buf bytes.Buffer
	cleanup := InitWriter(&buf)
	defer cleanup()

	Info(CatMenu, "opened", "reason", "toggle", "orphan")

	line := buf.String()
	require.Contains(t, line, "[INFO] [menu]")
	require.Contains(t, line, "session=")
	require.Contains(t, line, "opened reason=toggle")
	require.Contains(t, line, "orphan=<missing>")
	require.True(t, strings.HasSuffix(line, "\n"))
}

func TestLog_MinLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	cleanup := InitWriter(&buf)
	defer cleanup()

	SetMinLevel(LevelWarn)
	Debug(CatHotkey, "dropped")
	Warn(CatHotkey, "kept")

	require.NotContains(t, buf.String(), "dropped")
	require.Contains(t, buf.String(), "kept")
}

func TestLog_SetEnabled(t *testing.T) {
	var buf bytes.Buffer
	cleanup := InitWriter(&buf)
	defer cleanup()

	SetEnabled(false)
	Error(CatConfig, "hidden")
	require.Empty(t, buf.String())
}

func TestLog_ErrorErrNil(t *testing.T) {
	var buf bytes.Buffer
	cleanup := InitWriter(&buf)
	defer cleanup()

	ErrorErr(CatConfig, "save failed", nil)
	require.Contains(t, buf.String(), "error=<nil>")
}

func TestLog_ListenerReceivesEntries(t *testing.T) {
	var buf bytes.Buffer
	cleanup := InitWriter(&buf)
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listener := NewListener(ctx)
	require.NotNil(t, listener)

	Debug(CatUI, "navigated", "target", "#work")

	event, ok := listener.Next()().(LogEvent)
	require.True(t, ok)
	require.Contains(t, event.Payload, "target=#work")
}

func TestLog_InitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	cleanup, err := Init(path)
	require.NoError(t, err)
	Info(CatUI, "hello")
	cleanup()

	require.FileExists(t, path)
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, LevelInfo, ParseLevel("INFO"))
	require.Equal(t, LevelWarn, ParseLevel("warning"))
	require.Equal(t, LevelError, ParseLevel("error"))
	require.Equal(t, LevelDebug, ParseLevel("bogus"))
}
