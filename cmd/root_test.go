package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/navdrawer/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		cfgFile = ""
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, config.WriteDefaultConfig(path))
	return path
}

func TestLinks_ListsDefaults(t *testing.T) {
	path := writeConfig(t)

	out, err := execute(t, "--config", path, "links")

	require.NoError(t, err)
	require.Contains(t, out, "Services")
	require.Contains(t, out, "#work")
	require.Contains(t, out, "Contact")
}

func TestLinks_AddPersists(t *testing.T) {
	path := writeConfig(t)

	out, err := execute(t, "--config", path, "links", "add", "Pricing", "#pricing")
	require.NoError(t, err)
	require.Contains(t, out, "added Pricing")

	loaded, err := config.Load(path)
	require.NoError(t, err)
	require.Len(t, loaded.Links, 4)
	require.Equal(t, config.LinkConfig{Label: "Pricing", Target: "#pricing"}, loaded.Links[3])

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "# Key that opens and closes the menu", "comments are preserved")

	out, err = execute(t, "--config", path, "links")
	require.NoError(t, err)
	require.Contains(t, out, "#pricing")
}

func TestLinks_AddRejectsInvalidTarget(t *testing.T) {
	path := writeConfig(t)

	_, err := execute(t, "--config", path, "links", "add", "Bad", "nohash")
	require.Error(t, err)

	loaded, err := config.Load(path)
	require.NoError(t, err)
	require.Len(t, loaded.Links, 3)
}

func TestLinks_AddRequiresTwoArgs(t *testing.T) {
	path := writeConfig(t)

	_, err := execute(t, "--config", path, "links", "add", "OnlyLabel")
	require.Error(t, err)
}

func TestIsDebug_Env(t *testing.T) {
	t.Setenv("NAVDRAWER_DEBUG", "")
	require.False(t, isDebug())

	t.Setenv("NAVDRAWER_DEBUG", "1")
	require.True(t, isDebug())
}

func TestInitLogging_DisabledIsNoop(t *testing.T) {
	t.Setenv("NAVDRAWER_DEBUG", "")

	cleanup, err := initLogging()
	require.NoError(t, err)
	require.NotNil(t, cleanup)
	cleanup()
}

func TestInitLogging_WritesFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "debug.log")
	t.Setenv("NAVDRAWER_DEBUG", "1")
	t.Setenv("NAVDRAWER_LOG", logPath)

	cleanup, err := initLogging()
	require.NoError(t, err)
	cleanup()

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "navdrawer starting")
}
