package toaster

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	m := New()

	assert.False(t, m.Visible())
	assert.Empty(t, m.View())
}

func TestShow(t *testing.T) {
	m, cmd := New().Show("config reloaded", LevelSuccess, time.Millisecond)

	require.NotNil(t, cmd)
	assert.True(t, m.Visible())
	assert.Contains(t, m.View(), "✓ config reloaded")
}

func TestDismiss(t *testing.T) {
	m, cmd := New().Show("hello", LevelInfo, time.Millisecond)

	m = m.Update(cmd())

	assert.False(t, m.Visible())
	assert.Empty(t, m.View())
}

func TestDismiss_StaleTickKeepsNewerToast(t *testing.T) {
	m, first := New().Show("first", LevelInfo, time.Millisecond)
	m, _ = m.Show("second", LevelError, time.Millisecond)

	m = m.Update(first())

	assert.True(t, m.Visible())
	assert.Contains(t, m.View(), "second")
	assert.NotContains(t, m.View(), "first")
}

func TestView_Levels(t *testing.T) {
	tests := []struct {
		level Level
		icon  string
	}{
		{LevelSuccess, "✓"},
		{LevelError, "✗"},
		{LevelInfo, "i"},
		{LevelWarn, "!"},
	}
	for _, tt := range tests {
		m, _ := New().Show("msg", tt.level, time.Second)
		view := ansi.Strip(m.View())
		assert.Contains(t, view, tt.icon+" msg")
		assert.Contains(t, view, "╭", "toast has a rounded border")
	}
}

func TestOverlay_HiddenReturnsBackground(t *testing.T) {
	bg := "line1\nline2"
	assert.Equal(t, bg, New().Overlay(bg, 10, 2))
}

func TestOverlay_BottomCenter(t *testing.T) {
	bg := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 20)+"\n", 8), "\n")
	m, _ := New().Show("hi", LevelInfo, time.Second)

	lines := strings.Split(ansi.Strip(m.Overlay(bg, 20, 8)), "\n")

	require.Len(t, lines, 8)
	assert.Equal(t, strings.Repeat(".", 20), lines[7], "one row of padding below the toast")
	assert.Contains(t, lines[5], "i hi")
	assert.True(t, strings.HasPrefix(lines[5], "......"))
}

func TestOverlay_TruncatesToWidth(t *testing.T) {
	bg := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 20)+"\n", 5), "\n")
	m, _ := New().Show(strings.Repeat("x", 50), LevelError, time.Second)

	for _, line := range strings.Split(m.Overlay(bg, 20, 5), "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 20)
	}
}
