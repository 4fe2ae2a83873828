// Package toaster provides a short-lived notification over the page body.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/zjrosen/navdrawer/internal/ui/overlay"
	"github.com/zjrosen/navdrawer/internal/ui/styles"
)

// DefaultDuration is how long a toast stays up.
const DefaultDuration = 3 * time.Second

// Level selects the toast's icon and border color.
type Level int

const (
	LevelSuccess Level = iota
	LevelError
	LevelInfo
	LevelWarn
)

// Model holds the toaster state.
type Model struct {
	message string
	level   Level
	visible bool
	seq     int
}

// New creates a hidden toaster.
func New() Model {
	return Model{}
}

// DismissMsg hides the toast it was scheduled for.
type DismissMsg struct {
	Seq int
}

// Show displays message and returns the command that dismisses it after d.
// A newer toast is never hidden by an older toast's dismissal.
func (m Model) Show(message string, level Level, d time.Duration) (Model, tea.Cmd) {
	m.seq++
	m.message = message
	m.level = level
	m.visible = true

	seq := m.seq
	return m, tea.Tick(d, func(time.Time) tea.Msg {
		return DismissMsg{Seq: seq}
	})
}

// Update handles DismissMsg.
func (m Model) Update(msg tea.Msg) Model {
	if msg, ok := msg.(DismissMsg); ok && msg.Seq == m.seq {
		m.visible = false
		m.message = ""
	}
	return m
}

// Visible returns whether the toast is showing.
func (m Model) Visible() bool {
	return m.visible
}

// View renders the toast box.
func (m Model) View() string {
	if !m.visible || m.message == "" {
		return ""
	}
	return m.render(m.message)
}

func (m Model) render(message string) string {
	var border lipgloss.AdaptiveColor
	var icon string
	switch m.level {
	case LevelError:
		border, icon = styles.ToastErrorColor, "✗"
	case LevelInfo:
		border, icon = styles.ToastInfoColor, "i"
	case LevelWarn:
		border, icon = styles.ToastWarnColor, "!"
	default:
		border, icon = styles.ToastSuccessColor, "✓"
	}
	return styles.ToastStyle.BorderForeground(border).Render(icon + " " + message)
}

// Overlay renders the toast at the bottom center of bg, truncating the
// message to fit width.
func (m Model) Overlay(bg string, width, height int) string {
	if !m.visible || m.message == "" {
		return bg
	}
	// border, padding and icon take six cells
	fg := m.render(ansi.Truncate(m.message, max(width-6, 1), "…"))

	cfg := overlay.Config{
		Width:    width,
		Height:   height,
		Position: overlay.Bottom,
		PadY:     1,
	}
	return overlay.Place(cfg, fg, bg)
}
