package navmenu

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"
)

// scan renders the toggle row above the body the way a host header does and
// registers every zone in the frame.
func scan(t *testing.T, m Model, waitFor ...string) {
	t.Helper()
	body := strings.TrimSuffix(strings.Repeat("lorem ipsum dolor sit amet\n", 16), "\n")
	zone.Scan(m.View() + "\n" + m.Overlay(body))

	for _, id := range waitFor {
		require.Eventually(t, func() bool {
			z := zone.Get(id)
			return z != nil && !z.IsZero()
		}, time.Second, 5*time.Millisecond, "zone %s never registered", id)
	}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease}
}

func TestMouse_ToggleClickOpens(t *testing.T) {
	m, _ := newTestMenu(t)
	scan(t, m, m.ToggleHandle().ID())

	z := zone.Get(m.ToggleHandle().ID())
	m, _ = m.Update(click(z.StartX, z.StartY))

	require.True(t, m.IsOpen())
	require.Equal(t, m.FirstLinkHandle(), m.Focused())
}

func TestMouse_LinkClickNavigates(t *testing.T) {
	m, reg := newTestMenu(t)
	m = m.Toggle()
	work := m.LinkHandles()[2]
	scan(t, m, work.ID())

	z := zone.Get(work.ID())
	m, cmd := m.Update(click(z.StartX+1, z.StartY))

	require.False(t, m.IsOpen())
	require.Equal(t, m.ToggleHandle(), m.Focused())
	require.Equal(t, 0, reg.Len())
	require.Equal(t, NavigateMsg{Label: "Work", Target: "#work"}, cmd())
}

func TestMouse_BackdropClickCloses(t *testing.T) {
	m, reg := newTestMenu(t)
	m = m.Toggle()
	scan(t, m, m.backdrop, m.panel)

	// bottom-left of the body, well away from the panel
	m, cmd := m.Update(click(0, 16))

	require.Nil(t, cmd)
	require.False(t, m.IsOpen())
	require.Equal(t, m.ToggleHandle(), m.Focused())
	require.Equal(t, 0, reg.Len())
}

func TestMouse_PanelClickIsSwallowed(t *testing.T) {
	m, _ := newTestMenu(t)
	m = m.Toggle()
	scan(t, m, m.panel)

	z := zone.Get(m.panel)
	m, cmd := m.Update(click(z.StartX, z.StartY))

	require.Nil(t, cmd)
	require.True(t, m.IsOpen(), "clicks on the panel frame do not reach the backdrop")
}

func TestMouse_IgnoresOtherButtonsAndPress(t *testing.T) {
	m, _ := newTestMenu(t)
	m = m.Toggle()
	scan(t, m, m.backdrop)

	right := tea.MouseMsg{X: 0, Y: 16, Button: tea.MouseButtonRight, Action: tea.MouseActionRelease}
	m, _ = m.Update(right)
	require.True(t, m.IsOpen())

	press := tea.MouseMsg{X: 0, Y: 16, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
	m, _ = m.Update(press)
	require.True(t, m.IsOpen())
}

func TestMouse_ClosedMenuIgnoresBodyClicks(t *testing.T) {
	m, _ := newTestMenu(t)
	scan(t, m, m.ToggleHandle().ID())

	m, cmd := m.Update(click(0, 16))
	require.Nil(t, cmd)
	require.False(t, m.IsOpen())
	require.True(t, m.Focused().IsZero())
}
