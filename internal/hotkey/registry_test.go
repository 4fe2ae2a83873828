package hotkey

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

type firedMsg struct{ owner string }

func escBinding() key.Binding {
	return key.NewBinding(key.WithKeys("esc"))
}

func TestRegistry_DispatchWithoutListeners(t *testing.T) {
	r := NewRegistry()

	cmd, handled := r.Dispatch(tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, handled)
	require.Nil(t, cmd)
}

func TestRegistry_InstallAndDispatch(t *testing.T) {
	r := NewRegistry()
	release := r.Install("menu", escBinding(), func(tea.KeyMsg) tea.Cmd {
		return func() tea.Msg { return firedMsg{owner: "menu"} }
	})
	defer release()

	require.Equal(t, 1, r.Len())
	require.Equal(t, 1, r.Count("menu"))

	cmd, handled := r.Dispatch(tea.KeyMsg{Type: tea.KeyEsc})
	require.True(t, handled)
	require.NotNil(t, cmd)
	require.Equal(t, firedMsg{owner: "menu"}, cmd())
}

func TestRegistry_NonMatchingKeyNotConsumed(t *testing.T) {
	r := NewRegistry()
	release := r.Install("menu", escBinding(), func(tea.KeyMsg) tea.Cmd { return nil })
	defer release()

	_, handled := r.Dispatch(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.False(t, handled)
}

func TestRegistry_ReleaseIsIdempotent(t *testing.T) {
	r := NewRegistry()
	first := r.Install("a", escBinding(), func(tea.KeyMsg) tea.Cmd { return nil })
	second := r.Install("b", escBinding(), func(tea.KeyMsg) tea.Cmd { return nil })

	first()
	first()
	require.Equal(t, 1, r.Len(), "double release must not remove another listener")
	require.Equal(t, 1, r.Count("b"))

	second()
	require.Equal(t, 0, r.Len())
}

func TestRegistry_LatestListenerWins(t *testing.T) {
	r := NewRegistry()
	releaseOuter := r.Install("outer", escBinding(), func(tea.KeyMsg) tea.Cmd {
		return func() tea.Msg { return firedMsg{owner: "outer"} }
	})
	defer releaseOuter()
	releaseInner := r.Install("inner", escBinding(), func(tea.KeyMsg) tea.Cmd {
		return func() tea.Msg { return firedMsg{owner: "inner"} }
	})

	cmd, _ := r.Dispatch(tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, firedMsg{owner: "inner"}, cmd())

	releaseInner()
	cmd, _ = r.Dispatch(tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, firedMsg{owner: "outer"}, cmd())
}
