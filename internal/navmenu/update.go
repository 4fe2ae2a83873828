package navmenu

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/navdrawer/internal/log"
)

// HandlesKey reports whether the menu wants msg. While open the panel is
// modal and takes every key. While closed it only takes the toggle key, and
// the activate key when the toggle holds focus.
func (m Model) HandlesKey(msg tea.KeyMsg) bool {
	if m.state.Current {
		return true
	}
	if key.Matches(msg, m.keys.Toggle) {
		return true
	}
	return m.focused == m.toggle && key.Matches(msg, m.keys.Activate)
}

// Update handles messages.
// Escape is not handled here: it arrives as a CloseMsg from the listener
// installed in the hotkey registry.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case CloseMsg:
		if msg.MenuID != "" && msg.MenuID != m.id {
			return m, nil
		}
		if msg.Token != 0 && (msg.Token != m.escToken || m.release == nil) {
			log.Debug(log.CatMenu, "stale close ignored", "menu", m.id, "token", msg.Token)
			return m, nil
		}
		reason := msg.Reason
		if reason == "" {
			reason = ReasonClose
		}
		return m.apply(m.state.Close(), reason), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.state.Current {
		if key.Matches(msg, m.keys.Toggle) ||
			(m.focused == m.toggle && key.Matches(msg, m.keys.Activate)) {
			return m.Toggle(), nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Toggle):
		return m.Toggle(), nil
	case key.Matches(msg, m.keys.Next):
		return m.cycleFocus(1), nil
	case key.Matches(msg, m.keys.Prev):
		return m.cycleFocus(-1), nil
	case key.Matches(msg, m.keys.Activate):
		if i := m.indexOf(m.focused); i >= 0 {
			return m.Activate(i)
		}
		if m.focused == m.toggle {
			return m.Toggle(), nil
		}
	}
	return m, nil
}

// cycleFocus moves focus through the links, wrapping at either end.
// Focus never leaves the panel while it is open.
func (m Model) cycleFocus(delta int) Model {
	n := len(m.items)
	if n == 0 {
		return m
	}
	i := m.indexOf(m.focused)
	switch {
	case i < 0 && delta > 0:
		i = 0
	case i < 0:
		i = n - 1
	default:
		i = ((i+delta)%n + n) % n
	}
	return m.focus(m.items[i].handle)
}

// handleMouse resolves left clicks against the menu's zones. While open,
// any click in the body area outside the panel lands on the backdrop.
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionRelease {
		return m, nil
	}

	if inZone(m.toggle.id, msg) {
		return m.Toggle(), nil
	}
	if !m.state.Current {
		return m, nil
	}

	for i, it := range m.items {
		if inZone(it.handle.id, msg) {
			return m.Activate(i)
		}
	}
	if inZone(m.panel, msg) {
		return m, nil
	}
	if inZone(m.backdrop, msg) {
		return m.apply(m.state.Close(), ReasonBackdrop), nil
	}
	return m, nil
}

func inZone(id string, msg tea.MouseMsg) bool {
	z := zone.Get(id)
	return z != nil && z.InBounds(msg)
}
