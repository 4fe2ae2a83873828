// Package navmenu provides a collapsible navigation menu for narrow terminals.
//
// A toggle control in the host's header opens a panel of links floating over
// a dimmed backdrop. The menu manages keyboard focus across the transition:
// opening focuses the first link, closing hands focus back to the toggle.
// While the panel is open an Escape listener is held in the host's hotkey
// registry; it is released on every path out of the open state, including
// Unmount.
//
// Link targets are opaque. Activating a link closes the panel and emits a
// NavigateMsg carrying the target for the host to resolve.
package navmenu

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/navdrawer/internal/hotkey"
	"github.com/zjrosen/navdrawer/internal/keys"
	"github.com/zjrosen/navdrawer/internal/log"
	"github.com/zjrosen/navdrawer/internal/pubsub"
	"github.com/zjrosen/navdrawer/internal/ui/overlay"
)

// Link is one navigation destination.
type Link struct {
	Label  string
	Target string
}

// Reason records what triggered a transition.
type Reason string

const (
	ReasonToggle   Reason = "toggle"
	ReasonClose    Reason = "close"
	ReasonEscape   Reason = "escape"
	ReasonBackdrop Reason = "backdrop"
	ReasonLink     Reason = "link"
	ReasonUnmount  Reason = "unmount"
)

// Change is the payload published for each transition.
type Change struct {
	MenuID     string
	Transition Transition
	Reason     Reason
}

// CloseMsg asks the menu with the matching ID to close.
// The Escape listener delivers one of these carrying the Token of its
// install. A menu ignores a tokened CloseMsg from an install it has since
// released, so a late Escape cannot close a panel that was reopened.
// A zero Token closes unconditionally.
type CloseMsg struct {
	MenuID string
	Reason Reason
	Token  uint64
}

// NavigateMsg is emitted after a link activation has closed the panel.
type NavigateMsg struct {
	Label  string
	Target string
}

// Config controls menu content and wiring.
type Config struct {
	// Label is the accessible name of the panel (e.g. "Navigation").
	Label string
	// Links are listed in order; the first receives focus on open.
	Links []Link
	// CTA is rendered below the list with a distinct style. Optional.
	CTA Link
	// Keys defaults to keys.DefaultMenuKeyMap("").
	Keys *keys.MenuKeyMap
	// Hotkeys is the registry the Escape listener is installed into.
	// A private registry is created when nil.
	Hotkeys *hotkey.Registry
	// Events receives a Change for every transition. Optional.
	Events *pubsub.Broker[Change]
	// Position anchors the panel inside the body area.
	Position overlay.Position
}

type item struct {
	link   Link
	handle Handle
	cta    bool
}

// Model is the menu component state.
type Model struct {
	id       string
	label    string
	keys     keys.MenuKeyMap
	hotkeys  *hotkey.Registry
	events   *pubsub.Broker[Change]
	position overlay.Position

	toggle   Handle
	panel    string
	backdrop string
	items    []item

	state    State
	focused  Handle
	release  hotkey.Release
	escToken uint64

	width  int
	height int
}

// New creates a closed menu. Nothing is focused until the first transition.
func New(cfg Config) Model {
	id := zone.NewPrefix()

	km := keys.DefaultMenuKeyMap("")
	if cfg.Keys != nil {
		km = *cfg.Keys
	}
	reg := cfg.Hotkeys
	if reg == nil {
		reg = hotkey.NewRegistry()
	}
	label := cfg.Label
	if label == "" {
		label = "Navigation"
	}

	m := Model{
		id:       id,
		label:    label,
		keys:     km,
		hotkeys:  reg,
		events:   cfg.Events,
		position: cfg.Position,
		toggle:   Handle{id: id + "toggle"},
		panel:    id + "panel",
		backdrop: id + "backdrop",
	}
	m.items = m.buildItems(cfg.Links, cfg.CTA)
	return m
}

func (m Model) buildItems(links []Link, cta Link) []item {
	items := make([]item, 0, len(links)+1)
	for i, l := range links {
		items = append(items, item{link: l, handle: Handle{id: fmt.Sprintf("%slink:%d", m.id, i)}})
	}
	if cta.Label != "" {
		items = append(items, item{link: cta, handle: Handle{id: m.id + "cta"}, cta: true})
	}
	return items
}

// ID returns the menu's unique identifier.
func (m Model) ID() string {
	return m.id
}

// SetSize sets the dimensions of the body area the backdrop covers.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// SetLinks replaces the links and CTA. Handles are positional, so the
// first link keeps the same handle. If the panel is open and the focused
// element no longer exists, focus moves to the first link.
func (m Model) SetLinks(links []Link, cta Link) Model {
	m.items = m.buildItems(links, cta)
	if m.state.Current && !m.attached(m.focused) {
		m = m.focus(m.FirstLinkHandle())
	}
	return m
}

// IsOpen reports whether the panel is shown.
func (m Model) IsOpen() bool {
	return m.state.Current
}

// State returns the current/previous open record.
func (m Model) State() State {
	return m.state
}

// Focused returns the element holding keyboard focus.
func (m Model) Focused() Handle {
	return m.focused
}

// ToggleHandle returns the handle of the toggle control.
func (m Model) ToggleHandle() Handle {
	return m.toggle
}

// FirstLinkHandle returns the handle of the first navigation link, or the
// zero handle when the menu has no links.
func (m Model) FirstLinkHandle() Handle {
	for _, it := range m.items {
		if !it.cta {
			return it.handle
		}
	}
	return Handle{}
}

// LinkHandles returns the handles of every link in display order, CTA last.
func (m Model) LinkHandles() []Handle {
	out := make([]Handle, len(m.items))
	for i, it := range m.items {
		out[i] = it.handle
	}
	return out
}

// ListenerActive reports whether the Escape listener is installed.
func (m Model) ListenerActive() bool {
	return m.release != nil
}

// Toggle flips the panel.
func (m Model) Toggle() Model {
	return m.apply(m.state.Toggle(), ReasonToggle)
}

// Close hides the panel. Closing a closed panel does nothing.
func (m Model) Close() Model {
	return m.apply(m.state.Close(), ReasonClose)
}

// Activate closes the panel and returns the navigation command for the
// link at index (CTA last). Out of range indexes are ignored.
func (m Model) Activate(index int) (Model, tea.Cmd) {
	if index < 0 || index >= len(m.items) {
		return m, nil
	}
	link := m.items[index].link

	m = m.apply(m.state.Close(), ReasonLink)

	log.Debug(log.CatMenu, "link activated", "menu", m.id, "target", link.Target)
	return m, func() tea.Msg {
		return NavigateMsg{Label: link.Label, Target: link.Target}
	}
}

// Unmount releases the Escape listener and closes the panel without moving
// focus. The host calls this when the menu leaves the screen for good.
func (m Model) Unmount() Model {
	wasOpen := m.state.Current
	m.state = m.state.Close()
	m = m.releaseEscape()
	if wasOpen {
		m.publish(Closed, ReasonUnmount)
	}
	return m
}

// apply stores next and runs the side effects of the transition it encodes.
func (m Model) apply(next State, reason Reason) Model {
	m.state = next

	switch t := next.Transition(); t {
	case Opened:
		m = m.installEscape()
		m = m.focus(m.FirstLinkHandle())
		m.publish(t, reason)
	case Closed:
		m = m.releaseEscape()
		m = m.focus(m.toggle)
		m.publish(t, reason)
	}
	return m
}

func (m Model) installEscape() Model {
	m.escToken++
	id, token := m.id, m.escToken
	m.release = m.hotkeys.Install(id, m.keys.Dismiss, func(tea.KeyMsg) tea.Cmd {
		return func() tea.Msg {
			return CloseMsg{MenuID: id, Reason: ReasonEscape, Token: token}
		}
	})
	return m
}

func (m Model) releaseEscape() Model {
	if m.release != nil {
		m.release()
		m.release = nil
	}
	return m
}

// focus moves focus to h, or does nothing when h names no current element.
func (m Model) focus(h Handle) Model {
	if !m.attached(h) {
		log.Debug(log.CatMenu, "focus target missing, skipped", "menu", m.id, "target", h)
		return m
	}
	m.focused = h
	log.Debug(log.CatMenu, "focus moved", "menu", m.id, "target", h)
	return m
}

func (m Model) attached(h Handle) bool {
	if h.IsZero() {
		return false
	}
	if h == m.toggle {
		return true
	}
	return m.indexOf(h) >= 0
}

func (m Model) indexOf(h Handle) int {
	for i, it := range m.items {
		if it.handle == h {
			return i
		}
	}
	return -1
}

func (m Model) publish(t Transition, reason Reason) {
	log.Debug(log.CatMenu, "transition", "menu", m.id, "to", t, "reason", reason)
	if m.events == nil {
		return
	}
	eventType := pubsub.OpenedEvent
	if t == Closed {
		eventType = pubsub.ClosedEvent
	}
	m.events.Publish(eventType, Change{MenuID: m.id, Transition: t, Reason: reason})
}
