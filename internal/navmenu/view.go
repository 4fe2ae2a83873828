package navmenu

import (
	"fmt"
	"strings"

	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/truncate"

	"github.com/zjrosen/navdrawer/internal/ui/overlay"
	"github.com/zjrosen/navdrawer/internal/ui/styles"
)

const (
	panelWidth    = 30
	minPanelWidth = 14
)

// ToggleLabel returns the accessible label of the toggle control.
func (m Model) ToggleLabel() string {
	if m.state.Current {
		return "Close menu"
	}
	return "Open menu"
}

// Expanded reports the toggle's expanded/collapsed indicator.
func (m Model) Expanded() bool {
	return m.state.Current
}

// View renders the toggle control. It is always present.
func (m Model) View() string {
	glyph := "☰"
	style := styles.ToggleStyle
	switch {
	case m.state.Current:
		glyph = "✕"
		style = styles.ToggleOpenStyle
	case m.focused == m.toggle:
		style = styles.ToggleFocusedStyle
	}
	return zone.Mark(m.toggle.id, style.Render(glyph+" "+m.ToggleLabel()))
}

// Overlay renders the backdrop and panel over body when open. When closed
// body is returned untouched: neither element exists in the output.
func (m Model) Overlay(body string) string {
	if !m.state.Current {
		return body
	}

	cfg := overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: m.position,
		PadX:     1,
	}
	panel := zone.Mark(m.panel, m.panelView())
	return zone.Mark(m.backdrop, overlay.Compose(cfg, panel, body, styles.BackdropStyle))
}

func (m Model) innerWidth() int {
	w := panelWidth - 2
	if m.width > 0 && m.width-2 < panelWidth {
		w = max(m.width-4, minPanelWidth-2)
	}
	return w
}

func (m Model) panelView() string {
	inner := m.innerWidth()
	labelWidth := uint(max(inner-6, 1))

	var b strings.Builder
	b.WriteString(styles.PanelTitleStyle.Render(m.label))
	b.WriteString("\n")
	b.WriteString(styles.PanelDividerStyle.Render(strings.Repeat("─", inner)))

	n := 0
	for _, it := range m.items {
		if it.cta {
			continue
		}
		n++
		focused := it.handle == m.focused

		prefix := "  "
		style := styles.LinkStyle
		if focused {
			prefix = styles.SelectionIndicatorStyle.Render(">") + " "
			style = styles.LinkFocusedStyle
		}
		text := fmt.Sprintf("%d. %s", n, truncate.StringWithTail(it.link.Label, labelWidth, "…"))
		b.WriteString("\n")
		b.WriteString(zone.Mark(it.handle.id, prefix+style.Render(text)))
	}

	for _, it := range m.items {
		if !it.cta {
			continue
		}
		style := styles.CTAStyle
		if it.handle == m.focused {
			style = styles.CTAFocusedStyle
		}
		b.WriteString("\n\n  ")
		b.WriteString(zone.Mark(it.handle.id, style.Render(truncate.StringWithTail(it.link.Label, labelWidth, "…"))))
	}

	return styles.PanelStyle.Width(inner).Render(b.String())
}

// LinkSemantics describes one link for assistive output.
type LinkSemantics struct {
	Handle   Handle
	Label    string
	Target   string
	Position int // 1-based position in the list; 0 for the CTA
	CTA      bool
	Focused  bool
}

// PanelSemantics describes the open panel: a labelled modal dialog.
type PanelSemantics struct {
	Role  string
	Modal bool
	Label string
	Links []LinkSemantics
}

// Semantics is the accessibility view of the menu. Backdrop and Panel are
// nil while the menu is closed.
type Semantics struct {
	ToggleLabel    string
	ToggleExpanded bool
	ToggleFocused  bool
	Backdrop       *BackdropSemantics
	Panel          *PanelSemantics
}

// BackdropSemantics describes the backdrop, which is decorative only.
type BackdropSemantics struct {
	Hidden    bool
	Focusable bool
}

// Semantics returns the accessibility view of the current state.
func (m Model) Semantics() Semantics {
	s := Semantics{
		ToggleLabel:    m.ToggleLabel(),
		ToggleExpanded: m.Expanded(),
		ToggleFocused:  m.focused == m.toggle,
	}
	if !m.state.Current {
		return s
	}

	s.Backdrop = &BackdropSemantics{Hidden: true, Focusable: false}
	panel := &PanelSemantics{Role: "dialog", Modal: true, Label: m.label}
	pos := 0
	for _, it := range m.items {
		ls := LinkSemantics{
			Handle:  it.handle,
			Label:   it.link.Label,
			Target:  it.link.Target,
			CTA:     it.cta,
			Focused: it.handle == m.focused,
		}
		if !it.cta {
			pos++
			ls.Position = pos
		}
		panel.Links = append(panel.Links, ls)
	}
	s.Panel = panel
	return s
}
