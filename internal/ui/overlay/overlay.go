// Package overlay composites a floating panel over a dimmed backdrop.
//
// The backdrop is the host content with its styling stripped and redrawn in
// a single faint color, padded so that it covers the whole viewport. The
// panel is then spliced line by line over that backdrop, keeping any escape
// sequences in the panel (colors, mouse zone markers) intact.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Position specifies where to place the panel.
type Position int

const (
	// Center places the panel in the middle of the viewport.
	Center Position = iota
	// Top places the panel at the top center of the viewport.
	Top
	// TopRight places the panel against the top right corner, under a
	// toggle control that lives at the right end of a header bar.
	TopRight
	// Bottom places the panel at the bottom center of the viewport.
	Bottom
)

// Config controls overlay rendering.
type Config struct {
	// Width and Height are the viewport dimensions the backdrop must cover.
	Width  int
	Height int
	// Position selects the panel anchor.
	Position Position
	// PadX and PadY inset the panel from the anchored edges.
	PadX int
	PadY int
}

// Backdrop returns bg stripped of styling, padded or clipped to exactly
// width x height cells, and rendered with style.
func Backdrop(width, height int, bg string, style lipgloss.Style) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	lines := strings.Split(ansi.Strip(bg), "\n")
	out := make([]string, height)
	for y := range out {
		var line string
		if y < len(lines) {
			line = ansi.Truncate(lines[y], width, "")
		}
		if w := ansi.StringWidth(line); w < width {
			line += strings.Repeat(" ", width-w)
		}
		out[y] = style.Render(line)
	}
	return strings.Join(out, "\n")
}

// Place splices fg over bg at the configured position.
func Place(cfg Config, fg, bg string) string {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")

	for len(bgLines) < cfg.Height {
		bgLines = append(bgLines, strings.Repeat(" ", cfg.Width))
	}

	startX, startY := position(cfg, lipgloss.Width(fg), len(fgLines))

	for i, fgLine := range fgLines {
		y := startY + i
		if y >= len(bgLines) {
			break
		}
		bgLines[y] = splice(bgLines[y], fgLine, startX)
	}

	return strings.Join(bgLines, "\n")
}

// Compose renders the dimmed backdrop for bg and places fg over it.
func Compose(cfg Config, fg, bg string, backdropStyle lipgloss.Style) string {
	return Place(cfg, fg, Backdrop(cfg.Width, cfg.Height, bg, backdropStyle))
}

// splice replaces the cells of line starting at x with insert.
func splice(line, insert string, x int) string {
	left := ansi.Truncate(line, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}

	var right string
	end := x + ansi.StringWidth(insert)
	if end < ansi.StringWidth(line) {
		right = ansi.TruncateLeft(line, end, "")
	}

	return left + insert + right
}

func position(cfg Config, fgWidth, fgHeight int) (x, y int) {
	switch cfg.Position {
	case Top:
		x = (cfg.Width - fgWidth) / 2
		y = cfg.PadY
	case TopRight:
		x = cfg.Width - fgWidth - cfg.PadX
		y = cfg.PadY
	case Bottom:
		x = (cfg.Width - fgWidth) / 2
		y = cfg.Height - fgHeight - cfg.PadY
	default:
		x = (cfg.Width - fgWidth) / 2
		y = (cfg.Height - fgHeight) / 2
	}
	return max(x, 0), max(y, 0)
}
