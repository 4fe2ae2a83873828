// Package styles contains Lip Gloss style definitions.
package styles

// ColorToken represents a named, themeable color.
// These are the keys users can override under theme.colors in their config.
type ColorToken string

const (
	// Text hierarchy
	TokenTextPrimary ColorToken = "text.primary"
	TokenTextMuted   ColorToken = "text.muted"

	// Header bar and toggle control
	TokenHeaderBg     ColorToken = "header.bg"
	TokenBrand        ColorToken = "header.brand"
	TokenToggle       ColorToken = "toggle.fg"
	TokenToggleFocus  ColorToken = "toggle.focus"
	TokenToggleActive ColorToken = "toggle.active"

	// Panel and links
	TokenPanelBorder ColorToken = "panel.border"
	TokenPanelTitle  ColorToken = "panel.title"
	TokenLink        ColorToken = "link.fg"
	TokenLinkFocus   ColorToken = "link.focus"
	TokenCTAText     ColorToken = "cta.fg"
	TokenCTABg       ColorToken = "cta.bg"
	TokenCTAFocusBg  ColorToken = "cta.focus"

	// Backdrop dimming
	TokenBackdrop ColorToken = "backdrop.fg"

	// Host page
	TokenSectionTitle ColorToken = "section.title"
	TokenStatusBar    ColorToken = "status.fg"

	// Toast borders
	TokenToastSuccess ColorToken = "toast.success"
	TokenToastError   ColorToken = "toast.error"
	TokenToastInfo    ColorToken = "toast.info"
	TokenToastWarn    ColorToken = "toast.warn"
)

// AllTokens lists every token in display order.
func AllTokens() []ColorToken {
	return []ColorToken{
		TokenTextPrimary, TokenTextMuted,
		TokenHeaderBg, TokenBrand, TokenToggle, TokenToggleFocus, TokenToggleActive,
		TokenPanelBorder, TokenPanelTitle, TokenLink, TokenLinkFocus,
		TokenCTAText, TokenCTABg, TokenCTAFocusBg,
		TokenBackdrop,
		TokenSectionTitle, TokenStatusBar,
		TokenToastSuccess, TokenToastError, TokenToastInfo, TokenToastWarn,
	}
}

// DefaultColors is the built-in palette.
var DefaultColors = map[ColorToken]string{
	TokenTextPrimary:  "#E4E4E7",
	TokenTextMuted:    "#71717A",
	TokenHeaderBg:     "#18181B",
	TokenBrand:        "#FAFAFA",
	TokenToggle:       "#D4D4D8",
	TokenToggleFocus:  "#38BDF8",
	TokenToggleActive: "#F472B6",
	TokenPanelBorder:  "#52525B",
	TokenPanelTitle:   "#A1A1AA",
	TokenLink:         "#E4E4E7",
	TokenLinkFocus:    "#38BDF8",
	TokenCTAText:      "#FFFFFF",
	TokenCTABg:        "#7C3AED",
	TokenCTAFocusBg:   "#A78BFA",
	TokenBackdrop:     "#3F3F46",
	TokenSectionTitle: "#F472B6",
	TokenStatusBar:    "#71717A",
	TokenToastSuccess: "#4ADE80",
	TokenToastError:   "#F87171",
	TokenToastInfo:    "#38BDF8",
	TokenToastWarn:    "#FACC15",
}

func isValidToken(token ColorToken) bool {
	_, ok := DefaultColors[token]
	return ok
}
