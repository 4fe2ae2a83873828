package styles

import (
	"fmt"
	"maps"
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

var hexColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ApplyTheme resets every color to its default, applies overrides keyed by
// token name, then rebuilds the derived styles. Nothing is changed when an
// override names an unknown token or is not a hex color.
func ApplyTheme(overrides map[string]string) error {
	colors := maps.Clone(DefaultColors)

	for key, value := range overrides {
		token := ColorToken(key)
		if !isValidToken(token) {
			return fmt.Errorf("unknown color token: %s", key)
		}
		if !IsValidHexColor(value) {
			return fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		colors[token] = value
	}

	applyColors(colors)
	rebuildStyles()
	return nil
}

// IsValidHexColor reports whether s is a #RGB or #RRGGBB color.
func IsValidHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}

func applyColors(colors map[ColorToken]string) {
	targets := map[ColorToken]*lipgloss.AdaptiveColor{
		TokenTextPrimary:  &TextPrimaryColor,
		TokenTextMuted:    &TextMutedColor,
		TokenHeaderBg:     &HeaderBgColor,
		TokenBrand:        &BrandColor,
		TokenToggle:       &ToggleColor,
		TokenToggleFocus:  &ToggleFocusColor,
		TokenToggleActive: &ToggleActiveColor,
		TokenPanelBorder:  &PanelBorderColor,
		TokenPanelTitle:   &PanelTitleColor,
		TokenLink:         &LinkColor,
		TokenLinkFocus:    &LinkFocusColor,
		TokenCTAText:      &CTATextColor,
		TokenCTABg:        &CTABgColor,
		TokenCTAFocusBg:   &CTAFocusBgColor,
		TokenBackdrop:     &BackdropColor,
		TokenSectionTitle: &SectionTitleColor,
		TokenStatusBar:    &StatusBarColor,
		TokenToastSuccess: &ToastSuccessColor,
		TokenToastError:   &ToastErrorColor,
		TokenToastInfo:    &ToastInfoColor,
		TokenToastWarn:    &ToastWarnColor,
	}
	for token, target := range targets {
		if hex, ok := colors[token]; ok {
			*target = lipgloss.AdaptiveColor{Light: hex, Dark: hex}
		}
	}
}
