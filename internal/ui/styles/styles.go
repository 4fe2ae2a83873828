package styles

import "github.com/charmbracelet/lipgloss"

func color(token ColorToken) lipgloss.AdaptiveColor {
	hex := DefaultColors[token]
	return lipgloss.AdaptiveColor{Light: hex, Dark: hex}
}

var (
	TextPrimaryColor = color(TokenTextPrimary)
	TextMutedColor   = color(TokenTextMuted)

	HeaderBgColor     = color(TokenHeaderBg)
	BrandColor        = color(TokenBrand)
	ToggleColor       = color(TokenToggle)
	ToggleFocusColor  = color(TokenToggleFocus)
	ToggleActiveColor = color(TokenToggleActive)

	PanelBorderColor = color(TokenPanelBorder)
	PanelTitleColor  = color(TokenPanelTitle)
	LinkColor        = color(TokenLink)
	LinkFocusColor   = color(TokenLinkFocus)
	CTATextColor     = color(TokenCTAText)
	CTABgColor       = color(TokenCTABg)
	CTAFocusBgColor  = color(TokenCTAFocusBg)

	BackdropColor = color(TokenBackdrop)

	SectionTitleColor = color(TokenSectionTitle)
	StatusBarColor    = color(TokenStatusBar)

	ToastSuccessColor = color(TokenToastSuccess)
	ToastErrorColor   = color(TokenToastError)
	ToastInfoColor    = color(TokenToastInfo)
	ToastWarnColor    = color(TokenToastWarn)
)

// Styles derived from the colors above. Rebuilt by ApplyTheme.
var (
	HeaderStyle        lipgloss.Style
	BrandStyle         lipgloss.Style
	ToggleStyle        lipgloss.Style
	ToggleFocusedStyle lipgloss.Style
	ToggleOpenStyle    lipgloss.Style

	PanelStyle        lipgloss.Style
	PanelTitleStyle   lipgloss.Style
	PanelDividerStyle lipgloss.Style
	LinkStyle         lipgloss.Style
	LinkFocusedStyle  lipgloss.Style
	CTAStyle          lipgloss.Style
	CTAFocusedStyle   lipgloss.Style

	// SelectionIndicatorStyle renders the ">" prefix on the focused link.
	SelectionIndicatorStyle lipgloss.Style

	BackdropStyle lipgloss.Style

	SectionTitleStyle lipgloss.Style
	StatusBarStyle    lipgloss.Style

	ToastStyle lipgloss.Style
)

func init() {
	rebuildStyles()
}

func rebuildStyles() {
	HeaderStyle = lipgloss.NewStyle().Background(HeaderBgColor)
	BrandStyle = lipgloss.NewStyle().Bold(true).Foreground(BrandColor).Background(HeaderBgColor).Padding(0, 1)
	ToggleStyle = lipgloss.NewStyle().Foreground(ToggleColor).Background(HeaderBgColor).Padding(0, 1)
	ToggleFocusedStyle = ToggleStyle.Foreground(ToggleFocusColor).Underline(true)
	ToggleOpenStyle = ToggleStyle.Foreground(ToggleActiveColor).Bold(true)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PanelBorderColor)
	PanelTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(PanelTitleColor).PaddingLeft(1)
	PanelDividerStyle = lipgloss.NewStyle().Foreground(PanelBorderColor)
	LinkStyle = lipgloss.NewStyle().Foreground(LinkColor)
	LinkFocusedStyle = lipgloss.NewStyle().Foreground(LinkFocusColor).Bold(true)
	CTAStyle = lipgloss.NewStyle().Padding(0, 2).Bold(true).
		Foreground(CTATextColor).
		Background(CTABgColor)
	CTAFocusedStyle = CTAStyle.
		Background(CTAFocusBgColor).
		Underline(true).
		UnderlineSpaces(true)

	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(LinkFocusColor)

	BackdropStyle = lipgloss.NewStyle().Foreground(BackdropColor).Faint(true)

	SectionTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(SectionTitleColor)
	StatusBarStyle = lipgloss.NewStyle().Foreground(StatusBarColor)

	ToastStyle = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder())
}
