// Package config provides configuration types and defaults for navdrawer.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zjrosen/navdrawer/internal/log"
	"github.com/zjrosen/navdrawer/internal/ui/styles"
)

// LinkConfig is a single navigation destination.
// Target is an opaque fragment identifier handed to the host page.
type LinkConfig struct {
	Label  string `mapstructure:"label" yaml:"label"`
	Target string `mapstructure:"target" yaml:"target"`
}

// SectionConfig is one block of the host page, addressed by its anchor.
type SectionConfig struct {
	Anchor string `mapstructure:"anchor"`
	Title  string `mapstructure:"title"`
	Body   string `mapstructure:"body"` // markdown
}

// ThemeConfig holds color overrides keyed by token name.
type ThemeConfig struct {
	// Colors overrides individual color tokens. Viper splits keys on dots,
	// so "link.focus" arrives as a nested map; FlattenedColors undoes that.
	//   colors:
	//     link:
	//       focus: "#FF0000"
	Colors map[string]any `mapstructure:"colors"`
}

// FlattenedColors returns Colors keyed by dot-notation token names.
func (t ThemeConfig) FlattenedColors() map[string]string {
	result := make(map[string]string)
	flattenColors("", t.Colors, result)
	return result
}

func flattenColors(prefix string, m map[string]any, result map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			result[key] = val
		case map[string]any:
			flattenColors(key, val, result)
		case map[any]any:
			converted := make(map[string]any, len(val))
			for mk, mv := range val {
				if strKey, ok := mk.(string); ok {
					converted[strKey] = mv
				}
			}
			flattenColors(key, converted, result)
		}
	}
}

// Config holds all configuration options for navdrawer.
type Config struct {
	Brand       string          `mapstructure:"brand"`
	PanelLabel  string          `mapstructure:"panel_label"`
	ToggleKey   string          `mapstructure:"toggle_key"`
	Links       []LinkConfig    `mapstructure:"links"`
	CTA         LinkConfig      `mapstructure:"cta"`
	Sections    []SectionConfig `mapstructure:"sections"`
	Theme       ThemeConfig     `mapstructure:"theme"`
	WatchConfig bool            `mapstructure:"watch_config"`
}

// DefaultLinks returns the built-in destinations. Contact is the CTA.
func DefaultLinks() []LinkConfig {
	return []LinkConfig{
		{Label: "Services", Target: "#services"},
		{Label: "About", Target: "#about"},
		{Label: "Work", Target: "#work"},
	}
}

// DefaultCTA returns the built-in call-to-action link.
func DefaultCTA() LinkConfig {
	return LinkConfig{Label: "Contact", Target: "#contact"}
}

// DefaultSections returns placeholder page content for the default links.
func DefaultSections() []SectionConfig {
	return []SectionConfig{
		{
			Anchor: "#services",
			Title:  "Services",
			Body:   "We design and build **terminal-first** tools.\n\n- Product design\n- Engineering\n- Support",
		},
		{
			Anchor: "#about",
			Title:  "About",
			Body:   "A small studio that cares about keyboard users and screen readers alike.",
		},
		{
			Anchor: "#work",
			Title:  "Work",
			Body:   "Selected projects:\n\n1. Dashboards\n2. Command palettes\n3. Install wizards",
		},
		{
			Anchor: "#contact",
			Title:  "Contact",
			Body:   "Write to `hello@example.com` and tell us what you are building.",
		},
	}
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		Brand:       "Studio",
		PanelLabel:  "Navigation",
		ToggleKey:   "m",
		Links:       DefaultLinks(),
		CTA:         DefaultCTA(),
		Sections:    DefaultSections(),
		WatchConfig: false,
	}
}

// ValidateLinks checks navigation links for errors.
func ValidateLinks(links []LinkConfig) error {
	if len(links) == 0 {
		return fmt.Errorf("links: at least one link is required")
	}
	for i, link := range links {
		if err := validateLink(link); err != nil {
			return fmt.Errorf("link %d: %w", i, err)
		}
	}
	return nil
}

func validateLink(link LinkConfig) error {
	if strings.TrimSpace(link.Label) == "" {
		return fmt.Errorf("label is required")
	}
	if !strings.HasPrefix(link.Target, "#") || len(link.Target) < 2 {
		return fmt.Errorf("(%s): target must be a fragment like \"#about\", got %q", link.Label, link.Target)
	}
	return nil
}

// ValidateSections checks page sections for errors.
// Empty sections are valid; the page renders the default content.
func ValidateSections(sections []SectionConfig) error {
	seen := make(map[string]bool, len(sections))
	for i, s := range sections {
		if !strings.HasPrefix(s.Anchor, "#") || len(s.Anchor) < 2 {
			return fmt.Errorf("section %d: anchor must be a fragment like \"#about\", got %q", i, s.Anchor)
		}
		if seen[s.Anchor] {
			return fmt.Errorf("section %d: duplicate anchor %q", i, s.Anchor)
		}
		seen[s.Anchor] = true
	}
	return nil
}

// ValidateTheme checks color overrides for errors.
func ValidateTheme(theme ThemeConfig) error {
	for token, value := range theme.FlattenedColors() {
		if !styles.IsValidHexColor(value) {
			return fmt.Errorf("theme.colors.%s: invalid hex color %q", token, value)
		}
	}
	return nil
}

// Validate checks the whole configuration.
func Validate(cfg Config) error {
	if err := ValidateLinks(cfg.Links); err != nil {
		return err
	}
	if err := validateLink(cfg.CTA); err != nil {
		return fmt.Errorf("cta: %w", err)
	}
	if err := ValidateSections(cfg.Sections); err != nil {
		return err
	}
	return ValidateTheme(cfg.Theme)
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# navdrawer configuration

# Title shown at the left of the header bar
brand: Studio

# Accessible label of the navigation panel
panel_label: Navigation

# Key that opens and closes the menu
toggle_key: m

# Reload links and sections when this file changes
watch_config: false

# Navigation links, in display order. Targets are fragment identifiers
# passed to the page; the menu never interprets them.
links:
  - label: Services
    target: "#services"
  - label: About
    target: "#about"
  - label: Work
    target: "#work"

# Call-to-action link rendered below the list
cta:
  label: Contact
  target: "#contact"

# Page sections (markdown bodies). Omit to use the built-in content.
# sections:
#   - anchor: "#about"
#     title: About
#     body: |
#       Who we are.

# Color overrides by token name
# theme:
#   colors:
#     link.focus: "#38BDF8"
#     cta.bg: "#7C3AED"
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
