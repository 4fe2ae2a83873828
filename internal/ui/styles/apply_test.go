package styles

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyTheme_Override(t *testing.T) {
	t.Cleanup(func() { _ = ApplyTheme(nil) })

	err := ApplyTheme(map[string]string{"link.focus": "#FF0000"})
	require.NoError(t, err)
	require.Equal(t, "#FF0000", LinkFocusColor.Dark)
	require.Equal(t, DefaultColors[TokenLink], LinkColor.Dark, "untouched tokens keep defaults")
}

func TestApplyTheme_ResetsBetweenCalls(t *testing.T) {
	t.Cleanup(func() { _ = ApplyTheme(nil) })

	require.NoError(t, ApplyTheme(map[string]string{"cta.bg": "#123456"}))
	require.NoError(t, ApplyTheme(nil))
	require.Equal(t, DefaultColors[TokenCTABg], CTABgColor.Dark)
}

func TestApplyTheme_UnknownToken(t *testing.T) {
	err := ApplyTheme(map[string]string{"nope.color": "#FFFFFF"})
	require.ErrorContains(t, err, "unknown color token")
}

func TestApplyTheme_InvalidHex(t *testing.T) {
	err := ApplyTheme(map[string]string{"link.fg": "red"})
	require.ErrorContains(t, err, "invalid hex color")
}

func TestIsValidHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"#FFF", true},
		{"#a1b2c3", true},
		{"FFFFFF", false},
		{"#GGGGGG", false},
		{"#12345", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, IsValidHexColor(tt.in))
		})
	}
}

func TestAllTokens_HaveDefaults(t *testing.T) {
	tokens := AllTokens()
	require.Len(t, tokens, len(DefaultColors))
	for _, token := range tokens {
		require.True(t, isValidToken(token), "token %s should have a default", token)
	}
}
