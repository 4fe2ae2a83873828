package markdown

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	r, err := New(40, "notty")
	require.NoError(t, err)
	require.Equal(t, 40, r.Width())

	out, err := r.Render("We build **terminal** tools.")
	require.NoError(t, err)
	require.Contains(t, ansi.Strip(out), "terminal")
	require.NotRegexp(t, `\n$`, out)
}

func TestRenderer_DefaultStyle(t *testing.T) {
	r, err := New(20, "")
	require.NoError(t, err)

	out, err := r.Render("- one\n- two")
	require.NoError(t, err)
	require.Contains(t, ansi.Strip(out), "two")
}
