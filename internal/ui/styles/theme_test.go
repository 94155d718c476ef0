package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestIndexOf(t *testing.T) {
	assert.Equal(t, 0, IndexOf(Dark))
	assert.Equal(t, 1, IndexOf(Light))
	assert.Equal(t, 2, IndexOf(Contrast))
	assert.Equal(t, -1, IndexOf(Scheme("sepia")))
}

func TestParseScheme_FallsBackToDark(t *testing.T) {
	assert.Equal(t, Contrast, ParseScheme("contrast"))
	assert.Equal(t, Dark, ParseScheme(""))
	assert.Equal(t, Dark, ParseScheme("solarized"))
}

func TestApply_SwitchesPalette(t *testing.T) {
	theme := NewTheme(Dark)
	assert.Equal(t, DarkPalette, theme.Colors())

	theme.Apply(Contrast)
	assert.Equal(t, Contrast, theme.Scheme())
	assert.Equal(t, ContrastPalette, theme.Colors())
	assert.Equal(t, lipgloss.Color(ContrastPalette.Error), theme.FillColor(FillRed))
	assert.Equal(t, lipgloss.Color(ContrastPalette.Primary), theme.FillColor(FillPrimary))
}
