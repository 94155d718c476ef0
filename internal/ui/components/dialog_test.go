package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"calendar-tui/internal/ui/styles"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestConfirmDialog_DefaultFocusIsCancel(t *testing.T) {
	d := NewConfirmDialog("Replace calendar?", "line")
	assert.Equal(t, ChoiceCancel, d.Focused())
	assert.Equal(t, ChoiceCancel, d.Update(tea.KeyMsg{Type: tea.KeyEnter}))
}

func TestConfirmDialog_FocusMovement(t *testing.T) {
	d := NewConfirmDialog("t")

	assert.Equal(t, ChoiceNone, d.Update(tea.KeyMsg{Type: tea.KeyRight}))
	assert.Equal(t, ChoiceProceed, d.Focused())
	assert.Equal(t, ChoiceProceed, d.Update(tea.KeyMsg{Type: tea.KeyEnter}))

	assert.Equal(t, ChoiceNone, d.Update(tea.KeyMsg{Type: tea.KeyTab}))
	assert.Equal(t, ChoiceCancel, d.Focused())
}

func TestConfirmDialog_LetterShortcuts(t *testing.T) {
	d := NewConfirmDialog("t")
	assert.Equal(t, ChoiceProceed, d.Update(runeKey('y')))
	assert.Equal(t, ChoiceCancel, d.Update(runeKey('n')))
	assert.Equal(t, ChoiceNone, d.Update(runeKey('x')))
	assert.Equal(t, ChoiceNone, d.Update(tea.KeyMsg{Type: tea.KeyEsc}), "escape belongs to the owner")
}

func TestConfirmDialog_ViewContainsLinesAndButtons(t *testing.T) {
	d := NewConfirmDialog("Replace calendar?", "Overwriting 3 entries", "This action is irreversible.")
	view := d.View(styles.NewTheme(styles.Dark), 60)

	assert.Contains(t, view, "Overwriting 3 entries")
	assert.Contains(t, view, "This action is irreversible.")
	assert.Contains(t, view, "Cancel")
	assert.Contains(t, view, "Proceed")
}
