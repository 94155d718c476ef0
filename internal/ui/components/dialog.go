package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"calendar-tui/internal/ui/styles"
)

// ConfirmChoice is what a key press resolved to inside the dialog.
type ConfirmChoice int

const (
	ChoiceNone ConfirmChoice = iota
	ChoiceCancel
	ChoiceProceed
)

// ConfirmDialog is a Cancel/Proceed surface for destructive actions.
// It does not handle Escape: the owner decides what dismissal means.
type ConfirmDialog struct {
	Title       string
	Lines       []string
	CancelText  string
	ConfirmText string

	// Busy marks an in-flight confirmed action; Proceed is shown disabled.
	Busy bool

	focus ConfirmChoice
	keys  confirmKeys
}

type confirmKeys struct {
	Next    key.Binding
	Prev    key.Binding
	Select  key.Binding
	Proceed key.Binding
	Cancel  key.Binding
}

// NewConfirmDialog создает диалог; фокус по умолчанию на Cancel.
func NewConfirmDialog(title string, lines ...string) *ConfirmDialog {
	return &ConfirmDialog{
		Title:       title,
		Lines:       lines,
		CancelText:  "Cancel",
		ConfirmText: "Proceed",
		focus:       ChoiceCancel,
		keys: confirmKeys{
			Next:    key.NewBinding(key.WithKeys("right", "tab", "l")),
			Prev:    key.NewBinding(key.WithKeys("left", "shift+tab", "h")),
			Select:  key.NewBinding(key.WithKeys("enter", " ")),
			Proceed: key.NewBinding(key.WithKeys("y", "Y")),
			Cancel:  key.NewBinding(key.WithKeys("n", "N")),
		},
	}
}

// Focused returns the button that currently holds focus.
func (d *ConfirmDialog) Focused() ConfirmChoice {
	return d.focus
}

// Focus moves focus to the given button.
func (d *ConfirmDialog) Focus(choice ConfirmChoice) {
	if choice == ChoiceCancel || choice == ChoiceProceed {
		d.focus = choice
	}
}

// Update resolves a key press. Focus movement returns ChoiceNone.
func (d *ConfirmDialog) Update(msg tea.KeyMsg) ConfirmChoice {
	switch {
	case key.Matches(msg, d.keys.Proceed):
		return ChoiceProceed
	case key.Matches(msg, d.keys.Cancel):
		return ChoiceCancel
	case key.Matches(msg, d.keys.Select):
		return d.focus
	case key.Matches(msg, d.keys.Next), key.Matches(msg, d.keys.Prev):
		if d.focus == ChoiceCancel {
			d.focus = ChoiceProceed
		} else {
			d.focus = ChoiceCancel
		}
	}
	return ChoiceNone
}

// View отрисовывает диалог.
func (d *ConfirmDialog) View(theme *styles.Theme, width int) string {
	if width < 20 {
		width = 20
	}
	inner := width - 6

	var b strings.Builder
	b.WriteString(theme.WarningStyle.Render(d.Title))
	b.WriteString("\n\n")
	for _, line := range d.Lines {
		b.WriteString(theme.TextStyle.Width(inner).Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	cancel := theme.ButtonStyle.Render(d.CancelText)
	proceedText := d.ConfirmText
	if d.Busy {
		proceedText += "…"
	}
	proceed := theme.ButtonStyle.Render(proceedText)
	switch d.focus {
	case ChoiceCancel:
		cancel = theme.FocusStyle.Padding(0, 2).Margin(0, 1).Render(d.CancelText)
	case ChoiceProceed:
		proceed = theme.DangerStyle.Render(proceedText)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, cancel, proceed))
	b.WriteString("\n")
	b.WriteString(theme.DimStyle.Render("y: proceed • n/esc: cancel • ←/→: move"))

	colors := theme.Colors()
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Error)).
		Padding(1, 2).
		Width(width).
		Render(b.String())
}
