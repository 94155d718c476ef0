package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"calendar-tui/internal/ui/styles"
)

// ShortcutsScreen is the keyboard-shortcuts reference.
type ShortcutsScreen struct {
	BaseScreen

	keys    help.KeyMap
	help    help.Model
	enabled func() bool
}

// NewShortcutsScreen renders keys with bubbles/help. enabled reports the
// current shortcuts preference.
func NewShortcutsScreen(keys help.KeyMap, enabled func() bool, theme *styles.Theme) *ShortcutsScreen {
	h := help.New()
	h.ShowAll = true
	return &ShortcutsScreen{
		BaseScreen: NewBaseScreen("Keyboard shortcuts", theme),
		keys:       keys,
		help:       h,
		enabled:    enabled,
	}
}

func (ss *ShortcutsScreen) Init() tea.Cmd {
	return nil
}

func (ss *ShortcutsScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if m, ok := msg.(tea.WindowSizeMsg); ok {
		ss.resize(m)
		ss.help.Width = ss.Width()
	}
	return ss, nil
}

func (ss *ShortcutsScreen) View() string {
	theme := ss.Theme()
	ss.help.Styles.FullKey = theme.HighlightStyle
	ss.help.Styles.FullDesc = theme.TextStyle
	ss.help.Styles.FullSeparator = theme.DimStyle

	var b strings.Builder
	b.WriteString(theme.TitleBar("Keyboard shortcuts"))
	b.WriteString("\n")
	if ss.enabled != nil && !ss.enabled() {
		b.WriteString(theme.WarningStyle.Render("Single-key shortcuts are disabled. Ctrl chords still work."))
	} else {
		b.WriteString(theme.DimStyle.Render("Single-key shortcuts are enabled."))
	}
	b.WriteString("\n\n")
	if ss.keys != nil {
		b.WriteString(ss.help.View(ss.keys))
	}
	return b.String()
}

func (ss *ShortcutsScreen) ShortHelp() string {
	return "Esc: Back • Ctrl+Q: Quit"
}
