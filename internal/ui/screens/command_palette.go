package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"calendar-tui/internal/ui/styles"
)

// CommandEntry описывает одну команду в палитре.
type CommandEntry struct {
	ID      string
	Title   string
	Key     string
	Enabled bool
}

// CommandFetcher возвращает доступные команды.
type CommandFetcher func() []CommandEntry

// CommandExecuteMsg сообщает приложению, какую команду нужно выполнить.
type CommandExecuteMsg struct {
	ID string
}

// CommandPaletteClosedMsg сигнал закрытия палитры без выбора.
type CommandPaletteClosedMsg struct{}

// CommandPaletteScreen отображает список команд с фильтром.
type CommandPaletteScreen struct {
	BaseScreen

	fetch    CommandFetcher
	filter   textinput.Model
	entries  []CommandEntry
	filtered []CommandEntry
	selected int
}

func NewCommandPaletteScreen(fetch CommandFetcher, theme *styles.Theme) *CommandPaletteScreen {
	ti := textinput.New()
	ti.Placeholder = "Filter commands"
	ti.Focus()

	return &CommandPaletteScreen{
		BaseScreen: NewBaseScreen("Command Palette", theme),
		fetch:      fetch,
		filter:     ti,
	}
}

func (ps *CommandPaletteScreen) Init() tea.Cmd {
	ps.refresh()
	return textinput.Blink
}

func (ps *CommandPaletteScreen) OnEnter() tea.Cmd {
	ps.filter.SetValue("")
	ps.selected = 0
	ps.refresh()
	return nil
}

var paletteKeys = struct {
	Prev, Next, Run, Close key.Binding
}{
	Prev:  key.NewBinding(key.WithKeys("up", "shift+tab", "ctrl+k")),
	Next:  key.NewBinding(key.WithKeys("down", "tab", "ctrl+j")),
	Run:   key.NewBinding(key.WithKeys("enter")),
	Close: key.NewBinding(key.WithKeys("esc")),
}

func (ps *CommandPaletteScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		ps.resize(m)
		ps.filter.Width = ps.Width() - 4
		return ps, nil
	case tea.KeyMsg:
		return ps, ps.handleKey(m)
	}
	return ps, nil
}

func (ps *CommandPaletteScreen) handleKey(m tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(m, paletteKeys.Prev):
		ps.move(-1)
		return nil
	case key.Matches(m, paletteKeys.Next):
		ps.move(1)
		return nil
	case key.Matches(m, paletteKeys.Run):
		entry, ok := ps.Selected()
		if !ok || !entry.Enabled {
			return nil
		}
		return func() tea.Msg { return CommandExecuteMsg{ID: entry.ID} }
	case key.Matches(m, paletteKeys.Close):
		return func() tea.Msg { return CommandPaletteClosedMsg{} }
	}

	before := ps.filter.Value()
	var cmd tea.Cmd
	ps.filter, cmd = ps.filter.Update(m)
	if ps.filter.Value() != before {
		ps.selected = 0
		ps.applyFilter()
	}
	return cmd
}

// move shifts the selection, clamped to the filtered list.
func (ps *CommandPaletteScreen) move(delta int) {
	if len(ps.filtered) == 0 {
		return
	}
	ps.selected = max(0, min(len(ps.filtered)-1, ps.selected+delta))
}

// SetAnimations switches the filter cursor between blinking and static.
func (ps *CommandPaletteScreen) SetAnimations(enabled bool) tea.Cmd {
	mode := cursor.CursorStatic
	if enabled {
		mode = cursor.CursorBlink
	}
	return ps.filter.Cursor.SetMode(mode)
}

// Selected returns the highlighted entry.
func (ps *CommandPaletteScreen) Selected() (CommandEntry, bool) {
	if ps.selected < 0 || ps.selected >= len(ps.filtered) {
		return CommandEntry{}, false
	}
	return ps.filtered[ps.selected], true
}

func (ps *CommandPaletteScreen) View() string {
	theme := ps.Theme()
	width := ps.Width()
	if width <= 0 {
		width = 80
	}
	if width < 20 {
		width = 20
	}
	ps.filter.Width = width - 4

	var lines []string
	if len(ps.filtered) == 0 {
		lines = append(lines, theme.DimStyle.Render("No commands match filter"))
	}
	for i, entry := range ps.filtered {
		prefix := "  "
		style := theme.TextStyle
		if !entry.Enabled {
			style = theme.DimStyle
		}
		if i == ps.selected {
			prefix = "→ "
			style = theme.FocusStyle
		}
		line := style.Render(prefix + entry.Title)
		if entry.Key != "" {
			line += theme.DimStyle.Render(" [" + entry.Key + "]")
		}
		lines = append(lines, line)
	}

	list := strings.Join(lines, "\n")
	content := lipgloss.NewStyle().Padding(1).Width(width - 2).Render(ps.filter.View() + "\n\n" + list)
	return lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(theme.Colors().Border)).Render(content)
}

func (ps *CommandPaletteScreen) ShortHelp() string {
	return "↑/↓: Select • Enter: Run • Esc: Close"
}

func (ps *CommandPaletteScreen) refresh() {
	if ps.fetch == nil {
		ps.entries = nil
		ps.filtered = nil
		return
	}
	ps.entries = ps.fetch()
	ps.applyFilter()
}

// paletteSource adapts entries to fuzzy matching on title and key.
type paletteSource []CommandEntry

func (p paletteSource) String(i int) string { return p[i].Title + " " + p[i].Key }
func (p paletteSource) Len() int            { return len(p) }

// applyFilter keeps entries fuzzy-matching the filter, best match first.
// Пустой фильтр показывает все команды в исходном порядке.
func (ps *CommandPaletteScreen) applyFilter() {
	filter := strings.TrimSpace(ps.filter.Value())
	if filter == "" {
		ps.filtered = append([]CommandEntry(nil), ps.entries...)
	} else {
		matches := fuzzy.FindFrom(filter, paletteSource(ps.entries))
		ps.filtered = make([]CommandEntry, 0, len(matches))
		for _, m := range matches {
			ps.filtered = append(ps.filtered, ps.entries[m.Index])
		}
	}
	if len(ps.filtered) == 0 {
		ps.selected = -1
		return
	}
	ps.selected = max(0, min(len(ps.filtered)-1, ps.selected))
}
