package screens

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/itchyny/timefmt-go"
	"github.com/mattn/go-runewidth"

	"calendar-tui/internal/fs"
	"calendar-tui/internal/store"
	"calendar-tui/internal/ui/styles"
)

// entryTimeFormat is the strftime layout of entry start times in the agenda.
const entryTimeFormat = "%a %d %b %H:%M"

// maxTitleWidth ограничивает ширину заголовка записи в колонках терминала
const maxTitleWidth = 48

// CalendarSource is what the calendar screen reads.
type CalendarSource interface {
	Snapshot() store.Data
	LastImport() time.Time
}

// ExportLister returns the most recent export files.
type ExportLister func() ([]fs.FileEntry, error)

// ExportsChangedMsg tells screens that a new export was written.
type ExportsChangedMsg struct{}

// DataChangedMsg tells screens that the store contents were replaced or reloaded.
type DataChangedMsg struct{}

// CalendarScreen shows the agenda and per-category counts.
type CalendarScreen struct {
	BaseScreen

	source  CalendarSource
	exports ExportLister
	now     func() time.Time

	data   store.Data
	recent []fs.FileEntry
	offset int
}

// NewCalendarScreen создает экран календаря. exports may be nil.
func NewCalendarScreen(source CalendarSource, exports ExportLister, theme *styles.Theme) *CalendarScreen {
	return &CalendarScreen{
		BaseScreen: NewBaseScreen("Calendar", theme),
		source:     source,
		exports:    exports,
		now:        time.Now,
	}
}

func (cs *CalendarScreen) Init() tea.Cmd {
	cs.refresh()
	return nil
}

func (cs *CalendarScreen) OnEnter() tea.Cmd {
	cs.refresh()
	return nil
}

func (cs *CalendarScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		cs.resize(m)
	case DataChangedMsg:
		cs.refresh()
	case ExportsChangedMsg:
		cs.refreshExports()
	case tea.KeyMsg:
		switch m.String() {
		case "up", "k":
			if cs.offset > 0 {
				cs.offset--
			}
		case "down", "j":
			if cs.offset < len(cs.data.Entries)-1 {
				cs.offset++
			}
		case "home", "g":
			cs.offset = 0
		}
	}
	return cs, nil
}

func (cs *CalendarScreen) refreshExports() {
	if cs.exports == nil {
		return
	}
	recent, err := cs.exports()
	if err != nil {
		cs.recent = nil
		return
	}
	cs.recent = recent
}

func (cs *CalendarScreen) refresh() {
	cs.refreshExports()
	if cs.source == nil {
		return
	}
	cs.data = cs.source.Snapshot()
	sort.SliceStable(cs.data.Entries, func(i, j int) bool {
		return cs.data.Entries[i].Start.Before(cs.data.Entries[j].Start)
	})
	if cs.offset >= len(cs.data.Entries) {
		cs.offset = 0
	}
}

// Summary is the one-line overview shown under the title.
func (cs *CalendarScreen) Summary() string {
	line := fmt.Sprintf("%d entries • %d categories", len(cs.data.Entries), len(cs.data.Categories))
	if cs.source == nil {
		return line
	}
	if last := cs.source.LastImport(); !last.IsZero() {
		line += " • imported " + humanize.RelTime(last, cs.now(), "ago", "from now")
	}
	return line
}

func (cs *CalendarScreen) View() string {
	theme := cs.Theme()
	var b strings.Builder
	b.WriteString(theme.TitleBar("Calendar"))
	b.WriteString("\n")
	b.WriteString(theme.DimStyle.Render(cs.Summary()))
	b.WriteString("\n\n")

	b.WriteString(theme.SubtitleStyle.Render("Categories"))
	b.WriteString("\n")
	counts := make(map[string]int, len(cs.data.Categories))
	for _, e := range cs.data.Entries {
		counts[e.Category]++
	}
	for _, c := range cs.data.Categories {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color)).Render("■")
		b.WriteString(fmt.Sprintf("  %s %s %s\n", swatch, c.Name, theme.DimStyle.Render(fmt.Sprintf("(%d)", counts[c.Name]))))
	}

	b.WriteString("\n")
	b.WriteString(theme.SubtitleStyle.Render("Agenda"))
	b.WriteString("\n")
	if len(cs.data.Entries) == 0 {
		b.WriteString(theme.DimStyle.Render("  No entries yet"))
		b.WriteString("\n")
	}

	visible := cs.data.Entries[min(cs.offset, len(cs.data.Entries)):]
	if limit := cs.Height() - 6 - len(cs.data.Categories); limit > 0 && len(visible) > limit {
		visible = visible[:limit]
	}
	for _, e := range visible {
		when := timefmt.Format(e.Start, entryTimeFormat)
		title := runewidth.Truncate(e.Title, maxTitleWidth, "…")
		b.WriteString(fmt.Sprintf("  %s  %s %s\n", theme.DimStyle.Render(when), title, theme.DimStyle.Render("#"+e.Category)))
	}

	if len(cs.recent) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.SubtitleStyle.Render("Recent exports"))
		b.WriteString("\n")
		for _, f := range cs.recent {
			meta := humanize.Bytes(uint64(f.Size)) + ", " + humanize.RelTime(f.ModTime, cs.now(), "ago", "from now")
			b.WriteString(fmt.Sprintf("  %s %s\n", f.Name, theme.DimStyle.Render(meta)))
		}
	}

	return b.String()
}

func (cs *CalendarScreen) ShortHelp() string {
	return "↑/↓: Scroll • " + cs.BaseScreen.ShortHelp()
}
