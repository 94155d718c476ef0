package panel

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"calendar-tui/internal/transfer"
)

// ExportFileName returns the export file name for the store's current stats.
func (c *Controller) ExportFileName() string {
	entries, categories := c.deps.Store.StoreStats()
	ts := ""
	if c.deps.Timestamp != nil {
		ts = c.deps.Timestamp()
	}
	return transfer.ExportName(entries, categories, ts) + transfer.Extension
}

// exportCalendar snapshots the store and names the file on the update loop;
// the write happens in the returned command.
func (c *Controller) exportCalendar() tea.Cmd {
	name := c.ExportFileName()
	raw, err := transfer.Encode(c.deps.Store.AllData())
	if err != nil {
		return func() tea.Msg { return ExportDoneMsg{Name: name, Err: err} }
	}
	saver := c.deps.Saver
	if saver == nil {
		return nil
	}
	return func() tea.Msg {
		path, err := saver.Save(name, raw)
		return ExportDoneMsg{Name: name, Path: path, Size: len(raw), Err: err}
	}
}

func (c *Controller) logExport(m ExportDoneMsg) {
	if m.Err != nil {
		panelLog.Error("export_failed", slog.String("name", m.Name), slog.String("error", m.Err.Error()))
		return
	}
	panelLog.Info("export_saved",
		slog.String("path", m.Path),
		slog.String("size", humanize.Bytes(uint64(m.Size))))
}

// openShortcutsReference closes the panel, then hands the store to the launcher.
func (c *Controller) openShortcutsReference() tea.Cmd {
	c.Close()
	if c.deps.LaunchShortcuts == nil {
		return nil
	}
	return c.deps.LaunchShortcuts(c.deps.Store)
}
