package app

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"calendar-tui/internal/fs"
	"calendar-tui/internal/logging"
	"calendar-tui/internal/ui/screens"
)

var watchLog = logging.ForComponent(logging.CompWatch)

// ChangeSource delivers change notifications for the calendar file.
type ChangeSource interface {
	Changes() <-chan fs.FileChangeEvent
}

type dataFileChangedMsg struct {
	event fs.FileChangeEvent
}

type storeReloadedMsg struct {
	changed bool
	err     error
}

// waitForChange blocks on the next notification. It is re-armed after every
// delivered change and stops when the source is closed.
func waitForChange(src ChangeSource) tea.Cmd {
	if src == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-src.Changes()
		if !ok {
			return nil
		}
		return dataFileChangedMsg{event: ev}
	}
}

// reloadStore re-reads the calendar file off the update loop.
func (a *App) reloadStore(msg dataFileChangedMsg) tea.Cmd {
	st := a.store
	return func() tea.Msg {
		changed, err := st.Reload()
		if msg.event.Path != "" {
			watchLog.Debug("data_file_event",
				slog.String("path", msg.event.Path),
				slog.String("op", msg.event.Operation.String()),
				slog.Bool("changed", changed))
		}
		return storeReloadedMsg{changed: changed, err: err}
	}
}

func (a *App) handleStoreReloaded(msg storeReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		watchLog.Warn("reload_failed", slog.String("error", msg.err.Error()))
		return a, nil
	}
	if !msg.changed {
		return a, nil
	}
	watchLog.Info("store_reloaded")
	a.panel.RefreshPreferences()
	return a, a.broadcast(screens.DataChangedMsg{})
}
