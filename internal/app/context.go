package app

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"calendar-tui/internal/config"
	"calendar-tui/internal/transfer"
	"calendar-tui/internal/ui/panel"
	"calendar-tui/internal/ui/styles"
)

// uiContext holds the active colour scheme and writes it back into the
// config file the app was started with.
type uiContext struct {
	cfg    *config.Config
	scheme styles.Scheme
}

func newUIContext(cfg *config.Config) *uiContext {
	return &uiContext{cfg: cfg, scheme: styles.ParseScheme(cfg.ResolveTheme())}
}

func (c *uiContext) ColorScheme() styles.Scheme {
	return c.scheme
}

func (c *uiContext) SetColorScheme(scheme styles.Scheme) {
	c.scheme = scheme
	c.cfg.Theme = string(scheme)
	// Конфиг без файла (тесты, --no-config) не сохраняем
	if c.cfg.Path() == "" {
		return
	}
	if err := c.cfg.SaveDefault(); err != nil {
		appLog.Warn("theme_persist_failed", slog.String("scheme", string(scheme)), slog.String("error", err.Error()))
	}
}

// panelDeps wires the panel to the store, the theme and the transfer package.
func (a *App) panelDeps(opts Options) panel.Deps {
	importer := opts.Importer
	if importer == nil {
		importer = fileImporter(transfer.FileImporter{Path: a.config.Data.ImportFile})
	}
	var saver panel.Saver = transfer.DirSaver{Dir: a.config.Data.ExportDir}
	if opts.Saver != nil {
		saver = opts.Saver
	}

	return panel.Deps{
		Store:   a.store,
		Context: a.ctx,
		ApplyTheme: func(ctx panel.Context, _ panel.Store) {
			a.theme.Apply(ctx.ColorScheme())
		},
		Import:    importer,
		Timestamp: transfer.Timestamp(a.config.Data.TimestampFormat),
		LaunchShortcuts: func(panel.Store) tea.Cmd {
			return a.router.SwitchTo(ShortcutsScreen)
		},
		Saver: saver,
		Theme: a.theme,
	}
}

// fileImporter adapts a FileImporter to the panel's import hook.
func fileImporter(fi transfer.FileImporter) panel.Importer {
	return func(ctx context.Context, s panel.Store) (any, error) {
		target, ok := s.(transfer.Replacer)
		if !ok {
			return nil, fmt.Errorf("store %T cannot be replaced", s)
		}
		return fi.Import(ctx, target)
	}
}
