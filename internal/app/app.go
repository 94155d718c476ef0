package app

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"calendar-tui/internal/config"
	"calendar-tui/internal/fs"
	"calendar-tui/internal/logging"
	"calendar-tui/internal/store"
	"calendar-tui/internal/transfer"
	"calendar-tui/internal/ui/panel"
	"calendar-tui/internal/ui/screens"
	"calendar-tui/internal/ui/styles"
)

var appLog = logging.ForComponent(logging.CompApp)

// ScreenType определяет тип экрана
type ScreenType int

const (
	CalendarScreen ScreenType = iota
	ShortcutsScreen
	CommandPaletteScreen
)

func (s ScreenType) String() string {
	switch s {
	case ShortcutsScreen:
		return "shortcuts"
	case CommandPaletteScreen:
		return "palette"
	}
	return "calendar"
}

// Options are optional collaborators; zero values get production defaults.
type Options struct {
	Watcher  ChangeSource
	Importer panel.Importer
	Saver    panel.Saver
}

// App представляет главное приложение
type App struct {
	config   *config.Config
	store    *store.Store
	theme    *styles.Theme
	ctx      *uiContext
	panel    *panel.Controller
	commands *CommandRegistry
	keys     KeyMap
	router   *ScreenRouter
	watcher  ChangeSource

	currentScreen ScreenType
	screens       map[ScreenType]screens.Screen

	width, height int
	lastError     error
}

// New создает новое приложение
func New(cfg *config.Config, st *store.Store, opts Options) *App {
	ctx := newUIContext(cfg)
	app := &App{
		config:  cfg,
		store:   st,
		theme:   styles.NewTheme(ctx.ColorScheme()),
		ctx:     ctx,
		screens: make(map[ScreenType]screens.Screen),
		watcher: opts.Watcher,
	}

	app.router = NewScreenRouter(app)
	app.keys = NewKeyMap(cfg.Keybindings)
	app.commands = NewCommandRegistry()
	app.registerCommands()
	app.panel = panel.New(app.panelDeps(opts), panel.NewControls())

	return app
}

// Init инициализирует приложение (Bubble Tea)
func (a *App) Init() tea.Cmd {
	a.currentScreen = CalendarScreen
	a.screens[CalendarScreen] = a.createScreen(CalendarScreen)

	return tea.Batch(a.screens[CalendarScreen].Init(), waitForChange(a.watcher))
}

// Update обрабатывает сообщения (Bubble Tea)
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleGlobalKeys(msg)
	case tea.MouseMsg:
		return a.handleMouse(msg)
	case tea.WindowSizeMsg:
		return a.handleWindowResize(msg)
	case ScreenSwitchMsg:
		return a.handleScreenSwitch(msg)
	case ErrorMsg:
		return a.handleError(msg)
	case panel.ImportDoneMsg:
		cmd := a.panel.Update(msg)
		if msg.Err != nil {
			return a, cmd
		}
		return a, tea.Batch(cmd, a.broadcast(screens.DataChangedMsg{}))
	case panel.ExportDoneMsg:
		cmd := a.panel.Update(msg)
		if msg.Err != nil {
			return a, cmd
		}
		return a, tea.Batch(cmd, a.broadcast(screens.ExportsChangedMsg{}))
	case dataFileChangedMsg:
		return a, tea.Batch(a.reloadStore(msg), waitForChange(a.watcher))
	case storeReloadedMsg:
		return a.handleStoreReloaded(msg)
	case screens.CommandExecuteMsg:
		return a.handleCommandExecute(msg)
	case screens.CommandPaletteClosedMsg:
		return a, a.router.GoBack()
	}

	// Передаем сообщение текущему экрану
	currentScreen := a.getCurrentScreen()
	if currentScreen != nil {
		updatedScreen, cmd := currentScreen.Update(msg)
		a.screens[a.currentScreen] = updatedScreen
		return a, cmd
	}

	return a, nil
}

// View отрисовывает приложение (Bubble Tea)
func (a *App) View() string {
	currentScreen := a.getCurrentScreen()
	if currentScreen == nil {
		return "Loading..."
	}

	view := currentScreen.View()
	if a.panel.IsOpen() {
		view = a.composePanel(view)
	}

	return fmt.Sprintf("%s\n%s", view, a.renderStatusBar())
}

// composePanel dims the screen behind the panel and draws the panel on the right.
func (a *App) composePanel(base string) string {
	height := a.theme.Height() - 1
	left := a.theme.Width() - panel.PanelWidth
	if left < 0 {
		left = 0
	}

	backdrop := lipgloss.NewStyle().Faint(true)
	if b := a.panel.Controls().Backdrop; b != nil && b.Scrim {
		backdrop = a.theme.ScrimStyle
	}
	backdrop = backdrop.Width(left).MaxWidth(left)
	if height > 0 {
		backdrop = backdrop.Height(height).MaxHeight(height)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, backdrop.Render(base), a.panel.View(height))
}

// getCurrentScreen возвращает текущий экран
func (a *App) getCurrentScreen() screens.Screen {
	return a.screens[a.currentScreen]
}

// Panel exposes the settings panel controller.
func (a *App) Panel() *panel.Controller {
	return a.panel
}

// CurrentScreen returns the active screen type.
func (a *App) CurrentScreen() ScreenType {
	return a.currentScreen
}

// Theme returns the shared theme.
func (a *App) Theme() *styles.Theme {
	return a.theme
}

// createScreen создает экран по типу
func (a *App) createScreen(screenType ScreenType) screens.Screen {
	switch screenType {
	case ShortcutsScreen:
		return screens.NewShortcutsScreen(a.keys, a.store.ShortcutsStatus, a.theme)
	case CommandPaletteScreen:
		return screens.NewCommandPaletteScreen(a.paletteEntries, a.theme)
	default:
		return screens.NewCalendarScreen(a.store, a.recentExports, a.theme)
	}
}

// recentExportsLimit caps the export list on the calendar screen.
const recentExportsLimit = 3

func (a *App) recentExports() ([]fs.FileEntry, error) {
	return transfer.RecentExports(a.config.Data.ExportDir, recentExportsLimit)
}

// broadcast delivers msg to every created screen.
func (a *App) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for screenType, screen := range a.screens {
		if screen == nil {
			continue
		}
		updated, cmd := screen.Update(msg)
		a.screens[screenType] = updated
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// renderStatusBar отрисовывает статус-бар
func (a *App) renderStatusBar() string {
	text := "Ready"
	if screen := a.getCurrentScreen(); screen != nil {
		text = screen.Title() + " | " + screen.ShortHelp()
		if a.router.CanNavigateBack() {
			text = "‹ " + text
		}
	}
	if a.panel.IsOpen() {
		text = "Settings | ↑/↓: Move • Enter: Select • Esc/a: Close"
	}
	if a.lastError != nil {
		text += " | " + a.theme.ErrorStyle.Render(a.lastError.Error())
	}
	return a.theme.StatusBar(text)
}

// handleError обрабатывает ошибки
func (a *App) handleError(msg ErrorMsg) (tea.Model, tea.Cmd) {
	a.lastError = msg.Error
	appLog.Error("app_error", slog.String("error", msg.Error.Error()))
	return a, nil
}

// Сообщения для приложения

// ScreenSwitchMsg сообщение о переключении экрана
type ScreenSwitchMsg struct {
	ScreenType ScreenType
}

// ErrorMsg сообщение об ошибке
type ErrorMsg struct {
	Error error
}
