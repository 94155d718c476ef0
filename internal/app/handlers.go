package app

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"calendar-tui/internal/platform"
	"calendar-tui/internal/ui/screens"
)

// handleGlobalKeys обрабатывает глобальные горячие клавиши
func (a *App) handleGlobalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rawKey := msg.String()

	if platform.MatchesKey(rawKey, "ctrl+c") {
		return a, tea.Quit
	}

	// Открытая панель забирает все клавиши, кроме выхода
	if a.panel.IsOpen() {
		if cmd := a.commands.Resolve(rawKey, a.currentScreen); cmd != nil && cmd.ID == "quit" {
			return a, cmd.Run(a)
		}
		_, cmd := a.panel.HandleKey(msg)
		return a, cmd
	}

	plain := platform.IsPlainKey(rawKey)
	// В палитре обычные клавиши идут в поле фильтра
	typing := a.currentScreen == CommandPaletteScreen && plain

	if !typing {
		if cmd := a.commands.Resolve(rawKey, a.currentScreen); cmd != nil {
			switch {
			case plain && !a.store.ShortcutsStatus():
				appLog.Debug("shortcut_ignored", slog.String("key", rawKey), slog.String("command", cmd.ID))
			case cmd.Enabled == nil || cmd.Enabled(a):
				return a, cmd.Run(a)
			default:
				return a, nil
			}
		}
	}

	if platform.MatchesKey(rawKey, a.config.Keybindings["back"]) && a.currentScreen == ShortcutsScreen && a.router.CanNavigateBack() {
		return a, a.router.GoBack()
	}

	// Если глобальные клавиши не обработаны, передаем экрану
	currentScreen := a.getCurrentScreen()
	if currentScreen != nil {
		updatedScreen, cmd := currentScreen.Update(msg)
		a.screens[a.currentScreen] = updatedScreen
		return a, cmd
	}

	return a, nil
}

// handleMouse routes left clicks to the panel while it is open.
func (a *App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !a.panel.IsOpen() {
		return a, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return a, nil
	}
	return a, a.panel.Click(msg.X, msg.Y, a.width)
}

// openPanel opens the settings panel over the current screen.
func (a *App) openPanel() tea.Cmd {
	a.panel.Open()
	return nil
}

// handleWindowResize обрабатывает изменение размера окна
func (a *App) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	a.width, a.height = msg.Width, msg.Height
	a.theme.SetDimensions(msg.Width, msg.Height)

	return a, a.broadcast(msg)
}

// handleScreenSwitch обрабатывает переключение экранов
func (a *App) handleScreenSwitch(msg ScreenSwitchMsg) (tea.Model, tea.Cmd) {
	currentScreen := a.getCurrentScreen()

	// Выходим из текущего экрана
	var cmds []tea.Cmd
	if currentScreen != nil {
		if exit := currentScreen.OnExit(); exit != nil {
			cmds = append(cmds, exit)
		}
	}

	// Переключаемся на новый экран
	a.currentScreen = msg.ScreenType

	// Инициализируем новый экран если нужно
	newScreen := a.screens[a.currentScreen]
	created := false
	if newScreen == nil {
		newScreen = a.createScreen(a.currentScreen)
		a.screens[a.currentScreen] = newScreen
		created = true
	}

	// Прокидываем последнюю известную геометрию окна в новый экран
	if a.width > 0 && a.height > 0 {
		updated, cmd := newScreen.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
		newScreen = updated
		a.screens[a.currentScreen] = updated
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	if created {
		if init := newScreen.Init(); init != nil {
			cmds = append(cmds, init)
		}
	}

	// Входим в новый экран
	if enter := newScreen.OnEnter(); enter != nil {
		cmds = append(cmds, enter)
	}
	if palette, ok := newScreen.(*screens.CommandPaletteScreen); ok {
		if cmd := palette.SetAnimations(!a.panel.TransitionsDisabled()); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	appLog.Debug("screen_switched", slog.String("screen", a.currentScreen.String()))
	if len(cmds) == 0 {
		return a, nil
	}
	return a, tea.Batch(cmds...)
}

// handleCommandExecute leaves the palette, then runs the chosen command.
func (a *App) handleCommandExecute(msg screens.CommandExecuteMsg) (tea.Model, tea.Cmd) {
	_, back := a.handleScreenSwitch(ScreenSwitchMsg{ScreenType: a.router.Pop()})
	return a, tea.Batch(back, a.commands.Run(msg.ID, a))
}
