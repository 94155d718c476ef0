package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ScreenRouter управляет переключением между экранами
type ScreenRouter struct {
	app     *App
	history []ScreenType // История переходов для навигации назад
}

// NewScreenRouter создает новый роутер
func NewScreenRouter(app *App) *ScreenRouter {
	return &ScreenRouter{
		app:     app,
		history: make([]ScreenType, 0),
	}
}

// SwitchTo переключается на указанный экран. The palette is transient and
// never recorded in the history.
func (r *ScreenRouter) SwitchTo(screenType ScreenType) tea.Cmd {
	current := r.app.currentScreen
	if current == screenType {
		return nil
	}
	if current != CommandPaletteScreen &&
		(len(r.history) == 0 || r.history[len(r.history)-1] != current) {
		r.history = append(r.history, current)
	}

	return func() tea.Msg {
		return ScreenSwitchMsg{ScreenType: screenType}
	}
}

// GoBack возвращается к предыдущему экрану из истории
func (r *ScreenRouter) GoBack() tea.Cmd {
	previous := r.Pop()
	if previous == r.app.currentScreen {
		return nil
	}
	return func() tea.Msg {
		return ScreenSwitchMsg{ScreenType: previous}
	}
}

// Pop removes and returns the last screen from the history; the calendar
// is the bottom of the stack.
func (r *ScreenRouter) Pop() ScreenType {
	if len(r.history) == 0 {
		return CalendarScreen
	}
	last := r.history[len(r.history)-1]
	r.history = r.history[:len(r.history)-1]
	return last
}

// CanNavigateBack проверяет, можно ли вернуться назад
func (r *ScreenRouter) CanNavigateBack() bool {
	return len(r.history) > 0
}
