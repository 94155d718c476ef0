package screens

import (
	tea "github.com/charmbracelet/bubbletea"

	"calendar-tui/internal/ui/styles"
)

// Screen интерфейс для всех экранов приложения
type Screen interface {
	// Bubble Tea методы
	Init() tea.Cmd
	Update(tea.Msg) (Screen, tea.Cmd)
	View() string

	// Методы жизненного цикла экрана
	OnEnter() tea.Cmd // Вызывается при входе на экран
	OnExit() tea.Cmd  // Вызывается при выходе с экрана

	// Метаданные экрана
	Title() string     // Заголовок экрана для статус-бара
	ShortHelp() string // Краткая справка по горячим клавишам
}

// BaseScreen базовая реализация экрана с общей функциональностью
type BaseScreen struct {
	width  int
	height int
	title  string
	theme  *styles.Theme
}

// NewBaseScreen создает базовый экран
func NewBaseScreen(title string, theme *styles.Theme) BaseScreen {
	return BaseScreen{
		title: title,
		theme: theme,
	}
}

// SetSize устанавливает размеры экрана
func (bs *BaseScreen) SetSize(width, height int) {
	bs.width = width
	bs.height = height
}

// Width возвращает ширину экрана
func (bs *BaseScreen) Width() int {
	return bs.width
}

// Height возвращает высоту экрана
func (bs *BaseScreen) Height() int {
	return bs.height
}

// Title возвращает заголовок экрана
func (bs *BaseScreen) Title() string {
	return bs.title
}

// Theme returns the shared theme; styles are rebuilt in place on a scheme change.
func (bs *BaseScreen) Theme() *styles.Theme {
	return bs.theme
}

// OnEnter базовая реализация - ничего не делаем
func (bs *BaseScreen) OnEnter() tea.Cmd {
	return nil
}

// OnExit базовая реализация - ничего не делаем
func (bs *BaseScreen) OnExit() tea.Cmd {
	return nil
}

// ShortHelp базовая реализация справки
func (bs *BaseScreen) ShortHelp() string {
	return "a: Settings • ?: Shortcuts • Ctrl+Q: Quit"
}

// resize applies a window size, leaving one line for the status bar.
func (bs *BaseScreen) resize(msg tea.WindowSizeMsg) {
	bs.SetSize(msg.Width, msg.Height-1)
}
