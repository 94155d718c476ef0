package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Scheme имя цветовой схемы
type Scheme string

const (
	Dark     Scheme = "dark"
	Light    Scheme = "light"
	Contrast Scheme = "contrast"
)

// Schemes is the fixed radio order of the theme selector.
var Schemes = []Scheme{Dark, Light, Contrast}

// IndexOf returns the radio index of s, or -1 when s is unknown.
func IndexOf(s Scheme) int {
	for i, candidate := range Schemes {
		if candidate == s {
			return i
		}
	}
	return -1
}

// ParseScheme maps a config value to a Scheme, defaulting to Dark.
func ParseScheme(name string) Scheme {
	s := Scheme(name)
	if IndexOf(s) < 0 {
		return Dark
	}
	return s
}

// Fill tokens used by status icons.
const (
	FillPrimary = "primary1"
	FillRed     = "red1"
)

// Theme содержит все стили приложения
type Theme struct {
	width  int
	height int

	scheme Scheme
	colors Palette

	StatusBarStyle lipgloss.Style
	TitleStyle     lipgloss.Style
	SubtitleStyle  lipgloss.Style
	TextStyle      lipgloss.Style
	DimStyle       lipgloss.Style
	HighlightStyle lipgloss.Style
	ErrorStyle     lipgloss.Style
	SuccessStyle   lipgloss.Style
	WarningStyle   lipgloss.Style
	PanelStyle     lipgloss.Style
	FocusStyle     lipgloss.Style
	ButtonStyle    lipgloss.Style
	DangerStyle    lipgloss.Style
	ScrimStyle     lipgloss.Style
}

// Palette цветовая палитра
type Palette struct {
	Primary     string
	Accent      string
	Background  string
	Surface     string
	Scrim       string
	Text        string
	TextDim     string
	Error       string
	Success     string
	Warning     string
	Border      string
	BorderFocus string
}

// Предустановленные палитры
var (
	DarkPalette = Palette{
		Primary:     "#7C3AED", // Фиолетовый
		Accent:      "#F59E0B", // Оранжевый
		Background:  "#0F172A", // Темно-синий
		Surface:     "#1E293B", // Темно-серый
		Scrim:       "#020617",
		Text:        "#F1F5F9", // Светло-серый
		TextDim:     "#94A3B8", // Серый
		Error:       "#EF4444", // Красный
		Success:     "#10B981", // Зеленый
		Warning:     "#F59E0B", // Оранжевый
		Border:      "#334155", // Серый
		BorderFocus: "#7C3AED", // Фиолетовый
	}

	LightPalette = Palette{
		Primary:     "#7C3AED",
		Accent:      "#D97706",
		Background:  "#FFFFFF",
		Surface:     "#F8FAFC",
		Scrim:       "#CBD5E1",
		Text:        "#0F172A",
		TextDim:     "#64748B",
		Error:       "#DC2626",
		Success:     "#059669",
		Warning:     "#D97706",
		Border:      "#E2E8F0",
		BorderFocus: "#7C3AED",
	}

	ContrastPalette = Palette{
		Primary:     "#FFFF00",
		Accent:      "#00FFFF",
		Background:  "#000000",
		Surface:     "#000000",
		Scrim:       "#000000",
		Text:        "#FFFFFF",
		TextDim:     "#FFFFFF",
		Error:       "#FF3030",
		Success:     "#00FF00",
		Warning:     "#FFFF00",
		Border:      "#FFFFFF",
		BorderFocus: "#FFFF00",
	}
)

// PaletteFor returns the palette of a scheme.
func PaletteFor(s Scheme) Palette {
	switch s {
	case Light:
		return LightPalette
	case Contrast:
		return ContrastPalette
	default:
		return DarkPalette
	}
}

// NewTheme создает новую тему
func NewTheme(scheme Scheme) *Theme {
	theme := &Theme{}
	theme.Apply(scheme)
	return theme
}

// Apply switches the palette and rebuilds every style.
func (t *Theme) Apply(scheme Scheme) {
	t.scheme = ParseScheme(string(scheme))
	t.colors = PaletteFor(t.scheme)
	t.initStyles()
}

// Scheme returns the active scheme.
func (t *Theme) Scheme() Scheme {
	return t.scheme
}

// Colors returns the active palette.
func (t *Theme) Colors() Palette {
	return t.colors
}

// FillColor resolves a status-icon fill token against the palette.
func (t *Theme) FillColor(token string) lipgloss.Color {
	switch token {
	case FillRed:
		return lipgloss.Color(t.colors.Error)
	case FillPrimary:
		return lipgloss.Color(t.colors.Primary)
	}
	return lipgloss.Color(t.colors.Text)
}

func (t *Theme) initStyles() {
	t.StatusBarStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.colors.Surface)).
		Foreground(lipgloss.Color(t.colors.Text)).
		Padding(0, 1)

	t.TitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.colors.Primary)).
		Bold(true).
		Padding(0, 1)

	t.SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.colors.TextDim)).
		Padding(0, 1)

	t.TextStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.colors.Text))

	t.DimStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.colors.TextDim))

	t.HighlightStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.colors.Accent)).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.colors.Error)).
		Bold(true)

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.colors.Success)).
		Bold(true)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.colors.Warning)).
		Bold(true)

	t.PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.colors.BorderFocus)).
		Padding(0, 1)

	t.FocusStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.colors.Background)).
		Background(lipgloss.Color(t.colors.Primary)).
		Bold(true)

	t.ButtonStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.colors.Surface)).
		Foreground(lipgloss.Color(t.colors.Text)).
		Padding(0, 2).
		Margin(0, 1)

	t.DangerStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.colors.Error)).
		Foreground(lipgloss.Color(t.colors.Background)).
		Padding(0, 2).
		Margin(0, 1).
		Bold(true)

	t.ScrimStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.colors.TextDim)).
		Faint(true)
}

// SetDimensions устанавливает размеры экрана
func (t *Theme) SetDimensions(width, height int) {
	t.width = width
	t.height = height
}

// Width возвращает ширину экрана
func (t *Theme) Width() int {
	return t.width
}

// Height возвращает высоту экрана
func (t *Theme) Height() int {
	return t.height
}

// StatusBar рендерит статус-бар
func (t *Theme) StatusBar(text string) string {
	return t.StatusBarStyle.
		Width(t.width).
		Render(text)
}

// TitleBar рендерит заголовок
func (t *Theme) TitleBar(title string) string {
	return t.TitleStyle.Render(title)
}
