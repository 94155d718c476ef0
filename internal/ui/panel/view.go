package panel

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"calendar-tui/internal/ui/styles"
)

// PanelWidth is the outer width of the panel including its border.
const PanelWidth = 40

type rowKind int

const (
	rowAction rowKind = iota
	rowTheme
	rowShortcutsSwitch
	rowShortcutsIcon
	rowAnimationsSwitch
	rowAnimationsIcon
)

// row is one focusable panel element.
type row struct {
	section string
	label   string
	kind    rowKind
	target  Target
}

func roles(r ...Role) []Role { return r }

func defaultRows() []row {
	return []row{
		{section: "Calendar data", label: "Download .json", target: Target{Roles: roles(RoleDownload)}},
		{label: "Upload .json", target: Target{Roles: roles(RoleUpload)}},
		{section: "Theme", label: "Dark", kind: rowTheme, target: Target{Roles: roles(RoleThemeOption), Value: string(styles.Dark)}},
		{label: "Light", kind: rowTheme, target: Target{Roles: roles(RoleThemeOption), Value: string(styles.Light)}},
		{label: "Contrast", kind: rowTheme, target: Target{Roles: roles(RoleThemeOption), Value: string(styles.Contrast)}},
		{section: "Keyboard", label: "Shortcuts reference", target: Target{Roles: roles(RoleShortcutsModal)}},
		{label: "Enable shortcuts", kind: rowShortcutsSwitch, target: Target{Roles: roles(RoleShortcutsSwitch)}},
		{kind: rowShortcutsIcon, target: Target{Roles: roles(RoleShortcutsIcon)}},
		{section: "Display", label: "Enable animations", kind: rowAnimationsSwitch, target: Target{Roles: roles(RoleAnimationsSwitch)}},
		{kind: rowAnimationsIcon, target: Target{Roles: roles(RoleAnimationsIcon)}},
		{section: " ", label: "Close", target: Target{Roles: roles(RoleClose)}},
	}
}

func (c *Controller) moveFocus(delta int) {
	n := len(c.rows)
	if n == 0 {
		return
	}
	c.focus = (c.focus + delta + n) % n
}

// Focused returns the index of the focused row.
func (c *Controller) Focused() int {
	return c.focus
}

func (c *Controller) activateFocused() tea.Cmd {
	if c.focus < 0 || c.focus >= len(c.rows) {
		return nil
	}
	return c.Interact(c.rows[c.focus].target)
}

// layout renders the body lines; rowAt maps each line to a row index or -1.
func (c *Controller) layout(theme *styles.Theme) (lines []string, rowAt []int) {
	add := func(line string, idx int) {
		lines = append(lines, line)
		rowAt = append(rowAt, idx)
	}

	add(theme.TitleStyle.Render("Settings"), -1)
	for i, r := range c.rows {
		if r.section != "" {
			add("", -1)
			add(theme.SubtitleStyle.Render(r.section), -1)
		}
		text := c.rowText(theme, r)
		if i == c.focus && c.state == Open {
			text = theme.FocusStyle.Render("› " + text)
		} else {
			text = "  " + text
		}
		add(text, i)
	}
	return lines, rowAt
}

func (c *Controller) rowText(theme *styles.Theme, r row) string {
	switch r.kind {
	case rowTheme:
		mark := "( )"
		if radio := c.controls.ThemeRadio; radio != nil {
			if idx := styles.IndexOf(styles.Scheme(r.target.Value)); idx >= 0 && idx == radio.Selected {
				mark = "(•)"
			}
		}
		return mark + " " + r.label
	case rowShortcutsSwitch:
		return switchText(c.controls.ShortcutsSwitch) + " " + r.label
	case rowAnimationsSwitch:
		return switchText(c.controls.AnimationsSwitch) + " " + r.label
	case rowShortcutsIcon:
		icon := c.controls.ShortcutsIcon
		if icon == nil {
			return "⌨"
		}
		glyph := lipgloss.NewStyle().Foreground(theme.FillColor(icon.Fill)).Render("⌨")
		return glyph + " " + theme.DimStyle.Render(icon.Tooltip)
	case rowAnimationsIcon:
		icons := c.controls.AnimationsIcons
		if icons == nil {
			return "◌"
		}
		glyph := ""
		if icons.OnVisible {
			glyph += theme.SuccessStyle.Render("◉")
		}
		if icons.OffVisible {
			glyph += theme.DimStyle.Render("○")
		}
		return glyph + " " + theme.DimStyle.Render(icons.Tooltip)
	}
	return r.label
}

func switchText(sw *Switch) string {
	switch {
	case sw == nil:
		return "[ - ]"
	case sw.Checked:
		return "[on ]"
	}
	return "[off]"
}

// View renders the panel box, or the confirmation dialog in its place.
func (c *Controller) View(height int) string {
	if c.state == Closed {
		return ""
	}
	theme := c.deps.Theme
	inner := PanelWidth - 4

	var body string
	if c.state == OpenWithDialog && c.dialog != nil {
		body = c.dialog.View(theme, inner)
	} else {
		lines, _ := c.layout(theme)
		lines = append(lines, "", theme.DimStyle.Render("esc/a: close • enter: select"))
		body = strings.Join(lines, "\n")
	}

	style := theme.PanelStyle.Width(PanelWidth - 2)
	if height > 2 {
		style = style.Height(height - 2)
	}
	return style.Render(body)
}

// Click handles a left click at screen coordinates. Clicks left of the panel
// hit the backdrop; clicks on a row activate it. While the dialog shows,
// clicks inside the panel are ignored.
func (c *Controller) Click(x, y, screenWidth int) tea.Cmd {
	if c.state == Closed {
		return nil
	}
	if x < screenWidth-PanelWidth {
		c.ClickBackdrop()
		return nil
	}
	if c.state != Open {
		return nil
	}
	_, rowAt := c.layout(c.deps.Theme)
	line := y - 1 // top border
	if line < 0 || line >= len(rowAt) || rowAt[line] < 0 {
		return nil
	}
	c.focus = rowAt[line]
	return c.Interact(c.rows[c.focus].target)
}
