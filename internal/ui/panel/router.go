package panel

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Role identifies what a panel element does when activated.
type Role int

const (
	RoleDownload Role = iota
	RoleUpload
	RoleThemeOption
	RoleShortcutsModal
	RoleShortcutsSwitch
	RoleShortcutsIcon
	RoleAnimationsSwitch
	RoleAnimationsIcon
	RoleClose
)

func (r Role) String() string {
	switch r {
	case RoleDownload:
		return "download"
	case RoleUpload:
		return "upload"
	case RoleThemeOption:
		return "theme"
	case RoleShortcutsModal:
		return "shortcuts-modal"
	case RoleShortcutsSwitch:
		return "shortcuts-switch"
	case RoleShortcutsIcon:
		return "shortcuts-icon"
	case RoleAnimationsSwitch:
		return "animations-switch"
	case RoleAnimationsIcon:
		return "animations-icon"
	case RoleClose:
		return "close"
	}
	return "unknown"
}

// Target is the origin of an interaction: the roles of the activated element
// and its ancestors, plus the element's value (the scheme of a theme option).
type Target struct {
	Roles []Role
	Value string
}

// Has reports whether the target carries role r.
func (t Target) Has(r Role) bool {
	for _, role := range t.Roles {
		if role == r {
			return true
		}
	}
	return false
}

// route pairs a predicate with its handler.
type route struct {
	name   string
	match  func(Target) bool
	handle func(Target) tea.Cmd
}

func hasRole(r Role) func(Target) bool {
	return func(t Target) bool { return t.Has(r) }
}

// routes returns the dispatch table, highest priority first. The order is a
// contract: download > upload > theme > shortcuts modal > shortcuts switch >
// shortcuts icon > animations switch > animations icon > close.
func (c *Controller) routes() []route {
	return []route{
		{name: "download", match: hasRole(RoleDownload), handle: func(Target) tea.Cmd { return c.exportCalendar() }},
		{name: "upload", match: hasRole(RoleUpload), handle: func(Target) tea.Cmd { c.showImportDialog(); return nil }},
		{name: "theme", match: hasRole(RoleThemeOption), handle: func(t Target) tea.Cmd { c.sync.selectTheme(t.Value); return nil }},
		{name: "shortcuts-modal", match: hasRole(RoleShortcutsModal), handle: func(Target) tea.Cmd { return c.openShortcutsReference() }},
		{name: "shortcuts-switch", match: hasRole(RoleShortcutsSwitch), handle: func(Target) tea.Cmd { c.sync.toggleShortcutsFromSwitch(); return nil }},
		{name: "shortcuts-icon", match: hasRole(RoleShortcutsIcon), handle: func(Target) tea.Cmd { c.sync.toggleShortcutsFromIcon(); return nil }},
		{name: "animations-switch", match: hasRole(RoleAnimationsSwitch), handle: func(Target) tea.Cmd { c.sync.toggleAnimationsFromSwitch(); return nil }},
		{name: "animations-icon", match: hasRole(RoleAnimationsIcon), handle: func(Target) tea.Cmd { c.sync.toggleAnimationsFromIcon(); return nil }},
		{name: "close", match: hasRole(RoleClose), handle: func(Target) tea.Cmd { c.Close(); return nil }},
	}
}

// dispatch runs the first matching route and reports which one fired.
func dispatch(table []route, t Target) (string, tea.Cmd) {
	for _, r := range table {
		if r.match(t) {
			return r.name, r.handle(t)
		}
	}
	return "", nil
}
