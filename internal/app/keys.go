package app

import (
	"github.com/charmbracelet/bubbles/key"

	"calendar-tui/internal/platform"
	"calendar-tui/internal/ui/panel"
)

// KeyMap describes the global bindings for the shortcuts reference.
type KeyMap struct {
	Quit      key.Binding
	Settings  key.Binding
	Panel     key.Binding
	Shortcuts key.Binding
	Palette   key.Binding
	Back      key.Binding

	PanelKeys panel.KeyMap
}

// NewKeyMap builds the map from configured bindings (command id → key).
func NewKeyMap(bindings map[string]string) KeyMap {
	return KeyMap{
		Quit:      binding(bindings, "quit", "quit"),
		Settings:  binding(bindings, "settings", "settings panel"),
		Panel:     binding(bindings, "panel", "settings panel"),
		Shortcuts: binding(bindings, "shortcuts", "shortcuts reference"),
		Palette:   binding(bindings, "palette", "command palette"),
		Back:      binding(bindings, "back", "back"),
		PanelKeys: panel.DefaultKeyMap(),
	}
}

func binding(bindings map[string]string, id, desc string) key.Binding {
	k := bindings[id]
	if k == "" {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(
		key.WithKeys(platform.CanonicalKey(k)),
		key.WithHelp(platform.DisplayKey(k), desc),
	)
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Panel, k.Shortcuts, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return append([][]key.Binding{
		{k.Settings, k.Panel, k.Palette},
		{k.Shortcuts, k.Back, k.Quit},
	}, k.PanelKeys.FullHelp()...)
}
