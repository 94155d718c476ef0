package app

import (
	"sort"

	tea "github.com/charmbracelet/bubbletea"

	"calendar-tui/internal/platform"
	"calendar-tui/internal/ui/screens"
)

// Command describes an executable action, optionally bound to a key and/or screen.
type Command struct {
	ID      string
	Title   string
	Key     string
	Screen  *ScreenType // nil → global
	Enabled func(*App) bool
	Run     func(*App) tea.Cmd
}

// CommandRegistry stores commands and resolves them by key and screen.
type CommandRegistry struct {
	byID  map[string]*Command
	byKey map[string][]*Command
}

func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		byID:  make(map[string]*Command),
		byKey: make(map[string][]*Command),
	}
}

func (r *CommandRegistry) Register(cmd *Command) {
	if cmd == nil || cmd.ID == "" {
		return
	}
	r.byID[cmd.ID] = cmd
	if canonical := platform.CanonicalKey(cmd.Key); canonical != "" {
		r.byKey[canonical] = append(r.byKey[canonical], cmd)
	}
}

// Resolve returns the first matching command for key and screen.
func (r *CommandRegistry) Resolve(key string, screen ScreenType) *Command {
	cmds := r.byKey[platform.CanonicalKey(key)]
	if len(cmds) == 0 {
		return nil
	}
	// Prefer screen-specific command, fall back to global
	var global *Command
	for _, c := range cmds {
		if c.Screen == nil {
			if global == nil {
				global = c
			}
			continue
		}
		if *c.Screen == screen {
			return c
		}
	}
	return global
}

// Get returns command by id.
func (r *CommandRegistry) Get(id string) *Command {
	if r == nil {
		return nil
	}
	return r.byID[id]
}

// All returns commands sorted by title.
func (r *CommandRegistry) All() []*Command {
	list := make([]*Command, 0, len(r.byID))
	for _, cmd := range r.byID {
		list = append(list, cmd)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Title < list[j].Title
	})
	return list
}

// Run executes command by id if enabled.
func (r *CommandRegistry) Run(id string, app *App) tea.Cmd {
	cmd := r.Get(id)
	if cmd == nil || cmd.Run == nil {
		return nil
	}
	if cmd.Enabled != nil && !cmd.Enabled(app) {
		return nil
	}
	return cmd.Run(app)
}

// registerCommands wires the built-in commands to their configured keys.
func (a *App) registerCommands() {
	kb := a.config.Keybindings
	calendar := CalendarScreen

	a.commands.Register(&Command{
		ID:    "quit",
		Title: "Quit",
		Key:   kb["quit"],
		Run:   func(*App) tea.Cmd { return tea.Quit },
	})
	a.commands.Register(&Command{
		ID:    "settings",
		Title: "Open settings",
		Key:   kb["settings"],
		Run:   func(a *App) tea.Cmd { return a.openPanel() },
	})
	a.commands.Register(&Command{
		ID:     "panel",
		Title:  "Open settings (quick)",
		Key:    kb["panel"],
		Screen: &calendar,
		Run:    func(a *App) tea.Cmd { return a.openPanel() },
	})
	a.commands.Register(&Command{
		ID:    "shortcuts",
		Title: "Keyboard shortcuts",
		Key:   kb["shortcuts"],
		Enabled: func(a *App) bool {
			return a.currentScreen != ShortcutsScreen
		},
		Run: func(a *App) tea.Cmd { return a.router.SwitchTo(ShortcutsScreen) },
	})
	a.commands.Register(&Command{
		ID:    "palette",
		Title: "Command palette",
		Key:   kb["palette"],
		Enabled: func(a *App) bool {
			return a.currentScreen != CommandPaletteScreen
		},
		Run: func(a *App) tea.Cmd { return a.router.SwitchTo(CommandPaletteScreen) },
	})
	a.commands.Register(&Command{
		ID:    "reload",
		Title: "Reload calendar file",
		Enabled: func(a *App) bool {
			return a.store.Path() != ""
		},
		Run: func(a *App) tea.Cmd { return a.reloadStore(dataFileChangedMsg{}) },
	})
}

// paletteEntries lists commands for the palette, disabled ones included.
func (a *App) paletteEntries() []screens.CommandEntry {
	all := a.commands.All()
	entries := make([]screens.CommandEntry, 0, len(all))
	for _, cmd := range all {
		if cmd.ID == "palette" {
			continue
		}
		enabled := cmd.Enabled == nil || cmd.Enabled(a)
		entries = append(entries, screens.CommandEntry{
			ID:      cmd.ID,
			Title:   cmd.Title,
			Key:     platform.DisplayKey(cmd.Key),
			Enabled: enabled,
		})
	}
	return entries
}
