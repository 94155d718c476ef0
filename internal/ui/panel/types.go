// Package panel implements the settings side panel: overlay lifecycle,
// preference mirroring, interaction routing and the confirmation-gated
// calendar import/export.
package panel

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"calendar-tui/internal/ui/styles"
)

// Overlay ledger tokens.
const (
	OverlayToken       = "hide-sidebar-sub-menu"
	DialogOverlayToken = "sb-sub-popup-confirm"
)

// Store is the slice of the application store the panel needs.
type Store interface {
	StoreStats() (entries, categories int)
	AllData() any
	AddActiveOverlay(token string)
	RemoveActiveOverlay(token string)
	ShortcutsStatus() bool
	SetShortcutsStatus(enabled bool)
	AnimationStatus() bool
	SetAnimationStatus(enabled bool)
}

// Context holds the active colour scheme.
type Context interface {
	ColorScheme() styles.Scheme
	SetColorScheme(styles.Scheme)
}

// ThemeApplier performs the visual theme switch after the scheme changed.
type ThemeApplier func(ctx Context, s Store)

// Importer replaces the store contents from an external source. It runs off
// the UI loop; the returned payload is only logged.
type Importer func(ctx context.Context, s Store) (any, error)

// ShortcutsLauncher opens the keyboard-shortcuts reference.
type ShortcutsLauncher func(s Store) tea.Cmd

// Saver stores an export and returns where it went.
type Saver interface {
	Save(name string, data []byte) (string, error)
}

// Deps are the collaborators injected at construction.
type Deps struct {
	Store           Store
	Context         Context
	ApplyTheme      ThemeApplier
	Import          Importer
	Timestamp       func() string
	LaunchShortcuts ShortcutsLauncher
	Saver           Saver
	Theme           *styles.Theme
}

// ImportDoneMsg carries the result of an import back to the update loop.
type ImportDoneMsg struct {
	session uint64
	Payload any
	Err     error
}

// ExportDoneMsg reports where an export was written.
type ExportDoneMsg struct {
	Name string
	Path string
	Size int
	Err  error
}
