package panel

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"calendar-tui/internal/logging"
	"calendar-tui/internal/ui/components"
)

var panelLog = logging.ForComponent(logging.CompPanel)

// State is the panel's position in its lifecycle.
type State int

const (
	Closed State = iota
	Open
	OpenWithDialog
)

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case OpenWithDialog:
		return "open+dialog"
	}
	return "closed"
}

// Controller owns the panel's visibility, its nested confirmation dialog and
// the listeners that exist only while the panel is open.
type Controller struct {
	deps     Deps
	controls Controls
	sync     *settingsSync
	table    []route
	keys     KeyMap

	state  State
	dialog *components.ConfirmDialog
	// request is the impact summary the dialog was built from.
	request *ConfirmationRequest

	// keyListener is installed by Open and released by Close.
	keyListener func(tea.KeyMsg) tea.Cmd

	// session increments on every Open; async results carry the session
	// they were started in.
	session   uint64
	importing bool
	// importSession is the session that started the in-flight import
	importSession uint64

	focus int
	rows  []row
}

// New builds a closed panel over the given element handles.
func New(deps Deps, controls Controls) *Controller {
	c := &Controller{
		deps:     deps,
		controls: controls,
		keys:     DefaultKeyMap(),
		rows:     defaultRows(),
	}
	c.sync = &settingsSync{
		store:    deps.Store,
		ctx:      deps.Context,
		apply:    deps.ApplyTheme,
		controls: controls,
	}
	c.table = c.routes()
	if deps.Store != nil {
		c.sync.reflectTransitions(deps.Store.AnimationStatus())
	}
	return c
}

// RefreshPreferences re-reads the preferences after the store changed
// underneath the panel (import, reload).
func (c *Controller) RefreshPreferences() {
	c.sync.seed()
}

// TransitionsDisabled reports the document-level transitions flag. Without
// a Document handle it is derived from the store.
func (c *Controller) TransitionsDisabled() bool {
	if c.controls.Document != nil {
		return c.controls.Document.DisableTransitions
	}
	return !c.deps.Store.AnimationStatus()
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// IsOpen reports whether the panel is visible, with or without the dialog.
func (c *Controller) IsOpen() bool {
	return c.state != Closed
}

// HasDialog reports whether the confirmation dialog is showing.
func (c *Controller) HasDialog() bool {
	return c.state == OpenWithDialog
}

// Controls exposes the element handles.
func (c *Controller) Controls() Controls {
	return c.controls
}

// Open seeds the controls from the store, registers the overlay and
// installs the key listener and backdrop click handler. It is a no-op when
// the panel is already open.
func (c *Controller) Open() {
	if c.state != Closed {
		return
	}
	c.sync.seed()

	c.deps.Store.AddActiveOverlay(OverlayToken)
	if c.controls.Panel != nil {
		c.controls.Panel.Closed = false
	}
	if c.controls.Backdrop != nil {
		c.controls.Backdrop.Closed = false
		c.controls.Backdrop.OnClick = c.Close
	}
	c.keyListener = c.onKey

	c.session++
	c.focus = 0
	c.state = Open
	panelLog.Debug("panel_opened", slog.Uint64("session", c.session))
}

// Close dismisses exactly one layer: the dialog when it is showing,
// otherwise the panel. Closing a closed panel is a no-op.
func (c *Controller) Close() {
	switch c.state {
	case OpenWithDialog:
		c.removeDialog()
	case Open:
		c.closePanel()
	}
}

// closePanel releases everything Open acquired.
func (c *Controller) closePanel() {
	c.deps.Store.RemoveActiveOverlay(OverlayToken)
	if c.controls.Panel != nil {
		c.controls.Panel.Closed = true
	}
	if c.controls.Backdrop != nil {
		c.controls.Backdrop.Closed = true
		c.controls.Backdrop.OnClick = nil
	}
	c.keyListener = nil
	c.state = Closed
	panelLog.Debug("panel_closed", slog.Uint64("session", c.session))
}

// HandleKey feeds a key press to the installed listener.
// It reports false when the panel is closed and the key was not consumed.
func (c *Controller) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if c.keyListener == nil {
		return false, nil
	}
	return true, c.keyListener(msg)
}

// ClickBackdrop invokes the backdrop click handler, if installed.
func (c *Controller) ClickBackdrop() {
	if c.controls.Backdrop != nil && c.controls.Backdrop.OnClick != nil {
		c.controls.Backdrop.OnClick()
	}
}

func (c *Controller) onKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, c.keys.Dismiss):
		c.Close()
		return nil
	case c.state == OpenWithDialog:
		return c.dialogKey(msg)
	case key.Matches(msg, c.keys.QuickClose):
		c.Close()
		return nil
	case key.Matches(msg, c.keys.Up):
		c.moveFocus(-1)
	case key.Matches(msg, c.keys.Down):
		c.moveFocus(1)
	case key.Matches(msg, c.keys.Activate):
		return c.activateFocused()
	}
	return nil
}

func (c *Controller) dialogKey(msg tea.KeyMsg) tea.Cmd {
	switch c.dialog.Update(msg) {
	case components.ChoiceCancel:
		c.Close()
	case components.ChoiceProceed:
		return c.proceedImport()
	}
	return nil
}

// Interact routes an activation through the dispatch table. Panel rows are
// inert while the dialog holds focus.
func (c *Controller) Interact(t Target) tea.Cmd {
	if c.state != Open {
		return nil
	}
	name, cmd := dispatch(c.table, t)
	if name != "" {
		panelLog.Debug("panel_dispatch", slog.String("route", name))
	}
	return cmd
}

// Update handles asynchronous results addressed to the panel.
func (c *Controller) Update(msg tea.Msg) tea.Cmd {
	switch m := msg.(type) {
	case ImportDoneMsg:
		c.finishImport(m)
	case ExportDoneMsg:
		c.logExport(m)
	case tea.KeyMsg:
		_, cmd := c.HandleKey(m)
		return cmd
	}
	return nil
}
