package panel

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"calendar-tui/internal/ui/components"
)

// Fixed dialog copy.
const (
	DialogTitle        = "Replace calendar data?"
	NoImpactMessage    = "Current calendar has no entries or categories."
	IrreversibleNotice = "This action is irreversible."
	ValidateHint       = `Please ensure you have a valid backup before proceeding. Use the "validate .json" button next to "upload .json" to check that everything is in order.`
)

// ConfirmationRequest is the live impact of a destructive import.
type ConfirmationRequest struct {
	EntryCount    int
	CategoryCount int
}

// Summary describes what the import will overwrite. The category count
// includes the default category, which is not reported.
func (r ConfirmationRequest) Summary() string {
	var entries, categories string
	if r.EntryCount > 0 {
		entries = fmt.Sprintf("Overwriting %d entries", r.EntryCount)
	}
	if r.CategoryCount > 1 {
		if r.CategoryCount == 2 {
			categories = "1 category."
		} else {
			categories = fmt.Sprintf("%d categories.", r.CategoryCount-1)
		}
	}

	switch {
	case entries != "" && categories != "":
		return entries + " and " + categories
	case entries != "":
		return entries
	case categories != "":
		return categories
	}
	return NoImpactMessage
}

// Lines returns the dialog body in display order.
func (r ConfirmationRequest) Lines() []string {
	return []string{r.Summary(), IrreversibleNotice, ValidateHint}
}

// Request returns the impact summary of the showing dialog, if any.
func (c *Controller) Request() (ConfirmationRequest, bool) {
	if c.request == nil {
		return ConfirmationRequest{}, false
	}
	return *c.request, true
}

// Dialog returns the showing confirmation surface, or nil.
func (c *Controller) Dialog() *components.ConfirmDialog {
	return c.dialog
}

// showImportDialog builds the confirmation from current store stats.
// The panel overlay token is swapped for the dialog's while it shows.
func (c *Controller) showImportDialog() {
	if c.state != Open {
		return
	}
	entries, categories := c.deps.Store.StoreStats()
	req := ConfirmationRequest{EntryCount: entries, CategoryCount: categories}

	c.request = &req
	c.dialog = components.NewConfirmDialog(DialogTitle, req.Lines()...)
	c.dialog.Busy = c.importing
	if c.controls.Backdrop != nil {
		c.controls.Backdrop.Scrim = true
	}
	c.deps.Store.RemoveActiveOverlay(OverlayToken)
	c.deps.Store.AddActiveOverlay(DialogOverlayToken)
	c.state = OpenWithDialog
}

// removeDialog tears down the dialog and its scrim; the panel stays open.
func (c *Controller) removeDialog() {
	c.dialog = nil
	c.request = nil
	if c.controls.Backdrop != nil {
		c.controls.Backdrop.Scrim = false
	}
	c.deps.Store.RemoveActiveOverlay(DialogOverlayToken)
	c.deps.Store.AddActiveOverlay(OverlayToken)
	c.state = Open
}

// proceedImport starts the import. There is no cancellation: the import
// runs to completion even if the panel closes meanwhile, and no second
// import starts until it settles, in this session or a later one.
func (c *Controller) proceedImport() tea.Cmd {
	if c.importing || c.deps.Import == nil {
		return nil
	}
	c.importing = true
	c.importSession = c.session
	if c.dialog != nil {
		c.dialog.Busy = true
	}

	session := c.session
	store := c.deps.Store
	importer := c.deps.Import
	panelLog.Info("import_started", slog.Uint64("session", session))
	return func() tea.Msg {
		payload, err := importer(context.Background(), store)
		return ImportDoneMsg{session: session, Payload: payload, Err: err}
	}
}

// finishImport runs the import's continuations. Success closes dialog and
// panel together; failure is logged and leaves both untouched. Results from
// an earlier open session are logged and otherwise ignored.
func (c *Controller) finishImport(m ImportDoneMsg) {
	current := m.session == c.session && c.state != Closed
	if c.importing && m.session == c.importSession {
		c.importing = false
		if c.dialog != nil {
			c.dialog.Busy = false
		}
	}

	if m.Err != nil {
		panelLog.Error("import_failed", slog.Uint64("session", m.session), slog.String("error", m.Err.Error()))
		return
	}
	panelLog.Info("import_succeeded", slog.Uint64("session", m.session), slog.String("payload", fmt.Sprintf("%T", m.Payload)))
	// импорт заменяет и preferences
	c.RefreshPreferences()

	if !current {
		return
	}
	if c.state == OpenWithDialog {
		c.removeDialog()
	}
	c.closePanel()
}
