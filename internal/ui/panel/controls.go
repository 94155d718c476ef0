package panel

import (
	"calendar-tui/internal/ui/styles"
)

// Tooltips shown on the status icons.
const (
	TooltipShortcutsOn   = "Keyboard shortcuts enabled"
	TooltipShortcutsOff  = "Keyboard shortcuts disabled"
	TooltipAnimationsOn  = "Animations Enabled"
	TooltipAnimationsOff = "Animations Disabled"
)

// Surface is a panel-like region carrying the "closed" visual marker.
type Surface struct {
	Closed bool
}

// Backdrop is the overlay beneath the panel. Scrim is the dialog's own
// dimming flag; OnClick is installed only while the panel is open.
type Backdrop struct {
	Closed  bool
	Scrim   bool
	OnClick func()
}

// RadioGroup is the theme selector; Selected is -1 when nothing is checked.
type RadioGroup struct {
	Options  []styles.Scheme
	Selected int
}

// Check marks option i; out-of-range indexes are ignored.
func (r *RadioGroup) Check(i int) {
	if r == nil || i < 0 || i >= len(r.Options) {
		return
	}
	r.Selected = i
}

// Switch is a toggle control.
type Switch struct {
	Checked bool
}

// StatusIcon is the keyboard-shortcuts indicator.
type StatusIcon struct {
	Tooltip string
	Fill    string
}

// IconPair is the animations on/off indicator.
type IconPair struct {
	OnVisible  bool
	OffVisible bool
	Tooltip    string
}

// Document holds application-wide presentation flags.
type Document struct {
	DisableTransitions bool
}

// Controls are the handles of every UI element the panel reads or writes.
// Any handle may be nil; operations on a missing element are no-ops.
type Controls struct {
	Panel            *Surface
	Backdrop         *Backdrop
	ThemeRadio       *RadioGroup
	ShortcutsSwitch  *Switch
	ShortcutsIcon    *StatusIcon
	AnimationsSwitch *Switch
	AnimationsIcons  *IconPair
	Document         *Document
}

// NewControls returns a full set of elements in their closed state.
func NewControls() Controls {
	return Controls{
		Panel:            &Surface{Closed: true},
		Backdrop:         &Backdrop{Closed: true},
		ThemeRadio:       &RadioGroup{Options: append([]styles.Scheme(nil), styles.Schemes...), Selected: -1},
		ShortcutsSwitch:  &Switch{},
		ShortcutsIcon:    &StatusIcon{},
		AnimationsSwitch: &Switch{},
		AnimationsIcons:  &IconPair{},
		Document:         &Document{},
	}
}
