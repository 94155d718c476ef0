package panel

import (
	"calendar-tui/internal/ui/styles"
)

// settingsSync mirrors store preferences into the panel controls.
// Store values are the source of truth; controls are rewritten on every change.
type settingsSync struct {
	store    Store
	ctx      Context
	apply    ThemeApplier
	controls Controls
}

// seed pushes the current snapshot into every control.
func (s *settingsSync) seed() {
	s.controls.ThemeRadio.Check(styles.IndexOf(s.ctx.ColorScheme()))

	shortcuts := s.store.ShortcutsStatus()
	s.reflectShortcuts(shortcuts)
	if s.controls.ShortcutsSwitch != nil {
		s.controls.ShortcutsSwitch.Checked = shortcuts
	}

	animations := s.store.AnimationStatus()
	s.reflectAnimationIcons(animations)
	if s.controls.AnimationsSwitch != nil {
		s.controls.AnimationsSwitch.Checked = animations
	}
	s.reflectTransitions(animations)
}

// selectTheme checks the option and, when the scheme actually changes,
// stores it and applies the theme.
func (s *settingsSync) selectTheme(value string) {
	scheme := styles.Scheme(value)
	idx := styles.IndexOf(scheme)
	if idx < 0 {
		return
	}
	s.controls.ThemeRadio.Check(idx)
	if scheme == s.ctx.ColorScheme() {
		return
	}
	s.ctx.SetColorScheme(scheme)
	if s.apply != nil {
		s.apply(s.ctx, s.store)
	}
}

// toggleShortcutsFromSwitch flips the switch-driven way: the new status is the
// inverse of the switch's value before activation.
func (s *settingsSync) toggleShortcutsFromSwitch() {
	sw := s.controls.ShortcutsSwitch
	if sw == nil {
		return
	}
	status := !sw.Checked
	s.store.SetShortcutsStatus(status)
	s.reflectShortcuts(status)
	sw.Checked = status
}

// toggleShortcutsFromIcon flips the stored status directly.
func (s *settingsSync) toggleShortcutsFromIcon() {
	status := !s.store.ShortcutsStatus()
	s.store.SetShortcutsStatus(status)
	s.reflectShortcuts(status)
	if s.controls.ShortcutsSwitch != nil {
		s.controls.ShortcutsSwitch.Checked = status
	}
}

func (s *settingsSync) reflectShortcuts(status bool) {
	icon := s.controls.ShortcutsIcon
	if icon == nil {
		return
	}
	if status {
		icon.Tooltip = TooltipShortcutsOn
		icon.Fill = styles.FillPrimary
	} else {
		icon.Tooltip = TooltipShortcutsOff
		icon.Fill = styles.FillRed
	}
}

func (s *settingsSync) toggleAnimationsFromSwitch() {
	sw := s.controls.AnimationsSwitch
	if sw == nil {
		return
	}
	s.setAnimations(!sw.Checked)
}

func (s *settingsSync) toggleAnimationsFromIcon() {
	s.setAnimations(!s.store.AnimationStatus())
}

// setAnimations is shared by both entry points; the switch is always forced
// to the final status.
func (s *settingsSync) setAnimations(status bool) {
	s.store.SetAnimationStatus(status)
	s.reflectAnimationIcons(status)
	if s.controls.AnimationsSwitch != nil {
		s.controls.AnimationsSwitch.Checked = status
	}
	s.reflectTransitions(status)
}

func (s *settingsSync) reflectTransitions(animations bool) {
	if s.controls.Document != nil {
		s.controls.Document.DisableTransitions = !animations
	}
}

func (s *settingsSync) reflectAnimationIcons(status bool) {
	icons := s.controls.AnimationsIcons
	if icons == nil {
		return
	}
	icons.OnVisible = status
	icons.OffVisible = !status
	if status {
		icons.Tooltip = TooltipAnimationsOn
	} else {
		icons.Tooltip = TooltipAnimationsOff
	}
}
