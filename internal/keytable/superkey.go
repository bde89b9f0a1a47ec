package keytable

import "github.com/Gaurav-Gosain/keybar/internal/input"

// superkeyModes are the modes whose entry shortcuts can share a superkey.
var superkeyModes = map[input.Mode]bool{
	input.ModeNormal:  true,
	input.ModeLocked:  true,
	input.ModePane:    true,
	input.ModeTab:     true,
	input.ModeResize:  true,
	input.ModeMove:    true,
	input.ModeSearch:  true,
	input.ModeScroll:  true,
	input.ModeSession: true,
	input.ModeTmux:    true,
}

// qualifies reports whether b is a top-level shortcut: its first action
// switches to a navigable mode or quits, and its key is not a default
// return key.
func qualifies(b input.Binding) bool {
	if len(b.Actions) == 0 || b.Key.IsDefaultReturn() {
		return false
	}
	first := b.Actions[0]
	switch first.Kind {
	case input.ActSwitchToMode:
		return superkeyModes[first.Mode]
	case input.ActQuit:
		return true
	default:
		return false
	}
}

// Superkey returns the modifier ("Ctrl" or "Alt") shared by every modified
// top-level shortcut in km. Unmodified shortcuts are ignored. It reports
// false when no modified shortcut exists or when they mix modifiers.
func Superkey(km input.Keymap) (string, bool) {
	label := ""
	found := false
	for _, b := range km {
		if !qualifies(b) {
			continue
		}
		mod := b.Key.Modifier()
		if mod == "" {
			continue
		}
		if found && mod != label {
			return "", false
		}
		label, found = mod, true
	}
	return label, found
}

// SuperkeyPrefix renders the shared prefix text for label. Simplified UIs
// draw no separator glyph after it, so they get a trailing space instead.
func SuperkeyPrefix(label string, simplified bool) string {
	if simplified {
		return " " + label + " + "
	}
	return " " + label + " +"
}
