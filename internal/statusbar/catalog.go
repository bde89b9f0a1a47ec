package statusbar

import (
	"github.com/Gaurav-Gosain/keybar/internal/input"
	"github.com/Gaurav-Gosain/keybar/internal/keytable"
)

// Target is a top-level shortcut shown in the bar: a mode to enter, or quit.
type Target int

const (
	TargetLock Target = iota
	TargetPane
	TargetTab
	TargetResize
	TargetMove
	TargetSearch
	TargetScroll
	TargetSession
	TargetQuit
)

var targetLabels = [...]string{
	TargetLock:    "LOCK",
	TargetPane:    "PANE",
	TargetTab:     "TAB",
	TargetResize:  "RESIZE",
	TargetMove:    "MOVE",
	TargetSearch:  "SEARCH",
	TargetScroll:  "SCROLL",
	TargetSession: "SESSION",
	TargetQuit:    "QUIT",
}

// Label is the text of the target in the long form.
func (t Target) Label() string { return targetLabels[t] }

func (t Target) String() string { return t.Label() }

// action returns the action sequence that reaches t.
func (t Target) action() input.Action {
	switch t {
	case TargetLock:
		return input.SwitchToMode(input.ModeLocked)
	case TargetPane:
		return input.SwitchToMode(input.ModePane)
	case TargetTab:
		return input.SwitchToMode(input.ModeTab)
	case TargetResize:
		return input.SwitchToMode(input.ModeResize)
	case TargetMove:
		return input.SwitchToMode(input.ModeMove)
	case TargetSearch:
		return input.SwitchToMode(input.ModeSearch)
	case TargetScroll:
		return input.SwitchToMode(input.ModeScroll)
	case TargetSession:
		return input.SwitchToMode(input.ModeSession)
	default:
		return input.Quit
	}
}

// catalogOrder is the order shortcuts appear in the bar.
var catalogOrder = []Target{
	TargetLock, TargetPane, TargetTab, TargetResize, TargetMove,
	TargetSearch, TargetScroll, TargetSession, TargetQuit,
}

// modeTargets maps each mode to the shortcut highlighted while it is
// active. Modes in untargetedModes highlight nothing. Every mode must be
// in exactly one of the two.
var modeTargets = map[input.Mode]Target{
	input.ModeLocked:      TargetLock,
	input.ModePane:        TargetPane,
	input.ModeRenamePane:  TargetPane,
	input.ModeTab:         TargetTab,
	input.ModeRenameTab:   TargetTab,
	input.ModeResize:      TargetResize,
	input.ModeMove:        TargetMove,
	input.ModeSearch:      TargetSearch,
	input.ModeEnterSearch: TargetSearch,
	input.ModeScroll:      TargetScroll,
	input.ModeSession:     TargetSession,
}

var untargetedModes = map[input.Mode]bool{
	input.ModeNormal: true,
	input.ModePrompt: true,
	input.ModeTmux:   true,
}

// Emphasis is how a shortcut tile is drawn.
type Emphasis int

const (
	Unselected Emphasis = iota
	UnselectedAlternate
	Selected
	// Disabled tiles are not drawn at all.
	Disabled
)

func (e Emphasis) String() string {
	switch e {
	case UnselectedAlternate:
		return "alternate"
	case Selected:
		return "selected"
	case Disabled:
		return "disabled"
	default:
		return "unselected"
	}
}

// Parity alternates the resting color of neighbouring tiles.
type Parity int

const (
	Primary Parity = iota
	Alternate
)

func (p Parity) emphasis() Emphasis {
	if p == Alternate {
		return UnselectedAlternate
	}
	return Unselected
}

// ShortcutEntry is one top-level shortcut of the bar.
type ShortcutEntry struct {
	Target   Target
	Key      input.Key
	HasKey   bool
	Emphasis Emphasis
	// Parity is fixed by the entry's slot in the catalog, so a missing key
	// never shifts the colors of its neighbours.
	Parity Parity
}

// Catalog builds the shortcut list for mode from the raw keymap of that
// mode. When mode has a matching target, that entry is selected and shows
// the key that returns to Normal; every other entry is disabled.
func Catalog(mode input.Mode, raw input.Keymap) []ShortcutEntry {
	km := keytable.Normalize(raw)

	entries := make([]ShortcutEntry, len(catalogOrder))
	for i, target := range catalogOrder {
		e := ShortcutEntry{Target: target, Parity: Parity(i % 2)}
		e.Key, e.HasKey = keytable.ShortcutKey(km, target.action())
		e.Emphasis = e.Parity.emphasis()
		entries[i] = e
	}

	selected, ok := modeTargets[mode]
	if !ok {
		return entries
	}

	toNormal, hasToNormal := keytable.ToNormalKey(raw)
	for i := range entries {
		if entries[i].Target == selected {
			entries[i].Emphasis = Selected
			entries[i].Key, entries[i].HasKey = toNormal, hasToNormal
		} else {
			entries[i].Emphasis = Disabled
		}
	}
	return entries
}
