// Package plugin holds the status bar's view of the host: the current mode
// with its keybindings and the tab list. The host feeds it events and asks it
// to render whenever Update reports a change.
package plugin

import (
	"slices"

	"github.com/google/uuid"

	"github.com/Gaurav-Gosain/keybar/internal/input"
	"github.com/Gaurav-Gosain/keybar/internal/statusbar"
	"github.com/Gaurav-Gosain/keybar/internal/theme"
)

// Capabilities describes what the host terminal can draw.
type Capabilities struct {
	// SimplifiedUI is set when the font has no powerline glyphs.
	SimplifiedUI bool
}

// ModeInfo is the host's input state.
type ModeInfo struct {
	Mode input.Mode
	// Keymap is the raw keymap of Mode.
	Keymap       input.Keymap
	Palette      theme.Palette
	Capabilities Capabilities
	SessionName  string
}

// Equal reports whether two snapshots are identical.
func (m ModeInfo) Equal(o ModeInfo) bool {
	return m.Mode == o.Mode &&
		m.Keymap.Equal(o.Keymap) &&
		m.Palette == o.Palette &&
		m.Capabilities == o.Capabilities &&
		m.SessionName == o.SessionName
}

// TabInfo describes one tab of the session.
type TabInfo struct {
	ID           uuid.UUID
	Position     int
	Name         string
	Active       bool
	IsSync       bool
	IsFullscreen bool
	PanesToHide  int
}

// Event is something the host reports.
type Event interface {
	event()
}

// ModeUpdate is sent whenever the mode, keymap, palette or capabilities change.
type ModeUpdate struct{ Info ModeInfo }

// TabUpdate carries the full tab list.
type TabUpdate struct{ Tabs []TabInfo }

// PermissionResult reports whether the host granted the requested
// permissions.
type PermissionResult struct{ Granted bool }

func (ModeUpdate) event()       {}
func (TabUpdate) event()        {}
func (PermissionResult) event() {}

// State is the plugin's last known snapshot. It is not safe for concurrent
// use.
type State struct {
	mode      ModeInfo
	tabs      []TabInfo
	permitted bool

	// Threshold overrides statusbar.DefaultLongFormThreshold when positive.
	Threshold int
}

// New returns a State in Normal mode with no bindings.
func New() *State {
	return &State{mode: ModeInfo{Palette: theme.DefaultPalette()}}
}

// Update stores the snapshot carried by ev and reports whether the bar
// needs to be redrawn.
func (s *State) Update(ev Event) bool {
	switch ev := ev.(type) {
	case ModeUpdate:
		changed := !s.mode.Equal(ev.Info)
		s.mode = ev.Info
		return changed
	case TabUpdate:
		changed := !slices.Equal(s.tabs, ev.Tabs)
		s.tabs = ev.Tabs
		return changed
	case PermissionResult:
		s.permitted = ev.Granted
	}
	return false
}

// Render lays out the bar for a pane of the given size.
func (s *State) Render(rows, cols int) string {
	if rows <= 0 {
		return ""
	}
	return s.Line(cols).Text
}

// Line composes the bar for cols columns.
func (s *State) Line(cols int) statusbar.Line {
	return statusbar.Compose(statusbar.Input{
		Mode:       s.mode.Mode,
		Keymap:     s.mode.Keymap,
		Palette:    s.mode.Palette,
		Simplified: s.mode.Capabilities.SimplifiedUI,
		MaxWidth:   cols,
		Threshold:  s.Threshold,
	})
}

func (s *State) ModeInfo() ModeInfo { return s.mode }

func (s *State) Tabs() []TabInfo { return s.tabs }

// ActiveTab returns the active tab, if any.
func (s *State) ActiveTab() (TabInfo, bool) {
	i := slices.IndexFunc(s.tabs, func(t TabInfo) bool { return t.Active })
	if i < 0 {
		return TabInfo{}, false
	}
	return s.tabs[i], true
}

func (s *State) Permitted() bool { return s.permitted }
