// Package app is an interactive stand-in for a terminal multiplexer. It keeps
// simulated tabs and panes, runs the configured keybindings against them and
// draws the status bar along the bottom row, so bindings and themes can be
// tried out live.
package app

import (
	"charm.land/log/v2"

	"github.com/Gaurav-Gosain/keybar/internal/input"
	"github.com/Gaurav-Gosain/keybar/internal/plugin"
	"github.com/Gaurav-Gosain/keybar/internal/theme"
)

// Options configure a Host.
type Options struct {
	Keymaps     map[input.Mode]input.Keymap
	Palette     theme.Palette
	Simplified  bool
	Threshold   int
	SessionName string
	// ConfigPath is reloaded when Watcher reports a change.
	ConfigPath string
	Watcher    *ConfigWatcher
	// Reload parses the config at ConfigPath into keymaps.
	Reload func(path string) (map[input.Mode]input.Keymap, error)
}

// Host is the demo multiplexer model.
type Host struct {
	Mode    input.Mode
	Keymaps map[input.Mode]input.Keymap
	Tabs    []*Tab
	Active  int
	// LastActive is the tab ToggleTab returns to.
	LastActive int

	Width  int
	Height int

	PaneFrames bool
	Search     SearchState
	Message    string

	// renameBackup holds the name being replaced by a rename in progress.
	renameBackup string

	bar       *plugin.State
	palette   theme.Palette
	simple    bool
	session   string
	opts      Options
	paneCount int
	tabCount  int
	quitting  bool
}

// SearchState is the scrollback search of the focused pane.
type SearchState struct {
	Term          string
	CaseSensitive bool
	WholeWord     bool
	Wrap          bool
}

// NewHost creates a host with one tab holding one pane, in Normal mode.
func NewHost(opts Options) *Host {
	if opts.SessionName == "" {
		opts.SessionName = "keybar"
	}
	h := &Host{
		Keymaps:    opts.Keymaps,
		PaneFrames: true,
		bar:        plugin.New(),
		palette:    opts.Palette,
		simple:     opts.Simplified,
		session:    opts.SessionName,
		opts:       opts,
	}
	if h.Keymaps == nil {
		h.Keymaps = map[input.Mode]input.Keymap{}
	}
	h.bar.Threshold = opts.Threshold
	h.addTab()
	h.bar.Update(plugin.PermissionResult{Granted: true})
	h.syncBar()
	return h
}

// Bar returns the status bar state fed by the host.
func (h *Host) Bar() *plugin.State { return h.bar }

// ActiveTab returns the focused tab.
func (h *Host) ActiveTab() *Tab {
	if h.Active < 0 || h.Active >= len(h.Tabs) {
		return nil
	}
	return h.Tabs[h.Active]
}

// FocusedPane returns the focused pane of the active tab.
func (h *Host) FocusedPane() *Pane {
	if t := h.ActiveTab(); t != nil {
		return t.Focused()
	}
	return nil
}

func (h *Host) nextPane() *Pane {
	h.paneCount++
	return newPane(h.paneCount)
}

func (h *Host) addTab() {
	h.tabCount++
	h.paneCount++
	h.Tabs = append(h.Tabs, newTab(h.tabCount, h.paneCount))
	h.goToTab(len(h.Tabs) - 1)
}

func (h *Host) goToTab(i int) {
	if i == h.Active || i < 0 || i >= len(h.Tabs) {
		return
	}
	h.LastActive = h.Active
	h.Active = i
}

// closeTab closes the active tab and reports whether any tab is left.
func (h *Host) closeTab() bool {
	h.Tabs = append(h.Tabs[:h.Active], h.Tabs[h.Active+1:]...)
	if len(h.Tabs) == 0 {
		return false
	}
	h.Active = min(h.Active, len(h.Tabs)-1)
	h.LastActive = min(h.LastActive, len(h.Tabs)-1)
	return true
}

// SetKeymaps replaces the bindings of every mode, e.g. after a config reload.
func (h *Host) SetKeymaps(keymaps map[input.Mode]input.Keymap) {
	h.Keymaps = keymaps
	h.syncBar()
}

// syncBar pushes the current mode and tab list to the status bar state.
func (h *Host) syncBar() {
	mode := h.bar.Update(plugin.ModeUpdate{Info: plugin.ModeInfo{
		Mode:         h.Mode,
		Keymap:       h.Keymaps[h.Mode],
		Palette:      h.palette,
		Capabilities: plugin.Capabilities{SimplifiedUI: h.simple},
		SessionName:  h.session,
	}})

	tabs := make([]plugin.TabInfo, len(h.Tabs))
	for i, t := range h.Tabs {
		hidden := 0
		if t.Fullscreen {
			hidden = len(t.Panes) - 1
		}
		tabs[i] = plugin.TabInfo{
			ID:           t.ID,
			Position:     i,
			Name:         t.Name,
			Active:       i == h.Active,
			IsSync:       t.Sync,
			IsFullscreen: t.Fullscreen,
			PanesToHide:  hidden,
		}
	}
	tab := h.bar.Update(plugin.TabUpdate{Tabs: tabs})

	if mode || tab {
		log.Debug("status bar changed", "mode", h.Mode, "tabs", len(tabs))
	}
}
