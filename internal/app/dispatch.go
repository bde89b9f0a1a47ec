package app

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/log/v2"

	"github.com/Gaurav-Gosain/keybar/internal/input"
)

// ActionHandler is a function that handles a specific action kind
type ActionHandler func(a input.Action, h *Host) tea.Cmd

// ActionDispatcher maps action kinds to handler functions
type ActionDispatcher struct {
	handlers map[input.ActionKind]ActionHandler
}

// NewActionDispatcher creates a new action dispatcher with all handlers registered
func NewActionDispatcher() *ActionDispatcher {
	d := &ActionDispatcher{
		handlers: make(map[input.ActionKind]ActionHandler),
	}
	d.registerHandlers()
	return d
}

func (d *ActionDispatcher) registerHandlers() {
	// Modes
	d.Register(input.ActSwitchToMode, handleSwitchToMode)
	d.Register(input.ActQuit, handleQuit)
	d.Register(input.ActDetach, handleDetach)

	// Panes
	d.Register(input.ActMoveFocus, handleMoveFocus)
	d.Register(input.ActMoveFocusOrTab, handleMoveFocusOrTab)
	d.Register(input.ActResize, handleResize)
	d.Register(input.ActMovePane, handleMovePane)
	d.Register(input.ActMovePaneBackwards, handleMovePaneBackwards)
	d.Register(input.ActNewPane, handleNewPane)
	d.Register(input.ActCloseFocus, handleCloseFocus)
	d.Register(input.ActToggleFocusFullscreen, handleToggleFullscreen)
	d.Register(input.ActTogglePaneFrames, handleTogglePaneFrames)
	d.Register(input.ActToggleFloatingPanes, handleToggleFloatingPanes)
	d.Register(input.ActTogglePaneEmbedOrFloating, handleTogglePaneEmbedOrFloating)
	d.Register(input.ActSwitchFocus, handleSwitchFocus)
	d.Register(input.ActPaneNameInput, handlePaneNameInput)

	// Tabs
	d.Register(input.ActTabNameInput, handleTabNameInput)
	d.Register(input.ActNewTab, handleNewTab)
	d.Register(input.ActCloseTab, handleCloseTab)
	d.Register(input.ActGoToNextTab, handleGoToNextTab)
	d.Register(input.ActGoToPreviousTab, handleGoToPreviousTab)
	d.Register(input.ActToggleActiveSyncTab, handleToggleSyncTab)
	d.Register(input.ActToggleTab, handleToggleTab)

	// Scrollback
	d.Register(input.ActScrollUp, makeScrollHandler(1, 0))
	d.Register(input.ActScrollDown, makeScrollHandler(-1, 0))
	d.Register(input.ActPageScrollUp, makeScrollHandler(0, 1))
	d.Register(input.ActPageScrollDown, makeScrollHandler(0, -1))
	d.Register(input.ActHalfPageScrollUp, makeScrollHandler(0, 0.5))
	d.Register(input.ActHalfPageScrollDown, makeScrollHandler(0, -0.5))
	d.Register(input.ActEditScrollback, handleEditScrollback)

	// Search
	d.Register(input.ActSearchInput, handleSearchInput)
	d.Register(input.ActSearch, handleSearch)
	d.Register(input.ActSearchToggleOption, handleSearchToggleOption)
}

// Register adds an action handler
func (d *ActionDispatcher) Register(kind input.ActionKind, handler ActionHandler) {
	d.handlers[kind] = handler
}

// Dispatch executes the handler for a given action
func (d *ActionDispatcher) Dispatch(a input.Action, h *Host) tea.Cmd {
	handler, ok := d.handlers[a.Kind]
	if !ok {
		log.Warn("no handler for action", "action", a)
		return nil
	}
	log.Debug("dispatch", "action", a, "mode", h.Mode)
	return handler(a, h)
}

// HasAction checks if an action kind is registered
func (d *ActionDispatcher) HasAction(kind input.ActionKind) bool {
	_, ok := d.handlers[kind]
	return ok
}

// Run dispatches a binding's actions in order and batches their commands.
func (d *ActionDispatcher) Run(actions []input.Action, h *Host) tea.Cmd {
	var cmds []tea.Cmd
	for _, a := range actions {
		if cmd := d.Dispatch(a, h); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	h.syncBar()
	return tea.Batch(cmds...)
}

var globalDispatcher = NewActionDispatcher()

// GetDispatcher returns the global action dispatcher
func GetDispatcher() *ActionDispatcher {
	return globalDispatcher
}

// ============================================================================
// Mode Action Handlers
// ============================================================================

func handleSwitchToMode(a input.Action, h *Host) tea.Cmd {
	h.SwitchMode(a.Mode)
	return nil
}

func handleQuit(_ input.Action, h *Host) tea.Cmd {
	h.quitting = true
	return tea.Quit
}

func handleDetach(_ input.Action, h *Host) tea.Cmd {
	h.quitting = true
	h.Message = "detached from " + h.session
	return tea.Quit
}

// ============================================================================
// Pane Action Handlers
// ============================================================================

// direction turns a pane direction into a step through the pane row.
func direction(d input.Direction) int {
	switch d {
	case input.DirLeft, input.DirUp:
		return -1
	default:
		return 1
	}
}

func handleMoveFocus(a input.Action, h *Host) tea.Cmd {
	if t := h.ActiveTab(); t != nil {
		t.MoveFocus(direction(a.Dir))
	}
	return nil
}

func handleMoveFocusOrTab(a input.Action, h *Host) tea.Cmd {
	t := h.ActiveTab()
	if t == nil || t.MoveFocus(direction(a.Dir)) {
		return nil
	}
	step := direction(a.Dir)
	h.goToTab(h.Active + step)
	return nil
}

func handleResize(a input.Action, h *Host) tea.Cmd {
	p := h.FocusedPane()
	if p == nil {
		return nil
	}
	step := 10
	if a.Resize == input.Decrease {
		step = -step
	}
	p.Weight = max(20, min(p.Weight+step, 400))
	h.Message = fmt.Sprintf("%s size %d%%", p.Name, p.Weight)
	return nil
}

func handleMovePane(a input.Action, h *Host) tea.Cmd {
	if t := h.ActiveTab(); t != nil {
		step := 1
		if a.Dir != input.DirNone {
			step = direction(a.Dir)
		}
		t.SwapFocused(step)
	}
	return nil
}

func handleMovePaneBackwards(_ input.Action, h *Host) tea.Cmd {
	if t := h.ActiveTab(); t != nil {
		t.SwapFocused(-1)
	}
	return nil
}

func handleNewPane(_ input.Action, h *Host) tea.Cmd {
	if t := h.ActiveTab(); t != nil {
		t.AddPane(h.nextPane())
	}
	return nil
}

func handleCloseFocus(_ input.Action, h *Host) tea.Cmd {
	t := h.ActiveTab()
	if t == nil || t.CloseFocused() {
		return nil
	}
	return closeActiveTab(h)
}

func handleToggleFullscreen(_ input.Action, h *Host) tea.Cmd {
	if t := h.ActiveTab(); t != nil {
		t.Fullscreen = !t.Fullscreen
	}
	return nil
}

func handleTogglePaneFrames(_ input.Action, h *Host) tea.Cmd {
	h.PaneFrames = !h.PaneFrames
	return nil
}

func handleToggleFloatingPanes(_ input.Action, h *Host) tea.Cmd {
	if t := h.ActiveTab(); t != nil {
		t.Floating = !t.Floating
	}
	return nil
}

func handleTogglePaneEmbedOrFloating(_ input.Action, h *Host) tea.Cmd {
	if p := h.FocusedPane(); p != nil {
		p.Floating = !p.Floating
	}
	return nil
}

func handleSwitchFocus(_ input.Action, h *Host) tea.Cmd {
	if t := h.ActiveTab(); t != nil {
		t.CycleFocus()
	}
	return nil
}

func handlePaneNameInput(a input.Action, h *Host) tea.Cmd {
	if p := h.FocusedPane(); p != nil {
		p.Name = h.nameInput(p.Name, a.Input)
	}
	return nil
}

// nameInput applies the bytes of a *NameInput action to name. A NUL byte
// starts a rename from an empty name, ESC restores the name from before the
// rename and DEL or BS erase the last character.
func (h *Host) nameInput(name, in string) string {
	for i := 0; i < len(in); i++ {
		switch b := in[i]; {
		case b == 0:
			h.renameBackup = name
			name = ""
		case b == 27:
			name = h.renameBackup
		case b == 8 || b == 127:
			if r := []rune(name); len(r) > 0 {
				name = string(r[:len(r)-1])
			}
		case b < 0x20:
		default:
			name += in[i : i+1]
		}
	}
	return name
}

// ============================================================================
// Tab Action Handlers
// ============================================================================

func handleTabNameInput(a input.Action, h *Host) tea.Cmd {
	if t := h.ActiveTab(); t != nil {
		t.Name = h.nameInput(t.Name, a.Input)
	}
	return nil
}

func handleNewTab(_ input.Action, h *Host) tea.Cmd {
	h.addTab()
	return nil
}

func handleCloseTab(_ input.Action, h *Host) tea.Cmd {
	return closeActiveTab(h)
}

func closeActiveTab(h *Host) tea.Cmd {
	if h.closeTab() {
		return nil
	}
	h.quitting = true
	return tea.Quit
}

func handleGoToNextTab(_ input.Action, h *Host) tea.Cmd {
	if len(h.Tabs) > 1 {
		h.goToTab((h.Active + 1) % len(h.Tabs))
	}
	return nil
}

func handleGoToPreviousTab(_ input.Action, h *Host) tea.Cmd {
	if len(h.Tabs) > 1 {
		h.goToTab((h.Active - 1 + len(h.Tabs)) % len(h.Tabs))
	}
	return nil
}

func handleToggleSyncTab(_ input.Action, h *Host) tea.Cmd {
	if t := h.ActiveTab(); t != nil {
		t.Sync = !t.Sync
	}
	return nil
}

func handleToggleTab(_ input.Action, h *Host) tea.Cmd {
	h.goToTab(h.LastActive)
	return nil
}

// ============================================================================
// Scrollback Action Handlers
// ============================================================================

// makeScrollHandler scrolls by a number of lines plus a fraction of the pane
// height. Positive values scroll back.
func makeScrollHandler(lines int, pages float64) ActionHandler {
	return func(_ input.Action, h *Host) tea.Cmd {
		if p := h.FocusedPane(); p != nil {
			p.ScrollBy(lines + int(pages*float64(h.paneHeight())))
		}
		return nil
	}
}

func handleEditScrollback(_ input.Action, h *Host) tea.Cmd {
	if p := h.FocusedPane(); p != nil {
		h.Message = fmt.Sprintf("%d lines of %s would open in $EDITOR", len(p.Lines), p.Name)
	}
	return nil
}

// ============================================================================
// Search Action Handlers
// ============================================================================

func handleSearchInput(a input.Action, h *Host) tea.Cmd {
	h.Search.Term = h.nameInput(h.Search.Term, a.Input)
	return nil
}

func handleSearch(a input.Action, h *Host) tea.Cmd {
	p := h.FocusedPane()
	if p == nil || h.Search.Term == "" {
		return nil
	}
	if line, ok := h.Search.find(p, a.Search); ok {
		p.Scroll = len(p.Lines) - 1 - line
		h.Message = ""
	} else {
		h.Message = fmt.Sprintf("%q not found", h.Search.Term)
	}
	return nil
}

func handleSearchToggleOption(a input.Action, h *Host) tea.Cmd {
	switch a.Option {
	case input.CaseSensitivity:
		h.Search.CaseSensitive = !h.Search.CaseSensitive
	case input.WholeWord:
		h.Search.WholeWord = !h.Search.WholeWord
	case input.Wrap:
		h.Search.Wrap = !h.Search.Wrap
	}
	return nil
}

// find returns the index of the next line of p matching the term, searching
// from the line at the top of the current scroll position.
func (s SearchState) find(p *Pane, dir input.SearchDirection) (int, bool) {
	n := len(p.Lines)
	from := n - 1 - p.Scroll
	step := -1 // up is towards older lines
	if dir == input.SearchDown {
		step = 1
	}
	for i, tried := from+step, 0; tried < n; i, tried = i+step, tried+1 {
		if i < 0 || i >= n {
			if !s.Wrap {
				return 0, false
			}
			i = (i + n) % n
		}
		if s.matches(p.Lines[i]) {
			return i, true
		}
	}
	return 0, false
}

func (s SearchState) matches(line string) bool {
	term := s.Term
	if !s.CaseSensitive {
		line, term = strings.ToLower(line), strings.ToLower(term)
	}
	if !s.WholeWord {
		return strings.Contains(line, term)
	}
	for _, word := range strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '[' || r == ']' || r == '#'
	}) {
		if word == term {
			return true
		}
	}
	return false
}
