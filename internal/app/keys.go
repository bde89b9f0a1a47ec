package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/keybar/internal/input"
)

// Lookup returns the actions bound to k in the current mode. The first
// binding wins when a key is bound twice.
func (h *Host) Lookup(k input.Key) ([]input.Action, bool) {
	for _, b := range h.Keymaps[h.Mode] {
		if b.Key == k {
			return b.Actions, true
		}
	}
	return nil, false
}

// HandleKeyPress runs the binding of a key press, or treats the key as
// text when it is unbound.
func (h *Host) HandleKeyPress(msg tea.KeyPressMsg) tea.Cmd {
	k, ok := input.FromTea(msg.Key())
	if !ok {
		return nil
	}
	if actions, ok := h.Lookup(k); ok {
		return GetDispatcher().Run(actions, h)
	}
	h.typeKey(k)
	h.syncBar()
	return nil
}

// typeKey handles an unbound key. Text modes collect it; Normal and Locked
// send it to the focused pane.
func (h *Host) typeKey(k input.Key) {
	text, erase := "", false
	switch {
	case k == input.Backspace:
		erase = true
	case k.Kind == input.KindChar && k != input.Enter:
		text = string(k.Rune)
	}

	var wrap func(...byte) input.Action
	switch h.Mode {
	case input.ModeRenamePane:
		wrap = input.PaneNameInput
	case input.ModeRenameTab:
		wrap = input.TabNameInput
	case input.ModeEnterSearch:
		wrap = input.SearchInput
	case input.ModeNormal, input.ModeLocked:
		if t := h.ActiveTab(); t != nil {
			switch {
			case k == input.Enter:
				t.Submit()
			case text != "":
				t.Type(text)
			}
		}
		return
	default:
		return
	}

	switch {
	case erase:
		GetDispatcher().Dispatch(wrap(127), h)
	case text != "":
		GetDispatcher().Dispatch(wrap([]byte(text)...), h)
	}
}
