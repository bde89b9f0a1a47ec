package statusbar

import (
	"slices"

	"github.com/Gaurav-Gosain/keybar/internal/input"
	"github.com/Gaurav-Gosain/keybar/internal/keytable"
)

// HintEntry describes one mode-local action.
type HintEntry struct {
	Long  string
	Short string
	Keys  []input.Key
	// Literal hints carry no keys and are always shown.
	Literal bool
}

// hintContext holds the lookups shared by the per-mode hint tables.
type hintContext struct {
	raw      input.Keymap
	km       input.Keymap
	toNormal []input.Key
}

func (c hintContext) key(actions ...input.Action) []input.Key {
	return keytable.KeysFor(c.km, actions...)
}

func (c hintContext) group(seqs ...[]input.Action) []input.Key {
	return keytable.KeyGroup(c.km, seqs...)
}

// directions groups the keys bound to act in each direction, optionally
// followed by the actions in then.
func (c hintContext) directions(act func(input.Direction) input.Action, then ...input.Action) []input.Key {
	dirs := []input.Direction{input.DirLeft, input.DirDown, input.DirUp, input.DirRight}
	seqs := make([][]input.Action, len(dirs))
	for i, d := range dirs {
		seqs[i] = append(seq(act(d)), then...)
	}
	return c.group(seqs...)
}

func seq(actions ...input.Action) []input.Action { return actions }

func hint(long, short string, keys []input.Key) HintEntry {
	return HintEntry{Long: long, Short: short, Keys: keys}
}

var toNormal = input.SwitchToMode(input.ModeNormal)

// hintTables holds the hint list of every mode that has one. Modes in
// hintlessModes show no hints. Every mode must be in exactly one of the two.
var hintTables = map[input.Mode]func(hintContext) []HintEntry{
	input.ModeLocked:      lockedHints,
	input.ModePane:        paneHints,
	input.ModeTab:         tabHints,
	input.ModeResize:      resizeHints,
	input.ModeMove:        moveHints,
	input.ModeScroll:      scrollHints,
	input.ModeEnterSearch: enterSearchHints,
	input.ModeSearch:      searchHints,
	input.ModeSession:     sessionHints,
	input.ModeTmux:        tmuxHints,
	input.ModeRenamePane:  renameHints,
	input.ModeRenameTab:   renameHints,
}

var hintlessModes = map[input.Mode]bool{
	input.ModeNormal: true,
	input.ModePrompt: true,
}

// Hints returns the mode-local hints for mode. Keys are looked up in the
// normalized keymap, except the return key which comes from raw.
func Hints(mode input.Mode, raw input.Keymap) []HintEntry {
	build, ok := hintTables[mode]
	if !ok {
		return nil
	}

	ctx := hintContext{raw: raw, km: keytable.Normalize(raw)}
	if k, ok := keytable.ToNormalKey(raw); ok {
		ctx.toNormal = []input.Key{k}
	}
	return build(ctx)
}

func lockedHints(hintContext) []HintEntry {
	return []HintEntry{{Long: "-- INTERFACE LOCKED --", Short: "-- LOCKED --", Literal: true}}
}

func paneHints(c hintContext) []HintEntry {
	return []HintEntry{
		hint("Move focus", "Move", c.directions(input.MoveFocus)),
		hint("New", "New", c.key(input.NewPane(input.DirNone), toNormal)),
		hint("Close", "Close", c.key(input.CloseFocus, toNormal)),
		hint("Rename", "Rename", c.key(input.SwitchToMode(input.ModeRenamePane), input.PaneNameInput(0))),
		hint("Split down", "Down", c.key(input.NewPane(input.DirDown), toNormal)),
		hint("Split right", "Right", c.key(input.NewPane(input.DirRight), toNormal)),
		hint("Fullscreen", "Fullscreen", c.key(input.ToggleFocusFullscreen, toNormal)),
		hint("Frames", "Frames", c.key(input.TogglePaneFrames, toNormal)),
		hint("Floating toggle", "Floating", c.key(input.ToggleFloatingPanes, toNormal)),
		hint("Embed pane", "Embed", c.key(input.TogglePaneEmbedOrFloating, toNormal)),
		hint("Next", "Next", c.key(input.SwitchFocus)),
		hint("Select pane", "Select", c.toNormal),
	}
}

// tabFocusKeys returns the keys for moving between tabs. Stock keymaps bind
// all four arrows to previous/next tab; normalization then pairs ← with a
// letter key, so when both ← and → are bound they are shown together.
func tabFocusKeys(c hintContext) []input.Key {
	prevNext := [][]input.Action{seq(input.GoToPreviousTab), seq(input.GoToNextTab)}
	full := keytable.KeyGroup(c.raw, prevNext...)
	if slices.Contains(full, input.Left) && slices.Contains(full, input.Right) {
		return []input.Key{input.Left, input.Right}
	}
	return c.group(prevNext...)
}

func tabHints(c hintContext) []HintEntry {
	return []HintEntry{
		hint("Move focus", "Move", tabFocusKeys(c)),
		hint("New", "New", c.key(input.NewTab, toNormal)),
		hint("Close", "Close", c.key(input.CloseTab, toNormal)),
		hint("Rename", "Rename", c.key(input.SwitchToMode(input.ModeRenameTab), input.TabNameInput(0))),
		hint("Sync", "Sync", c.key(input.ToggleActiveSyncTab, toNormal)),
		hint("Toggle", "Toggle", c.key(input.ToggleTab)),
		hint("Select pane", "Select", c.toNormal),
	}
}

func resizeHints(c hintContext) []HintEntry {
	increase := func(d input.Direction) input.Action { return input.ResizePane(input.Increase, d) }
	decrease := func(d input.Direction) input.Action { return input.ResizePane(input.Decrease, d) }
	return []HintEntry{
		hint("Increase to", "Increase", c.directions(increase)),
		hint("Decrease from", "Decrease", c.directions(decrease)),
		hint("Increase/Decrease size", "Increase/Decrease", c.group(
			seq(input.ResizePane(input.Increase, input.DirNone)),
			seq(input.ResizePane(input.Decrease, input.DirNone)),
		)),
		hint("Select pane", "Select", c.toNormal),
	}
}

func moveHints(c hintContext) []HintEntry {
	return []HintEntry{
		hint("Move", "Move", c.directions(input.MovePane)),
		hint("Next pane", "Next", c.key(input.MovePane(input.DirNone))),
		hint("Previous pane", "Previous", c.key(input.MovePaneBackwards)),
	}
}

func scrollingHints(c hintContext) []HintEntry {
	return []HintEntry{
		hint("Scroll", "Scroll", c.group(seq(input.ScrollDown), seq(input.ScrollUp))),
		hint("Scroll page", "Scroll", c.group(seq(input.PageScrollDown), seq(input.PageScrollUp))),
		hint("Scroll half page", "Scroll", c.group(seq(input.HalfPageScrollDown), seq(input.HalfPageScrollUp))),
	}
}

func enterSearchTerm(c hintContext) []input.Key {
	return c.key(input.SwitchToMode(input.ModeEnterSearch), input.SearchInput(0))
}

func scrollHints(c hintContext) []HintEntry {
	return append(scrollingHints(c),
		hint("Edit scrollback in default editor", "Edit", c.key(input.EditScrollback, toNormal)),
		hint("Enter search term", "Search", enterSearchTerm(c)),
		hint("Select pane", "Select", c.toNormal),
	)
}

func enterSearchHints(c hintContext) []HintEntry {
	return []HintEntry{
		hint("When done", "Done", c.key(input.SwitchToMode(input.ModeSearch))),
		hint("Cancel", "Cancel", c.key(input.SearchInput(27), input.SwitchToMode(input.ModeScroll))),
	}
}

func searchHints(c hintContext) []HintEntry {
	return append(scrollingHints(c),
		hint("Enter term", "Search", enterSearchTerm(c)),
		hint("Search down", "Down", c.key(input.Search(input.SearchDown))),
		hint("Search up", "Up", c.key(input.Search(input.SearchUp))),
		hint("Case sensitive", "Case", c.key(input.SearchToggleOption(input.CaseSensitivity))),
		hint("Wrap", "Wrap", c.key(input.SearchToggleOption(input.Wrap))),
		hint("Whole words", "Whole", c.key(input.SearchToggleOption(input.WholeWord))),
	)
}

func sessionHints(c hintContext) []HintEntry {
	return []HintEntry{
		hint("Detach", "Detach", c.key(input.Detach)),
		hint("Select pane", "Select", c.toNormal),
	}
}

func tmuxHints(c hintContext) []HintEntry {
	return []HintEntry{
		hint("Move focus", "Move", c.directions(input.MoveFocus, toNormal)),
		hint("Split down", "Down", c.key(input.NewPane(input.DirDown), toNormal)),
		hint("Split right", "Right", c.key(input.NewPane(input.DirRight), toNormal)),
		hint("Fullscreen", "Fullscreen", c.key(input.ToggleFocusFullscreen, toNormal)),
		hint("New tab", "New", c.key(input.NewTab, toNormal)),
		hint("Rename tab", "Rename", c.key(input.SwitchToMode(input.ModeRenameTab), input.TabNameInput(0))),
		hint("Previous Tab", "Previous", c.key(input.GoToPreviousTab, toNormal)),
		hint("Next Tab", "Next", c.key(input.GoToNextTab, toNormal)),
		hint("Select pane", "Select", c.toNormal),
	}
}

func renameHints(c hintContext) []HintEntry {
	return []HintEntry{
		hint("When done", "Done", c.toNormal),
		hint("Select pane", "Select", c.directions(input.MoveFocus)),
	}
}
