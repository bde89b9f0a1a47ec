package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/Gaurav-Gosain/keybar/internal/input"
)

// Keybinding represents a single keybinding entry
type Keybinding struct {
	Key         string
	Description string
}

// KeybindingSection represents the bindings of one mode
type KeybindingSection struct {
	Mode     input.Mode
	Bindings []Keybinding
}

// modeSwitches are the top-level keys bound in every mode that can reach
// another mode directly. Pressing the key of the current mode returns to
// Normal.
var modeSwitches = []struct {
	key  string
	mode input.Mode
}{
	{"ctrl+g", input.ModeLocked},
	{"ctrl+p", input.ModePane},
	{"ctrl+t", input.ModeTab},
	{"ctrl+n", input.ModeResize},
	{"ctrl+h", input.ModeMove},
	{"ctrl+s", input.ModeScroll},
	{"ctrl+o", input.ModeSession},
	{"ctrl+b", input.ModeTmux},
}

// switchingModes get the mode switches and the Alt shortcuts.
var switchingModes = []input.Mode{
	input.ModeNormal,
	input.ModePane,
	input.ModeTab,
	input.ModeResize,
	input.ModeMove,
	input.ModeScroll,
	input.ModeSearch,
	input.ModeSession,
}

const toNormal = "SwitchToMode Normal"

// DefaultKeybindings returns the stock bindings of every mode.
func DefaultKeybindings() KeybindingsConfig {
	kb := KeybindingsConfig{
		"locked": {"ctrl+g": {toNormal}},
		"pane": {
			"h": {"MoveFocus Left"}, "left": {"MoveFocus Left"},
			"l": {"MoveFocus Right"}, "right": {"MoveFocus Right"},
			"j": {"MoveFocus Down"}, "down": {"MoveFocus Down"},
			"k": {"MoveFocus Up"}, "up": {"MoveFocus Up"},
			"p": {"SwitchFocus"},
			"n": {"NewPane", toNormal},
			"d": {"NewPane Down", toNormal},
			"r": {"NewPane Right", toNormal},
			"x": {"CloseFocus", toNormal},
			"f": {"ToggleFocusFullscreen", toNormal},
			"z": {"TogglePaneFrames", toNormal},
			"w": {"ToggleFloatingPanes", toNormal},
			"e": {"TogglePaneEmbedOrFloating", toNormal},
			"c": {"SwitchToMode RenamePane", "PaneNameInput 0"},
		},
		"tab": {
			"h": {"GoToPreviousTab"}, "left": {"GoToPreviousTab"},
			"k": {"GoToPreviousTab"}, "up": {"GoToPreviousTab"},
			"l": {"GoToNextTab"}, "right": {"GoToNextTab"},
			"j": {"GoToNextTab"}, "down": {"GoToNextTab"},
			"n": {"NewTab", toNormal},
			"x": {"CloseTab", toNormal},
			"s": {"ToggleActiveSyncTab", toNormal},
			"r": {"SwitchToMode RenameTab", "TabNameInput 0"},
			"tab": {"ToggleTab"},
		},
		"resize": {
			"h": {"Resize Increase Left"}, "left": {"Resize Increase Left"},
			"j": {"Resize Increase Down"}, "down": {"Resize Increase Down"},
			"k": {"Resize Increase Up"}, "up": {"Resize Increase Up"},
			"l": {"Resize Increase Right"}, "right": {"Resize Increase Right"},
			"H": {"Resize Decrease Left"},
			"J": {"Resize Decrease Down"},
			"K": {"Resize Decrease Up"},
			"L": {"Resize Decrease Right"},
			"=": {"Resize Increase"}, "+": {"Resize Increase"},
			"-": {"Resize Decrease"},
		},
		"move": {
			"n": {"MovePane"}, "tab": {"MovePane"},
			"p": {"MovePaneBackwards"},
			"h": {"MovePane Left"}, "left": {"MovePane Left"},
			"j": {"MovePane Down"}, "down": {"MovePane Down"},
			"k": {"MovePane Up"}, "up": {"MovePane Up"},
			"l": {"MovePane Right"}, "right": {"MovePane Right"},
		},
		"scroll": {
			"e": {"EditScrollback", toNormal},
			"s": {"SwitchToMode EnterSearch", "SearchInput 0"},
			"j": {"ScrollDown"}, "down": {"ScrollDown"},
			"k": {"ScrollUp"}, "up": {"ScrollUp"},
			"ctrl+f": {"PageScrollDown"}, "pagedown": {"PageScrollDown"},
			"ctrl+b": {"PageScrollUp"}, "pageup": {"PageScrollUp"},
			"d": {"HalfPageScrollDown"},
			"u": {"HalfPageScrollUp"},
		},
		"entersearch": {
			"ctrl+c": {toNormal},
			"esc":    {"SearchInput 27", "SwitchToMode Scroll"},
			"enter":  {"SwitchToMode Search"},
		},
		"search": {
			"ctrl+c": {toNormal},
			"j": {"ScrollDown"}, "down": {"ScrollDown"},
			"k": {"ScrollUp"}, "up": {"ScrollUp"},
			"ctrl+f": {"PageScrollDown"}, "pagedown": {"PageScrollDown"},
			"ctrl+b": {"PageScrollUp"}, "pageup": {"PageScrollUp"},
			"d": {"HalfPageScrollDown"},
			"u": {"HalfPageScrollUp"},
			"n": {"Search Down"},
			"p": {"Search Up"},
			"c": {"SearchToggleOption CaseSensitivity"},
			"w": {"SearchToggleOption Wrap"},
			"o": {"SearchToggleOption WholeWord"},
			"s": {"SwitchToMode EnterSearch", "SearchInput 0"},
		},
		"renametab": {
			"ctrl+c": {toNormal},
			"enter":  {toNormal},
			"esc":    {"TabNameInput 27", "SwitchToMode Tab"},
			"left":   {"MoveFocus Left"},
			"down":   {"MoveFocus Down"},
			"up":     {"MoveFocus Up"},
			"right":  {"MoveFocus Right"},
		},
		"renamepane": {
			"ctrl+c": {toNormal},
			"enter":  {toNormal},
			"esc":    {"PaneNameInput 27", "SwitchToMode Pane"},
			"left":   {"MoveFocus Left"},
			"down":   {"MoveFocus Down"},
			"up":     {"MoveFocus Up"},
			"right":  {"MoveFocus Right"},
		},
		"session": {
			"d": {"Detach"},
		},
		"tmux": {
			"[":      {"SwitchToMode Scroll"},
			"\"":     {"NewPane Down", toNormal},
			"%":      {"NewPane Right", toNormal},
			"z":      {"ToggleFocusFullscreen", toNormal},
			"c":      {"NewTab", toNormal},
			",":      {"SwitchToMode RenameTab", "TabNameInput 0"},
			"p":      {"GoToPreviousTab", toNormal},
			"n":      {"GoToNextTab", toNormal},
			"h":      {"MoveFocus Left", toNormal},
			"l":      {"MoveFocus Right", toNormal},
			"j":      {"MoveFocus Down", toNormal},
			"k":      {"MoveFocus Up", toNormal},
			"o":      {"SwitchFocus"},
			"d":      {"Detach"},
			"ctrl+b": {toNormal},
		},
		"prompt": {},
	}

	for _, m := range switchingModes {
		name := strings.ToLower(m.String())
		binds := kb[name]
		if binds == nil {
			binds = make(map[string][]string)
			kb[name] = binds
		}
		for _, sw := range modeSwitches {
			if sw.mode == m {
				binds[sw.key] = []string{toNormal}
			} else if _, taken := binds[sw.key]; !taken {
				binds[sw.key] = []string{"SwitchToMode " + sw.mode.String()}
			}
		}
		binds["ctrl+q"] = []string{"Quit"}
		binds["alt+n"] = []string{"NewPane"}
		binds["alt+h"] = []string{"MoveFocusOrTab Left"}
		binds["alt+l"] = []string{"MoveFocusOrTab Right"}
		binds["alt+j"] = []string{"MoveFocus Down"}
		binds["alt+k"] = []string{"MoveFocus Up"}
		binds["alt+="] = []string{"Resize Increase"}
		binds["alt+-"] = []string{"Resize Decrease"}
		if m != input.ModeNormal {
			for _, k := range []string{"enter", "esc"} {
				if _, taken := binds[k]; !taken {
					binds[k] = []string{toNormal}
				}
			}
		}
	}
	kb["prompt"]["enter"] = []string{toNormal}
	kb["prompt"]["esc"] = []string{toNormal}

	return kb
}

// Keymaps parses the keybindings of cfg into one keymap per mode. Bindings
// are sorted by key, and keys with no actions are left out. Modes without a
// table get an empty keymap.
func Keymaps(kb KeybindingsConfig) (map[input.Mode]input.Keymap, error) {
	out := make(map[input.Mode]input.Keymap, len(input.Modes()))
	for _, m := range input.Modes() {
		out[m] = input.Keymap{}
	}

	for _, modeName := range slices.Sorted(maps.Keys(kb)) {
		mode, err := input.ParseMode(modeName)
		if err != nil {
			return nil, fmt.Errorf("%w: keybindings.%s: %w", ErrInvalidConfig, modeName, err)
		}

		for _, keyName := range slices.Sorted(maps.Keys(kb[modeName])) {
			actionNames := kb[modeName][keyName]
			if len(actionNames) == 0 {
				continue
			}
			key, err := input.ParseKey(keyName)
			if err != nil {
				return nil, fmt.Errorf("%w: keybindings.%s: %w", ErrInvalidConfig, modeName, err)
			}
			actions := make([]input.Action, len(actionNames))
			for i, name := range actionNames {
				if actions[i], err = input.ParseAction(name); err != nil {
					return nil, fmt.Errorf("%w: keybindings.%s.%q: %w", ErrInvalidConfig, modeName, keyName, err)
				}
			}
			out[mode] = append(out[mode], input.Binds(key, actions...))
		}
	}

	for _, km := range out {
		slices.SortStableFunc(km, func(a, b input.Binding) int {
			return a.Key.Compare(b.Key)
		})
	}
	return out, nil
}

// GetKeybindings returns one section per mode, in mode order, for the
// keybinds listing. If only is non-nil, just that mode is returned.
func GetKeybindings(keymaps map[input.Mode]input.Keymap, only *input.Mode) []KeybindingSection {
	var sections []KeybindingSection
	for _, m := range input.Modes() {
		if only != nil && *only != m {
			continue
		}
		section := KeybindingSection{Mode: m}
		for _, b := range keymaps[m] {
			actions := make([]string, len(b.Actions))
			for i, a := range b.Actions {
				actions[i] = a.String()
			}
			section.Bindings = append(section.Bindings, Keybinding{
				Key:         b.Key.Name(),
				Description: strings.Join(actions, "; "),
			})
		}
		sections = append(sections, section)
	}
	return sections
}
