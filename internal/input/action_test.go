package input

import (
	"errors"
	"slices"
	"testing"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		input string
		want  Action
	}{
		{"SwitchToMode Pane", SwitchToMode(ModePane)},
		{"switchtomode normal", SwitchToMode(ModeNormal)},
		{"Quit", Quit},
		{"MoveFocus Left", MoveFocus(DirLeft)},
		{"MoveFocusOrTab Right", MoveFocusOrTab(DirRight)},
		{"NewPane", NewPane(DirNone)},
		{"NewPane Down", NewPane(DirDown)},
		{"MovePane", MovePane(DirNone)},
		{"Resize Increase", ResizePane(Increase, DirNone)},
		{"Resize Decrease Up", ResizePane(Decrease, DirUp)},
		{"Resize + Left", ResizePane(Increase, DirLeft)},
		{"PaneNameInput 0", PaneNameInput(0)},
		{"SearchInput 27", SearchInput(27)},
		{"Search Up", Search(SearchUp)},
		{"SearchToggleOption WholeWord", SearchToggleOption(WholeWord)},
		{"GoToNextTab", GoToNextTab},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAction(tt.input)
			if err != nil {
				t.Fatalf("ParseAction(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseAction(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseActionErrors(t *testing.T) {
	inputs := []string{
		"",
		"Teleport",
		"SwitchToMode",
		"SwitchToMode Nowhere",
		"MoveFocus",
		"MoveFocus Sideways",
		"Resize Sideways",
		"Quit now",
		"SearchInput 300",
		"SearchToggleOption Fuzzy",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			if _, err := ParseAction(input); !errors.Is(err, ErrUnknownAction) {
				t.Errorf("ParseAction(%q) error = %v, want ErrUnknownAction", input, err)
			}
		})
	}
}

// Every kind must have a name, otherwise String/ParseAction silently lose it.
func TestActionKindsNamed(t *testing.T) {
	seen := map[string]bool{}
	for _, k := range ActionKinds() {
		name := k.String()
		if name == "" {
			t.Errorf("ActionKind(%d) has no name", int(k))
		}
		if seen[name] {
			t.Errorf("duplicate action name %q", name)
		}
		seen[name] = true
	}
}

func TestActionStringRoundTrip(t *testing.T) {
	actions := []Action{
		SwitchToMode(ModeRenamePane), Quit, Detach, MoveFocus(DirUp),
		ResizePane(Decrease, DirNone), ResizePane(Increase, DirRight),
		MovePane(DirLeft), MovePaneBackwards, NewPane(DirRight), CloseFocus,
		TabNameInput(0), SearchInput(27), Search(SearchDown),
		SearchToggleOption(CaseSensitivity), HalfPageScrollUp, EditScrollback,
	}

	for _, a := range actions {
		t.Run(a.String(), func(t *testing.T) {
			got, err := ParseAction(a.String())
			if err != nil {
				t.Fatalf("ParseAction(%q): %v", a.String(), err)
			}
			if got != a {
				t.Errorf("ParseAction(%q) = %+v, want %+v", a.String(), got, a)
			}
		})
	}
}

func TestBindingDoes(t *testing.T) {
	b := Binds(Char('n'), NewPane(DirNone), SwitchToMode(ModeNormal))

	if !b.Does(NewPane(DirNone), SwitchToMode(ModeNormal)) {
		t.Error("Does() = false for the exact sequence")
	}
	if b.Does(NewPane(DirNone)) {
		t.Error("Does() = true for a prefix of the sequence")
	}
	if b.Does(NewPane(DirDown), SwitchToMode(ModeNormal)) {
		t.Error("Does() = true for a sequence with different parameters")
	}
}

func TestKeymapClone(t *testing.T) {
	km := Keymap{Binds(Char('x'), CloseFocus)}
	clone := km.Clone()
	clone[0].Actions[0] = Quit

	if !slices.Equal(km[0].Actions, []Action{CloseFocus}) {
		t.Errorf("Clone shares actions with the original: %v", km[0].Actions)
	}
	if km.Equal(clone) {
		t.Error("Equal() = true after diverging")
	}
}
