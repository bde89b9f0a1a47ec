package keytable

import (
	"slices"
	"testing"

	"pgregory.net/rapid"

	"github.com/Gaurav-Gosain/keybar/internal/input"
)

var toNormal = input.SwitchToMode(input.ModeNormal)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		km   input.Keymap
		want input.Keymap
	}{
		{
			name: "empty",
			km:   nil,
			want: input.Keymap{},
		},
		{
			name: "sorts by key",
			km: input.Keymap{
				input.Binds(input.Char('x'), input.CloseFocus),
				input.Binds(input.Left, input.MoveFocus(input.DirLeft)),
			},
			want: input.Keymap{
				input.Binds(input.Left, input.MoveFocus(input.DirLeft)),
				input.Binds(input.Char('x'), input.CloseFocus),
			},
		},
		{
			name: "first key after sorting wins",
			km: input.Keymap{
				input.Binds(input.Char('h'), input.MoveFocus(input.DirLeft)),
				input.Binds(input.Left, input.MoveFocus(input.DirLeft)),
			},
			want: input.Keymap{
				input.Binds(input.Left, input.MoveFocus(input.DirLeft)),
			},
		},
		{
			name: "sequences compare exactly",
			km: input.Keymap{
				input.Binds(input.Char('n'), input.NewPane(input.DirNone), toNormal),
				input.Binds(input.Char('p'), input.NewPane(input.DirNone)),
			},
			want: input.Keymap{
				input.Binds(input.Char('n'), input.NewPane(input.DirNone), toNormal),
				input.Binds(input.Char('p'), input.NewPane(input.DirNone)),
			},
		},
		{
			name: "later next-tab binding evicts the kept one",
			km: input.Keymap{
				input.Binds(input.Char('l'), input.GoToNextTab),
				input.Binds(input.Right, input.GoToNextTab),
				input.Binds(input.Left, input.GoToPreviousTab),
				input.Binds(input.Down, input.GoToNextTab),
				input.Binds(input.Char('h'), input.GoToPreviousTab),
			},
			want: input.Keymap{
				input.Binds(input.Left, input.GoToPreviousTab),
				input.Binds(input.Char('l'), input.GoToNextTab),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.km)
			if !got.Equal(tt.want) {
				t.Errorf("Normalize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeDoesNotModifyInput(t *testing.T) {
	km := input.Keymap{
		input.Binds(input.Char('x'), input.CloseFocus),
		input.Binds(input.Char('a'), input.CloseFocus),
	}
	orig := km.Clone()
	Normalize(km)
	if !km.Equal(orig) {
		t.Errorf("Normalize modified its input: %v", km)
	}
}

func TestToNormalKey(t *testing.T) {
	tests := []struct {
		name   string
		km     input.Keymap
		want   input.Key
		wantOK bool
	}{
		{
			name:   "prefers enter",
			km:     input.Keymap{input.Binds(input.Ctrl('p'), toNormal), input.Binds(input.Esc, toNormal), input.Binds(input.Enter, toNormal)},
			want:   input.Enter,
			wantOK: true,
		},
		{
			name:   "first in table order otherwise",
			km:     input.Keymap{input.Binds(input.Esc, toNormal), input.Binds(input.Ctrl('p'), toNormal)},
			want:   input.Esc,
			wantOK: true,
		},
		{
			name:   "ignores longer sequences",
			km:     input.Keymap{input.Binds(input.Char('x'), input.CloseFocus, toNormal)},
			wantOK: false,
		},
		{
			name:   "empty",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToNormalKey(tt.km)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ToNormalKey() = %v, %v, want %v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

// The return key survives even when normalization drops its binding.
func TestToNormalKeyBeforeDedup(t *testing.T) {
	raw := input.Keymap{
		input.Binds(input.Enter, toNormal),
		input.Binds(input.Backspace, toNormal),
	}
	if keys := KeysFor(Normalize(raw), toNormal); !slices.Equal(keys, []input.Key{input.Backspace}) {
		t.Fatalf("normalized keys = %v, want [BACKSPACE]", keys)
	}
	if got, _ := ToNormalKey(raw); got != input.Enter {
		t.Errorf("ToNormalKey() = %v, want ENTER", got)
	}
}

func TestKeyGroupKeepsDeclaredOrder(t *testing.T) {
	km := Normalize(input.Keymap{
		input.Binds(input.Char('h'), input.MoveFocus(input.DirLeft)),
		input.Binds(input.Char('j'), input.MoveFocus(input.DirDown)),
		input.Binds(input.Char('k'), input.MoveFocus(input.DirUp)),
		input.Binds(input.Char('l'), input.MoveFocus(input.DirRight)),
	})
	got := KeyGroup(km,
		[]input.Action{input.MoveFocus(input.DirRight)},
		[]input.Action{input.MoveFocus(input.DirLeft)},
	)
	want := []input.Key{input.Char('l'), input.Char('h')}
	if !slices.Equal(got, want) {
		t.Errorf("KeyGroup() = %v, want %v", got, want)
	}
}

func TestShortcutKeySkipsDefaultReturnKeys(t *testing.T) {
	km := input.Keymap{
		input.Binds(input.Space, toNormal),
		input.Binds(input.Esc, toNormal),
		input.Binds(input.Ctrl('p'), toNormal),
	}
	got, ok := ShortcutKey(km, toNormal)
	if !ok || got != input.Ctrl('p') {
		t.Errorf("ShortcutKey() = %v, %v, want Ctrl+p, true", got, ok)
	}

	if _, ok := ShortcutKey(km[:2], toNormal); ok {
		t.Error("ShortcutKey() found a key among default return keys only")
	}
}

func genKey() *rapid.Generator[input.Key] {
	return rapid.Custom(func(t *rapid.T) input.Key {
		r := rapid.SampledFrom([]rune("ghlnpqst \n")).Draw(t, "rune")
		switch rapid.IntRange(0, 4).Draw(t, "category") {
		case 0:
			return input.Char(r)
		case 1:
			return input.Ctrl(r)
		case 2:
			return input.Alt(r)
		case 3:
			return input.Esc
		default:
			return rapid.SampledFrom([]input.Key{input.Left, input.Right, input.Up, input.Down}).Draw(t, "arrow")
		}
	})
}

func genActions() *rapid.Generator[[]input.Action] {
	pool := []input.Action{
		input.GoToNextTab,
		input.GoToPreviousTab,
		input.Quit,
		input.CloseFocus,
		input.SwitchToMode(input.ModeNormal),
		input.SwitchToMode(input.ModePane),
		input.SwitchToMode(input.ModeTab),
		input.SwitchToMode(input.ModeLocked),
		input.SwitchToMode(input.ModeRenamePane),
		input.MoveFocus(input.DirLeft),
	}
	return rapid.SliceOfN(rapid.SampledFrom(pool), 1, 2)
}

func genKeymap() *rapid.Generator[input.Keymap] {
	return rapid.Custom(func(t *rapid.T) input.Keymap {
		n := rapid.IntRange(0, 16).Draw(t, "n")
		km := make(input.Keymap, n)
		for i := range km {
			km[i] = input.Binding{Key: genKey().Draw(t, "key"), Actions: genActions().Draw(t, "actions")}
		}
		return km
	})
}

func TestNormalizeIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		km := genKeymap().Draw(t, "keymap")
		once := Normalize(km)
		twice := Normalize(once)
		if !once.Equal(twice) {
			t.Fatalf("Normalize not idempotent:\nonce:  %v\ntwice: %v", once, twice)
		}
	})
}

func TestNormalizeUniqueSequences(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		km := Normalize(genKeymap().Draw(t, "keymap"))
		for i := range km {
			for j := i + 1; j < len(km); j++ {
				if slices.Equal(km[i].Actions, km[j].Actions) {
					t.Fatalf("sequence %v kept twice: %v and %v", km[i].Actions, km[i].Key, km[j].Key)
				}
			}
		}
		if !slices.IsSortedFunc(km, func(a, b input.Binding) int { return a.Key.Compare(b.Key) }) {
			t.Fatalf("Normalize() result not sorted: %v", km)
		}
	})
}
