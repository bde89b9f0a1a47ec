package keytable

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/Gaurav-Gosain/keybar/internal/input"
)

func TestSuperkey(t *testing.T) {
	pane := input.SwitchToMode(input.ModePane)
	locked := input.SwitchToMode(input.ModeLocked)

	tests := []struct {
		name   string
		km     input.Keymap
		want   string
		wantOK bool
	}{
		{
			name: "empty table",
		},
		{
			name: "all ctrl",
			km: input.Keymap{
				input.Binds(input.Ctrl('g'), locked),
				input.Binds(input.Ctrl('p'), pane),
				input.Binds(input.Ctrl('q'), input.Quit),
			},
			want:   "Ctrl",
			wantOK: true,
		},
		{
			name: "all alt",
			km: input.Keymap{
				input.Binds(input.Alt('p'), pane),
			},
			want:   "Alt",
			wantOK: true,
		},
		{
			name: "mixed modifiers",
			km: input.Keymap{
				input.Binds(input.Ctrl('g'), locked),
				input.Binds(input.Alt('p'), pane),
			},
		},
		{
			name: "default return keys are ignored",
			km: input.Keymap{
				input.Binds(input.Ctrl('p'), pane),
				input.Binds(input.Enter, toNormal),
				input.Binds(input.Esc, toNormal),
				input.Binds(input.Space, toNormal),
			},
			want:   "Ctrl",
			wantOK: true,
		},
		{
			name: "unmodified shortcuts are excluded",
			km: input.Keymap{
				input.Binds(input.Ctrl('p'), pane),
				input.Binds(input.Char('p'), toNormal),
			},
			want:   "Ctrl",
			wantOK: true,
		},
		{
			name: "only the first action counts",
			km: input.Keymap{
				input.Binds(input.Ctrl('p'), pane),
				input.Binds(input.Alt('n'), input.NewPane(input.DirNone), toNormal),
				input.Binds(input.Alt('r'), input.SwitchToMode(input.ModeRenamePane), input.PaneNameInput(0)),
			},
			want:   "Ctrl",
			wantOK: true,
		},
		{
			name: "tmux mode qualifies",
			km: input.Keymap{
				input.Binds(input.Ctrl('p'), pane),
				input.Binds(input.Alt('b'), input.SwitchToMode(input.ModeTmux)),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Superkey(tt.km)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Superkey() = %q, %v, want %q, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSuperkeyPrefix(t *testing.T) {
	if got := SuperkeyPrefix("Ctrl", false); got != " Ctrl +" {
		t.Errorf("SuperkeyPrefix(Ctrl, false) = %q", got)
	}
	if got := SuperkeyPrefix("Alt", true); got != " Alt + " {
		t.Errorf("SuperkeyPrefix(Alt, true) = %q", got)
	}
}

// A superkey is reported exactly when the classified shortcuts agree.
func TestSuperkeyUnanimity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		km := genKeymap().Draw(t, "keymap")

		classes := map[string]bool{}
		for _, b := range km {
			if qualifies(b) && b.Key.Modifier() != "" {
				classes[b.Key.Modifier()] = true
			}
		}

		label, ok := Superkey(km)
		switch len(classes) {
		case 0:
			if ok {
				t.Fatalf("Superkey() = %q with no modified shortcut", label)
			}
		case 1:
			if !ok || !classes[label] {
				t.Fatalf("Superkey() = %q, %v, want the single class %v", label, ok, classes)
			}
		default:
			if ok {
				t.Fatalf("Superkey() = %q for mixed classes %v", label, classes)
			}
		}
	})
}
