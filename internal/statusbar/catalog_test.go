package statusbar

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/Gaurav-Gosain/keybar/internal/input"
	"github.com/Gaurav-Gosain/keybar/internal/keytable"
)

// Every mode must say which shortcut it highlights, if any.
func TestModeTargetsExhaustive(t *testing.T) {
	for _, m := range input.Modes() {
		_, targeted := modeTargets[m]
		if targeted == untargetedModes[m] {
			t.Errorf("mode %v must be in exactly one of modeTargets and untargetedModes", m)
		}
	}
}

func TestCatalogNormal(t *testing.T) {
	entries := Catalog(input.ModeNormal, scenarioKeymap())

	if len(entries) != len(catalogOrder) {
		t.Fatalf("len(Catalog()) = %d, want %d", len(entries), len(catalogOrder))
	}

	for i, e := range entries {
		if e.Target != catalogOrder[i] {
			t.Errorf("entry %d target = %v, want %v", i, e.Target, catalogOrder[i])
		}
		wantEmphasis := Unselected
		if i%2 == 1 {
			wantEmphasis = UnselectedAlternate
		}
		if e.Emphasis != wantEmphasis {
			t.Errorf("entry %v emphasis = %v, want %v", e.Target, e.Emphasis, wantEmphasis)
		}
	}

	wantKeys := map[Target]input.Key{
		TargetLock: input.Ctrl('g'),
		TargetPane: input.Ctrl('p'),
		TargetQuit: input.Ctrl('q'),
	}
	for _, e := range entries {
		want, ok := wantKeys[e.Target]
		if e.HasKey != ok || (ok && e.Key != want) {
			t.Errorf("entry %v key = %v (%v), want %v (%v)", e.Target, e.Key, e.HasKey, want, ok)
		}
	}
}

// Missing keys must not shift the alternating colors of later entries.
func TestCatalogParityIndependentOfKeys(t *testing.T) {
	empty := Catalog(input.ModeNormal, nil)
	full := Catalog(input.ModeNormal, scenarioKeymap())
	for i := range empty {
		if empty[i].Parity != full[i].Parity || empty[i].Emphasis != full[i].Emphasis {
			t.Errorf("entry %v: parity/emphasis differ between empty and full keymaps", empty[i].Target)
		}
	}
}

func TestCatalogSelectedMode(t *testing.T) {
	tests := []struct {
		mode input.Mode
		want Target
	}{
		{input.ModePane, TargetPane},
		{input.ModeRenamePane, TargetPane},
		{input.ModeRenameTab, TargetTab},
		{input.ModeEnterSearch, TargetSearch},
		{input.ModeScroll, TargetScroll},
		{input.ModeLocked, TargetLock},
	}

	km := append(scenarioKeymap(), input.Binds(enter, normal), input.Binds(input.Esc, normal))
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			for _, e := range Catalog(tt.mode, km) {
				if e.Target == tt.want {
					if e.Emphasis != Selected {
						t.Errorf("%v emphasis = %v, want selected", e.Target, e.Emphasis)
					}
					if !e.HasKey || e.Key != enter {
						t.Errorf("%v key = %v, want ENTER", e.Target, e.Key)
					}
				} else if e.Emphasis != Disabled {
					t.Errorf("%v emphasis = %v, want disabled", e.Target, e.Emphasis)
				}
			}
		})
	}
}

func TestCatalogExcludesDefaultReturnKeys(t *testing.T) {
	km := input.Keymap{input.Binds(input.Space, switchTo(input.ModePane))}
	for _, e := range Catalog(input.ModeNormal, km) {
		if e.HasKey {
			t.Errorf("entry %v has key %v, want none", e.Target, e.Key)
		}
	}
}

// Outside Normal-like modes at most one entry is selected, and it carries
// the return key.
func TestCatalogModeExclusivity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		mode := genMode().Draw(t, "mode")
		raw := genKeymap().Draw(t, "keymap")
		entries := Catalog(mode, raw)

		selected := 0
		for _, e := range entries {
			if e.Emphasis != Selected {
				continue
			}
			selected++
			toNormal, ok := keytable.ToNormalKey(raw)
			if e.HasKey != ok || (ok && e.Key != toNormal) {
				t.Fatalf("selected %v key = %v, want return key %v", e.Target, e.Key, toNormal)
			}
		}

		if untargetedModes[mode] {
			if selected != 0 {
				t.Fatalf("mode %v selected %d entries", mode, selected)
			}
			for _, e := range entries {
				if e.Emphasis == Disabled {
					t.Fatalf("mode %v disabled %v", mode, e.Target)
				}
			}
			return
		}
		if selected != 1 {
			t.Fatalf("mode %v selected %d entries, want 1", mode, selected)
		}
	})
}
