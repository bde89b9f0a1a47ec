package input

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestFromTea(t *testing.T) {
	tests := []struct {
		name   string
		key    tea.KeyPressMsg
		want   Key
		wantOK bool
	}{
		{name: "plain letter", key: tea.KeyPressMsg{Code: 'g', Text: "g"}, want: Char('g'), wantOK: true},
		{name: "shifted letter uses text", key: tea.KeyPressMsg{Code: 'g', Text: "G", Mod: tea.ModShift}, want: Char('G'), wantOK: true},
		{name: "ctrl letter", key: tea.KeyPressMsg{Code: 'g', Mod: tea.ModCtrl}, want: Ctrl('g'), wantOK: true},
		{name: "ctrl upper folds to lower", key: tea.KeyPressMsg{Code: 'G', Mod: tea.ModCtrl}, want: Ctrl('g'), wantOK: true},
		{name: "alt letter", key: tea.KeyPressMsg{Code: 'n', Mod: tea.ModAlt}, want: Alt('n'), wantOK: true},
		{name: "enter", key: tea.KeyPressMsg{Code: tea.KeyEnter}, want: Enter, wantOK: true},
		{name: "escape", key: tea.KeyPressMsg{Code: tea.KeyEscape}, want: Esc, wantOK: true},
		{name: "tab", key: tea.KeyPressMsg{Code: tea.KeyTab}, want: Char('\t'), wantOK: true},
		{name: "shift tab", key: tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}, want: BackTab, wantOK: true},
		{name: "left arrow", key: tea.KeyPressMsg{Code: tea.KeyLeft}, want: Left, wantOK: true},
		{name: "page down", key: tea.KeyPressMsg{Code: tea.KeyPgDown}, want: PageDown, wantOK: true},
		{name: "f5", key: tea.KeyPressMsg{Code: tea.KeyF5}, want: F(5), wantOK: true},
		{name: "ctrl escape has no key", key: tea.KeyPressMsg{Code: 0x1f, Mod: tea.ModCtrl}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromTea(tt.key.Key())
			if ok != tt.wantOK {
				t.Fatalf("FromTea() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("FromTea() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToTeaRoundTrip(t *testing.T) {
	keys := []Key{
		Backspace, Left, Right, Up, Down, Home, End, PageUp, PageDown,
		BackTab, Delete, Insert, Esc, Enter, Space, Char('\t'),
		Char('x'), Char('['), Ctrl('g'), Alt('n'), F(1), F(12),
	}
	for _, k := range keys {
		t.Run(k.Name(), func(t *testing.T) {
			got, ok := FromTea(ToTea(k).Key())
			if !ok {
				t.Fatalf("FromTea(ToTea(%v)) not ok", k)
			}
			if got != k {
				t.Errorf("FromTea(ToTea(%v)) = %v", k, got)
			}
		})
	}
}
