package input

import (
	"unicode"
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"
)

// FromTea converts a key press reported by the terminal into a Key. It
// returns false for presses that have no Key equivalent, such as bare
// modifier keys or function keys above F24.
func FromTea(k tea.Key) (Key, bool) {
	switch k.Code {
	case tea.KeyEnter:
		return Enter, true
	case tea.KeyTab:
		if k.Mod&tea.ModShift != 0 {
			return BackTab, true
		}
		return Char('\t'), true
	case tea.KeySpace:
		if k.Mod&tea.ModCtrl != 0 {
			return Ctrl(' '), true
		}
		return Space, true
	case tea.KeyEscape:
		return Esc, true
	case tea.KeyBackspace:
		return Backspace, true
	case tea.KeyLeft:
		return Left, true
	case tea.KeyRight:
		return Right, true
	case tea.KeyUp:
		return Up, true
	case tea.KeyDown:
		return Down, true
	case tea.KeyHome:
		return Home, true
	case tea.KeyEnd:
		return End, true
	case tea.KeyPgUp:
		return PageUp, true
	case tea.KeyPgDown:
		return PageDown, true
	case tea.KeyDelete:
		return Delete, true
	case tea.KeyInsert:
		return Insert, true
	}

	if n, ok := functionKeys[k.Code]; ok {
		return F(n), true
	}

	switch {
	case k.Mod&tea.ModCtrl != 0:
		if !unicode.IsPrint(k.Code) {
			return Key{}, false
		}
		return Ctrl(unicode.ToLower(k.Code)), true
	case k.Mod&tea.ModAlt != 0:
		if !unicode.IsPrint(k.Code) {
			return Key{}, false
		}
		if k.Text != "" {
			r, _ := utf8.DecodeRuneInString(k.Text)
			return Alt(r), true
		}
		return Alt(k.Code), true
	}

	// Text carries the shifted character ("G" for shift+g).
	if k.Text != "" {
		r, _ := utf8.DecodeRuneInString(k.Text)
		return Char(r), true
	}
	if unicode.IsPrint(k.Code) {
		return Char(k.Code), true
	}
	return Key{}, false
}

var functionKeys = map[rune]uint8{
	tea.KeyF1:  1,
	tea.KeyF2:  2,
	tea.KeyF3:  3,
	tea.KeyF4:  4,
	tea.KeyF5:  5,
	tea.KeyF6:  6,
	tea.KeyF7:  7,
	tea.KeyF8:  8,
	tea.KeyF9:  9,
	tea.KeyF10: 10,
	tea.KeyF11: 11,
	tea.KeyF12: 12,
}

// ToTea is the inverse of FromTea, used to replay keys into the host.
func ToTea(k Key) tea.KeyPressMsg {
	switch k.Kind {
	case KindBackspace:
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case KindLeft:
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case KindRight:
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case KindUp:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case KindDown:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case KindHome:
		return tea.KeyPressMsg{Code: tea.KeyHome}
	case KindEnd:
		return tea.KeyPressMsg{Code: tea.KeyEnd}
	case KindPageUp:
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case KindPageDown:
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case KindBackTab:
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case KindDelete:
		return tea.KeyPressMsg{Code: tea.KeyDelete}
	case KindInsert:
		return tea.KeyPressMsg{Code: tea.KeyInsert}
	case KindF:
		for code, n := range functionKeys {
			if n == k.N {
				return tea.KeyPressMsg{Code: code}
			}
		}
	case KindChar:
		switch k.Rune {
		case '\n':
			return tea.KeyPressMsg{Code: tea.KeyEnter}
		case '\t':
			return tea.KeyPressMsg{Code: tea.KeyTab}
		case ' ':
			return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
		}
		return tea.KeyPressMsg{Code: k.Rune, Text: string(k.Rune)}
	case KindCtrl:
		return tea.KeyPressMsg{Code: k.Rune, Mod: tea.ModCtrl}
	case KindAlt:
		return tea.KeyPressMsg{Code: k.Rune, Mod: tea.ModAlt}
	case KindEsc:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	}
	return tea.KeyPressMsg{}
}
