// Package input defines the keystroke, mode and action vocabulary shared by
// the keybinding table, the status bar and the demo host.
package input

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrUnknownKey is returned when a key name cannot be parsed.
var ErrUnknownKey = errors.New("unknown key")

// KeyKind classifies a keystroke. The declaration order is the sort order of
// keys: all backspaces sort before all arrows, arrows before function keys and
// so on.
type KeyKind uint8

const (
	KindBackspace KeyKind = iota
	KindLeft
	KindRight
	KindUp
	KindDown
	KindHome
	KindEnd
	KindPageUp
	KindPageDown
	KindBackTab
	KindDelete
	KindInsert
	KindF
	KindChar
	KindAlt
	KindCtrl
	KindNull
	KindEsc
)

// Key is a single keystroke. Rune carries the payload of Char, Alt and Ctrl
// keys, N the number of a function key.
type Key struct {
	Kind KeyKind
	Rune rune
	N    uint8
}

// Payload-free keys.
var (
	Backspace = Key{Kind: KindBackspace}
	Left      = Key{Kind: KindLeft}
	Right     = Key{Kind: KindRight}
	Up        = Key{Kind: KindUp}
	Down      = Key{Kind: KindDown}
	Home      = Key{Kind: KindHome}
	End       = Key{Kind: KindEnd}
	PageUp    = Key{Kind: KindPageUp}
	PageDown  = Key{Kind: KindPageDown}
	BackTab   = Key{Kind: KindBackTab}
	Delete    = Key{Kind: KindDelete}
	Insert    = Key{Kind: KindInsert}
	Null      = Key{Kind: KindNull}
	Esc       = Key{Kind: KindEsc}
	Enter     = Char('\n')
	Space     = Char(' ')
)

// Char returns an unmodified character key.
func Char(r rune) Key { return Key{Kind: KindChar, Rune: r} }

// Ctrl returns a control-modified character key.
func Ctrl(r rune) Key { return Key{Kind: KindCtrl, Rune: r} }

// Alt returns an alt-modified character key.
func Alt(r rune) Key { return Key{Kind: KindAlt, Rune: r} }

// F returns the n-th function key.
func F(n uint8) Key { return Key{Kind: KindF, N: n} }

// Compare orders keys by kind, then by payload.
func (k Key) Compare(o Key) int {
	if c := cmp.Compare(k.Kind, o.Kind); c != 0 {
		return c
	}
	if c := cmp.Compare(k.Rune, o.Rune); c != 0 {
		return c
	}
	return cmp.Compare(k.N, o.N)
}

// IsDefaultReturn reports whether k is one of the keys every mode binds back
// to Normal (space, enter and escape). Such keys never stand for a mode.
func (k Key) IsDefaultReturn() bool {
	return k == Space || k == Enter || k == Esc
}

// Modifier returns "Ctrl" or "Alt" for modified keys and "" otherwise.
func (k Key) Modifier() string {
	switch k.Kind {
	case KindCtrl:
		return "Ctrl"
	case KindAlt:
		return "Alt"
	default:
		return ""
	}
}

// Unmodified returns the display text of k with its modifier removed.
func (k Key) Unmodified() string {
	switch k.Kind {
	case KindCtrl, KindAlt:
		return Char(k.Rune).String()
	default:
		return k.String()
	}
}

// String returns the text shown for k in the status bar.
func (k Key) String() string {
	switch k.Kind {
	case KindBackspace:
		return "BACKSPACE"
	case KindLeft:
		return "←"
	case KindRight:
		return "→"
	case KindUp:
		return "↑"
	case KindDown:
		return "↓"
	case KindHome:
		return "HOME"
	case KindEnd:
		return "END"
	case KindPageUp:
		return "PgUp"
	case KindPageDown:
		return "PgDn"
	case KindBackTab:
		return "TAB"
	case KindDelete:
		return "DEL"
	case KindInsert:
		return "INS"
	case KindF:
		return "F" + strconv.Itoa(int(k.N))
	case KindChar:
		switch k.Rune {
		case '\n':
			return "ENTER"
		case '\t':
			return "TAB"
		case ' ':
			return "SPACE"
		}
		return string(k.Rune)
	case KindAlt:
		return "Alt+" + string(k.Rune)
	case KindCtrl:
		return "Ctrl+" + string(k.Rune)
	case KindNull:
		return "NULL"
	case KindEsc:
		return "ESC"
	}
	return "??"
}

var namedKeys = map[string]Key{
	"backspace": Backspace,
	"left":      Left,
	"right":     Right,
	"up":        Up,
	"down":      Down,
	"home":      Home,
	"end":       End,
	"pageup":    PageUp,
	"pgup":      PageUp,
	"pagedown":  PageDown,
	"pgdn":      PageDown,
	"backtab":   BackTab,
	"shift+tab": BackTab,
	"delete":    Delete,
	"del":       Delete,
	"insert":    Insert,
	"ins":       Insert,
	"null":      Null,
	"esc":       Esc,
	"escape":    Esc,
	"enter":     Enter,
	"space":     Space,
	"tab":       Char('\t'),
}

// Name returns the configuration spelling of k, which ParseKey accepts.
func (k Key) Name() string {
	switch k.Kind {
	case KindBackspace:
		return "backspace"
	case KindLeft:
		return "left"
	case KindRight:
		return "right"
	case KindUp:
		return "up"
	case KindDown:
		return "down"
	case KindHome:
		return "home"
	case KindEnd:
		return "end"
	case KindPageUp:
		return "pageup"
	case KindPageDown:
		return "pagedown"
	case KindBackTab:
		return "backtab"
	case KindDelete:
		return "delete"
	case KindInsert:
		return "insert"
	case KindF:
		return "f" + strconv.Itoa(int(k.N))
	case KindChar:
		switch k.Rune {
		case '\n':
			return "enter"
		case '\t':
			return "tab"
		case ' ':
			return "space"
		}
		return string(k.Rune)
	case KindAlt:
		return "alt+" + string(k.Rune)
	case KindCtrl:
		return "ctrl+" + string(k.Rune)
	case KindNull:
		return "null"
	case KindEsc:
		return "esc"
	}
	return ""
}

// ParseKey parses key names such as "ctrl+g", "Alt n", "f1", "enter" or a
// single character.
func ParseKey(s string) (Key, error) {
	if s == "" {
		return Key{}, fmt.Errorf("%w: empty key", ErrUnknownKey)
	}
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return Char(r), nil
	}

	lower := strings.ToLower(s)
	if k, ok := namedKeys[lower]; ok {
		return k, nil
	}

	for _, mod := range []string{"ctrl", "alt"} {
		if !strings.HasPrefix(lower, mod) || len(s) < len(mod)+2 {
			continue
		}
		switch s[len(mod)] {
		case '+', '-', ' ':
		default:
			continue
		}
		rest := s[len(mod)+1:]
		if utf8.RuneCountInString(rest) != 1 {
			if named, ok := namedKeys[strings.ToLower(rest)]; ok && named.Kind == KindChar {
				rest = string(named.Rune)
			} else {
				return Key{}, fmt.Errorf("%w: %q", ErrUnknownKey, s)
			}
		}
		r, _ := utf8.DecodeRuneInString(rest)
		if mod == "ctrl" {
			// Terminals cannot tell ctrl+P from ctrl+p.
			return Ctrl(unicode.ToLower(r)), nil
		}
		return Alt(r), nil
	}

	if num, ok := strings.CutPrefix(lower, "f"); ok {
		n, err := strconv.Atoi(num)
		if err == nil && n >= 1 && n <= 24 {
			return F(uint8(n)), nil
		}
	}

	return Key{}, fmt.Errorf("%w: %q", ErrUnknownKey, s)
}
