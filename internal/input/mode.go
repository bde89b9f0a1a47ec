package input

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned when a mode name cannot be parsed.
var ErrUnknownMode = errors.New("unknown mode")

// Mode is the multiplexer's current input mode.
type Mode int

const (
	// ModeNormal passes keys to the focused pane except the mode switches.
	ModeNormal Mode = iota
	// ModeLocked passes every key through except the unlock key.
	ModeLocked
	ModeResize
	ModePane
	ModeTab
	ModeScroll
	// ModeEnterSearch collects the search term typed by the user.
	ModeEnterSearch
	ModeSearch
	ModeRenameTab
	ModeRenamePane
	ModeSession
	ModeMove
	// ModePrompt is a transient mode used by host prompts.
	ModePrompt
	// ModeTmux emulates the tmux prefix key.
	ModeTmux
)

var modeNames = [...]string{
	ModeNormal:      "Normal",
	ModeLocked:      "Locked",
	ModeResize:      "Resize",
	ModePane:        "Pane",
	ModeTab:         "Tab",
	ModeScroll:      "Scroll",
	ModeEnterSearch: "EnterSearch",
	ModeSearch:      "Search",
	ModeRenameTab:   "RenameTab",
	ModeRenamePane:  "RenamePane",
	ModeSession:     "Session",
	ModeMove:        "Move",
	ModePrompt:      "Prompt",
	ModeTmux:        "Tmux",
}

// Modes returns every mode in declaration order.
func Modes() []Mode {
	modes := make([]Mode, len(modeNames))
	for i := range modeNames {
		modes[i] = Mode(i)
	}
	return modes
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode parses a mode name case-insensitively.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if strings.EqualFold(name, s) {
			return Mode(i), nil
		}
	}
	return ModeNormal, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
