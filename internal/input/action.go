package input

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ErrUnknownAction is returned when an action cannot be parsed.
var ErrUnknownAction = errors.New("unknown action")

// ActionKind identifies a host-level effect.
type ActionKind int

const (
	ActSwitchToMode ActionKind = iota
	ActQuit
	ActDetach
	ActMoveFocus
	ActMoveFocusOrTab
	ActResize
	ActMovePane
	ActMovePaneBackwards
	ActNewPane
	ActCloseFocus
	ActToggleFocusFullscreen
	ActTogglePaneFrames
	ActToggleFloatingPanes
	ActTogglePaneEmbedOrFloating
	ActSwitchFocus
	ActPaneNameInput
	ActTabNameInput
	ActNewTab
	ActCloseTab
	ActGoToNextTab
	ActGoToPreviousTab
	ActToggleActiveSyncTab
	ActToggleTab
	ActScrollUp
	ActScrollDown
	ActPageScrollUp
	ActPageScrollDown
	ActHalfPageScrollUp
	ActHalfPageScrollDown
	ActEditScrollback
	ActSearchInput
	ActSearch
	ActSearchToggleOption
)

var actionNames = [...]string{
	ActSwitchToMode:              "SwitchToMode",
	ActQuit:                      "Quit",
	ActDetach:                    "Detach",
	ActMoveFocus:                 "MoveFocus",
	ActMoveFocusOrTab:            "MoveFocusOrTab",
	ActResize:                    "Resize",
	ActMovePane:                  "MovePane",
	ActMovePaneBackwards:         "MovePaneBackwards",
	ActNewPane:                   "NewPane",
	ActCloseFocus:                "CloseFocus",
	ActToggleFocusFullscreen:     "ToggleFocusFullscreen",
	ActTogglePaneFrames:          "TogglePaneFrames",
	ActToggleFloatingPanes:       "ToggleFloatingPanes",
	ActTogglePaneEmbedOrFloating: "TogglePaneEmbedOrFloating",
	ActSwitchFocus:               "SwitchFocus",
	ActPaneNameInput:             "PaneNameInput",
	ActTabNameInput:              "TabNameInput",
	ActNewTab:                    "NewTab",
	ActCloseTab:                  "CloseTab",
	ActGoToNextTab:               "GoToNextTab",
	ActGoToPreviousTab:           "GoToPreviousTab",
	ActToggleActiveSyncTab:       "ToggleActiveSyncTab",
	ActToggleTab:                 "ToggleTab",
	ActScrollUp:                  "ScrollUp",
	ActScrollDown:                "ScrollDown",
	ActPageScrollUp:              "PageScrollUp",
	ActPageScrollDown:            "PageScrollDown",
	ActHalfPageScrollUp:          "HalfPageScrollUp",
	ActHalfPageScrollDown:        "HalfPageScrollDown",
	ActEditScrollback:            "EditScrollback",
	ActSearchInput:               "SearchInput",
	ActSearch:                    "Search",
	ActSearchToggleOption:        "SearchToggleOption",
}

// ActionKinds returns every action kind in declaration order.
func ActionKinds() []ActionKind {
	kinds := make([]ActionKind, len(actionNames))
	for i := range actionNames {
		kinds[i] = ActionKind(i)
	}
	return kinds
}

func (k ActionKind) String() string {
	if k < 0 || int(k) >= len(actionNames) {
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
	return actionNames[k]
}

// Direction is an optional pane direction. DirNone means "unspecified".
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

var directionNames = [...]string{"", "Left", "Right", "Up", "Down"}

func (d Direction) String() string { return directionNames[d] }

// ResizeStrategy tells a resize action whether to grow or shrink.
type ResizeStrategy int

const (
	Increase ResizeStrategy = iota
	Decrease
)

func (r ResizeStrategy) String() string {
	if r == Decrease {
		return "Decrease"
	}
	return "Increase"
}

// SearchDirection is the direction of a search step.
type SearchDirection int

const (
	SearchDown SearchDirection = iota
	SearchUp
)

func (s SearchDirection) String() string {
	if s == SearchUp {
		return "Up"
	}
	return "Down"
}

// SearchOption is a toggleable search flag.
type SearchOption int

const (
	CaseSensitivity SearchOption = iota
	WholeWord
	Wrap
)

var searchOptionNames = [...]string{"CaseSensitivity", "WholeWord", "Wrap"}

func (o SearchOption) String() string { return searchOptionNames[o] }

// Action is one host-level effect. Two actions are equal iff their kind and
// every parameter match, so Action is compared with ==.
type Action struct {
	Kind   ActionKind
	Mode   Mode
	Dir    Direction
	Resize ResizeStrategy
	Search SearchDirection
	Option SearchOption
	// Input holds the raw bytes of the *NameInput and SearchInput actions.
	Input string
}

// Parameterless actions.
var (
	Quit                      = Action{Kind: ActQuit}
	Detach                    = Action{Kind: ActDetach}
	MovePaneBackwards         = Action{Kind: ActMovePaneBackwards}
	CloseFocus                = Action{Kind: ActCloseFocus}
	ToggleFocusFullscreen     = Action{Kind: ActToggleFocusFullscreen}
	TogglePaneFrames          = Action{Kind: ActTogglePaneFrames}
	ToggleFloatingPanes       = Action{Kind: ActToggleFloatingPanes}
	TogglePaneEmbedOrFloating = Action{Kind: ActTogglePaneEmbedOrFloating}
	SwitchFocus               = Action{Kind: ActSwitchFocus}
	NewTab                    = Action{Kind: ActNewTab}
	CloseTab                  = Action{Kind: ActCloseTab}
	GoToNextTab               = Action{Kind: ActGoToNextTab}
	GoToPreviousTab           = Action{Kind: ActGoToPreviousTab}
	ToggleActiveSyncTab       = Action{Kind: ActToggleActiveSyncTab}
	ToggleTab                 = Action{Kind: ActToggleTab}
	ScrollUp                  = Action{Kind: ActScrollUp}
	ScrollDown                = Action{Kind: ActScrollDown}
	PageScrollUp              = Action{Kind: ActPageScrollUp}
	PageScrollDown            = Action{Kind: ActPageScrollDown}
	HalfPageScrollUp          = Action{Kind: ActHalfPageScrollUp}
	HalfPageScrollDown        = Action{Kind: ActHalfPageScrollDown}
	EditScrollback            = Action{Kind: ActEditScrollback}
)

func SwitchToMode(m Mode) Action { return Action{Kind: ActSwitchToMode, Mode: m} }

func MoveFocus(d Direction) Action { return Action{Kind: ActMoveFocus, Dir: d} }

func MoveFocusOrTab(d Direction) Action { return Action{Kind: ActMoveFocusOrTab, Dir: d} }

// ResizePane grows or shrinks the focused pane, towards d when d is set.
func ResizePane(s ResizeStrategy, d Direction) Action {
	return Action{Kind: ActResize, Resize: s, Dir: d}
}

// MovePane swaps the focused pane with its neighbour in d, or with the next
// pane when d is DirNone.
func MovePane(d Direction) Action { return Action{Kind: ActMovePane, Dir: d} }

func NewPane(d Direction) Action { return Action{Kind: ActNewPane, Dir: d} }

func PaneNameInput(b ...byte) Action { return Action{Kind: ActPaneNameInput, Input: string(b)} }

func TabNameInput(b ...byte) Action { return Action{Kind: ActTabNameInput, Input: string(b)} }

func SearchInput(b ...byte) Action { return Action{Kind: ActSearchInput, Input: string(b)} }

func Search(d SearchDirection) Action { return Action{Kind: ActSearch, Search: d} }

func SearchToggleOption(o SearchOption) Action {
	return Action{Kind: ActSearchToggleOption, Option: o}
}

// String returns the configuration spelling of a, which ParseAction accepts.
func (a Action) String() string {
	name := a.Kind.String()
	switch a.Kind {
	case ActSwitchToMode:
		return name + " " + a.Mode.String()
	case ActMoveFocus, ActMoveFocusOrTab, ActMovePane, ActNewPane:
		if a.Dir == DirNone {
			return name
		}
		return name + " " + a.Dir.String()
	case ActResize:
		if a.Dir == DirNone {
			return name + " " + a.Resize.String()
		}
		return name + " " + a.Resize.String() + " " + a.Dir.String()
	case ActPaneNameInput, ActTabNameInput, ActSearchInput:
		parts := []string{name}
		for _, b := range []byte(a.Input) {
			parts = append(parts, strconv.Itoa(int(b)))
		}
		return strings.Join(parts, " ")
	case ActSearch:
		return name + " " + a.Search.String()
	case ActSearchToggleOption:
		return name + " " + a.Option.String()
	}
	return name
}

// ParseAction parses the configuration form of an action, e.g.
// "SwitchToMode Pane", "Resize Increase Left" or "SearchInput 27".
func ParseAction(s string) (Action, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Action{}, fmt.Errorf("%w: empty action", ErrUnknownAction)
	}

	kind := -1
	for i, name := range actionNames {
		if strings.EqualFold(name, fields[0]) {
			kind = i
			break
		}
	}
	if kind < 0 {
		return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, fields[0])
	}

	a := Action{Kind: ActionKind(kind)}
	args := fields[1:]
	bad := func() (Action, error) {
		return Action{}, fmt.Errorf("%w: bad arguments in %q", ErrUnknownAction, s)
	}

	switch a.Kind {
	case ActSwitchToMode:
		if len(args) != 1 {
			return bad()
		}
		m, err := ParseMode(args[0])
		if err != nil {
			return Action{}, fmt.Errorf("%w: %w", ErrUnknownAction, err)
		}
		a.Mode = m
	case ActMoveFocus, ActMoveFocusOrTab:
		if len(args) != 1 {
			return bad()
		}
		d, ok := parseDirection(args[0])
		if !ok || d == DirNone {
			return bad()
		}
		a.Dir = d
	case ActMovePane, ActNewPane:
		if len(args) > 1 {
			return bad()
		}
		if len(args) == 1 {
			d, ok := parseDirection(args[0])
			if !ok {
				return bad()
			}
			a.Dir = d
		}
	case ActResize:
		if len(args) < 1 || len(args) > 2 {
			return bad()
		}
		switch strings.ToLower(args[0]) {
		case "increase", "+":
			a.Resize = Increase
		case "decrease", "-":
			a.Resize = Decrease
		default:
			return bad()
		}
		if len(args) == 2 {
			d, ok := parseDirection(args[1])
			if !ok {
				return bad()
			}
			a.Dir = d
		}
	case ActPaneNameInput, ActTabNameInput, ActSearchInput:
		buf := make([]byte, 0, len(args))
		for _, arg := range args {
			n, err := strconv.ParseUint(arg, 10, 8)
			if err != nil {
				return bad()
			}
			buf = append(buf, byte(n))
		}
		a.Input = string(buf)
	case ActSearch:
		if len(args) != 1 {
			return bad()
		}
		switch strings.ToLower(args[0]) {
		case "down":
			a.Search = SearchDown
		case "up":
			a.Search = SearchUp
		default:
			return bad()
		}
	case ActSearchToggleOption:
		if len(args) != 1 {
			return bad()
		}
		i := slices.IndexFunc(searchOptionNames[:], func(n string) bool {
			return strings.EqualFold(n, args[0])
		})
		if i < 0 {
			return bad()
		}
		a.Option = SearchOption(i)
	default:
		if len(args) != 0 {
			return bad()
		}
	}

	return a, nil
}

func parseDirection(s string) (Direction, bool) {
	for i, name := range directionNames {
		if i > 0 && strings.EqualFold(name, s) {
			return Direction(i), true
		}
	}
	return DirNone, false
}
