package statusbar

import (
	"github.com/charmbracelet/x/ansi"
	"pgregory.net/rapid"

	"github.com/Gaurav-Gosain/keybar/internal/input"
	"github.com/Gaurav-Gosain/keybar/internal/theme"
)

var (
	enter  = input.Enter
	normal = input.SwitchToMode(input.ModeNormal)
)

func switchTo(m input.Mode) input.Action { return input.SwitchToMode(m) }

// plain strips styling and the trailing clear-to-EOL sequence.
func plain(l Line) string { return ansi.Strip(l.Text) }

func compose(mode input.Mode, km input.Keymap, width int) Line {
	return Compose(Input{Mode: mode, Keymap: km, Palette: theme.DefaultPalette(), MaxWidth: width})
}

// scenarioKeymap binds the top-level shortcuts of the scenarios.
func scenarioKeymap() input.Keymap {
	return input.Keymap{
		input.Binds(input.Ctrl('g'), switchTo(input.ModeLocked)),
		input.Binds(input.Ctrl('p'), switchTo(input.ModePane)),
		input.Binds(input.Ctrl('q'), input.Quit),
	}
}

// paneKeymap is a stock-like Pane mode keymap.
func paneKeymap() input.Keymap {
	return input.Keymap{
		input.Binds(input.Ctrl('g'), switchTo(input.ModeLocked)),
		input.Binds(input.Ctrl('p'), normal),
		input.Binds(input.Ctrl('q'), input.Quit),
		input.Binds(enter, normal),
		input.Binds(input.Esc, normal),
		input.Binds(input.Char('h'), input.MoveFocus(input.DirLeft)),
		input.Binds(input.Char('j'), input.MoveFocus(input.DirDown)),
		input.Binds(input.Char('k'), input.MoveFocus(input.DirUp)),
		input.Binds(input.Char('l'), input.MoveFocus(input.DirRight)),
		input.Binds(input.Left, input.MoveFocus(input.DirLeft)),
		input.Binds(input.Char('n'), input.NewPane(input.DirNone), normal),
		input.Binds(input.Char('x'), input.CloseFocus, normal),
		input.Binds(input.Char('c'), switchTo(input.ModeRenamePane), input.PaneNameInput(0)),
		input.Binds(input.Char('d'), input.NewPane(input.DirDown), normal),
		input.Binds(input.Char('r'), input.NewPane(input.DirRight), normal),
		input.Binds(input.Char('f'), input.ToggleFocusFullscreen, normal),
		input.Binds(input.Char('w'), input.ToggleFloatingPanes, normal),
		input.Binds(input.Char('e'), input.TogglePaneEmbedOrFloating, normal),
	}
}

var bindingPool = []input.Binding{
	input.Binds(input.Ctrl('g'), switchTo(input.ModeLocked)),
	input.Binds(input.Ctrl('p'), switchTo(input.ModePane)),
	input.Binds(input.Ctrl('t'), switchTo(input.ModeTab)),
	input.Binds(input.Ctrl('n'), switchTo(input.ModeResize)),
	input.Binds(input.Ctrl('h'), switchTo(input.ModeMove)),
	input.Binds(input.Ctrl('s'), switchTo(input.ModeScroll)),
	input.Binds(input.Ctrl('o'), switchTo(input.ModeSession)),
	input.Binds(input.Ctrl('q'), input.Quit),
	input.Binds(input.Alt('s'), switchTo(input.ModeSearch)),
	input.Binds(input.Char('p'), normal),
	input.Binds(enter, normal),
	input.Binds(input.Esc, normal),
	input.Binds(input.Space, normal),
	input.Binds(input.Char('h'), input.MoveFocus(input.DirLeft)),
	input.Binds(input.Char('l'), input.MoveFocus(input.DirRight)),
	input.Binds(input.Left, input.GoToPreviousTab),
	input.Binds(input.Right, input.GoToNextTab),
	input.Binds(input.Char('l'), input.GoToNextTab),
	input.Binds(input.Char('n'), input.NewPane(input.DirNone), normal),
	input.Binds(input.Char('n'), input.NewTab, normal),
	input.Binds(input.Char('x'), input.CloseFocus, normal),
	input.Binds(input.Char('j'), input.ScrollDown),
	input.Binds(input.Char('k'), input.ScrollUp),
	input.Binds(input.Char('d'), input.Detach),
	input.Binds(input.Char('+'), input.ResizePane(input.Increase, input.DirNone)),
	input.Binds(input.Char('-'), input.ResizePane(input.Decrease, input.DirNone)),
	input.Binds(input.Char('c'), input.SearchToggleOption(input.CaseSensitivity)),
	input.Binds(input.Char('s'), switchTo(input.ModeSearch)),
}

func genKeymap() *rapid.Generator[input.Keymap] {
	return rapid.Custom(func(t *rapid.T) input.Keymap {
		return rapid.SliceOfN(rapid.SampledFrom(bindingPool), 0, len(bindingPool)).Draw(t, "bindings")
	})
}

func genMode() *rapid.Generator[input.Mode] {
	return rapid.SampledFrom(input.Modes())
}
