package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
	tint "github.com/lrstanley/bubbletint/v2"
)

// Source tells where a palette came from. Palettes read from user theme
// files are styled slightly differently from the built-in ones.
type Source int

const (
	SourceBuiltin Source = iota
	SourceCustom
)

func (s Source) String() string {
	if s == SourceCustom {
		return "custom"
	}
	return "builtin"
}

// Hue classifies a palette as dark or light.
type Hue int

const (
	HueDark Hue = iota
	HueLight
)

func (h Hue) String() string {
	if h == HueLight {
		return "light"
	}
	return "dark"
}

// Palette is the set of colors the status bar is drawn with.
type Palette struct {
	Source Source
	Hue    Hue

	Fg      color.Color
	Bg      color.Color
	Black   color.Color
	Red     color.Color
	Green   color.Color
	Yellow  color.Color
	Blue    color.Color
	Magenta color.Color
	Cyan    color.Color
	White   color.Color
	Orange  color.Color
	Gray    color.Color
}

// DefaultPalette returns the xterm colors used when no theme is selected.
func DefaultPalette() Palette {
	return Palette{
		Source:  SourceBuiltin,
		Hue:     HueDark,
		Fg:      lipgloss.Color("#e5e5e5"),
		Bg:      lipgloss.Color("#000000"),
		Black:   lipgloss.Color("#000000"),
		Red:     lipgloss.Color("#cd0000"),
		Green:   lipgloss.Color("#00cd00"),
		Yellow:  lipgloss.Color("#cdcd00"),
		Blue:    lipgloss.Color("#0000ee"),
		Magenta: lipgloss.Color("#cd00cd"),
		Cyan:    lipgloss.Color("#00cdcd"),
		White:   lipgloss.Color("#e5e5e5"),
		Orange:  lipgloss.Color("#ff8700"),
		Gray:    lipgloss.Color("#7f7f7f"),
	}
}

// FromTint converts a bubbletint theme. Colors missing from t keep their
// DefaultPalette value.
func FromTint(t *tint.Tint, src Source) Palette {
	p := DefaultPalette()
	p.Source = src
	if t == nil {
		return p
	}
	if !t.Dark {
		p.Hue = HueLight
	}

	set := func(dst *color.Color, c *tint.Color) {
		if c != nil {
			*dst = c
		}
	}
	set(&p.Fg, t.Fg)
	set(&p.Bg, t.Bg)
	set(&p.Black, t.Black)
	set(&p.Red, t.Red)
	set(&p.Green, t.Green)
	set(&p.Yellow, t.Yellow)
	set(&p.Blue, t.Blue)
	set(&p.Magenta, t.Purple)
	set(&p.Cyan, t.Cyan)
	set(&p.White, t.White)
	set(&p.Orange, t.BrightYellow)
	set(&p.Gray, t.BrightBlack)
	return p
}
