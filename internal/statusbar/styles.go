package statusbar

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/Gaurav-Gosain/keybar/internal/theme"
)

// SegmentStyle styles the parts of one shortcut tile:
//
//	PrefixSeparator KeyOpen Key KeyClose Text SuffixSeparator
//	      ""          " <"  "g"   "> "  "PANE "      ""
type SegmentStyle struct {
	PrefixSeparator lipgloss.Style
	KeyOpen         lipgloss.Style
	Key             lipgloss.Style
	KeyClose        lipgloss.Style
	Text            lipgloss.Style
	SuffixSeparator lipgloss.Style
}

// StyleSet holds every style the bar is drawn with.
type StyleSet struct {
	Selected            SegmentStyle
	Unselected          SegmentStyle
	UnselectedAlternate SegmentStyle
	Disabled            SegmentStyle

	SuperkeyPrefix    lipgloss.Style
	SuperkeySeparator lipgloss.Style

	// HintText draws hint separators, key brackets and the ellipsis.
	HintText     lipgloss.Style
	HintModifier lipgloss.Style
	HintKey      lipgloss.Style
	HintLabel    lipgloss.Style
}

// For returns the tile style for e.
func (s StyleSet) For(e Emphasis) SegmentStyle {
	switch e {
	case Selected:
		return s.Selected
	case UnselectedAlternate:
		return s.UnselectedAlternate
	case Disabled:
		return s.Disabled
	default:
		return s.Unselected
	}
}

// paint returns a style with the given colors; nil leaves a color unset.
func paint(fg, bg color.Color) lipgloss.Style {
	st := lipgloss.NewStyle()
	if fg != nil {
		st = st.Foreground(fg)
	}
	if bg != nil {
		st = st.Background(bg)
	}
	return st
}

// NewStyleSet derives the styles for p. differentAlternates gives the
// alternate tiles a contrasting background, which simplified UIs need since
// they draw no separator glyph between tiles.
func NewStyleSet(p theme.Palette, differentAlternates bool) StyleSet {
	background, foreground := p.Black, p.White
	if p.Hue == theme.HueLight {
		background, foreground = p.White, p.Black
	}
	alternate := p.Fg
	if differentAlternates {
		alternate = foreground
	}

	tile := func(bg color.Color, sep lipgloss.Style) SegmentStyle {
		return SegmentStyle{
			PrefixSeparator: paint(background, bg),
			KeyOpen:         paint(background, bg).Bold(true),
			Key:             paint(p.Red, bg).Bold(true),
			KeyClose:        paint(background, bg).Bold(true),
			Text:            paint(background, bg).Bold(true),
			SuffixSeparator: sep,
		}
	}

	s := StyleSet{
		Selected:            tile(p.Green, paint(p.Green, background).Bold(true)),
		Unselected:          tile(p.Fg, paint(p.Fg, background)),
		UnselectedAlternate: tile(alternate, paint(alternate, background)),
		Disabled: SegmentStyle{
			PrefixSeparator: paint(background, p.Fg),
			KeyOpen:         paint(background, p.Fg).Faint(true).Italic(true),
			Key:             paint(background, p.Fg).Faint(true).Italic(true),
			KeyClose:        paint(background, p.Fg).Faint(true).Italic(true),
			Text:            paint(background, p.Fg).Faint(true).Italic(true),
			SuffixSeparator: paint(p.Fg, background),
		},
		SuperkeyPrefix:    paint(foreground, background).Bold(true),
		SuperkeySeparator: paint(background, background),

		HintText:     paint(foreground, nil),
		HintModifier: paint(p.Orange, nil).Bold(true),
		HintKey:      paint(p.Green, nil).Bold(true),
		HintLabel:    paint(foreground, nil).Bold(true),
	}

	if p.Source == theme.SourceCustom {
		s.Selected.KeyOpen = paint(p.Fg, p.Green).Bold(true)
		s.Selected.KeyClose = paint(p.Fg, p.Green).Bold(true)
		s.Disabled.KeyOpen = s.Disabled.KeyOpen.Italic(false)
		s.Disabled.Key = s.Disabled.Key.Italic(false)
		s.Disabled.KeyClose = s.Disabled.KeyClose.Italic(false)
		s.Disabled.Text = s.Disabled.Text.Italic(false)
		s.SuperkeyPrefix = paint(background, p.Fg).Bold(true)
		s.SuperkeySeparator = paint(p.Fg, background)
	}

	return s
}
