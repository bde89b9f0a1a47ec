// Package statusbar lays out the one-line shortcut bar of the multiplexer.
//
// A bar is made of three runs, left to right: the shared superkey prefix
// ("Ctrl +"), one tile per top-level shortcut, and the hints of the active
// mode. Compose fits them into a column budget, switching tiles to their
// short form on narrow terminals and cutting hints off with an ellipsis.
package statusbar

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/Gaurav-Gosain/keybar/internal/input"
	"github.com/Gaurav-Gosain/keybar/internal/keytable"
	"github.com/Gaurav-Gosain/keybar/internal/theme"
)

const (
	// DefaultLongFormThreshold is the width above which tiles show their
	// label. Narrower bars show keys only.
	DefaultLongFormThreshold = 110

	// Separator is drawn between tiles unless the UI is simplified.
	Separator = "\ue0b0"

	// Ellipsis marks hints cut off for lack of space.
	Ellipsis = " ... "
)

// Input is everything a bar is computed from.
type Input struct {
	Mode input.Mode
	// Keymap is the raw keymap of Mode, as delivered by the host.
	Keymap     input.Keymap
	Palette    theme.Palette
	Simplified bool
	MaxWidth   int
	// Threshold overrides DefaultLongFormThreshold when positive.
	Threshold int
}

// Line is a composed bar.
type Line struct {
	// Text is styled and ends with a clear-to-end-of-line sequence unless
	// the hints were truncated.
	Text string
	// Width is the display width of Text without styling.
	Width int
	// Truncated reports whether the hints ended in an ellipsis.
	Truncated bool
}

func (l Line) String() string { return l.Text }

// run accumulates styled text together with its unstyled width.
type run struct {
	text  strings.Builder
	width int
}

func (r *run) add(st lipgloss.Style, s string) {
	if s == "" {
		return
	}
	r.text.WriteString(st.Render(s))
	r.width += ansi.StringWidth(s)
}

func (r *run) append(o *run) {
	r.text.WriteString(o.text.String())
	r.width += o.width
}

func (r *run) empty() bool { return r.width == 0 }

// Compose lays out the bar for in. The result never exceeds in.MaxWidth,
// except that an ellipsis may be appended to a line that is already full.
func Compose(in Input) Line {
	threshold := in.Threshold
	if threshold <= 0 {
		threshold = DefaultLongFormThreshold
	}
	sep := Separator
	if in.Simplified {
		sep = ""
	}
	styles := NewStyleSet(in.Palette, in.Simplified)

	var line run

	label, shared := keytable.Superkey(keytable.Normalize(in.Keymap))
	if shared {
		prefix := keytable.SuperkeyPrefix(label, in.Simplified)
		if w := ansi.StringWidth(prefix) + ansi.StringWidth(sep); w <= in.MaxWidth {
			line.add(styles.SuperkeyPrefix, prefix)
			line.add(styles.SuperkeySeparator, sep)
		} else {
			// Bare keys would be ambiguous without the prefix.
			shared = false
		}
	}

	long := in.MaxWidth > threshold
	for _, e := range Catalog(in.Mode, in.Keymap) {
		if !e.HasKey || e.Emphasis == Disabled {
			continue
		}
		var tile run
		renderShortcut(&tile, e, styles.For(e.Emphasis), sep, long, shared, line.empty())
		if line.width+tile.width > in.MaxWidth {
			break
		}
		line.append(&tile)
	}

	if hints := Hints(in.Mode, in.Keymap); len(hints) > 0 {
		if cut := composeHints(&line, hints, styles, in.MaxWidth); cut {
			return Line{Text: line.text.String(), Width: line.width, Truncated: true}
		}
	}

	return Line{Text: line.text.String() + ansi.EraseLineRight, Width: line.width}
}

// composeHints appends hints to line. A long-label and a short-label
// candidate grow side by side; the long one is dropped once it would
// overflow. If even the short candidate runs out of room for the next hint
// plus an ellipsis, what it holds so far is emitted with an ellipsis and
// composeHints reports true.
func composeHints(line *run, hints []HintEntry, styles StyleSet, maxWidth int) bool {
	var long, short run
	longFits := true
	ellipsisWidth := ansi.StringWidth(Ellipsis)

	for _, h := range hints {
		if len(h.Keys) == 0 && !h.Literal {
			continue
		}

		if longFits {
			var next run
			renderHint(&next, h, h.Long, long.empty(), styles)
			if line.width+long.width+next.width > maxWidth {
				longFits = false
			} else {
				long.append(&next)
			}
		}

		var next run
		renderHint(&next, h, h.Short, short.empty(), styles)
		if line.width+short.width+next.width+ellipsisWidth > maxWidth {
			line.append(&short)
			line.add(styles.HintText, Ellipsis)
			return true
		}
		short.append(&next)
	}

	if longFits {
		line.append(&long)
	} else {
		line.append(&short)
	}
	return false
}

// renderShortcut draws one tile. The leading separator is left out on the
// first tile of a line without a superkey prefix.
func renderShortcut(r *run, e ShortcutEntry, st SegmentStyle, sep string, long, shared, first bool) {
	key := shortcutKeyText(e.Key, shared)
	if shared || !first {
		r.add(st.PrefixSeparator, sep)
	}

	if !long {
		r.add(st.Key, " "+key+" ")
		r.add(st.SuffixSeparator, sep)
		return
	}

	r.add(st.KeyOpen, " <")
	r.add(st.Key, key)
	r.add(st.KeyClose, "> ")
	r.add(st.Text, e.Target.Label()+" ")
	r.add(st.SuffixSeparator, sep)
}

// shortcutKeyText is the key shown on a tile. Under a shared superkey the
// modifier is already displayed by the prefix and is left out.
func shortcutKeyText(k input.Key, shared bool) string {
	if !shared {
		return k.String()
	}
	switch k.Kind {
	case input.KindF:
		return strconv.Itoa(int(k.N))
	case input.KindCtrl, input.KindAlt:
		return string(k.Rune)
	case input.KindChar:
		return k.String()
	default:
		return "??"
	}
}

// keyGroups are key sequences that read naturally without separators.
var keyGroups = map[string]bool{
	"hjkl": true,
	"HJKL": true,
	"←↓↑→": true,
	"←→":   true,
	"↓↑":   true,
	"[]":   true,
}

// renderHint draws one hint: " / Ctrl + <h|l> Label", or " <n> Label" when
// the keys share no modifier. The first hint of a run starts with a bare
// space instead of " / ".
func renderHint(r *run, h HintEntry, label string, first bool, styles StyleSet) {
	if first {
		r.add(styles.HintText, " ")
	} else {
		r.add(styles.HintText, " / ")
	}

	if len(h.Keys) == 0 {
		r.add(styles.HintLabel, label)
		return
	}

	mod := commonModifier(h.Keys)
	if mod != "" {
		r.add(styles.HintModifier, mod)
		r.add(styles.HintText, " + <")
	} else {
		r.add(styles.HintText, "<")
	}

	names := make([]string, len(h.Keys))
	for i, k := range h.Keys {
		if mod != "" {
			names[i] = k.Unmodified()
		} else {
			names[i] = k.String()
		}
	}
	joiner := "|"
	if keyGroups[strings.Join(names, "")] {
		joiner = ""
	}
	for i, name := range names {
		if i > 0 {
			r.add(styles.HintText, joiner)
		}
		r.add(styles.HintKey, name)
	}

	r.add(styles.HintText, ">")
	r.add(styles.HintLabel, " "+label)
}

// commonModifier returns the modifier shared by all keys, or "".
func commonModifier(keys []input.Key) string {
	mod := keys[0].Modifier()
	for _, k := range keys[1:] {
		if k.Modifier() != mod {
			return ""
		}
	}
	return mod
}
