package theme

import (
	"testing"

	tint "github.com/lrstanley/bubbletint/v2"
)

func TestFromTint(t *testing.T) {
	light := &tint.Tint{
		ID:     "paper",
		Dark:   false,
		Fg:     tint.FromHex("#111111"),
		Purple: tint.FromHex("#aa00aa"),
	}

	p := FromTint(light, SourceCustom)

	if p.Hue != HueLight {
		t.Errorf("Hue = %v, want light", p.Hue)
	}
	if p.Source != SourceCustom {
		t.Errorf("Source = %v, want custom", p.Source)
	}
	if p.Fg != light.Fg {
		t.Error("Fg not taken from the theme")
	}
	if p.Magenta != light.Purple {
		t.Error("Magenta should come from the theme's purple")
	}
	if p.Green != DefaultPalette().Green {
		t.Error("missing colors should keep their default value")
	}
}

func TestFromTintNil(t *testing.T) {
	if got := FromTint(nil, SourceBuiltin); got != DefaultPalette() {
		t.Errorf("FromTint(nil) = %+v, want DefaultPalette()", got)
	}
}

func TestCurrentPaletteDisabled(t *testing.T) {
	if err := Initialize(""); err != nil {
		t.Fatal(err)
	}
	if IsEnabled() {
		t.Fatal("IsEnabled() = true after Initialize(\"\")")
	}
	if got := CurrentPalette(); got != DefaultPalette() {
		t.Errorf("CurrentPalette() = %+v, want DefaultPalette()", got)
	}
}
