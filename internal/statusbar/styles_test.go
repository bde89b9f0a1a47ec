package statusbar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Gaurav-Gosain/keybar/internal/theme"
)

func TestStyleSetFor(t *testing.T) {
	p := theme.DefaultPalette()
	s := NewStyleSet(p, false)

	tests := []struct {
		emphasis Emphasis
		want     SegmentStyle
	}{
		{Selected, s.Selected},
		{Unselected, s.Unselected},
		{UnselectedAlternate, s.UnselectedAlternate},
		{Disabled, s.Disabled},
	}
	for _, tt := range tests {
		got := s.For(tt.emphasis)
		assert.Equal(t, tt.want.Text.GetBackground(), got.Text.GetBackground(), "emphasis %d", tt.emphasis)
		assert.Equal(t, tt.want.Text.GetItalic(), got.Text.GetItalic(), "emphasis %d", tt.emphasis)
	}

	assert.Equal(t, p.Green, s.For(Selected).Text.GetBackground())
	assert.Equal(t, p.Fg, s.For(Unselected).Text.GetBackground())
}

func TestStyleSetAlternates(t *testing.T) {
	p := theme.DefaultPalette()

	same := NewStyleSet(p, false)
	assert.Equal(t, p.Fg, same.UnselectedAlternate.Text.GetBackground())

	different := NewStyleSet(p, true)
	assert.Equal(t, p.White, different.UnselectedAlternate.Text.GetBackground())
}

func TestStyleSetDisabled(t *testing.T) {
	p := theme.DefaultPalette()

	builtin := NewStyleSet(p, false).Disabled
	assert.True(t, builtin.Text.GetFaint())
	assert.True(t, builtin.Text.GetItalic())

	p.Source = theme.SourceCustom
	custom := NewStyleSet(p, false).Disabled
	assert.True(t, custom.Text.GetFaint())
	assert.False(t, custom.Text.GetItalic())
	assert.False(t, custom.Key.GetItalic())
}

func TestStyleSetLightHue(t *testing.T) {
	p := theme.DefaultPalette()
	p.Hue = theme.HueLight

	s := NewStyleSet(p, false)
	assert.Equal(t, p.Black, s.HintLabel.GetForeground())
	assert.Equal(t, p.White, s.SuperkeyPrefix.GetBackground())
}

func TestStyleSetCustomSuperkey(t *testing.T) {
	p := theme.DefaultPalette()
	p.Source = theme.SourceCustom

	s := NewStyleSet(p, false)
	assert.Equal(t, p.Fg, s.SuperkeyPrefix.GetBackground())
	assert.Equal(t, p.Fg, s.Selected.KeyOpen.GetForeground())
}
