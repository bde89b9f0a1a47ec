// Package theme selects the color palette of the status bar from the
// bubbletint registry and the user's custom theme files.
package theme

import (
	"slices"

	"charm.land/log/v2"
	tint "github.com/lrstanley/bubbletint/v2"
)

var (
	enabled bool
	loaded  bool
	// custom holds the IDs registered from the themes directory.
	custom = map[string]bool{}
)

// Initialize sets up the theme registry with the specified theme name.
// Call this once at application startup.
// If themeName is empty, theming is disabled and DefaultPalette is used.
func Initialize(themeName string) error {
	if themeName == "" {
		enabled = false
		return nil
	}

	enabled = true
	loadRegistry()

	if !tint.SetTintID(themeName) {
		log.Warn("theme not found, using default", "theme", themeName)
		tint.SetTintID("default")
	}

	return nil
}

// loadRegistry fills the bubbletint registry with the built-in and custom
// themes.
func loadRegistry() {
	tint.NewDefaultRegistry()
	loaded = true

	if themesDir, err := GetThemesDir(); err == nil {
		if _, err := LoadCustomThemes(themesDir); err != nil {
			log.Warn("error loading custom themes", "dir", themesDir, "err", err)
		}
	}
}

// IsEnabled returns true if theming is enabled.
func IsEnabled() bool {
	return enabled
}

// Current returns the currently active theme, or nil when theming is
// disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// CurrentPalette returns the palette of the active theme.
func CurrentPalette() Palette {
	t := Current()
	if t == nil {
		return DefaultPalette()
	}
	src := SourceBuiltin
	if custom[t.ID] {
		src = SourceCustom
	}
	return FromTint(t, src)
}

// IDs lists every registered theme, sorted.
func IDs() []string {
	if !loaded {
		loadRegistry()
	}
	ids := slices.Clone(tint.TintIDs())
	slices.Sort(ids)
	return ids
}

// IsCustom reports whether id was loaded from the themes directory.
func IsCustom(id string) bool {
	return custom[id]
}
