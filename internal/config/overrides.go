package config

import (
	"charm.land/log/v2"

	"github.com/Gaurav-Gosain/keybar/internal/theme"
)

// Overrides contains CLI flag values that can override user config.
// Zero values indicate the flag was not set and should use the user config default.
type Overrides struct {
	// ThemeName is the theme to load
	ThemeName string

	// Simplified draws the bar without separator glyphs
	Simplified bool

	// LongFormThreshold overrides the label threshold (0 means use config)
	LongFormThreshold int

	// LogLevel overrides the configured log level
	LogLevel string
}

// ApplyOverrides applies CLI flag overrides to global config, falling back to user config defaults.
// If userConfig is nil, only CLI flag values (when set) are applied.
func ApplyOverrides(overrides Overrides, userConfig *UserConfig) {
	// Simplified UI - OR of CLI flag and user config
	if userConfig != nil {
		SimplifiedUI = overrides.Simplified || userConfig.Appearance.SimplifiedUI
	} else {
		SimplifiedUI = overrides.Simplified
	}

	if overrides.LongFormThreshold > 0 {
		LongFormThreshold = overrides.LongFormThreshold
	} else if userConfig != nil && userConfig.Layout.LongFormThreshold > 0 {
		LongFormThreshold = userConfig.Layout.LongFormThreshold
	}

	if overrides.LogLevel != "" {
		LogLevel = overrides.LogLevel
	} else if userConfig != nil {
		LogLevel = userConfig.Logging.Level
	}

	// Theme - CLI flag takes precedence, otherwise use user config
	themeName := overrides.ThemeName
	if themeName == "" && userConfig != nil {
		themeName = userConfig.Appearance.Theme
	}
	ThemeName = themeName
	if err := theme.Initialize(themeName); err != nil {
		log.Warn("failed to load theme", "theme", themeName, "err", err)
	}
}
