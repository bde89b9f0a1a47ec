// Package config loads the user's keybar configuration and holds the
// settings resolved from it and from command-line flags.
package config

import (
	"errors"

	"github.com/Gaurav-Gosain/keybar/internal/statusbar"
)

// ErrInvalidConfig is returned when a configuration file fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

const (
	// ConfigFile is the config path relative to the XDG config dirs.
	ConfigFile = "keybar/config.toml"

	// DefaultLogLevel leaves logging off.
	DefaultLogLevel = ""
)

// Settings resolved by ApplyOverrides. They start at their defaults so the
// renderer works without any configuration.
var (
	// SimplifiedUI drops the separator glyphs for fonts without them.
	SimplifiedUI = false

	// LongFormThreshold is the width above which shortcut tiles show labels.
	LongFormThreshold = statusbar.DefaultLongFormThreshold

	// LogLevel is the level handed to the logging package.
	LogLevel = DefaultLogLevel

	// ThemeName is the selected theme, "" for the built-in palette.
	ThemeName = ""
)
