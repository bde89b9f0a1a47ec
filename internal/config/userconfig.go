package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"charm.land/log/v2"
	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/Gaurav-Gosain/keybar/internal/input"
)

// UserConfig represents the user's custom configuration
type UserConfig struct {
	Appearance  AppearanceConfig  `toml:"appearance"`
	Layout      LayoutConfig      `toml:"layout"`
	Logging     LoggingConfig     `toml:"logging"`
	Keybindings KeybindingsConfig `toml:"keybindings"`
}

// AppearanceConfig holds appearance-related settings
type AppearanceConfig struct {
	Theme        string `toml:"theme"`         // Color theme name (e.g., dracula, nord, my-custom-theme)
	SimplifiedUI bool   `toml:"simplified_ui"` // Draw tiles without powerline separators
}

// LayoutConfig holds the status bar layout settings
type LayoutConfig struct {
	LongFormThreshold int `toml:"long_form_threshold"` // Width above which tiles show labels (default: 110)
}

// LoggingConfig holds the log file settings
type LoggingConfig struct {
	Level string `toml:"level"` // debug, info, warn, error; empty disables logging
}

// KeybindingsConfig maps a mode name to that mode's bindings. Each binding
// maps a key name to the actions it runs, e.g.
//
//	[keybindings.pane]
//	"n" = ["NewPane", "SwitchToMode Normal"]
//
// An empty action list unbinds a default key.
type KeybindingsConfig map[string]map[string][]string

// DefaultConfig returns the default configuration
func DefaultConfig() *UserConfig {
	return &UserConfig{
		Layout: LayoutConfig{
			LongFormThreshold: LongFormThreshold,
		},
		Keybindings: DefaultKeybindings(),
	}
}

// LoadUserConfig loads the user configuration from XDG config directory,
// creating a default file when none exists.
func LoadUserConfig() (*UserConfig, error) {
	configPath, err := xdg.SearchConfigFile(ConfigFile)
	if err != nil {
		return createDefaultConfig()
	}
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads, completes and validates the configuration at path.
func LoadConfigFile(path string) (*UserConfig, error) {
	// #nosec G304 - reading the user's own config is intentional
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg UserConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", ErrInvalidConfig, path, err)
	}

	defaultCfg := DefaultConfig()
	fillMissingLayout(&cfg, defaultCfg)
	fillMissingKeybinds(&cfg, defaultCfg)

	validation := ValidateConfig(&cfg)
	for _, warn := range validation.Warnings {
		log.Warn("config warning", "section", warn.Field, "key", warn.Key, "msg", warn.Message)
	}
	if validation.HasErrors() {
		for _, e := range validation.Errors {
			log.Error("config error", "section", e.Field, "key", e.Key, "msg", e.Message)
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, validation.Summary())
	}

	return &cfg, nil
}

// createDefaultConfig creates a default config file in the user's config directory
func createDefaultConfig() (*UserConfig, error) {
	configPath, err := xdg.ConfigFile(ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	cfg := DefaultConfig()
	if err := WriteConfig(configPath, cfg); err != nil {
		return nil, err
	}
	log.Info("created default config", "path", configPath)
	return cfg, nil
}

// ResetConfig overwrites the config file with the defaults and returns its path.
func ResetConfig() (string, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return "", err
	}
	return configPath, WriteConfig(configPath, DefaultConfig())
}

// WriteConfig writes cfg to path with a documentation header.
func WriteConfig(path string, cfg *UserConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# keybar Configuration File\n")
	sb.WriteString("#\n")
	sb.WriteString("# Configuration location: " + path + "\n")
	sb.WriteString("# For the effective keybindings, run: keybar keybinds list\n\n")

	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# theme: Color theme name (e.g., dracula, nord, my-custom-theme)\n")
	sb.WriteString("#   Leave empty to use the built-in palette.\n")
	sb.WriteString("#   CLI flag --theme overrides this. Custom themes: ~/.config/keybar/themes/*.json\n")
	sb.WriteString("#\n")
	sb.WriteString("# simplified_ui: Draw tiles without powerline separator glyphs\n")
	sb.WriteString("#\n")
	sb.WriteString("# long_form_threshold: Bars wider than this show shortcut labels\n")
	sb.WriteString("#   Default: 110\n")
	sb.WriteString("#\n")
	sb.WriteString("# level: Log level (debug, info, warn, error). Empty disables logging.\n")
	sb.WriteString("#   Logs go to ~/.local/state/keybar/\n")
	sb.WriteString("#\n")
	sb.WriteString("# keybindings.<mode>: \"<key>\" = [\"Action args\", ...]\n")
	sb.WriteString("#   Keys: a, ctrl+g, alt+n, f1, enter, esc, left, ...\n")
	sb.WriteString("#   An empty list unbinds a default key.\n")
	sb.WriteString("# ============================================================================\n\n")
	sb.Write(data)

	if err := os.WriteFile(path, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// fillMissingLayout fills in any missing layout settings with defaults
func fillMissingLayout(cfg, defaultCfg *UserConfig) {
	if cfg.Layout.LongFormThreshold == 0 {
		cfg.Layout.LongFormThreshold = defaultCfg.Layout.LongFormThreshold
	}
}

// fillMissingKeybinds fills in any missing keybindings with defaults. A key
// present in the user's mode table, even with no actions, is left alone.
func fillMissingKeybinds(cfg, defaultCfg *UserConfig) {
	if cfg.Keybindings == nil {
		cfg.Keybindings = make(KeybindingsConfig)
	}
	for mode, defaults := range defaultCfg.Keybindings {
		target := cfg.Keybindings[canonicalMode(cfg.Keybindings, mode)]
		if target == nil {
			target = make(map[string][]string)
			cfg.Keybindings[mode] = target
		}
		fillMapDefaults(target, defaults)
	}
}

// canonicalMode returns the spelling of mode already used in kb, so that
// [keybindings.Pane] and the default "pane" table are merged.
func canonicalMode(kb KeybindingsConfig, mode string) string {
	for name := range kb {
		if strings.EqualFold(name, mode) {
			return name
		}
	}
	return mode
}

// fillMapDefaults adds the default bindings whose key is not bound in
// target. Keys are compared parsed, so "Ctrl+G" overrides "ctrl+g".
func fillMapDefaults(target, defaults map[string][]string) {
	bound := make(map[input.Key]bool, len(target))
	for name := range target {
		if k, err := input.ParseKey(name); err == nil {
			bound[k] = true
		}
	}
	for name, actions := range defaults {
		k, err := input.ParseKey(name)
		if err != nil || bound[k] {
			continue
		}
		target[name] = actions
	}
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	path, err := xdg.SearchConfigFile(ConfigFile)
	if err != nil {
		// Return where it would be created
		return xdg.ConfigFile(ConfigFile)
	}
	return path, nil
}
