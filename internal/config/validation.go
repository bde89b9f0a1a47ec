package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/Gaurav-Gosain/keybar/internal/input"
	"github.com/Gaurav-Gosain/keybar/internal/logging"
)

// ValidationIssue is one problem found in a configuration.
type ValidationIssue struct {
	Field   string
	Key     string
	Message string
}

// ValidationResult collects the problems found by ValidateConfig. Errors
// make the configuration unusable; warnings are reported and ignored.
type ValidationResult struct {
	Errors   []ValidationIssue
	Warnings []ValidationIssue
}

func (r *ValidationResult) addError(field, key, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationIssue{field, key, fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) addWarning(field, key, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationIssue{field, key, fmt.Sprintf(format, args...)})
}

// HasErrors reports whether any error was found.
func (r *ValidationResult) HasErrors() bool { return len(r.Errors) > 0 }

// HasWarnings reports whether any warning was found.
func (r *ValidationResult) HasWarnings() bool { return len(r.Warnings) > 0 }

// Summary joins the errors into one line.
func (r *ValidationResult) Summary() string {
	parts := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		parts[i] = fmt.Sprintf("[%s] %s: %s", e.Field, e.Key, e.Message)
	}
	return strings.Join(parts, "; ")
}

// ValidateConfig checks every mode, key and action of cfg.
func ValidateConfig(cfg *UserConfig) *ValidationResult {
	r := &ValidationResult{}

	if cfg.Layout.LongFormThreshold < 0 {
		r.addWarning("layout", "long_form_threshold", "negative threshold %d, using the default", cfg.Layout.LongFormThreshold)
		cfg.Layout.LongFormThreshold = LongFormThreshold
	}

	if cfg.Logging.Level != "" {
		if _, err := logging.ParseLevel(cfg.Logging.Level); err != nil {
			r.addError("logging", "level", "%v", err)
		}
	}

	for _, modeName := range slices.Sorted(maps.Keys(cfg.Keybindings)) {
		field := "keybindings." + modeName
		if _, err := input.ParseMode(modeName); err != nil {
			r.addError(field, modeName, "%v", err)
			continue
		}

		binds := cfg.Keybindings[modeName]
		seen := make(map[input.Key]string, len(binds))
		for _, keyName := range slices.Sorted(maps.Keys(binds)) {
			key, err := input.ParseKey(keyName)
			if err != nil {
				r.addError(field, keyName, "%v", err)
				continue
			}
			if prev, dup := seen[key]; dup {
				r.addWarning(field, keyName, "same key as %q, both bindings are kept", prev)
			}
			seen[key] = keyName

			for _, a := range binds[keyName] {
				if _, err := input.ParseAction(a); err != nil {
					r.addError(field, keyName, "%v", err)
				}
			}
		}
	}

	return r
}
