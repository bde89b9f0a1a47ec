package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"charm.land/log/v2"
	"github.com/adrg/xdg"
	tint "github.com/lrstanley/bubbletint/v2"
)

// ErrNoThemeID is returned for a theme file without an id and with an empty
// file name.
var ErrNoThemeID = errors.New("theme has no ID")

// GetThemesDir returns the path to the custom themes directory (~/.config/keybar/themes/).
// Creates the directory if it doesn't exist.
func GetThemesDir() (string, error) {
	keepFile, err := xdg.ConfigFile("keybar/themes/.keep")
	if err != nil {
		return "", fmt.Errorf("failed to get themes directory: %w", err)
	}
	return filepath.Dir(keepFile), nil
}

// LoadCustomThemes reads all *.json files from the themes directory,
// loads each as a custom theme, and registers them with bubbletint.
// Returns the list of successfully loaded theme IDs. Bad files are logged and
// skipped.
func LoadCustomThemes(themesDir string) ([]string, error) {
	entries, err := os.ReadDir(themesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read themes directory: %w", err)
	}

	var loaded []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".json") {
			continue
		}

		path := filepath.Join(themesDir, entry.Name())
		t, err := LoadCustomThemeFile(path)
		if err != nil {
			log.Warn("skipping custom theme", "file", entry.Name(), "err", err)
			continue
		}

		tint.Register(t)
		custom[t.ID] = true
		loaded = append(loaded, t.ID)
	}

	return loaded, nil
}

// LoadCustomThemeFile reads a JSON file and returns a *tint.Tint.
// Derives ID from filename if the id field is empty.
// Sets DisplayName from ID if empty. Fills missing color fields with defaults.
func LoadCustomThemeFile(path string) (*tint.Tint, error) {
	// #nosec G304 - path comes from the user's themes directory
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var t tint.Tint
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse theme JSON: %w", err)
	}

	if t.ID == "" {
		base := filepath.Base(path)
		t.ID = strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
	}

	if t.ID == "" {
		return nil, ErrNoThemeID
	}

	if t.DisplayName == "" {
		t.DisplayName = t.ID
	}

	fillDefaults(&t)

	return &t, nil
}

// fillDefaults fills nil colors: base colors get xterm values, the cursor
// follows Fg and bright variants follow their normal variant.
func fillDefaults(t *tint.Tint) {
	base := []struct {
		dst **tint.Color
		hex string
	}{
		{&t.Fg, "#e5e5e5"},
		{&t.Bg, "#000000"},
		{&t.Black, "#000000"},
		{&t.Red, "#cd0000"},
		{&t.Green, "#00cd00"},
		{&t.Yellow, "#cdcd00"},
		{&t.Blue, "#0000ee"},
		{&t.Purple, "#cd00cd"},
		{&t.Cyan, "#00cdcd"},
		{&t.White, "#e5e5e5"},
	}
	for _, c := range base {
		if *c.dst == nil {
			*c.dst = tint.FromHex(c.hex)
		}
	}

	derived := []struct {
		dst  **tint.Color
		from *tint.Color
	}{
		{&t.Cursor, t.Fg},
		{&t.BrightBlack, t.Black},
		{&t.BrightRed, t.Red},
		{&t.BrightGreen, t.Green},
		{&t.BrightYellow, t.Yellow},
		{&t.BrightBlue, t.Blue},
		{&t.BrightPurple, t.Purple},
		{&t.BrightCyan, t.Cyan},
		{&t.BrightWhite, t.White},
	}
	for _, c := range derived {
		if *c.dst == nil && c.from != nil {
			dup := *c.from
			*c.dst = &dup
		}
	}
}
