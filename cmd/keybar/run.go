package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/log/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Gaurav-Gosain/keybar/internal/app"
	"github.com/Gaurav-Gosain/keybar/internal/config"
	"github.com/Gaurav-Gosain/keybar/internal/input"
	"github.com/Gaurav-Gosain/keybar/internal/logging"
	"github.com/Gaurav-Gosain/keybar/internal/plugin"
	"github.com/Gaurav-Gosain/keybar/internal/theme"
)

const fallbackWidth = 80

// setup loads the user config, applies the global flags and installs the
// logger. Config problems are reported on stderr before the logger takes
// over.
func setup() (*config.UserConfig, *logging.Logger, error) {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		log.Warn("failed to load config, using defaults", "err", err)
		userConfig = config.DefaultConfig()
	}

	config.ApplyOverrides(config.Overrides{
		ThemeName:         themeName,
		Simplified:        simplified,
		LongFormThreshold: threshold,
		LogLevel:          logLevel,
	}, userConfig)

	logger, err := logging.Setup(config.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return userConfig, logger, nil
}

func closeLogger(l *logging.Logger) {
	if err := l.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
	}
}

func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallbackWidth
	}
	return w
}

// barState returns a plugin state showing mode with the bindings of cfg.
func barState(cfg *config.UserConfig, mode input.Mode) (*plugin.State, error) {
	keymaps, err := config.Keymaps(cfg.Keybindings)
	if err != nil {
		return nil, err
	}
	st := plugin.New()
	st.Threshold = config.LongFormThreshold
	st.Update(plugin.PermissionResult{Granted: true})
	st.Update(plugin.ModeUpdate{Info: plugin.ModeInfo{
		Mode:         mode,
		Keymap:       keymaps[mode],
		Palette:      theme.CurrentPalette(),
		Capabilities: plugin.Capabilities{SimplifiedUI: config.SimplifiedUI},
	}})
	return st, nil
}

// stdout downsamples colors to what the terminal supports and strips them
// when stdout is not a terminal.
func stdout() io.Writer {
	return colorprofile.NewWriter(os.Stdout, os.Environ())
}

func runRender(modeName string, width int) error {
	userConfig, logger, err := setup()
	if err != nil {
		return err
	}
	defer closeLogger(logger)

	mode, err := input.ParseMode(modeName)
	if err != nil {
		return err
	}
	if width <= 0 {
		width = terminalWidth()
	}

	st, err := barState(userConfig, mode)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout(), st.Render(1, width))
	return err
}

func runDemo() error {
	userConfig, logger, err := setup()
	if err != nil {
		return err
	}
	defer closeLogger(logger)

	keymaps, err := config.Keymaps(userConfig.Keybindings)
	if err != nil {
		return err
	}

	configPath, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	watcher, err := app.NewConfigWatcher(configPath)
	if err != nil {
		log.Warn("config reload disabled", "err", err)
	} else {
		defer func() {
			if err := watcher.Close(); err != nil {
				log.Warn("failed to stop config watcher", "err", err)
			}
		}()
	}

	host := app.NewHost(app.Options{
		Keymaps:    keymaps,
		Palette:    theme.CurrentPalette(),
		Simplified: config.SimplifiedUI,
		Threshold:  config.LongFormThreshold,
		ConfigPath: configPath,
		Watcher:    watcher,
		Reload:     reloadKeymaps,
	})

	p := tea.NewProgram(host)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	if host.Message != "" {
		fmt.Println(host.Message)
	}
	return nil
}

func reloadKeymaps(path string) (map[input.Mode]input.Keymap, error) {
	cfg, err := config.LoadConfigFile(path)
	if err != nil {
		return nil, err
	}
	return config.Keymaps(cfg.Keybindings)
}

func printConfigPath() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	fmt.Println(path)
	return nil
}

func findEditor() (string, error) {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if editor := os.Getenv(env); editor != "" {
			return editor, nil
		}
	}
	for _, candidate := range []string{"vim", "vi", "nano"} {
		if path, err := exec.LookPath(candidate); err == nil {
			return path, nil
		}
	}
	return "", errors.New("no editor found: set $EDITOR")
}

func editConfigFile() error {
	// Creates the file with defaults when missing.
	if _, err := config.LoadUserConfig(); err != nil {
		log.Warn("config has errors", "err", err)
	}
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	editor, err := findEditor()
	if err != nil {
		return err
	}

	// $EDITOR may carry arguments, e.g. "code --wait".
	fields := strings.Fields(editor)
	// #nosec G204 - running the user's own editor is intentional
	cmd := exec.Command(fields[0], append(fields[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor exited: %w", err)
	}

	if _, err := config.LoadConfigFile(path); err != nil {
		return err
	}
	fmt.Println("Configuration is valid.")
	return nil
}

func resetConfigToDefaults() error {
	path, err := config.ResetConfig()
	if err != nil {
		return fmt.Errorf("failed to reset config: %w", err)
	}
	fmt.Printf("Configuration reset to defaults: %s\n", path)
	return nil
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	keyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

func listKeybindings(modeName string) error {
	userConfig, logger, err := setup()
	if err != nil {
		return err
	}
	defer closeLogger(logger)

	var only *input.Mode
	if modeName != "" {
		mode, err := input.ParseMode(modeName)
		if err != nil {
			return err
		}
		only = &mode
	}

	keymaps, err := config.Keymaps(userConfig.Keybindings)
	if err != nil {
		return err
	}

	w := stdout()
	for _, section := range config.GetKeybindings(keymaps, only) {
		if len(section.Bindings) == 0 {
			continue
		}
		fmt.Fprintln(w, headingStyle.Render(section.Mode.String()))
		width := 0
		for _, b := range section.Bindings {
			width = max(width, lipgloss.Width(b.Key))
		}
		for _, b := range section.Bindings {
			pad := strings.Repeat(" ", width-lipgloss.Width(b.Key))
			fmt.Fprintf(w, "  %s%s  %s\n", keyStyle.Render(b.Key), pad, b.Description)
		}
		fmt.Fprintln(w)
	}
	return nil
}

func listThemes() error {
	w := stdout()
	for _, id := range theme.IDs() {
		if theme.IsCustom(id) {
			fmt.Fprintf(w, "%s %s\n", id, dimStyle.Render("(custom)"))
			continue
		}
		fmt.Fprintln(w, id)
	}
	return nil
}

// previewModes are the modes shown by themes preview.
var previewModes = []input.Mode{
	input.ModeNormal,
	input.ModeLocked,
	input.ModePane,
	input.ModeTab,
	input.ModeSearch,
}

func previewTheme(name string) error {
	themeName = name
	userConfig, logger, err := setup()
	if err != nil {
		return err
	}
	defer closeLogger(logger)

	width := terminalWidth()
	w := stdout()
	for _, mode := range previewModes {
		st, err := barState(userConfig, mode)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, dimStyle.Render(mode.String()))
		fmt.Fprintln(w, st.Render(1, width))
	}
	return nil
}

func completeModes(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var names []string
	for _, m := range input.Modes() {
		name := strings.ToLower(m.String())
		if strings.HasPrefix(name, strings.ToLower(toComplete)) {
			names = append(names, name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
