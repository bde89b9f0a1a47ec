// Package main implements keybar, a status bar renderer for terminal
// multiplexers. It prints the bar for any mode and width, and can run an
// interactive demo host to try bindings and themes live.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var (
	themeName  string
	simplified bool
	threshold  int
	logLevel   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "keybar",
		Short: "Multiplexer status bar renderer",
		Long: `keybar - a status bar for terminal multiplexers

keybar lays out the one-line shortcut bar of a multiplexer: the shared
modifier, one tile per mode shortcut and the hints of the active mode,
fitted to the width of the terminal.`,
		Example: `  # Run the interactive demo
  keybar

  # Print the bar of Pane mode at 80 columns
  keybar render --mode pane --width 80

  # Use a theme without separator glyphs
  keybar --theme dracula --simplified

  # List all keybindings of Tab mode
  keybar keybinds list --mode tab`,
		Version: version,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runDemo()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Color theme to use (e.g., dracula, nord). Leave empty for the built-in palette")
	rootCmd.PersistentFlags().BoolVar(&simplified, "simplified", false, "Draw the bar without separator glyphs")
	rootCmd.PersistentFlags().IntVar(&threshold, "threshold", 0, "Width above which shortcut tiles show labels (default: from config or 110)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log to a file at this level: debug, info, warn, error")

	var renderMode string
	var renderWidth int

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Print the status bar of a mode",
		Long: `Print the status bar of a mode to stdout

The width defaults to the width of the terminal, or 80 columns when stdout
is not a terminal.`,
		Example: `  keybar render --mode locked
  keybar render --mode search --width 60`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runRender(renderMode, renderWidth)
		},
	}
	renderCmd.Flags().StringVarP(&renderMode, "mode", "m", "normal", "Mode to render")
	renderCmd.Flags().IntVarP(&renderWidth, "width", "w", 0, "Width in columns (default: terminal width)")
	_ = renderCmd.RegisterFlagCompletionFunc("mode", completeModes)

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the interactive demo host",
		Long: `Run a simulated multiplexer with the status bar along the bottom row

Key presses run the configured bindings against simulated tabs and panes.
The config file is reloaded whenever it changes.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runDemo()
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage keybar configuration",
		Long:  `Manage keybar configuration file and settings`,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		Long:  `Print the path to the keybar configuration file`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return printConfigPath()
		},
	}

	configEditCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit configuration in $EDITOR",
		Long: `Open the keybar configuration file in your default editor

The editor is determined by checking $EDITOR, $VISUAL, or common editors
like vim, vi and nano in that order.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return editConfigFile()
		},
	}

	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long:  `Overwrite the keybar configuration file with the default settings`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return resetConfigToDefaults()
		},
	}

	configCmd.AddCommand(configPathCmd, configEditCmd, configResetCmd)

	var keybindsMode string

	keybindsCmd := &cobra.Command{
		Use:     "keybinds",
		Aliases: []string{"keys", "kb"},
		Short:   "View keybinding configuration",
		Long:    `View and inspect keybar keybinding configuration`,
	}

	keybindsListCmd := &cobra.Command{
		Use:   "list",
		Short: "List all keybindings",
		Long:  `Display all configured keybindings, grouped by mode`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return listKeybindings(keybindsMode)
		},
	}
	keybindsListCmd.Flags().StringVarP(&keybindsMode, "mode", "m", "", "Only list the bindings of this mode")
	_ = keybindsListCmd.RegisterFlagCompletionFunc("mode", completeModes)

	keybindsCmd.AddCommand(keybindsListCmd)

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "List and preview color themes",
	}

	themesListCmd := &cobra.Command{
		Use:   "list",
		Short: "List all available themes",
		Long:  `List the built-in themes and the custom themes found in the themes directory`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return listThemes()
		},
	}

	themesPreviewCmd := &cobra.Command{
		Use:   "preview <theme>",
		Short: "Preview the status bar in a theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return previewTheme(args[0])
		},
	}

	themesCmd.AddCommand(themesListCmd, themesPreviewCmd)

	rootCmd.AddCommand(renderCmd, demoCmd, configCmd, keybindsCmd, themesCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}
