// Formdlg renders declarative form dialogs in the terminal.
//
// It provides an interactive demo form, a renderer for YAML form files,
// and a ready-made repository-settings dialog. Forms run as full-screen
// modal dialogs on capable terminals and fall back to sequential prompts
// everywhere else.
//
// Usage:
//
//	formdlg [command] [flags]
//
// Running without arguments launches the demo form.
// See 'formdlg --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/formdlg/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "formdlg",
	Short: "Terminal Form Dialogs",
	Long: `Declarative form dialogs for the terminal.

Describes forms as data (fields, defaults, validators, layout), renders
them as modal dialogs, and returns the submitted values. Terminals that
cannot host the dialog get the same form as sequential prompts.

If no command is specified, an interactive demo form will launch.`,
	Version: version.Version,
	Example: `  # Launch the demo form
  formdlg

  # Render a form from a YAML file
  formdlg show -f connection.yaml

  # Run the repository-settings dialog and remember the answers
  formdlg repo --save`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the demo form when no subcommand provided
		return runDemo(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("formdlg %s (commit: %s)\n", version.Version, version.Commit)
	},
}
