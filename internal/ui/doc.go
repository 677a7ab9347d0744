// Package ui provides terminal UI components for the formdlg CLI.
//
// This package uses Lipgloss to render polished terminal output around
// the dialogs themselves. Unlike the interactive dialog engine, these
// components follow a "run once and exit" pattern - they render output
// compellingly but don't require user interaction.
//
// # Architecture
//
// The UI package provides three main component types:
//
//   - Header: Command banner showing operation name and parameters
//   - Result: Success/failure/warning boxes with styled information
//   - Printer: Writer-bound output helper the commands print through
//
// Commands print a Header before showing a dialog and a Result box
// after it returns, so a submitted form and its outcome read as one
// coherent transcript.
//
// Example:
//
//	p := ui.NewPrinter(nil)
//	p.PrintHeader("Repository Settings", "formdlg repo --save", map[string]string{
//	    "Answers file": answersPath,
//	})
//	// ... show the dialog ...
//	p.PrintSuccess("Repository configured", map[string]string{
//	    "Name": cfg.Name,
//	})
//
// # Terminal Detection
//
// IsInteractive reports whether stdin and stdout are both terminals.
// Commands use it to decide between the full-screen dialog and the
// sequential prompt fallback when output is piped or redirected.
//
// # Logging Integration
//
// This package expects logging to be controlled via the FORMDLG_LOG_LEVEL
// environment variable. When unset or empty, zap logging is silent, allowing
// the curated UI output to be displayed cleanly. Set FORMDLG_LOG_LEVEL to
// "debug", "info", "warn", or "error" to enable logging output.
package ui
