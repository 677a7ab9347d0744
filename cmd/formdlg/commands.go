package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/formdlg/internal/answers"
	"github.com/muurk/formdlg/internal/logging"
	"github.com/muurk/formdlg/internal/specfile"
	"github.com/muurk/formdlg/internal/ui"
	"github.com/muurk/formdlg/internal/urls"
	"github.com/muurk/formdlg/pkg/dialog"
	"github.com/muurk/formdlg/pkg/form"
	"github.com/muurk/formdlg/pkg/prompt"
	"github.com/muurk/formdlg/pkg/repoform"
)

// Command flags
var (
	plainMode bool // Sequential prompts instead of the modal dialog

	formFile string
	outFile  string

	repoDirectory   string
	repoUsername    string
	repoName        string
	repoDescription string
	repoBranch      string
	repoVisibility  string
	saveAnswers     bool
)

func init() {
	// Common flags for all commands (persistent on root)
	rootCmd.PersistentFlags().BoolVar(&plainMode, "plain", false, "Use sequential prompts instead of the full-screen dialog")

	// Add subcommands directly to root
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(repoCmd)
}

// initLogging configures zap from FORMDLG_LOG_LEVEL (silent by default)
func initLogging() {
	if err := logging.InitializeFromEnv(); err != nil {
		// Ignore error, GetLogger will create fallback logger
		_ = err
	}
}

// loadAnswers loads the saved-answers registry, falling back to a fresh
// one when the config directory is unreachable
func loadAnswers() *answers.Registry {
	reg, err := answers.Load()
	if err != nil {
		logging.Warn("could not load saved answers", zap.Error(err))
		return answers.NewRegistry()
	}
	return reg
}

// usePlain decides between the modal dialog and sequential prompts.
// The --plain flag wins, then the saved preference, then TTY detection.
func usePlain(reg *answers.Registry) bool {
	return plainMode || reg.Plain() || !ui.IsInteractive()
}

func modeName(plain bool) string {
	if plain {
		return "sequential prompts"
	}
	return "dialog"
}

// showSpec runs the form either as a modal dialog or as sequential
// prompts. Both paths return the same Result contract.
func showSpec(spec form.Spec, plain bool) (form.Result, error) {
	if plain {
		return prompt.Run(spec)
	}
	d, err := dialog.New(spec)
	if err != nil {
		return form.CancelledResult(), err
	}
	return d.Show()
}

// valueDetails flattens submitted values for a result box
func valueDetails(res form.Result) map[string]string {
	details := make(map[string]string, len(res.Values))
	for key, value := range res.Values {
		details[key] = fmt.Sprintf("%v", value)
	}
	return details
}

// demoCmd launches the interactive demo form
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Launch the interactive demo form",
	Long: `Launch a demo form that exercises every field kind.

The form contains a label, text fields with blocking and advisory
validators, a button bound to the workspace field, a readonly select,
and a checkbox. Submitted values are printed in a result box.

This is the default command: running formdlg with no arguments
launches the same form.`,
	Example: `  # Launch the demo form
  formdlg demo
  # Or simply (demo is default):
  formdlg

  # Walk the same form as sequential prompts
  formdlg demo --plain`,
	RunE: runDemo,
}

// demoSpec builds the demo form: one field of every kind, a bound
// button, and both validator severities. Advisory validators are left
// out when the user asked to skip warning confirmations.
func demoSpec(skipWarnings bool) form.Spec {
	nameValidators := []form.Validator{form.Required}
	if !skipWarnings {
		nameValidators = append(nameValidators, form.NoSpaces)
	}

	return dialog.NewBuilder("Widget Publisher").
		MinSize(64, 0).
		AddLabel("Describe the widget to publish.").
		AddText("widget_name", "Widget name").
		Default("my-widget").
		Help("Lowercase letters and dashes work best").
		Validate(nameValidators...).
		AddText("workspace", "Workspace").
		Default(".").
		Validate(form.PathExists).
		AddButton("Use current dir", form.RolePlain).
		Bind("workspace").
		OnPress(useWorkingDir).
		AddSelect("channel", "Release channel", "stable", "beta", "nightly").
		Readonly().
		Default("stable").
		Validate(form.Choices("stable", "beta", "nightly")).
		AddCheckbox("publish", "Publish after build").
		AddButton("Publish", form.RoleSubmit).
		AddButton("Cancel", form.RoleCancel).
		Build()
}

// useWorkingDir replaces the bound field with the working directory
func useWorkingDir(_ string) (string, bool) {
	dir, err := os.Getwd()
	if err != nil {
		return "", false
	}
	return dir, true
}

func runDemo(cmd *cobra.Command, args []string) error {
	// Suppress usage on execution errors (we're past argument parsing)
	cmd.SilenceUsage = true
	initLogging()
	defer logging.Sync()

	p := ui.NewPrinter(nil)
	reg := loadAnswers()
	spec := demoSpec(reg.SkipWarnConfirm())
	plain := usePlain(reg)

	p.PrintHeader(spec.Title, "formdlg", map[string]string{
		"Mode": modeName(plain),
	})

	res, err := showSpec(spec, plain)
	if err != nil {
		p.PrintError("Demo form failed", err, form.TroubleshootingTips(err))
		return err
	}
	if res.Cancelled {
		p.PrintWarning("Form cancelled", map[string]string{"Form": spec.Title})
		return nil
	}

	p.PrintSuccess("Form submitted", valueDetails(res))
	return nil
}

// showCmd renders a form loaded from a YAML file
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Render a form from a YAML file",
	Long: `Render a form described in a YAML file.

The file declares the form title, optional minimum size, and the fields
with their kinds, defaults, options, layout, and validator names. The
form runs as a modal dialog and the submitted values are printed, or
written to a file with --out.

Unknown field kinds, button roles, or validator names fail before any
UI appears.`,
	Example: `  # Render a form and print the submitted values
  formdlg show -f connection.yaml

  # Write the submitted values to a file as YAML
  formdlg show -f connection.yaml --out values.yaml

  # Walk the form as sequential prompts
  formdlg show -f connection.yaml --plain`,
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVarP(&formFile, "file", "f", "", "Form file to render (YAML)")
	showCmd.Flags().StringVar(&outFile, "out", "", "Write submitted values to this file as YAML")
	_ = showCmd.MarkFlagRequired("file")
}

func runShow(cmd *cobra.Command, args []string) error {
	// Suppress usage on execution errors (we're past argument parsing)
	cmd.SilenceUsage = true
	initLogging()
	defer logging.Sync()

	p := ui.NewPrinter(nil)

	spec, err := specfile.Load(formFile)
	if err != nil {
		p.PrintError("Could not load form", err, loadTips(err))
		return err
	}

	reg := loadAnswers()
	plain := usePlain(reg)

	p.PrintHeader(spec.Title, "formdlg show", map[string]string{
		"File": formFile,
		"Mode": modeName(plain),
	})

	res, err := showSpec(spec, plain)
	if err != nil {
		p.PrintError("Form failed", err, form.TroubleshootingTips(err))
		return err
	}
	if res.Cancelled {
		p.PrintWarning("Form cancelled", map[string]string{
			"File": formFile,
			"Form": spec.Title,
		})
		return nil
	}

	if outFile != "" {
		if err := writeValues(outFile, res.Values); err != nil {
			p.PrintError("Could not write values", err, []string{
				"Check that the output directory exists and is writable",
			})
			return err
		}
		p.PrintSuccess("Form submitted", map[string]string{
			"Form":   spec.Title,
			"Values": outFile,
		})
		return nil
	}

	p.PrintSuccess("Form submitted", valueDetails(res))
	return nil
}

// loadTips turns a form-file load failure into troubleshooting advice
func loadTips(err error) []string {
	if form.IsSpecError(err) {
		return append(form.TroubleshootingTips(err),
			"Form file reference: "+urls.FormFileReference)
	}
	return []string{
		"Check that the file path is correct and the file is readable",
		"Form file reference: " + urls.FormFileReference,
	}
}

// writeValues writes submitted values to a YAML file
func writeValues(path string, values map[string]any) error {
	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to encode values: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write values file: %w", err)
	}
	return nil
}

// repoCmd runs the repository-settings dialog
var repoCmd = &cobra.Command{
	Use:   "repo",
	Short: "Run the repository-settings dialog",
	Long: `Run the repository-settings dialog and print the resulting
configuration as YAML.

Flags pre-fill the matching fields. With --save, the username and
visibility from a successful submit are remembered and pre-fill the
next run. Saved answers live in the formdlg config directory
(override with FORMDLG_CONFIG_DIR).`,
	Example: `  # Run the dialog with empty fields
  formdlg repo

  # Pre-fill the username and remember the answers
  formdlg repo --username octocat --save

  # Walk the dialog as sequential prompts
  formdlg repo --plain`,
	RunE: runRepo,
}

func init() {
	repoCmd.Flags().StringVar(&repoDirectory, "directory", "", "Pre-fill the project directory field")
	repoCmd.Flags().StringVar(&repoUsername, "username", "", "Pre-fill the username field")
	repoCmd.Flags().StringVar(&repoName, "name", "", "Pre-fill the repository name field")
	repoCmd.Flags().StringVar(&repoDescription, "description", "", "Pre-fill the description field")
	repoCmd.Flags().StringVar(&repoBranch, "branch", "", "Pre-fill the default branch field")
	repoCmd.Flags().StringVar(&repoVisibility, "visibility", "", "Pre-fill the visibility field (public, private, local)")
	repoCmd.Flags().BoolVar(&saveAnswers, "save", false, "Remember username and visibility for the next run")
}

func runRepo(cmd *cobra.Command, args []string) error {
	// Suppress usage on execution errors (we're past argument parsing)
	cmd.SilenceUsage = true
	initLogging()
	defer logging.Sync()

	p := ui.NewPrinter(nil)
	reg := loadAnswers()

	defaults := repoform.Defaults{
		Directory:   repoDirectory,
		Username:    repoUsername,
		Name:        repoName,
		Description: repoDescription,
		Branch:      repoBranch,
		Visibility:  repoVisibility,
	}
	// Saved answers fill the gaps the flags leave open
	if defaults.Username == "" {
		defaults.Username = reg.Get(repoform.KeyUsername)
	}
	if defaults.Visibility == "" {
		defaults.Visibility = reg.Get(repoform.KeyVisibility)
	}

	plain := usePlain(reg)
	params := map[string]string{"Mode": modeName(plain)}
	if path, err := answers.GetAnswersPath(); err == nil {
		params["Answers file"] = path
	}
	p.PrintHeader("Repository Settings", "formdlg repo", params)

	f := repoform.New(defaults)
	var res repoform.Result
	var err error
	if plain {
		res, err = f.ShowPrompts()
	} else {
		res, err = f.Show()
	}
	if err != nil {
		p.PrintError("Repository form failed", err, form.TroubleshootingTips(err))
		return err
	}
	if res.Cancelled {
		p.PrintWarning("Repository form cancelled", nil)
		return nil
	}

	cfg, err := res.ToConfig()
	if err != nil {
		p.PrintError("Could not read form values", err, form.TroubleshootingTips(err))
		return err
	}

	if saveAnswers {
		reg.Set(repoform.KeyUsername, cfg.Username)
		reg.Set(repoform.KeyVisibility, cfg.Visibility)
		if err := reg.Save(); err != nil {
			logging.Warn("could not save answers", zap.Error(err))
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	p.PrintSuccess("Repository configured", map[string]string{
		"Name":       cfg.Name,
		"Directory":  cfg.ProjectDirectory,
		"Visibility": cfg.Visibility,
	})
	p.Print(string(data))

	return nil
}
