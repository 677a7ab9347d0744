package repoform

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/formdlg/pkg/dialog"
	"github.com/muurk/formdlg/pkg/form"
	"github.com/muurk/formdlg/pkg/prompt"
)

// Field keys of the repository form. Callers use them to pre-fill
// Defaults from saved answers and to read submitted values.
const (
	KeyDirectory   = "directory"
	KeyUsername    = "username"
	KeyName        = "name"
	KeyDescription = "description"
	KeyBranch      = "branch"
	KeyVisibility  = "visibility"
)

// Visibility levels offered by the repository form.
const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
	VisibilityLocal   = "local"
)

// DefaultBranch seeds the branch field when Defaults leaves it empty.
const DefaultBranch = "master"

var visibilities = []string{VisibilityPublic, VisibilityPrivate, VisibilityLocal}

// Defaults pre-fills the repository form. Zero values fall back to safe
// choices: branch "master", visibility "public".
type Defaults struct {
	Directory   string
	Username    string
	Name        string
	Description string
	Branch      string
	Visibility  string
}

// Form is the repository-settings dialog. Each Show builds a fresh
// one-shot dialog around the same description, so a Form may be shown
// more than once.
type Form struct {
	spec form.Spec
}

// New builds the repository form around the given defaults.
func New(defaults Defaults) *Form {
	branch := defaults.Branch
	if branch == "" {
		branch = DefaultBranch
	}
	visibility := defaults.Visibility
	if !validVisibility(visibility) {
		visibility = VisibilityPublic
	}

	spec := dialog.NewBuilder("Repository Settings").
		MinSize(72, 0).
		AddText(KeyDirectory, "Project directory").
		Default(defaults.Directory).
		Validate(form.PathExists).
		Help("Where the repository will live").
		AddButton("Use current dir", form.RolePlain).
		Bind(KeyDirectory).
		OnPress(useCurrentDir).
		AddText(KeyUsername, "Username").
		Default(defaults.Username).
		Validate(form.Required).
		AddText(KeyBranch, "Default branch").
		Default(branch).
		At(2, 1).
		AddText(KeyName, "Repository name").
		Default(defaults.Name).
		Validate(form.Required, form.NoSpaces).
		AddText(KeyDescription, "Description").
		Default(defaults.Description).
		AddSelect(KeyVisibility, "Visibility", visibilities...).
		Readonly().
		Default(visibility).
		Validate(form.Choices(visibilities...)).
		AddButton("Create", form.RoleSubmit).
		AddButton("Cancel", form.RoleCancel).
		Build()

	return &Form{spec: spec}
}

// Spec returns the underlying form description.
func (f *Form) Spec() form.Spec {
	return f.spec
}

// Show renders the form as a modal dialog and blocks until it resolves.
func (f *Form) Show(opts ...tea.ProgramOption) (Result, error) {
	d, err := dialog.New(f.spec)
	if err != nil {
		return Result{form.CancelledResult()}, err
	}
	res, err := d.Show(opts...)
	return Result{res}, err
}

// ShowPrompts walks the form as sequential prompts, for terminals that
// cannot host the dialog.
func (f *Form) ShowPrompts() (Result, error) {
	res, err := prompt.Run(f.spec)
	return Result{res}, err
}

// useCurrentDir replaces the directory field with the working directory.
func useCurrentDir(_ string) (string, bool) {
	dir, err := os.Getwd()
	if err != nil {
		return "", false
	}
	return dir, true
}

func validVisibility(v string) bool {
	for _, s := range visibilities {
		if s == v {
			return true
		}
	}
	return false
}
