package dialog

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/formdlg/internal/logging"
	"github.com/muurk/formdlg/pkg/form"
)

// programRunner runs a bubbletea program to completion. Tests replace it
// to drive dialogs without a terminal.
type programRunner func(model tea.Model, opts ...tea.ProgramOption) (tea.Model, error)

func runProgram(model tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
	return tea.NewProgram(model, opts...).Run()
}

// Dialog is the blocking, one-shot controller around Model. New validates
// the form description; Show runs the modal loop and returns the single
// Result.
type Dialog struct {
	model Model
	shown bool
	run   programRunner
}

// New builds a dialog for the given description. It fails fast on an
// invalid spec, so no terminal state is touched for a form that could
// never render.
func New(spec form.Spec) (*Dialog, error) {
	model, err := NewModel(spec)
	if err != nil {
		return nil, err
	}
	return &Dialog{model: model, run: runProgram}, nil
}

// Show runs the dialog in the alternate screen and blocks until the user
// submits or cancels. Leaving the alternate screen restores the caller's
// terminal contents.
//
// A dialog resolves exactly once: a second Show returns a state error.
// Program options are passed through after the dialog's own, so callers
// can redirect input and output.
func (d *Dialog) Show(opts ...tea.ProgramOption) (form.Result, error) {
	if d.shown {
		return form.CancelledResult(),
			form.NewStateError("dialog %q was already shown; build a new one to show it again", d.model.spec.Title)
	}
	d.shown = true

	logging.Debug("showing dialog",
		zap.String("title", d.model.spec.Title),
		zap.Int("fields", len(d.model.spec.Fields)))

	options := append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	final, err := d.run(d.model, options...)
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
			logging.Debug("dialog interrupted", zap.String("title", d.model.spec.Title))
			return form.CancelledResult(), nil
		}
		return form.CancelledResult(), form.NewHostError("the terminal could not host the dialog", err)
	}

	model, ok := final.(Model)
	if !ok || !model.Done() {
		// The program ended without a resolution, which reads as a cancel.
		return form.CancelledResult(), nil
	}

	logging.Debug("dialog resolved",
		zap.String("title", d.model.spec.Title),
		zap.Bool("cancelled", model.Result().Cancelled))
	return model.Result(), nil
}
