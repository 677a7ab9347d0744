package prompt

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/muurk/formdlg/internal/logging"
	"github.com/muurk/formdlg/pkg/form"
)

// Run renders the form as sequential prompts on the default survey-backed
// driver. It is the fallback for hosts that cannot run the full dialog:
// pipelines, dumb terminals, accessibility setups.
func Run(spec form.Spec) (form.Result, error) {
	return RunWith(surveyDriver{}, spec)
}

// RunWith renders the form on the given driver. Fields are asked in
// declaration order with the same validators the dialog would run; a value
// rejected with a hard error is re-asked, warnings collect into one final
// proceed-anyway confirmation. An interrupt at any prompt yields a
// cancelled result and asks nothing further.
func RunWith(d Driver, spec form.Spec) (form.Result, error) {
	if err := spec.Validate(); err != nil {
		return form.CancelledResult(), err
	}

	logging.Debug("prompting form",
		zap.String("title", spec.Title),
		zap.Int("fields", len(spec.Fields)))

	if spec.Title != "" {
		if err := d.Info(spec.Title); err != nil {
			return abort(err)
		}
	}

	values := make(map[string]any)
	var warnings []string

	for _, f := range spec.Fields {
		switch f.Kind {
		case form.KindLabel:
			if err := d.Info(f.Label); err != nil {
				return abort(err)
			}
		case form.KindButton:
			// Submission is implicit at the end; interrupt cancels.
			continue
		default:
			value, warns, err := askField(d, f)
			if err != nil {
				return abort(err)
			}
			values[f.Key] = value
			warnings = append(warnings, warns...)
		}
	}

	if len(warnings) > 0 {
		ok, err := d.Confirm(ConfirmConfig{
			Message: "Proceed anyway?",
			Help:    strings.Join(warnings, "\n"),
		})
		if err != nil {
			return abort(err)
		}
		if !ok {
			return form.CancelledResult(), nil
		}
	}

	return form.Result{Values: values}, nil
}

// askField prompts until the field's validators accept the value. Hard
// errors show their message and re-ask; a warning records and moves on.
func askField(d Driver, f form.FieldSpec) (any, []string, error) {
	for {
		value, err := askOnce(d, f)
		if err != nil {
			return nil, nil, err
		}

		finding := firstFinding(f, value)
		if finding == nil {
			return value, nil, nil
		}
		if form.IsWarning(finding) {
			return value, []string{fieldTitle(f) + ": " + findingMessage(finding)}, nil
		}
		if err := d.Info("✗ " + findingMessage(finding)); err != nil {
			return nil, nil, err
		}
	}
}

// askOnce maps one field to its prompt. Editable selects become free-text
// inputs with the options listed in the help text.
func askOnce(d Driver, f form.FieldSpec) (any, error) {
	switch {
	case f.Kind == form.KindCheckbox:
		return d.Confirm(ConfirmConfig{
			Message: f.Label,
			Default: f.DefaultBool(),
			Help:    f.Help,
		})

	case f.Kind == form.KindSelect && f.Readonly:
		idx, err := d.Select(SelectConfig{
			Message:      f.Label,
			Options:      f.Options,
			DefaultIndex: defaultIndex(f),
			Help:         f.Help,
		})
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(f.Options) {
			return nil, fmt.Errorf("select returned index %d for %d options", idx, len(f.Options))
		}
		return f.Options[idx], nil

	case f.Kind == form.KindSelect:
		help := "options: " + strings.Join(f.Options, ", ")
		if f.Help != "" {
			help = f.Help + " (" + help + ")"
		}
		value, err := d.Input(InputConfig{
			Message: f.Label,
			Default: f.DefaultString(),
			Help:    help,
		})
		if err != nil {
			return nil, err
		}
		return strings.TrimSpace(value), nil

	default: // form.KindText
		value, err := d.Input(InputConfig{
			Message: f.Label,
			Default: f.DefaultString(),
			Help:    f.Help,
		})
		if err != nil {
			return nil, err
		}
		return strings.TrimSpace(value), nil
	}
}

// firstFinding runs the field's validators in order and returns the first
// rejection, matching the dialog's per-field short circuit.
func firstFinding(f form.FieldSpec, value any) error {
	for _, validate := range f.Validators {
		if err := validate(value); err != nil {
			return err
		}
	}
	return nil
}

// abort folds a driver failure into the result contract: interrupts read
// as a cancel, anything else is a host problem.
func abort(err error) (form.Result, error) {
	if errors.Is(err, ErrInterrupted) {
		return form.CancelledResult(), nil
	}
	return form.CancelledResult(), form.NewHostError("prompt session failed", err)
}

func defaultIndex(f form.FieldSpec) int {
	if d := f.DefaultString(); d != "" {
		return indexOf(f.Options, d)
	}
	return 0
}

func findingMessage(err error) string {
	var fe *form.Error
	if errors.As(err, &fe) {
		return fe.Message
	}
	return err.Error()
}

func fieldTitle(f form.FieldSpec) string {
	if f.Label != "" {
		return f.Label
	}
	return f.Key
}
