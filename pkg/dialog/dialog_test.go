package dialog

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/formdlg/pkg/form"
)

// stubRunner resolves the dialog's model without a terminal.
func stubRunner(resolve func(Model) Model) programRunner {
	return func(model tea.Model, _ ...tea.ProgramOption) (tea.Model, error) {
		return resolve(model.(Model)), nil
	}
}

func TestNewFailsFastOnInvalidSpec(t *testing.T) {
	_, err := New(form.Spec{
		Title:  "Bad",
		Fields: []form.FieldSpec{{Kind: form.KindText, Label: "missing key"}},
	})
	if err == nil {
		t.Fatal("expected an error for a text field without a key")
	}
	if !form.IsSpecError(err) {
		t.Errorf("expected a spec error, got %v", err)
	}
}

func TestShowIsOneShot(t *testing.T) {
	d, err := New(demoSpec())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	d.run = stubRunner(func(m Model) Model {
		m.done = true
		m.result = form.Result{Values: map[string]any{"host": "localhost"}}
		return m
	})

	result, err := d.Show()
	if err != nil {
		t.Fatalf("first Show failed: %v", err)
	}
	if result.Cancelled {
		t.Error("first Show reported cancelled")
	}
	if result.Values["host"] != "localhost" {
		t.Errorf("Values[host] = %v, want localhost", result.Values["host"])
	}

	_, err = d.Show()
	if err == nil {
		t.Fatal("second Show succeeded, want a state error")
	}
	if !form.IsStateError(err) {
		t.Errorf("second Show returned %v, want a state error", err)
	}
}

func TestShowCancelled(t *testing.T) {
	d, err := New(demoSpec())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	d.run = stubRunner(func(m Model) Model {
		m.done = true
		m.result = form.CancelledResult()
		return m
	})

	result, err := d.Show()
	if err != nil {
		t.Fatalf("Show failed: %v", err)
	}
	if !result.Cancelled {
		t.Error("result not cancelled")
	}
	if result.Values != nil {
		t.Errorf("cancelled result carries values: %v", result.Values)
	}
}

func TestShowMapsProgramErrors(t *testing.T) {
	tests := []struct {
		name      string
		runErr    error
		wantErr   bool
		hostError bool
	}{
		{"killed program reads as cancel", tea.ErrProgramKilled, false, false},
		{"interrupt reads as cancel", tea.ErrInterrupted, false, false},
		{"terminal failure is a host error", errors.New("could not open tty"), true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := New(demoSpec())
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			d.run = func(model tea.Model, _ ...tea.ProgramOption) (tea.Model, error) {
				return model, tt.runErr
			}

			result, err := d.Show()
			if !result.Cancelled {
				t.Error("result not cancelled")
			}
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				if tt.hostError && !form.IsHostError(err) {
					t.Errorf("got %v, want a host error", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestShowWithoutResolutionCancels(t *testing.T) {
	d, err := New(demoSpec())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	// The program ends without the model ever resolving.
	d.run = stubRunner(func(m Model) Model { return m })

	result, err := d.Show()
	if err != nil {
		t.Fatalf("Show failed: %v", err)
	}
	if !result.Cancelled {
		t.Error("unresolved program did not read as cancelled")
	}
}

func TestShowPassesProgramOptions(t *testing.T) {
	d, err := New(demoSpec())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var got int
	d.run = func(model tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
		got = len(opts)
		m := model.(Model)
		m.done = true
		m.result = form.CancelledResult()
		return m, nil
	}

	if _, err := d.Show(tea.WithoutRenderer()); err != nil {
		t.Fatalf("Show failed: %v", err)
	}
	// The alternate screen plus the caller's option.
	if got != 2 {
		t.Errorf("runner saw %d options, want 2", got)
	}
}
