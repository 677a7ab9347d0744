package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/muurk/formdlg/pkg/form"
)

// TestDemoSpecValidates guards the default command against construction
// errors in the demo form
func TestDemoSpecValidates(t *testing.T) {
	for _, skip := range []bool{false, true} {
		spec := demoSpec(skip)
		if err := spec.Validate(); err != nil {
			t.Errorf("demoSpec(%v) invalid: %v", skip, err)
		}
	}

	spec := demoSpec(false)
	kinds := make(map[form.FieldKind]bool)
	for _, f := range spec.Fields {
		kinds[f.Kind] = true
	}
	for _, kind := range []form.FieldKind{form.KindLabel, form.KindText, form.KindSelect, form.KindCheckbox, form.KindButton} {
		if !kinds[kind] {
			t.Errorf("demo form missing a %s field", kind)
		}
	}
}

// TestDemoSpecSkipsWarnings tests the skip_warn_confirm preference:
// the demo form drops its advisory validators, keeping the blocking ones
func TestDemoSpecSkipsWarnings(t *testing.T) {
	warnsOn := func(spec form.Spec, value string) bool {
		field, ok := spec.Field("widget_name")
		if !ok {
			t.Fatal("widget_name field missing from demo form")
		}
		for _, validate := range field.Validators {
			if form.IsWarning(validate(value)) {
				return true
			}
		}
		return false
	}

	if !warnsOn(demoSpec(false), "name with spaces") {
		t.Error("default demo form should warn about spaces")
	}
	if warnsOn(demoSpec(true), "name with spaces") {
		t.Error("demo form should drop advisory validators when warnings are skipped")
	}

	// The blocking validator survives either way.
	field, _ := demoSpec(true).Field("widget_name")
	failed := false
	for _, validate := range field.Validators {
		if err := validate(""); err != nil {
			failed = true
		}
	}
	if !failed {
		t.Error("required validator should survive the skip-warnings preference")
	}
}

func TestWriteValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.yaml")
	values := map[string]any{
		"widget_name": "my-widget",
		"publish":     false,
	}

	if err := writeValues(path, values); err != nil {
		t.Fatalf("writeValues() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading values file: %v", err)
	}

	var got map[string]any
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("values file is not valid YAML: %v", err)
	}
	if got["widget_name"] != "my-widget" {
		t.Errorf("widget_name = %v, want my-widget", got["widget_name"])
	}
	if got["publish"] != false {
		t.Errorf("publish = %v, want false", got["publish"])
	}
}

func TestLoadTips(t *testing.T) {
	specTips := strings.Join(loadTips(form.NewSpecError("", "unknown validator")), "\n")
	if !strings.Contains(specTips, "unique key") {
		t.Errorf("spec-error tips should include the taxonomy advice, got %q", specTips)
	}
	if !strings.Contains(specTips, "form-files") {
		t.Errorf("spec-error tips should link the form file reference, got %q", specTips)
	}

	ioTips := strings.Join(loadTips(errors.New("no such file")), "\n")
	if !strings.Contains(ioTips, "file path") {
		t.Errorf("file-error tips should mention the path, got %q", ioTips)
	}
}

func TestValueDetails(t *testing.T) {
	details := valueDetails(form.Result{Values: map[string]any{
		"widget_name": "my-widget",
		"publish":     true,
	}})

	if details["widget_name"] != "my-widget" {
		t.Errorf("widget_name = %q, want my-widget", details["widget_name"])
	}
	if details["publish"] != "true" {
		t.Errorf("publish = %q, want \"true\"", details["publish"])
	}
}
