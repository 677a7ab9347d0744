package form

import (
	"testing"
)

// sampleSpec returns a valid spec covering every field kind.
func sampleSpec() Spec {
	return Spec{
		Title:    "Widget Settings",
		MinWidth: 64,
		Fields: []FieldSpec{
			{Kind: KindLabel, Label: "Configure your widget"},
			{Kind: KindText, Key: "widget_name", Label: "Name", Default: "my-widget",
				Validators: []Validator{Required}, Row: 1},
			{Kind: KindSelect, Key: "color", Label: "Color",
				Options: []string{"red", "green", "blue"}, Default: "green",
				Readonly: true, Row: 2},
			{Kind: KindCheckbox, Key: "publish", Label: "Publish", Default: false, Row: 3},
			{Kind: KindButton, Label: "OK", Role: RoleSubmit, Row: 4},
			{Kind: KindButton, Label: "Cancel", Role: RoleCancel, Row: 4, Col: 1},
		},
	}
}

// TestFieldKindString tests kind name round-trips
func TestFieldKindString(t *testing.T) {
	kinds := []FieldKind{KindLabel, KindText, KindSelect, KindCheckbox, KindButton}
	names := []string{"label", "text", "select", "checkbox", "button"}

	for i, k := range kinds {
		if k.String() != names[i] {
			t.Errorf("FieldKind(%d).String() = %q, want %q", int(k), k.String(), names[i])
		}
		parsed, err := ParseFieldKind(names[i])
		if err != nil {
			t.Errorf("ParseFieldKind(%q) error = %v", names[i], err)
		}
		if parsed != k {
			t.Errorf("ParseFieldKind(%q) = %v, want %v", names[i], parsed, k)
		}
	}

	if FieldKind(99).String() != "FieldKind(99)" {
		t.Errorf("Unexpected String for out-of-range kind: %q", FieldKind(99).String())
	}
}

// TestParseFieldKind tests kind parsing edge cases
func TestParseFieldKind(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    FieldKind
		wantErr bool
	}{
		{"Valid: lowercase", "text", KindText, false},
		{"Valid: uppercase", "SELECT", KindSelect, false},
		{"Valid: surrounding space", "  checkbox  ", KindCheckbox, false},
		{"Invalid: unknown", "spinner", 0, true},
		{"Invalid: empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFieldKind(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseFieldKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseFieldKind(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if err != nil && !IsSpecError(err) {
				t.Errorf("Expected spec error, got %T", err)
			}
		})
	}
}

// TestParseButtonRole tests role parsing, including the empty default
func TestParseButtonRole(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ButtonRole
		wantErr bool
	}{
		{"Valid: empty means plain", "", RolePlain, false},
		{"Valid: plain", "plain", RolePlain, false},
		{"Valid: submit", "submit", RoleSubmit, false},
		{"Valid: cancel", "CANCEL", RoleCancel, false},
		{"Invalid: unknown", "ok", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseButtonRole(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseButtonRole(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseButtonRole(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestProducesValue tests the value-producing kind classification
func TestProducesValue(t *testing.T) {
	producing := []FieldKind{KindText, KindSelect, KindCheckbox}
	for _, k := range producing {
		if !k.ProducesValue() {
			t.Errorf("%v.ProducesValue() = false, want true", k)
		}
	}
	for _, k := range []FieldKind{KindLabel, KindButton} {
		if k.ProducesValue() {
			t.Errorf("%v.ProducesValue() = true, want false", k)
		}
	}
}

// TestSpecValidate tests every construction-time invariant
func TestSpecValidate(t *testing.T) {
	tests := []struct {
		name    string
		fields  []FieldSpec
		wantErr bool
	}{
		{
			name:    "Valid: full sample",
			fields:  sampleSpec().Fields,
			wantErr: false,
		},
		{
			name:    "Valid: empty form",
			fields:  nil,
			wantErr: false,
		},
		{
			name: "Valid: editable select with empty default",
			fields: []FieldSpec{
				{Kind: KindSelect, Key: "flavor", Options: []string{"sweet", "salty"}},
			},
			wantErr: false,
		},
		{
			name: "Invalid: text without key",
			fields: []FieldSpec{
				{Kind: KindText, Label: "Name"},
			},
			wantErr: true,
		},
		{
			name: "Invalid: checkbox without key",
			fields: []FieldSpec{
				{Kind: KindCheckbox, Label: "Publish"},
			},
			wantErr: true,
		},
		{
			name: "Invalid: duplicate keys",
			fields: []FieldSpec{
				{Kind: KindText, Key: "name"},
				{Kind: KindCheckbox, Key: "name"},
			},
			wantErr: true,
		},
		{
			name: "Invalid: label with key",
			fields: []FieldSpec{
				{Kind: KindLabel, Key: "heading", Label: "Heading"},
			},
			wantErr: true,
		},
		{
			name: "Invalid: button with key",
			fields: []FieldSpec{
				{Kind: KindButton, Key: "ok", Label: "OK", Role: RoleSubmit},
			},
			wantErr: true,
		},
		{
			name: "Invalid: select with no options",
			fields: []FieldSpec{
				{Kind: KindSelect, Key: "color", Options: nil},
			},
			wantErr: true,
		},
		{
			name: "Invalid: select default outside options",
			fields: []FieldSpec{
				{Kind: KindSelect, Key: "color", Options: []string{"red", "blue"}, Default: "green"},
			},
			wantErr: true,
		},
		{
			name: "Invalid: text default wrong type",
			fields: []FieldSpec{
				{Kind: KindText, Key: "name", Default: true},
			},
			wantErr: true,
		},
		{
			name: "Invalid: checkbox default wrong type",
			fields: []FieldSpec{
				{Kind: KindCheckbox, Key: "publish", Default: "yes"},
			},
			wantErr: true,
		},
		{
			name: "Invalid: label with default",
			fields: []FieldSpec{
				{Kind: KindLabel, Label: "Heading", Default: "x"},
			},
			wantErr: true,
		},
		{
			name: "Invalid: role on text field",
			fields: []FieldSpec{
				{Kind: KindText, Key: "name", Role: RoleSubmit},
			},
			wantErr: true,
		},
		{
			name: "Invalid: bind on text field",
			fields: []FieldSpec{
				{Kind: KindText, Key: "name", BindTo: "other"},
			},
			wantErr: true,
		},
		{
			name: "Valid: plain button bound to text field",
			fields: []FieldSpec{
				{Kind: KindText, Key: "dir", Label: "Directory"},
				{Kind: KindButton, Label: "Use CWD", BindTo: "dir",
					OnPress: func(string) (string, bool) { return "", false }},
			},
			wantErr: false,
		},
		{
			name: "Invalid: button bound to unknown field",
			fields: []FieldSpec{
				{Kind: KindButton, Label: "Use CWD", BindTo: "missing"},
			},
			wantErr: true,
		},
		{
			name: "Invalid: button bound to checkbox",
			fields: []FieldSpec{
				{Kind: KindCheckbox, Key: "publish"},
				{Kind: KindButton, Label: "Toggle", BindTo: "publish"},
			},
			wantErr: true,
		},
		{
			name: "Invalid: submit button with bind",
			fields: []FieldSpec{
				{Kind: KindText, Key: "name"},
				{Kind: KindButton, Label: "OK", Role: RoleSubmit, BindTo: "name"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := Spec{Title: "Test", Fields: tt.fields}
			err := spec.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !IsSpecError(err) {
				t.Errorf("Expected spec error, got %T: %v", err, err)
			}
		})
	}
}

// TestSpecField tests field lookup by key
func TestSpecField(t *testing.T) {
	spec := sampleSpec()

	f, ok := spec.Field("color")
	if !ok {
		t.Fatal("Field(\"color\") not found")
	}
	if f.Kind != KindSelect {
		t.Errorf("Field(\"color\").Kind = %v, want %v", f.Kind, KindSelect)
	}

	if _, ok := spec.Field("missing"); ok {
		t.Error("Field(\"missing\") found, want not found")
	}

	// Buttons have no key and must never be returned.
	if _, ok := spec.Field(""); ok {
		t.Error("Field(\"\") found, want not found")
	}
}

// TestFieldSpecDefaults tests the typed default accessors
func TestFieldSpecDefaults(t *testing.T) {
	text := FieldSpec{Kind: KindText, Key: "name", Default: "my-widget"}
	if got := text.DefaultString(); got != "my-widget" {
		t.Errorf("DefaultString() = %q, want %q", got, "my-widget")
	}
	if got := text.DefaultBool(); got {
		t.Errorf("DefaultBool() = true, want false for string default")
	}

	unset := FieldSpec{Kind: KindText, Key: "name"}
	if got := unset.DefaultString(); got != "" {
		t.Errorf("DefaultString() = %q, want empty for unset default", got)
	}

	check := FieldSpec{Kind: KindCheckbox, Key: "publish", Default: true}
	if !check.DefaultBool() {
		t.Error("DefaultBool() = false, want true")
	}
}
