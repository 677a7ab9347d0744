// Package form defines the data model for the formdlg engine: field and
// form descriptions, the validator protocol, the result contract, and the
// typed errors shared by every renderer.
//
// A form is described declaratively as a Spec holding an ordered list of
// FieldSpec values. The description is inert data: it can be built by hand,
// assembled with the fluent builder in package dialog, or loaded from a
// YAML file. Renderers (the modal dialog in package dialog, the sequential
// prompts in package prompt) consume a Spec and produce exactly one Result.
//
// # Field Kinds
//
// Each field carries a FieldKind that selects its renderer behavior:
//   - KindLabel: static display text, produces no value
//   - KindText: editable single-line text input
//   - KindSelect: choice among a fixed option list (free text unless readonly)
//   - KindCheckbox: boolean toggle
//   - KindButton: action trigger, produces no value
//
// Buttons carry an explicit ButtonRole (submit, cancel, or plain) instead of
// any convention based on their display text, so labels can be renamed or
// localized freely.
//
// # Usage Example
//
//	spec := form.Spec{
//	    Title: "Widget Settings",
//	    Fields: []form.FieldSpec{
//	        {Kind: form.KindText, Key: "widget_name", Label: "Name",
//	            Default: "my-widget", Validators: []form.Validator{form.Required}},
//	        {Kind: form.KindCheckbox, Key: "publish", Label: "Publish", Row: 1},
//	        {Kind: form.KindButton, Label: "OK", Role: form.RoleSubmit, Row: 2},
//	        {Kind: form.KindButton, Label: "Cancel", Role: form.RoleCancel, Row: 2},
//	    },
//	}
//	if err := spec.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Validation Protocol
//
// A Validator is a pure function from a field value to an optional error.
// On submit, validators run in field-declaration order and, within a field,
// in declared order; the first failure per field wins and the remaining
// validators for that field are skipped. Findings constructed with Warning
// are advisory: renderers offer to proceed instead of blocking.
//
// # Error Handling
//
// All engine errors are *form.Error values categorized by ErrorType.
// Construction problems (ErrorTypeSpec) fail fast before any UI appears;
// validator findings (ErrorTypeValidation) stay inside the dialog; lifecycle
// misuse (ErrorTypeState) and unusable terminals (ErrorTypeHost) are
// reported to the caller.
package form
