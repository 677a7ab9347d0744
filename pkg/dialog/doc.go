// Package dialog renders form descriptions as modal terminal dialogs.
//
// The package has three layers. Model is a bubbletea component that hosts
// can embed in their own programs; it emits SubmitMsg and CancelMsg through
// the command stream. Dialog wraps Model into a blocking, one-shot call:
// Show runs a private program in the alternate screen and returns the
// single form.Result. Builder assembles the form.Spec fluently for callers
// that prefer chained calls over struct literals.
//
// # Showing a dialog
//
//	spec := form.Spec{
//	    Title: "New Repository",
//	    Fields: []form.FieldSpec{
//	        {Kind: form.KindText, Key: "name", Label: "Name", Validators: []form.Validator{form.Required}},
//	        {Kind: form.KindButton, Label: "OK", Role: form.RoleSubmit},
//	        {Kind: form.KindButton, Label: "Cancel", Role: form.RoleCancel},
//	    },
//	}
//	d, err := dialog.New(spec) // fails fast on an invalid description
//	if err != nil {
//	    return err
//	}
//	result, err := d.Show()
//
// Show blocks until the user submits or cancels and resolves exactly once;
// showing the same Dialog again returns a state error.
//
// # Keys
//
// Tab and shift+tab cycle focus through the fields and the action bar with
// wraparound. Enter advances from a text or select field and activates a
// focused button. Up and down cycle select options; space and enter toggle
// checkboxes. Esc and ctrl+c cancel from anywhere.
//
// # Submit protocol
//
// Submission runs every field's validators in declaration order with a
// per-field short circuit. Hard errors keep the dialog open and render
// inline next to their fields. Warnings alone raise a proceed-anyway
// overlay; confirming resolves the submit, declining returns to the form.
package dialog
