// Package prompt renders form descriptions as sequential line prompts.
//
// It is the fallback path for hosts that cannot run the modal dialog: CI
// pipelines, dumb terminals, screen readers. The same form.Spec drives
// both renderers, so callers choose at the call site:
//
//	result, err := prompt.Run(spec)
//
// Prompts are survey-based by default; RunWith swaps in any Driver, which
// is how the tests script answers without a terminal.
package prompt
