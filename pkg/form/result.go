package form

// Result is the immutable outcome of showing a form: a cancellation flag
// plus the mapping from field key to final value. Exactly one Result is
// produced per show, at the moment the modal loop resolves.
//
// When Cancelled is true, Values is nil: no validator ran and no field
// value leaks out of a cancelled dialog. Otherwise Values holds an entry
// for every value-producing field: trimmed strings for text and select
// fields, bools for checkboxes.
type Result struct {
	Cancelled bool
	Values    map[string]any
}

// CancelledResult returns the outcome of a cancelled dialog.
func CancelledResult() Result {
	return Result{Cancelled: true}
}

// StringValue returns the value for key as a string, or "" when the key is
// absent or holds a non-string.
func (r Result) StringValue(key string) string {
	if s, ok := r.Values[key].(string); ok {
		return s
	}
	return ""
}

// BoolValue returns the value for key as a bool, or false when the key is
// absent or holds a non-bool.
func (r Result) BoolValue(key string) bool {
	if b, ok := r.Values[key].(bool); ok {
		return b
	}
	return false
}
