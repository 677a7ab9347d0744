package form

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents the category of a form engine error.
type ErrorType int

const (
	// ErrorTypeSpec indicates an invalid form description. Spec errors are
	// fatal and raised before any UI appears.
	ErrorTypeSpec ErrorType = iota
	// ErrorTypeValidation indicates a field value rejected by a validator.
	// Validation findings are recoverable: the dialog stays open and the
	// user corrects the value.
	ErrorTypeValidation
	// ErrorTypeState indicates dialog lifecycle misuse, such as showing a
	// one-shot dialog twice.
	ErrorTypeState
	// ErrorTypeHost indicates the terminal could not host the dialog.
	ErrorTypeHost
)

// String returns a human-readable name for the error type.
func (et ErrorType) String() string {
	switch et {
	case ErrorTypeSpec:
		return "Spec Error"
	case ErrorTypeValidation:
		return "Validation Error"
	case ErrorTypeState:
		return "State Error"
	case ErrorTypeHost:
		return "Host Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", int(et))
	}
}

// Error is the typed error produced by the form engine.
type Error struct {
	Type    ErrorType // Category of error
	Field   string    // Key or label of the field involved, if any
	Message string    // Human-readable error message
	Err     error     // Underlying error (if any)
	Warning bool      // Advisory finding the user may override on submit
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Type.String())
	if e.Field != "" {
		fmt.Fprintf(&b, ": field %q", e.Field)
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Err != nil {
		fmt.Fprintf(&b, " (caused by: %v)", e.Err)
	}
	return b.String()
}

// Unwrap returns the underlying error for error chain inspection.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewSpecError creates a construction-time error for the named field.
// Field may be empty for form-level problems.
func NewSpecError(field, format string, args ...any) *Error {
	return &Error{Type: ErrorTypeSpec, Field: field, Message: fmt.Sprintf(format, args...)}
}

// NewValidationError creates a recoverable per-field validation finding.
func NewValidationError(field, format string, args ...any) *Error {
	return &Error{Type: ErrorTypeValidation, Field: field, Message: fmt.Sprintf(format, args...)}
}

// Warning creates a warning-severity validation finding. Warnings do not
// block submission: renderers surface them and offer to proceed.
func Warning(format string, args ...any) *Error {
	return &Error{Type: ErrorTypeValidation, Message: fmt.Sprintf(format, args...), Warning: true}
}

// NewStateError creates a lifecycle misuse error.
func NewStateError(format string, args ...any) *Error {
	return &Error{Type: ErrorTypeState, Message: fmt.Sprintf(format, args...)}
}

// NewHostError creates a terminal/host error wrapping the underlying cause.
func NewHostError(message string, err error) *Error {
	return &Error{Type: ErrorTypeHost, Message: message, Err: err}
}

// IsSpecError checks if an error is a construction-time spec error.
func IsSpecError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == ErrorTypeSpec
}

// IsValidationError checks if an error is a validation finding.
func IsValidationError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == ErrorTypeValidation
}

// IsStateError checks if an error is a lifecycle misuse error.
func IsStateError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == ErrorTypeState
}

// IsHostError checks if an error is a terminal/host error.
func IsHostError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == ErrorTypeHost
}

// IsWarning checks if a validation finding is advisory rather than
// blocking.
func IsWarning(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Warning
}

// SeparateWarnings splits validation findings into advisory warnings and
// hard errors. Hard errors block submission; warnings are offered to the
// user for confirmation.
func SeparateWarnings(findings []error) (warnings, hard []error) {
	for _, err := range findings {
		if IsWarning(err) {
			warnings = append(warnings, err)
		} else {
			hard = append(hard, err)
		}
	}
	return warnings, hard
}

// TroubleshootingTips returns per-type advice bullets for an engine
// error. Validation findings carry their advice in the finding itself,
// so they yield no tips, as do non-engine errors.
func TroubleshootingTips(err error) []string {
	var e *Error
	if !errors.As(err, &e) {
		return nil
	}

	switch e.Type {
	case ErrorTypeSpec:
		return []string{
			"Give every text, select, and checkbox field a unique key",
			"Give every select field at least one option",
			"Make sure a select default appears in its option list",
			"Leave keys off label and button fields",
		}
	case ErrorTypeState:
		return []string{
			"Construct a fresh dialog for every show",
			"Read the Result of the first show instead of showing again",
		}
	case ErrorTypeHost:
		return []string{
			"Run from an interactive terminal, not a pipe or redirect",
			"Use the sequential prompt fallback on dumb terminals",
			"Check that TERM names a capable terminal type",
		}
	}
	return nil
}

// TroubleshootingHint returns user-friendly advice for an engine error.
func TroubleshootingHint(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return "An unexpected error occurred. Please try again."
	}

	var summary string
	switch e.Type {
	case ErrorTypeSpec:
		summary = "The form description is invalid."
	case ErrorTypeValidation:
		return "A field value was rejected. Check the message shown next to the field."
	case ErrorTypeState:
		summary = "The dialog was reused after it already resolved."
	case ErrorTypeHost:
		summary = "The terminal could not host the dialog."
	default:
		return "An error occurred. Please check the error message for details."
	}

	lines := []string{summary, "Troubleshooting:"}
	for _, tip := range TroubleshootingTips(err) {
		lines = append(lines, "  • "+tip)
	}
	return strings.Join(lines, "\n")
}
