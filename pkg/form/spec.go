package form

import (
	"fmt"
	"strings"
)

// FieldKind identifies which renderer behavior applies to a field.
// The set is closed: renderers dispatch over it with a single table,
// and adding a kind means adding one table entry.
type FieldKind int

const (
	// KindLabel is static display text. Labels produce no value and are
	// skipped in focus order.
	KindLabel FieldKind = iota
	// KindText is an editable single-line text input.
	KindText
	// KindSelect is a choice among a fixed, non-empty option list. Unless
	// the field is readonly, free-text entry is also accepted.
	KindSelect
	// KindCheckbox is a boolean toggle.
	KindCheckbox
	// KindButton is an action trigger. Its behavior is selected by the
	// field's ButtonRole. Buttons produce no value.
	KindButton
)

// String returns the lowercase kind name used in YAML form files.
func (k FieldKind) String() string {
	switch k {
	case KindLabel:
		return "label"
	case KindText:
		return "text"
	case KindSelect:
		return "select"
	case KindCheckbox:
		return "checkbox"
	case KindButton:
		return "button"
	default:
		return fmt.Sprintf("FieldKind(%d)", int(k))
	}
}

// ParseFieldKind is the inverse of FieldKind.String.
func ParseFieldKind(s string) (FieldKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "label":
		return KindLabel, nil
	case "text":
		return KindText, nil
	case "select":
		return KindSelect, nil
	case "checkbox":
		return KindCheckbox, nil
	case "button":
		return KindButton, nil
	default:
		return 0, NewSpecError("", "unknown field kind %q", s)
	}
}

// ProducesValue reports whether fields of this kind contribute an entry to
// the result mapping. Labels and buttons do not.
func (k FieldKind) ProducesValue() bool {
	return k == KindText || k == KindSelect || k == KindCheckbox
}

// ButtonRole selects the built-in behavior of a button field. The role is
// explicit data on the field; display text carries no semantics.
type ButtonRole int

const (
	// RolePlain buttons run their PressHandler, if any. This is the zero
	// value, so an unspecified role is always safe.
	RolePlain ButtonRole = iota
	// RoleSubmit buttons trigger the validation and submit protocol.
	RoleSubmit
	// RoleCancel buttons cancel the dialog immediately, with no validation.
	RoleCancel
)

// String returns the lowercase role name used in YAML form files.
func (r ButtonRole) String() string {
	switch r {
	case RolePlain:
		return "plain"
	case RoleSubmit:
		return "submit"
	case RoleCancel:
		return "cancel"
	default:
		return fmt.Sprintf("ButtonRole(%d)", int(r))
	}
}

// ParseButtonRole is the inverse of ButtonRole.String. An empty string
// parses to RolePlain.
func ParseButtonRole(s string) (ButtonRole, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "plain":
		return RolePlain, nil
	case "submit":
		return RoleSubmit, nil
	case "cancel":
		return RoleCancel, nil
	default:
		return 0, NewSpecError("", "unknown button role %q", s)
	}
}

// PressHandler is the callback attached to a plain button. For a bound
// button it receives the target field's current text and, when ok is true,
// the returned value replaces it. For an unbound button it receives "" and
// the return is discarded. Handlers run synchronously on the UI loop and
// must not block.
type PressHandler func(current string) (value string, ok bool)

// FieldSpec describes one field of a form. It is plain data, treated as
// immutable once placed in a Spec: renderers never write back into it.
type FieldSpec struct {
	// Kind selects the renderer behavior (required).
	Kind FieldKind

	// Key identifies this field's entry in the result mapping. Required
	// for value-producing kinds, and must be unique among them. Labels and
	// buttons take no key.
	Key string

	// Label is the display text shown next to (or on) the control.
	Label string

	// Default seeds the control. Its type must match the kind: string for
	// text and select, bool for checkbox, nil for label and button. A nil
	// default means the kind's zero value. A non-empty select default must
	// be one of Options.
	Default any

	// Options is the fixed choice list for select fields. Required and
	// non-empty when Kind is KindSelect; unused otherwise.
	Options []string

	// Readonly is meaningful for select fields only: the control still
	// offers every option but rejects free-text entry. Other kinds accept
	// the flag without interpreting it.
	Readonly bool

	// Validators run against the collected value on submit, in order.
	// Meaningful only for value-producing kinds.
	Validators []Validator

	// Row and Col place the field on a zero-based grid. Fields sharing a
	// position render side by side in declaration order; the engine never
	// treats overlap as an error.
	Row int
	Col int

	// Help is supplementary text rendered near the field.
	Help string

	// Role selects a button's built-in behavior. Meaningful only when
	// Kind is KindButton.
	Role ButtonRole

	// BindTo names the text or select field a plain button assists. A
	// bound button renders beside its target and joins the field focus
	// order instead of the action bar.
	BindTo string

	// OnPress is the plain-button callback. Submit and cancel buttons
	// never invoke it.
	OnPress PressHandler

	// Hints carries opaque presentation data. The engine passes it
	// through without interpreting it.
	Hints map[string]string
}

// DefaultString returns the field's default as a string, or "" when the
// default is unset.
func (f FieldSpec) DefaultString() string {
	if s, ok := f.Default.(string); ok {
		return s
	}
	return ""
}

// DefaultBool returns the field's default as a bool, or false when the
// default is unset.
func (f FieldSpec) DefaultBool() bool {
	if b, ok := f.Default.(bool); ok {
		return b
	}
	return false
}

// name returns the best identifier for error messages.
func (f FieldSpec) name(index int) string {
	if f.Key != "" {
		return f.Key
	}
	if f.Label != "" {
		return f.Label
	}
	return fmt.Sprintf("#%d", index)
}

// Spec describes an entire form: dialog-level hints plus the ordered field
// list. A Spec is owned by one renderer for the duration of one show and is
// never mutated after being handed over.
type Spec struct {
	// Title is the dialog title.
	Title string

	// MinWidth and MinHeight are layout hints in terminal cells. Zero
	// means renderer defaults (60 cells wide, content-driven height).
	MinWidth  int
	MinHeight int

	// Fields in declaration order. Declaration order governs focus order
	// and validation order; Row/Col govern visual placement only.
	Fields []FieldSpec
}

// Field returns the first field with the given key.
func (s Spec) Field(key string) (FieldSpec, bool) {
	for _, f := range s.Fields {
		if f.Kind.ProducesValue() && f.Key == key {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// Validate checks every construction invariant and returns the first
// violation as a spec error. Renderers call it before any UI appears, so
// an invalid description can never reach the screen.
func (s Spec) Validate() error {
	seen := make(map[string]int, len(s.Fields))

	for i, f := range s.Fields {
		name := f.name(i)

		if f.Kind.ProducesValue() {
			if f.Key == "" {
				return NewSpecError(name, "%s field requires a key", f.Kind)
			}
			if prev, dup := seen[f.Key]; dup {
				return NewSpecError(f.Key, "duplicate key (fields %d and %d)", prev, i)
			}
			seen[f.Key] = i
		} else if f.Key != "" {
			return NewSpecError(f.Key, "%s fields do not take a key", f.Kind)
		}

		if err := validateDefault(f, name); err != nil {
			return err
		}

		if f.Kind == KindSelect {
			if len(f.Options) == 0 {
				return NewSpecError(name, "select field requires at least one option")
			}
			if d := f.DefaultString(); d != "" && !containsString(f.Options, d) {
				return NewSpecError(name, "default %q is not one of the options", d)
			}
		}

		if f.Kind != KindButton {
			if f.Role != RolePlain {
				return NewSpecError(name, "role %s is only valid on button fields", f.Role)
			}
			if f.BindTo != "" || f.OnPress != nil {
				return NewSpecError(name, "only button fields can bind to another field")
			}
		}
	}

	// Bind targets can appear after the button that names them, so they
	// are resolved in a second pass.
	for i, f := range s.Fields {
		if f.Kind != KindButton || f.BindTo == "" {
			continue
		}
		if f.Role != RolePlain {
			return NewSpecError(f.name(i), "%s buttons cannot bind to a field", f.Role)
		}
		target, ok := s.Field(f.BindTo)
		if !ok {
			return NewSpecError(f.name(i), "binds to unknown field %q", f.BindTo)
		}
		if target.Kind != KindText && target.Kind != KindSelect {
			return NewSpecError(f.name(i), "binds to %s field %q; bind targets must be text or select", target.Kind, f.BindTo)
		}
	}

	return nil
}

// validateDefault enforces the default-type-matches-kind rule.
func validateDefault(f FieldSpec, name string) error {
	if f.Default == nil {
		return nil
	}
	switch f.Kind {
	case KindText, KindSelect:
		if _, ok := f.Default.(string); !ok {
			return NewSpecError(name, "%s default must be a string, got %T", f.Kind, f.Default)
		}
	case KindCheckbox:
		if _, ok := f.Default.(bool); !ok {
			return NewSpecError(name, "checkbox default must be a bool, got %T", f.Default)
		}
	default:
		return NewSpecError(name, "%s fields do not take a default", f.Kind)
	}
	return nil
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
