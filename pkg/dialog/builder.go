package dialog

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/formdlg/pkg/form"
)

// Builder provides a fluent API for assembling a form description. Each
// Add method appends a field on the next row; the modifier methods apply
// to the most recently added field.
//
// Example usage:
//
//	result, err := dialog.NewBuilder("New Repository").
//	    AddText("name", "Repository name").Validate(form.Required, form.NoSpaces).
//	    AddSelect("visibility", "Visibility", "public", "private").Readonly().
//	    AddCheckbox("init", "Initialize with README").Default(true).
//	    AddButton("OK", form.RoleSubmit).
//	    AddButton("Cancel", form.RoleCancel).
//	    Show()
//
// A builder sequence produces exactly the Spec a caller would construct by
// hand; Build materializes it without validating, leaving the construction
// gate to the dialog.
type Builder struct {
	spec    form.Spec
	nextRow int
}

// NewBuilder creates a builder for a form with the given title.
func NewBuilder(title string) *Builder {
	return &Builder{spec: form.Spec{Title: title}}
}

// add appends a field on the next free row.
func (b *Builder) add(f form.FieldSpec) *Builder {
	f.Row = b.nextRow
	f.Col = 0
	b.nextRow++
	b.spec.Fields = append(b.spec.Fields, f)
	return b
}

// last returns the most recently added field, or nil on an empty builder
// so modifier calls before any Add are safe no-ops.
func (b *Builder) last() *form.FieldSpec {
	if len(b.spec.Fields) == 0 {
		return nil
	}
	return &b.spec.Fields[len(b.spec.Fields)-1]
}

// AddLabel appends a static text field.
func (b *Builder) AddLabel(text string) *Builder {
	return b.add(form.FieldSpec{Kind: form.KindLabel, Label: text})
}

// AddText appends a single-line text input.
func (b *Builder) AddText(key, label string) *Builder {
	return b.add(form.FieldSpec{Kind: form.KindText, Key: key, Label: label})
}

// AddSelect appends a choice field over the given options.
func (b *Builder) AddSelect(key, label string, options ...string) *Builder {
	return b.add(form.FieldSpec{Kind: form.KindSelect, Key: key, Label: label, Options: options})
}

// AddCheckbox appends a boolean toggle.
func (b *Builder) AddCheckbox(key, label string) *Builder {
	return b.add(form.FieldSpec{Kind: form.KindCheckbox, Key: key, Label: label})
}

// AddButton appends a button with the given role.
func (b *Builder) AddButton(label string, role form.ButtonRole) *Builder {
	return b.add(form.FieldSpec{Kind: form.KindButton, Label: label, Role: role})
}

// Default sets the last field's initial value.
func (b *Builder) Default(v any) *Builder {
	if f := b.last(); f != nil {
		f.Default = v
	}
	return b
}

// Help sets the last field's supplementary text.
func (b *Builder) Help(text string) *Builder {
	if f := b.last(); f != nil {
		f.Help = text
	}
	return b
}

// Validate appends validators to the last field.
func (b *Builder) Validate(v ...form.Validator) *Builder {
	if f := b.last(); f != nil {
		f.Validators = append(f.Validators, v...)
	}
	return b
}

// Readonly marks the last field readonly. On a select this keeps the
// option cycler but rejects free text.
func (b *Builder) Readonly() *Builder {
	if f := b.last(); f != nil {
		f.Readonly = true
	}
	return b
}

// At overrides the last field's grid position. Later Add calls continue on
// the row below it.
func (b *Builder) At(row, col int) *Builder {
	if f := b.last(); f != nil {
		f.Row = row
		f.Col = col
		b.nextRow = row + 1
	}
	return b
}

// Bind attaches the last button to a text or select field. Bound buttons
// render beside their target and join the field focus order.
func (b *Builder) Bind(targetKey string) *Builder {
	if f := b.last(); f != nil {
		f.BindTo = targetKey
	}
	return b
}

// OnPress sets the last button's press handler.
func (b *Builder) OnPress(fn form.PressHandler) *Builder {
	if f := b.last(); f != nil {
		f.OnPress = fn
	}
	return b
}

// Hint attaches an opaque presentation hint to the last field.
func (b *Builder) Hint(k, v string) *Builder {
	if f := b.last(); f != nil {
		if f.Hints == nil {
			f.Hints = make(map[string]string)
		}
		f.Hints[k] = v
	}
	return b
}

// MinSize sets the dialog's minimum width and height in terminal cells.
func (b *Builder) MinSize(width, height int) *Builder {
	b.spec.MinWidth = width
	b.spec.MinHeight = height
	return b
}

// Build materializes the Spec. It does not validate; dialog construction
// runs the gate so hand-built and builder-built specs fail the same way.
func (b *Builder) Build() form.Spec {
	spec := b.spec
	spec.Fields = make([]form.FieldSpec, len(b.spec.Fields))
	copy(spec.Fields, b.spec.Fields)
	return spec
}

// Show builds the spec and runs it as a one-shot dialog.
func (b *Builder) Show(opts ...tea.ProgramOption) (form.Result, error) {
	d, err := New(b.Build())
	if err != nil {
		return form.CancelledResult(), err
	}
	return d.Show(opts...)
}
