package specfile

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/formdlg/internal/logging"
	"github.com/muurk/formdlg/pkg/form"
)

// fileSpec is the YAML shape of a form description.
type fileSpec struct {
	Title     string      `yaml:"title"`
	MinWidth  int         `yaml:"min_width"`
	MinHeight int         `yaml:"min_height"`
	Fields    []fileField `yaml:"fields"`
}

// fileField is the YAML shape of one field. Kind, role, and validator
// names are resolved to their typed counterparts during conversion.
type fileField struct {
	Kind       string            `yaml:"kind"`
	Key        string            `yaml:"key"`
	Label      string            `yaml:"label"`
	Default    any               `yaml:"default"`
	Options    []string          `yaml:"options"`
	Readonly   bool              `yaml:"readonly"`
	Validators []string          `yaml:"validators"`
	Row        int               `yaml:"row"`
	Col        int               `yaml:"col"`
	Help       string            `yaml:"help"`
	Role       string            `yaml:"role"`
	BindTo     string            `yaml:"bind_to"`
	Hints      map[string]string `yaml:"hints"`
}

// Load reads a YAML form description from disk.
func Load(path string) (form.Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return form.Spec{}, fmt.Errorf("failed to read form file: %w", err)
	}

	spec, err := Parse(data)
	if err != nil {
		return form.Spec{}, fmt.Errorf("%s: %w", path, err)
	}

	logging.Debug("loaded form file",
		zap.String("path", path),
		zap.String("title", spec.Title),
		zap.Int("fields", len(spec.Fields)))

	return spec, nil
}

// Parse converts YAML form-description bytes into a validated spec.
func Parse(data []byte) (form.Spec, error) {
	var file fileSpec
	if err := yaml.Unmarshal(data, &file); err != nil {
		return form.Spec{}, form.NewSpecError("", "invalid YAML: %v", err)
	}

	spec := form.Spec{
		Title:     file.Title,
		MinWidth:  file.MinWidth,
		MinHeight: file.MinHeight,
		Fields:    make([]form.FieldSpec, 0, len(file.Fields)),
	}

	for i, ff := range file.Fields {
		field, err := convertField(ff, i)
		if err != nil {
			return form.Spec{}, err
		}
		spec.Fields = append(spec.Fields, field)
	}

	if err := spec.Validate(); err != nil {
		return form.Spec{}, err
	}

	return spec, nil
}

// convertField resolves one YAML field into a FieldSpec.
func convertField(ff fileField, index int) (form.FieldSpec, error) {
	name := fieldName(ff, index)

	kind, err := form.ParseFieldKind(ff.Kind)
	if err != nil {
		return form.FieldSpec{}, form.NewSpecError(name, "unknown field kind %q", ff.Kind)
	}

	role, err := form.ParseButtonRole(ff.Role)
	if err != nil {
		return form.FieldSpec{}, form.NewSpecError(name, "unknown button role %q", ff.Role)
	}

	field := form.FieldSpec{
		Kind:     kind,
		Key:      ff.Key,
		Label:    ff.Label,
		Default:  ff.Default,
		Options:  ff.Options,
		Readonly: ff.Readonly,
		Row:      ff.Row,
		Col:      ff.Col,
		Help:     ff.Help,
		Role:     role,
		BindTo:   ff.BindTo,
		Hints:    ff.Hints,
	}

	for _, vname := range ff.Validators {
		v, err := validatorByName(vname, name, ff.Options)
		if err != nil {
			return form.FieldSpec{}, err
		}
		field.Validators = append(field.Validators, v)
	}

	return field, nil
}

// validatorByName maps a validator name from a form file to the standard
// validator it names. The choices validator takes its valid set from the
// field's own option list.
func validatorByName(name, field string, options []string) (form.Validator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "required":
		return form.Required, nil
	case "choices":
		if len(options) == 0 {
			return nil, form.NewSpecError(field, "the choices validator needs the field to declare options")
		}
		return form.Choices(options...), nil
	case "path_exists":
		return form.PathExists, nil
	case "no_spaces":
		return form.NoSpaces, nil
	default:
		return nil, form.NewSpecError(field, "unknown validator %q", name)
	}
}

// fieldName returns the best identifier for loader error messages.
func fieldName(ff fileField, index int) string {
	if ff.Key != "" {
		return ff.Key
	}
	if ff.Label != "" {
		return ff.Label
	}
	return fmt.Sprintf("#%d", index)
}
