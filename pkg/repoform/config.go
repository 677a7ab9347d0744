package repoform

import "github.com/muurk/formdlg/pkg/form"

// Config is the domain configuration a submitted repository form
// produces. The YAML tags define the format the CLI prints and writes.
type Config struct {
	Name             string `yaml:"name"`
	ProjectDirectory string `yaml:"project_directory"`
	Username         string `yaml:"username"`
	Branch           string `yaml:"branch"`
	Description      string `yaml:"description,omitempty"`
	Visibility       string `yaml:"visibility"`
}

// Result wraps the engine outcome with the domain conversion.
type Result struct {
	form.Result
}

// ToConfig converts the submitted values into a Config. Conversion fails
// on a cancelled result and never inspects how the values were rendered.
func (r Result) ToConfig() (Config, error) {
	if r.Cancelled {
		return Config{}, form.NewStateError("the repository form was cancelled; there are no values to convert")
	}
	return Config{
		Name:             r.StringValue(KeyName),
		ProjectDirectory: r.StringValue(KeyDirectory),
		Username:         r.StringValue(KeyUsername),
		Branch:           r.StringValue(KeyBranch),
		Description:      r.StringValue(KeyDescription),
		Visibility:       r.StringValue(KeyVisibility),
	}, nil
}
