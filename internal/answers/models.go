package answers

// Registry represents the entire saved-answers file.
// It stores the last-used values of remembered form fields and
// application-wide preferences.
type Registry struct {
	Version     int               `yaml:"version"`
	Defaults    map[string]string `yaml:"defaults,omitempty"` // Keyed by field key
	Preferences *Preferences      `yaml:"preferences,omitempty"`
}

// Preferences represents application-wide user preferences.
// They are read by the CLI on startup and may be edited by hand.
type Preferences struct {
	PlainMode       bool `yaml:"plain_mode"`        // Prefer sequential prompts over the dialog
	SkipWarnConfirm bool `yaml:"skip_warn_confirm"` // Leave advisory checks off the demo form
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:     registryVersion,
		Defaults:    make(map[string]string),
		Preferences: &Preferences{},
	}
}

// Get returns the remembered value for a field key.
// Returns the empty string if nothing was saved under the key.
func (r *Registry) Get(key string) string {
	return r.Defaults[key]
}

// Set remembers a value for a field key.
func (r *Registry) Set(key, value string) {
	if r.Defaults == nil {
		r.Defaults = make(map[string]string)
	}
	r.Defaults[key] = value
}

// Plain reports whether the user prefers sequential prompts over the
// dialog renderer.
func (r *Registry) Plain() bool {
	return r.Preferences != nil && r.Preferences.PlainMode
}

// SkipWarnConfirm reports whether advisory checks should be left off
// forms the CLI builds itself.
func (r *Registry) SkipWarnConfirm() bool {
	return r.Preferences != nil && r.Preferences.SkipWarnConfirm
}
