package form

import (
	"os"
	"path/filepath"
	"strings"
)

// Validator tests one field's collected value. A nil return accepts the
// value; a non-nil return rejects it and its message is shown next to the
// field. Validators must be pure and synchronous: they run on the UI loop
// during submit, and the first failure per field short-circuits the rest.
type Validator func(value any) error

// Required rejects nil values and blank strings. A false checkbox value is
// present and passes.
func Required(value any) error {
	switch v := value.(type) {
	case nil:
		return NewValidationError("", "this field is required")
	case string:
		if strings.TrimSpace(v) == "" {
			return NewValidationError("", "this field is required")
		}
	}
	return nil
}

// Choices restricts a string value to a fixed set.
func Choices(valid ...string) Validator {
	return func(value any) error {
		if s, ok := value.(string); ok && containsString(valid, s) {
			return nil
		}
		return NewValidationError("", "must be one of: %s", strings.Join(valid, ", "))
	}
}

// PathExists accepts values naming an existing file or directory. A
// relative path is resolved against the working directory and then against
// each of its ancestors, so project-relative paths validate from nested
// checkouts.
func PathExists(value any) error {
	s, _ := value.(string)
	s = strings.TrimSpace(s)
	if s == "" {
		return NewValidationError("", "path does not exist")
	}

	if filepath.IsAbs(s) {
		if pathExists(s) {
			return nil
		}
		return NewValidationError("", "path does not exist: %s", s)
	}

	dir, err := os.Getwd()
	if err != nil {
		return NewValidationError("", "path does not exist: %s", s)
	}
	for {
		if pathExists(filepath.Join(dir, s)) {
			return nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return NewValidationError("", "path does not exist: %s", s)
}

// NoSpaces flags string values containing whitespace. The finding is a
// warning: submit offers to proceed instead of blocking.
func NoSpaces(value any) error {
	if s, ok := value.(string); ok && strings.ContainsAny(s, " \t") {
		return Warning("contains spaces; this may cause issues")
	}
	return nil
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
