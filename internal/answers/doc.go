// Package answers persists values remembered from previous form runs.
//
// The registry is a small YAML file in the per-OS configuration
// directory. Remembered values pre-fill matching fields the next time
// the repository dialog is built, and a preferences block holds
// application-wide knobs that commands read on startup.
//
// # File Location
//
// The answers file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/formdlg/answers.yaml or $HOME/.config/formdlg/answers.yaml
//   - macOS: $HOME/.config/formdlg/answers.yaml
//   - Windows: %LOCALAPPDATA%\formdlg\answers.yaml
//
// Setting FORMDLG_CONFIG_DIR overrides the directory entirely, which
// keeps tests and sandboxed installs away from the real user
// configuration.
//
// # Corruption Recovery
//
// Saved answers are a convenience, never required state. A registry
// file that cannot be parsed (or carries an unknown version) is
// replaced by a fresh registry instead of failing the caller; the next
// Save overwrites it.
//
// # Thread Safety
//
// The registry loads once via sync.Once. File writes are serialized by
// a mutex and performed atomically (temporary file + rename).
package answers
