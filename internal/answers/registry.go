package answers

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/formdlg/internal/logging"
)

const (
	appName         = "formdlg"
	answersFile     = "answers.yaml"
	registryVersion = 1

	// EnvConfigDir overrides the configuration directory when set.
	EnvConfigDir = "FORMDLG_CONFIG_DIR"
)

var (
	// Global registry instance (loaded lazily)
	globalRegistry     *Registry
	globalRegistryOnce sync.Once
	globalRegistryErr  error

	// Mutex for thread-safe file operations
	fileMutex sync.Mutex
)

// GetConfigDir returns the configuration directory for the application.
// FORMDLG_CONFIG_DIR wins when set; otherwise platform conventions apply:
//   - Linux: $XDG_CONFIG_HOME/formdlg or $HOME/.config/formdlg
//   - macOS: $HOME/.config/formdlg (following XDG convention on macOS)
//   - Windows: %LOCALAPPDATA%\formdlg
func GetConfigDir() (string, error) {
	if override := os.Getenv(EnvConfigDir); override != "" {
		return override, nil
	}

	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			// Fallback to USERPROFILE\AppData\Local if LOCALAPPDATA not set
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		// Linux and other Unix-like systems: Use XDG_CONFIG_HOME or $HOME/.config
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// GetAnswersPath returns the full path to the answers file.
func GetAnswersPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, answersFile), nil
}

// ensureConfigDir ensures the configuration directory exists.
// Creates the directory with user-only permissions if it doesn't exist.
func ensureConfigDir() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return nil
}

// Load loads the saved-answers registry from disk.
// If the file doesn't exist or cannot be parsed, returns a fresh
// default registry. Thread-safe - multiple calls return the same
// instance.
func Load() (*Registry, error) {
	globalRegistryOnce.Do(func() {
		globalRegistry, globalRegistryErr = loadFromDisk()
	})
	return globalRegistry, globalRegistryErr
}

// loadFromDisk performs the actual file loading.
func loadFromDisk() (*Registry, error) {
	path, err := GetAnswersPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get answers path: %w", err)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		// No file yet - start with a fresh registry
		return NewRegistry(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read answers file: %w", err)
	}

	var registry Registry
	if err := yaml.Unmarshal(data, &registry); err != nil {
		logging.Warn("discarding unparseable answers file",
			zap.String("path", path),
			zap.Error(err))
		return NewRegistry(), nil
	}

	if registry.Version != registryVersion {
		logging.Warn("discarding answers file with unsupported version",
			zap.String("path", path),
			zap.Int("version", registry.Version))
		return NewRegistry(), nil
	}

	// Ensure nested structures are initialized
	if registry.Defaults == nil {
		registry.Defaults = make(map[string]string)
	}
	if registry.Preferences == nil {
		registry.Preferences = &Preferences{}
	}

	return &registry, nil
}

// Save saves the registry to disk.
// Performs an atomic write to prevent corruption on crash.
func (r *Registry) Save() error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if err := ensureConfigDir(); err != nil {
		return fmt.Errorf("failed to ensure config directory exists: %w", err)
	}

	path, err := GetAnswersPath()
	if err != nil {
		return fmt.Errorf("failed to get answers path: %w", err)
	}

	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal answers: %w", err)
	}

	// Add header comment
	header := []byte(`# formdlg saved answers
# Remembered values pre-fill matching fields on the next run.
# The preferences block may be edited by hand; it is read on startup.
#
# Location: ` + path + `

`)
	data = append(header, data...)

	// Write to temporary file first (atomic write)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary answers file: %w", err)
	}

	// Atomic rename (this is atomic on all platforms)
	if err := os.Rename(tmpPath, path); err != nil {
		// Clean up temp file on error
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save answers file: %w", err)
	}

	return nil
}

// Reload reloads the registry from disk, discarding any in-memory
// changes. This is useful for reading changes made by another process.
func Reload() (*Registry, error) {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	// Reset the global registry
	globalRegistryOnce = sync.Once{}
	return Load()
}
