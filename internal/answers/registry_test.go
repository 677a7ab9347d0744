package answers

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestGetConfigDirHonorsOverride(t *testing.T) {
	override := t.TempDir()
	t.Setenv(EnvConfigDir, override)

	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if configDir != override {
		t.Errorf("GetConfigDir() = %v, want %v", configDir, override)
	}
}

func TestGetConfigDirDefault(t *testing.T) {
	// Empty override is ignored
	t.Setenv(EnvConfigDir, "")

	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	if !strings.Contains(configDir, appName) {
		t.Errorf("GetConfigDir() = %v, should contain %q", configDir, appName)
	}

	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin", "linux":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
		}
	}

	t.Logf("Config directory: %s", configDir)
}

func TestGetAnswersPath(t *testing.T) {
	t.Setenv(EnvConfigDir, t.TempDir())

	path, err := GetAnswersPath()
	if err != nil {
		t.Fatalf("GetAnswersPath() error = %v", err)
	}

	if filepath.Base(path) != answersFile {
		t.Errorf("GetAnswersPath() should end with %q, got: %v", answersFile, path)
	}
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()

	if reg.Version != registryVersion {
		t.Errorf("NewRegistry().Version = %v, want %v", reg.Version, registryVersion)
	}

	if reg.Defaults == nil {
		t.Error("NewRegistry().Defaults should not be nil")
	}

	if reg.Preferences == nil {
		t.Error("NewRegistry().Preferences should not be nil")
	}

	if reg.Plain() {
		t.Error("NewRegistry().Plain() should be false by default")
	}

	if reg.SkipWarnConfirm() {
		t.Error("NewRegistry().SkipWarnConfirm() should be false by default")
	}
}

func TestRegistryGetSet(t *testing.T) {
	reg := NewRegistry()

	if got := reg.Get("username"); got != "" {
		t.Errorf("Get() on empty registry = %q, want empty string", got)
	}

	reg.Set("username", "octocat")
	if got := reg.Get("username"); got != "octocat" {
		t.Errorf("Get() after Set() = %q, want %q", got, "octocat")
	}

	// Set must initialize the map on a zero-value registry
	var zero Registry
	zero.Set("visibility", "private")
	if got := zero.Get("visibility"); got != "private" {
		t.Errorf("Get() on zero-value registry = %q, want %q", got, "private")
	}
}

func TestPreferenceAccessorsNilSafe(t *testing.T) {
	var reg Registry

	if reg.Plain() {
		t.Error("Plain() on registry without preferences should be false")
	}

	if reg.SkipWarnConfirm() {
		t.Error("SkipWarnConfirm() on registry without preferences should be false")
	}
}

func TestLoadFreshWhenMissing(t *testing.T) {
	t.Setenv(EnvConfigDir, t.TempDir())

	reg, err := Reload()
	if err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	if reg.Version != registryVersion {
		t.Errorf("fresh registry Version = %v, want %v", reg.Version, registryVersion)
	}

	if len(reg.Defaults) != 0 {
		t.Errorf("fresh registry should have no defaults, got %v", reg.Defaults)
	}
}

func TestSaveAndReloadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, dir)

	reg, err := Reload()
	if err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	reg.Set("username", "octocat")
	reg.Set("visibility", "private")
	reg.Preferences.PlainMode = true

	if err := reg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	path := filepath.Join(dir, answersFile)
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("answers file missing after Save(): %v", err)
	}

	if runtime.GOOS != "windows" {
		if perm := info.Mode().Perm(); perm != 0600 {
			t.Errorf("answers file permissions = %o, want 0600", perm)
		}
	}

	loaded, err := Reload()
	if err != nil {
		t.Fatalf("Reload() after Save() error = %v", err)
	}

	if got := loaded.Get("username"); got != "octocat" {
		t.Errorf("loaded username = %q, want %q", got, "octocat")
	}

	if got := loaded.Get("visibility"); got != "private" {
		t.Errorf("loaded visibility = %q, want %q", got, "private")
	}

	if !loaded.Plain() {
		t.Error("loaded Plain() = false, want true")
	}
}

func TestLoadRecoversFromCorruptFile(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"unparseable yaml", "defaults: [unclosed\n"},
		{"unsupported version", "version: 99\ndefaults:\n  username: ghost\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Setenv(EnvConfigDir, dir)

			path := filepath.Join(dir, answersFile)
			if err := os.WriteFile(path, []byte(tc.content), 0600); err != nil {
				t.Fatalf("failed to write corrupt file: %v", err)
			}

			reg, err := Reload()
			if err != nil {
				t.Fatalf("Reload() error = %v, want recovery without error", err)
			}

			if reg.Version != registryVersion {
				t.Errorf("recovered registry Version = %v, want %v", reg.Version, registryVersion)
			}

			if got := reg.Get("username"); got != "" {
				t.Errorf("recovered registry should be empty, Get(username) = %q", got)
			}
		})
	}
}

func BenchmarkGetConfigDir(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = GetConfigDir()
	}
}
