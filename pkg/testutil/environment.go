package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/fsimage/pkg/filesystem"
	"github.com/spf13/afero"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment holds an image tree and the directories fsimage reads its
// own inputs from
type TestEnvironment struct {
	// ImageRoot is the directory image paths resolve against
	ImageRoot string
	// ConfigDir stands in for $XDG_CONFIG_HOME
	ConfigDir string
	// DataDir stands in for $XDG_DATA_HOME
	DataDir string

	Fs afero.Fs
	FS filesystem.FS

	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment. Isolated environments
// also point XDG_CONFIG_HOME, XDG_DATA_HOME and XDG_STATE_HOME at the temp
// directory for the duration of the test.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{Type: envType, t: t}
	switch envType {
	case EnvIsolated:
		base := t.TempDir()
		env.Fs = afero.NewOsFs()
		env.FS = filesystem.NewOS()
		env.ImageRoot = filepath.Join(base, "image")
		env.ConfigDir = filepath.Join(base, "config")
		env.DataDir = filepath.Join(base, "data")
		t.Setenv("XDG_CONFIG_HOME", env.ConfigDir)
		t.Setenv("XDG_DATA_HOME", env.DataDir)
		t.Setenv("XDG_STATE_HOME", filepath.Join(base, "state"))
		// An inherited FSIMAGE_CONFIG would win over the isolated config dir
		t.Setenv("FSIMAGE_CONFIG", "")
	default:
		env.Fs = afero.NewMemMapFs()
		env.FS = filesystem.NewAferoFS(env.Fs)
		env.ImageRoot = "/image"
		env.ConfigDir = "/config"
		env.DataDir = "/data"
	}

	for _, dir := range []string{env.ImageRoot, env.ConfigDir, env.DataDir} {
		if err := env.Fs.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}
	return env
}

// FileTree represents a directory structure for testing.
// Values are file contents (string) or nested directories (FileTree).
type FileTree map[string]interface{}

// WithImage writes tree below the image root
func (env *TestEnvironment) WithImage(tree FileTree) *TestEnvironment {
	env.t.Helper()
	createFileTree(env.t, env.Fs, env.ImageRoot, tree)
	return env
}

// WithFileTree writes tree below base
func (env *TestEnvironment) WithFileTree(base string, tree FileTree) *TestEnvironment {
	env.t.Helper()
	createFileTree(env.t, env.Fs, base, tree)
	return env
}

// WriteFile writes content at path, creating parent directories
func (env *TestEnvironment) WriteFile(path, content string) string {
	env.t.Helper()
	if err := env.Fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		env.t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := afero.WriteFile(env.Fs, path, []byte(content), 0644); err != nil {
		env.t.Fatalf("Failed to write file %s: %v", path, err)
	}
	return path
}

// WriteConfig writes the fsimage config file at its XDG location
func (env *TestEnvironment) WriteConfig(content string) string {
	env.t.Helper()
	return env.WriteFile(filepath.Join(env.ConfigDir, "fsimage", "config.toml"), content)
}

// ImagePath returns the on-disk location of an image path
func (env *TestEnvironment) ImagePath(imagePath string) string {
	return filepath.Join(env.ImageRoot, imagePath)
}

// createFileTree recursively creates a file tree
func createFileTree(t *testing.T, fs afero.Fs, basePath string, tree FileTree) {
	t.Helper()

	for name, content := range tree {
		fullPath := filepath.Join(basePath, name)

		switch v := content.(type) {
		case string:
			if err := fs.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
				t.Fatalf("Failed to create directory %s: %v", filepath.Dir(fullPath), err)
			}
			if err := afero.WriteFile(fs, fullPath, []byte(v), 0644); err != nil {
				t.Fatalf("Failed to write file %s: %v", fullPath, err)
			}
		case FileTree:
			if err := fs.MkdirAll(fullPath, 0755); err != nil {
				t.Fatalf("Failed to create directory %s: %v", fullPath, err)
			}
			createFileTree(t, fs, fullPath, v)
		default:
			t.Fatalf("Invalid file tree content type for %s: %T", name, content)
		}
	}
}
