package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ManifestFileName is the name of the project manifest at the project root.
const ManifestFileName = "pack.yml"

// ResolveManifestPath resolves a user-supplied path to the manifest file.
// The path may be a project directory containing pack.yml or the pack.yml
// file itself.
func ResolveManifestPath(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}
		return "", err
	}

	if info.IsDir() {
		manifestPath := filepath.Join(path, ManifestFileName)
		if _, err := os.Stat(manifestPath); err != nil {
			return "", fmt.Errorf("%w: %s", ErrNotAProject, path)
		}
		return manifestPath, nil
	}

	if filepath.Base(path) == ManifestFileName {
		return path, nil
	}
	return "", fmt.Errorf("%w: %s", ErrNotAProject, path)
}

// Load reads and validates the project manifest for the given path.
// It returns the manifest and the path of the manifest file.
func Load(path string) (*ProjectManifest, string, error) {
	manifestPath, err := ResolveManifestPath(path)
	if err != nil {
		return nil, "", err
	}

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, "", err
	}

	var m ProjectManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, "", &InvalidManifestError{Path: manifestPath, Err: err}
	}
	if err := m.Validate(); err != nil {
		return nil, "", &InvalidManifestError{Path: manifestPath, Err: err}
	}

	return &m, manifestPath, nil
}

// Save writes the manifest to the given file path, creating parent
// directories as needed.
func Save(m *ProjectManifest, path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
