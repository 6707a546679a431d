package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundtrip(t *testing.T) {
	dir := t.TempDir()
	m := NewProjectManifest(PackConfig{
		Name:        "my-pack",
		Description: "a test pack",
		PackFormat:  26,
		Version:     "0.1.0",
	})
	m.Namespaces = []string{"example", "other"}

	if err := Save(m, filepath.Join(dir, ManifestFileName)); err != nil {
		t.Fatalf("Save() = %v", err)
	}

	loaded, manifestPath, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if manifestPath != filepath.Join(dir, ManifestFileName) {
		t.Errorf("manifest path = %q", manifestPath)
	}
	if loaded.Pack != m.Pack {
		t.Errorf("loaded pack = %+v, want %+v", loaded.Pack, m.Pack)
	}
	if len(loaded.Namespaces) != 2 || loaded.Namespaces[0] != "example" {
		t.Errorf("loaded namespaces = %v", loaded.Namespaces)
	}
}

func TestResolveManifestPath(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, ManifestFileName)
	if err := os.WriteFile(manifestPath, []byte("pack:\n  name: x\n  pack_format: 26\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Run("directory", func(t *testing.T) {
		got, err := ResolveManifestPath(dir)
		if err != nil || got != manifestPath {
			t.Errorf("ResolveManifestPath(dir) = %q, %v", got, err)
		}
	})

	t.Run("manifest file", func(t *testing.T) {
		got, err := ResolveManifestPath(manifestPath)
		if err != nil || got != manifestPath {
			t.Errorf("ResolveManifestPath(file) = %q, %v", got, err)
		}
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := ResolveManifestPath(filepath.Join(dir, "nope"))
		if !errors.Is(err, ErrPathNotFound) {
			t.Errorf("err = %v, want ErrPathNotFound", err)
		}
	})

	t.Run("directory without manifest", func(t *testing.T) {
		_, err := ResolveManifestPath(t.TempDir())
		if !errors.Is(err, ErrNotAProject) {
			t.Errorf("err = %v, want ErrNotAProject", err)
		}
	})

	t.Run("other file", func(t *testing.T) {
		other := filepath.Join(dir, "other.txt")
		if err := os.WriteFile(other, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := ResolveManifestPath(other)
		if !errors.Is(err, ErrNotAProject) {
			t.Errorf("err = %v, want ErrNotAProject", err)
		}
	})
}

func TestLoadInvalidManifest(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ManifestFileName), []byte("pack: [not a mapping"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := Load(dir)
	var invalid *InvalidManifestError
	if !errors.As(err, &invalid) {
		t.Errorf("Load() = %v, want InvalidManifestError", err)
	}
}
