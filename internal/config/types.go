package config

// ProjectManifest is the root of the pack.yml project manifest.
type ProjectManifest struct {
	Pack       PackConfig      `yaml:"pack"`
	Namespaces []string        `yaml:"namespaces,omitempty"`
	Compiler   *CompilerConfig `yaml:"compiler,omitempty"`
}

// PackConfig describes the datapack produced by the project.
type PackConfig struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	PackFormat  int    `yaml:"pack_format"`
	Version     string `yaml:"version"`
}

// CompilerConfig holds optional compiler settings.
type CompilerConfig struct {
	// Assets is a directory whose files are copied to the root of the
	// compiled datapack.
	Assets string `yaml:"assets,omitempty"`
}

// NewProjectManifest creates a manifest for the given pack configuration.
func NewProjectManifest(pack PackConfig) *ProjectManifest {
	return &ProjectManifest{Pack: pack}
}
