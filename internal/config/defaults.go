package config

// Default values for newly created project manifests.
const (
	DefaultPackName        = "shulkerscript-pack"
	DefaultPackDescription = "A Minecraft datapack created with shulkerscript"
	DefaultPackFormat      = 26
	DefaultPackVersion     = "0.1.0"
)

// DefaultPackConfig returns the pack configuration used when no values
// are supplied by the user or discovered during migration.
func DefaultPackConfig() PackConfig {
	return PackConfig{
		Name:        DefaultPackName,
		Description: DefaultPackDescription,
		PackFormat:  DefaultPackFormat,
		Version:     DefaultPackVersion,
	}
}
