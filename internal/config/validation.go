package config

import (
	"errors"
	"fmt"
	"strings"
)

// IsValidName reports whether name is a valid shulkerscript identifier:
// a non-empty sequence of ASCII letters, digits and underscores that does
// not start with a digit.
func IsValidName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// SanitizeName converts an arbitrary string into a valid identifier by
// replacing every invalid character with an underscore. A leading digit
// is prefixed with an underscore. The empty string sanitizes to "_".
func SanitizeName(name string) string {
	if name == "" {
		return "_"
	}
	var b strings.Builder
	for i, r := range name {
		valid := r == '_' ||
			(r >= 'a' && r <= 'z') ||
			(r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9')
		if !valid {
			b.WriteByte('_')
			continue
		}
		if i == 0 && r >= '0' && r <= '9' {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Validate checks the manifest for structural problems.
func (m *ProjectManifest) Validate() error {
	if m.Pack.Name == "" {
		return errors.New("pack.name must not be empty")
	}
	if m.Pack.PackFormat <= 0 {
		return fmt.Errorf("pack.pack_format must be positive, got %d", m.Pack.PackFormat)
	}
	return nil
}
