package config

import "testing"

func TestIsValidName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"simple", "greet", true},
		{"underscore", "my_pack", true},
		{"mixed case", "MyPack", true},
		{"digits inside", "pack2", true},
		{"leading digit", "2pack", false},
		{"empty", "", false},
		{"dash", "my-pack", false},
		{"dot", "my.pack", false},
		{"slash", "a/b", false},
		{"unicode", "päck", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidName(tt.input); got != tt.want {
				t.Errorf("IsValidName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"greet", "greet"},
		{"my-pack", "my_pack"},
		{"my.pack", "my_pack"},
		{"2pack", "_2pack"},
		{"", "_"},
		{"päck", "p_ck"},
	}
	for _, tt := range tests {
		got := SanitizeName(tt.input)
		if got != tt.want {
			t.Errorf("SanitizeName(%q) = %q, want %q", tt.input, got, tt.want)
		}
		if tt.input != "" && !IsValidName(got) {
			t.Errorf("SanitizeName(%q) = %q is not a valid name", tt.input, got)
		}
	}
}

func TestProjectManifestValidate(t *testing.T) {
	valid := NewProjectManifest(DefaultPackConfig())
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() on default manifest = %v, want nil", err)
	}

	noName := NewProjectManifest(PackConfig{PackFormat: 26})
	if err := noName.Validate(); err == nil {
		t.Error("Validate() with empty name = nil, want error")
	}

	badFormat := NewProjectManifest(PackConfig{Name: "x", PackFormat: 0})
	if err := badFormat.Validate(); err == nil {
		t.Error("Validate() with pack_format 0 = nil, want error")
	}
}
