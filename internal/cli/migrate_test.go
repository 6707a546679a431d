package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shulkerscript-lang/shulkerscript-cli/internal/ui"
)

// execute runs the root command with args, capturing printer output.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	InitDependencies()
	deps.Headless.ForceHeadless(true)

	var out, errOut bytes.Buffer
	deps.Printer = ui.NewPrinterTo(deps.Theme, &out, &errOut)

	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFixture(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestMigrateCommand(t *testing.T) {
	root := writeFixture(t, map[string]string{
		"pack.mcmeta": `{"pack":{"description":"legacy","pack_format":26}}`,
		"data/example/functions/greet.mcfunction": "say hello",
		"data/example/tags/functions/grp.json":    `{"values":["example:greet"]}`,
	})
	target := filepath.Join(t.TempDir(), "migrated")

	stdout, stderr, err := execute(t, "migrate", root, target, "--name", "demo", "--force=false")
	if err != nil {
		t.Fatalf("migrate failed: %v (stderr: %s)", err, stderr)
	}

	content, readErr := os.ReadFile(filepath.Join(target, "src", "example", "greet.shu"))
	if readErr != nil {
		t.Fatalf("migrated file missing: %v", readErr)
	}
	if !strings.Contains(string(content), "fn greet() {") ||
		!strings.Contains(string(content), "say hello") {
		t.Errorf("unexpected migrated content:\n%s", content)
	}

	if _, statErr := os.Stat(filepath.Join(target, "pack.yml")); statErr != nil {
		t.Errorf("project manifest missing: %v", statErr)
	}

	// The partial-success report goes to standard output.
	if !strings.Contains(stdout, "migrated") || !strings.Contains(stdout, "written") {
		t.Errorf("report missing from stdout:\n%s", stdout)
	}
}

func TestMigrateCommandNoClobber(t *testing.T) {
	root := writeFixture(t, map[string]string{
		"pack.mcmeta": `{"pack":{"description":"legacy","pack_format":26}}`,
		"data/example/functions/greet.mcfunction": "say hello",
	})
	target := writeFixture(t, map[string]string{
		"src/example/greet.shu": "// hand edited\n",
	})

	stdout, stderr, err := execute(t, "migrate", root, target, "--force=false")
	if err != nil {
		t.Fatalf("migrate failed: %v (stderr: %s)", err, stderr)
	}

	after, readErr := os.ReadFile(filepath.Join(target, "src", "example", "greet.shu"))
	if readErr != nil {
		t.Fatal(readErr)
	}
	if string(after) != "// hand edited\n" {
		t.Error("existing file modified without --force")
	}
	if !strings.Contains(stdout, "preserved") {
		t.Errorf("preserved outcome missing from report:\n%s", stdout)
	}
}

func TestMigrateCommandWarningsOnStderr(t *testing.T) {
	root := writeFixture(t, map[string]string{
		"pack.mcmeta": `{"pack":{"description":"legacy","pack_format":26}}`,
		"data/my-ns/functions/f.mcfunction": "say hi",
	})
	target := filepath.Join(t.TempDir(), "migrated")

	stdout, stderr, err := execute(t, "migrate", root, target, "--force=false")
	if err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if !strings.Contains(stderr, "my_ns") {
		t.Errorf("sanitization warning missing from stderr:\n%s", stderr)
	}
	if !strings.Contains(stdout, "warned") {
		t.Errorf("warned outcome missing from stdout report:\n%s", stdout)
	}
}

func TestMigrateCommandScanErrorFails(t *testing.T) {
	target := filepath.Join(t.TempDir(), "migrated")
	_, _, err := execute(t, "migrate", filepath.Join(t.TempDir(), "missing"), target, "--force=false")
	if err == nil {
		t.Fatal("migrate of a missing root succeeded, want error")
	}
	if _, statErr := os.Stat(target); !os.IsNotExist(statErr) {
		t.Error("scan error still produced writes")
	}
}
