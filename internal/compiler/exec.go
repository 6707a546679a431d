package compiler

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// BinEnvVar overrides the compiler binary looked up on PATH.
const BinEnvVar = "SHULKERSCRIPT_COMPILER"

// DefaultBin is the compiler binary name.
const DefaultBin = "shulkerscriptc"

// ExecCompiler invokes the external compiler binary.
type ExecCompiler struct {
	Bin string
}

// NewExecCompiler creates an ExecCompiler using the binary from
// BinEnvVar, falling back to DefaultBin.
func NewExecCompiler() *ExecCompiler {
	bin := os.Getenv(BinEnvVar)
	if bin == "" {
		bin = DefaultBin
	}
	return &ExecCompiler{Bin: bin}
}

// Compile runs the compiler on projectRoot. Its stderr is returned as
// diagnostics on failure, uninterpreted.
func (c *ExecCompiler) Compile(ctx context.Context, projectRoot string, opts Options) (*Output, error) {
	args := []string{"build", projectRoot}
	if opts.OutputDir != "" {
		args = append(args, "--output", opts.OutputDir)
	}
	if opts.PackFormat > 0 {
		args = append(args, "--pack-format", strconv.Itoa(opts.PackFormat))
	}
	if opts.AssetsDir != "" {
		args = append(args, "--assets", opts.AssetsDir)
	}
	if opts.SkipValidate {
		args = append(args, "--no-validate")
	}
	if opts.CheckOnly {
		args = append(args, "--check")
	}

	cmd := exec.CommandContext(ctx, c.Bin, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, &Error{Diagnostics: parseDiagnostics(stderr.String()), Err: err}
	}
	return &Output{Root: opts.OutputDir}, nil
}

// Version reports the external compiler's version string.
func (c *ExecCompiler) Version(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, c.Bin, "--version").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

func parseDiagnostics(stderr string) Diagnostics {
	var diags Diagnostics
	for _, line := range strings.Split(stderr, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		diags = append(diags, Diagnostic{Message: line})
	}
	return diags
}
