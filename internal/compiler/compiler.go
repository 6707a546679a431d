// Package compiler defines the contract with the external shulkerscript
// compiler. The CLI never inspects the compiler's internals, only its
// success or failure and its diagnostic text.
package compiler

import (
	"context"
	"fmt"
	"strings"
)

// Diagnostic is one line of compiler output, passed through verbatim.
type Diagnostic struct {
	Message string
}

// Diagnostics is the compiler's diagnostic text, uninterpreted.
type Diagnostics []Diagnostic

func (d Diagnostics) String() string {
	lines := make([]string, len(d))
	for i, diag := range d {
		lines[i] = diag.Message
	}
	return strings.Join(lines, "\n")
}

// Options configures a single compile invocation.
type Options struct {
	// PackFormat is the target datapack format version.
	PackFormat int
	// OutputDir is the directory to place the compiled output tree.
	OutputDir string
	// AssetsDir is an optional directory copied into the output root.
	AssetsDir string
	// SkipValidate disables pack-format compatibility validation.
	SkipValidate bool
	// CheckOnly verifies the project compiles without producing output.
	CheckOnly bool
}

// Output describes a produced compiled tree.
type Output struct {
	// Root is the directory holding the compiled datapack.
	Root string
}

// Compiler compiles a project source tree into an output tree, or fails
// with diagnostics.
type Compiler interface {
	Compile(ctx context.Context, projectRoot string, opts Options) (*Output, error)
	Version(ctx context.Context) (string, error)
}

// Error wraps a failed compile with its diagnostics.
type Error struct {
	Diagnostics Diagnostics
	Err         error
}

func (e *Error) Error() string {
	if len(e.Diagnostics) > 0 {
		return fmt.Sprintf("compile failed: %v\n%s", e.Err, e.Diagnostics)
	}
	return fmt.Sprintf("compile failed: %v", e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
