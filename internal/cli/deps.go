package cli

import (
	"github.com/shulkerscript-lang/shulkerscript-cli/internal/compiler"
	"github.com/shulkerscript-lang/shulkerscript-cli/internal/ui"
)

// Dependencies aggregates the collaborators shared by all subcommands.
type Dependencies struct {
	Theme    *ui.Theme
	Headless *ui.HeadlessManager
	Printer  *ui.Printer
	Progress *ui.Progress
	Compiler compiler.Compiler
}

var deps *Dependencies

// InitDependencies wires the default production dependencies.
func InitDependencies() {
	theme := ui.NewTheme()
	headless := ui.NewHeadlessManager()
	deps = &Dependencies{
		Theme:    theme,
		Headless: headless,
		Printer:  ui.NewPrinter(theme),
		Progress: ui.NewProgress(theme, headless),
		Compiler: compiler.NewExecCompiler(),
	}
}
