package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes prefixed status lines. Informational output goes to Out,
// warnings and errors go to Err so they survive stdout redirection.
type Printer struct {
	theme *Theme
	Out   io.Writer
	Err   io.Writer

	info    lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	errStyl lipgloss.Style
}

// NewPrinter creates a Printer writing to os.Stdout and os.Stderr.
func NewPrinter(theme *Theme) *Printer {
	return NewPrinterTo(theme, os.Stdout, os.Stderr)
}

// NewPrinterTo creates a Printer with custom writers (for testing).
func NewPrinterTo(theme *Theme, out, errw io.Writer) *Printer {
	p := &Printer{theme: theme, Out: out, Err: errw}
	if !theme.NoColor {
		p.info = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Secondary))
		p.success = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Success))
		p.warning = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Warning))
		p.errStyl = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Error))
	}
	return p
}

// Info prints an informational message.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintf(p.Out, "[%s]    %s\n", p.info.Render("INFO"), fmt.Sprintf(format, args...))
}

// Success prints a success message.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintf(p.Out, "[%s] %s\n", p.success.Render("SUCCESS"), fmt.Sprintf(format, args...))
}

// Warning prints a warning message to the error writer.
func (p *Printer) Warning(format string, args ...any) {
	fmt.Fprintf(p.Err, "[%s] %s\n", p.warning.Render("WARNING"), fmt.Sprintf(format, args...))
}

// Error prints an error message to the error writer.
func (p *Printer) Error(format string, args ...any) {
	fmt.Fprintf(p.Err, "[%s]   %s\n", p.errStyl.Render("ERROR"), fmt.Sprintf(format, args...))
}
