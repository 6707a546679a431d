package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Spinner is an indeterminate activity indicator.
type Spinner interface {
	SetTitle(title string)
	Stop()
}

// ProgressBar is a determinate progress indicator.
type ProgressBar interface {
	Increment(n int)
	Done()
}

// Progress creates spinners and progress bars, falling back to plain log
// lines in headless mode or when color is disabled.
type Progress struct {
	theme    *Theme
	headless *HeadlessManager
	writer   io.Writer
}

// NewProgress creates a Progress backed by the given theme and headless
// manager. Output goes to os.Stdout.
func NewProgress(theme *Theme, hm *HeadlessManager) *Progress {
	return &Progress{theme: theme, headless: hm, writer: os.Stdout}
}

// Spinner creates an indeterminate spinner.
func (p *Progress) Spinner(title string) Spinner {
	if p.headless.IsHeadless() || p.theme.NoColor {
		return newHeadlessSpinner(title, p.writer)
	}
	return newInteractiveSpinner(p.theme, title)
}

// Bar creates a determinate progress bar with the given total.
func (p *Progress) Bar(title string, total int) ProgressBar {
	if p.headless.IsHeadless() || p.theme.NoColor {
		return newHeadlessBar(title, total, p.writer)
	}
	return newInteractiveBar(p.theme, title, total)
}

// --- headless fallbacks ---

type headlessSpinner struct {
	writer io.Writer
}

func newHeadlessSpinner(title string, w io.Writer) *headlessSpinner {
	fmt.Fprintf(w, "... %s\n", title)
	return &headlessSpinner{writer: w}
}

func (s *headlessSpinner) SetTitle(title string) {
	fmt.Fprintf(s.writer, "... %s\n", title)
}

func (s *headlessSpinner) Stop() {}

type headlessBar struct {
	writer  io.Writer
	title   string
	current int
	total   int
}

func newHeadlessBar(title string, total int, w io.Writer) *headlessBar {
	return &headlessBar{writer: w, title: title, total: total}
}

func (b *headlessBar) Increment(n int) {
	b.current += n
	fmt.Fprintf(b.writer, "[%d/%d] %s\n", b.current, b.total, b.title)
}

func (b *headlessBar) Done() {}

// --- interactive spinner ---

type spinnerTitleMsg string

type spinnerStopMsg struct{}

type spinnerModel struct {
	spinner spinner.Model
	title   string
	done    bool
}

func newSpinnerModel(theme *Theme, title string) spinnerModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Primary))
	return spinnerModel{spinner: s, title: title}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTitleMsg:
		m.title = string(msg)
		return m, nil
	case spinnerStopMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.title + "\n"
}

type interactiveSpinner struct {
	program *tea.Program
	once    sync.Once
}

func newInteractiveSpinner(theme *Theme, title string) *interactiveSpinner {
	p := tea.NewProgram(newSpinnerModel(theme, title))
	s := &interactiveSpinner{program: p}
	go func() {
		_, _ = p.Run()
	}()
	return s
}

func (s *interactiveSpinner) SetTitle(title string) {
	s.program.Send(spinnerTitleMsg(title))
}

func (s *interactiveSpinner) Stop() {
	s.once.Do(func() {
		s.program.Send(spinnerStopMsg{})
		s.program.Wait()
	})
}

// --- interactive progress bar ---

type barIncrMsg int

type barDoneMsg struct{}

type barModel struct {
	bar     progress.Model
	title   string
	current int
	total   int
	done    bool
}

func newBarModel(theme *Theme, title string, total int) barModel {
	bar := progress.New(
		progress.WithGradient(theme.Colors.Primary, theme.Colors.Secondary),
		progress.WithWidth(40),
	)
	return barModel{bar: bar, title: title, total: total}
}

func (m barModel) Init() tea.Cmd {
	return nil
}

func (m barModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case barIncrMsg:
		m.current += int(msg)
		if m.current > m.total {
			m.current = m.total
		}
		return m, nil
	case barDoneMsg:
		m.current = m.total
		m.done = true
		return m, tea.Quit
	case progress.FrameMsg:
		pm, cmd := m.bar.Update(msg)
		m.bar = pm.(progress.Model)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m barModel) View() string {
	if m.done {
		return ""
	}
	pct := 0.0
	if m.total > 0 {
		pct = float64(m.current) / float64(m.total)
	}
	return m.bar.ViewAs(pct) + fmt.Sprintf(" [%d/%d] %s\n", m.current, m.total, m.title)
}

type interactiveBar struct {
	program *tea.Program
	once    sync.Once
}

func newInteractiveBar(theme *Theme, title string, total int) *interactiveBar {
	p := tea.NewProgram(newBarModel(theme, title, total))
	b := &interactiveBar{program: p}
	go func() {
		_, _ = p.Run()
	}()
	return b
}

func (b *interactiveBar) Increment(n int) {
	b.program.Send(barIncrMsg(n))
}

func (b *interactiveBar) Done() {
	b.once.Do(func() {
		b.program.Send(barDoneMsg{})
		b.program.Wait()
	})
}
