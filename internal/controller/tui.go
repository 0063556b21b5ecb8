package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	m "verdict.dev/pkg/verdict/internal/model"
)

const tuiTitle = "verdict - test results"

// pagerChrome is the number of lines taken by the pager header and footer.
const pagerChrome = 4

type tuiStyles struct {
	title lipgloss.Style
	pass  lipgloss.Style
	fail  lipgloss.Style
	muted lipgloss.Style
}

func newTUIStyles(renderer *lipgloss.Renderer) tuiStyles {
	return tuiStyles{
		title: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		pass:  renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		fail:  renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		muted: renderer.NewStyle().Faint(true),
	}
}

// TUI implements UI for interactive terminals. Progress lines are written
// immediately; result views are collected and shown on Wait, in a scrollable
// pager when they do not fit the terminal.
type TUI struct {
	output io.Writer
	styles tuiStyles

	mu      sync.Mutex
	content strings.Builder
	flushed bool

	// runPager and size are replaced in tests.
	runPager func(model tea.Model) error
	size     func() (width, height int)
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	t := &TUI{
		output: output,
		styles: newTUIStyles(lipgloss.NewRenderer(output)),
	}

	t.runPager = func(model tea.Model) error {
		program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
		_, err := program.Run()

		return err
	}
	t.size = t.terminalSize

	return t
}

// Start resets any collected output.
func (t *TUI) Start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.content.Reset()
	t.flushed = false

	return nil
}

// Close prints collected output that Wait has not shown yet.
func (t *TUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.flush(false)
}

// Wait shows the collected output, paging it if it is taller than the terminal.
func (t *TUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.flush(true)
}

// DisplayRunInfo announces the suites about to run.
func (t *TUI) DisplayRunInfo(ctx context.Context, runID string, suites []m.SuiteHandle) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.printf("%s %d suite(s) %s\n",
		t.styles.title.Render("Running"), len(suites), t.styles.muted.Render("run "+runID))
}

// DisplayResolutionError reports a suite name that could not be resolved.
func (t *TUI) DisplayResolutionError(ctx context.Context, name string, err error) {
	if ctx.Err() != nil {
		return
	}

	t.printf("%s %s: %v\n", t.styles.fail.Render("Skipping suite"), name, err)
}

// DisplayMessage prints an informational line.
func (t *TUI) DisplayMessage(ctx context.Context, message string) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.printf("%s\n", message)
}

// DisplayError prints an error with its cause.
func (t *TUI) DisplayError(ctx context.Context, message string, err error) {
	if ctx.Err() != nil {
		return
	}

	if err == nil {
		t.printf("%s %s\n", t.styles.fail.Render("Error:"), message)
		return
	}

	t.printf("%s %s: %v\n", t.styles.fail.Render("Error:"), message, err)
}

// DisplayReport collects the run summary.
func (t *TUI) DisplayReport(ctx context.Context, report m.RunReport, location m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.collect(renderReport(report, location) + t.verdictLine(report))

	return nil
}

// DisplayDocument collects the report encoded as format.
func (t *TUI) DisplayDocument(ctx context.Context, report m.RunReport, format ReportFormat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	doc, err := encodeDocument(report, format)
	if err != nil {
		return err
	}

	t.collect(doc)

	return nil
}

// DisplaySuites collects the discovered suites table.
func (t *TUI) DisplaySuites(ctx context.Context, suites []m.SuiteHandle) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(suites) == 0 {
		t.collect(t.styles.muted.Render(noSuitesMessage) + "\n")
		return nil
	}

	t.collect(renderSuitesTable(suites))

	return nil
}

// DisplayComparison collects the comparison view.
func (t *TUI) DisplayComparison(ctx context.Context, comparison m.Comparison) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	out, err := renderComparison(comparison)
	if err != nil {
		return err
	}

	t.collect(out)

	return nil
}

func (t *TUI) verdictLine(report m.RunReport) string {
	_, failed, _ := report.Totals()
	if failed > 0 || !report.Compiled {
		return t.styles.fail.Render("FAIL") + "\n"
	}

	return t.styles.pass.Render("PASS") + "\n"
}

func (t *TUI) collect(s string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.content.WriteString(s)
	t.flushed = false
}

func (t *TUI) flush(interactive bool) {
	t.mu.Lock()
	content := t.content.String()
	done := t.flushed
	t.flushed = true
	t.content.Reset()
	t.mu.Unlock()

	if done || content == "" {
		return
	}

	width, height := t.size()

	if !interactive || !needsPager(content, height) {
		t.printf("%s", content)
		return
	}

	model := newPagerModel(t.styles, tuiTitle, content, width, height)
	if err := t.runPager(model); err != nil {
		// The pager could not start; print instead.
		t.printf("%s", content)
	}
}

func (t *TUI) terminalSize() (int, int) {
	f, ok := t.output.(*os.File)
	if !ok {
		return 0, 0
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0
	}

	return width, height
}

func (t *TUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(t.output, format, args...)
}

// needsPager reports whether content is taller than a terminal of height lines.
// An unknown height never pages.
func needsPager(content string, height int) bool {
	if height <= 0 {
		return false
	}

	return strings.Count(content, "\n") > height-pagerChrome
}

type pagerKeyMap struct {
	Quit   key.Binding
	Top    key.Binding
	Bottom key.Binding
}

func newPagerKeyMap() pagerKeyMap {
	return pagerKeyMap{
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		Top:    key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom: key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
	}
}

// pagerModel is the Bubble Tea model for scrolling long result views.
type pagerModel struct {
	styles   tuiStyles
	title    string
	content  string
	keys     pagerKeyMap
	viewport viewport.Model
}

func newPagerModel(styles tuiStyles, title, content string, width, height int) pagerModel {
	vp := viewport.New(width, max(height-pagerChrome, 1))
	vp.SetContent(content)

	return pagerModel{
		styles:   styles,
		title:    title,
		content:  content,
		keys:     newPagerKeyMap(),
		viewport: vp,
	}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.viewport.Width = msg.Width
		pm.viewport.Height = max(msg.Height-pagerChrome, 1)

		return pm, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, pm.keys.Quit):
			return pm, tea.Quit
		case key.Matches(msg, pm.keys.Top):
			pm.viewport.GotoTop()
			return pm, nil
		case key.Matches(msg, pm.keys.Bottom):
			pm.viewport.GotoBottom()
			return pm, nil
		}
	}

	var cmd tea.Cmd

	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	var b strings.Builder

	b.WriteString(pm.styles.title.Render(pm.title))
	b.WriteString("\n\n")
	b.WriteString(pm.viewport.View())
	b.WriteString("\n")
	b.WriteString(pm.styles.muted.Render(fmt.Sprintf(
		"%3.f%% | ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit",
		pm.viewport.ScrollPercent()*100,
	)))

	return b.String()
}
