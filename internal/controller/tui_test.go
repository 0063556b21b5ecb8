package controller

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "verdict.dev/pkg/verdict/internal/model"
)

func TestTUI_ReportIsShownOnWait(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer
	tui := NewTUI(&buf)

	require.NoError(t, tui.Start(ctx))
	require.NoError(t, tui.DisplayReport(ctx, sampleReport(), "test-results/test_results.json"))

	assert.Empty(t, buf.String(), "results are collected until Wait")

	tui.Wait(ctx)

	output := buf.String()
	assert.Contains(t, output, "Report: test-results/test_results.json")
	assert.Contains(t, output, "[engine:go-test]/[class:./calc]/[method:TestDiv()]")
	assert.Contains(t, output, "FAIL")

	tui.Close(ctx)
	assert.Equal(t, output, buf.String(), "Close must not print twice")
}

func TestTUI_PassingReport(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer
	tui := NewTUI(&buf)

	report := m.RunReport{Compiled: true, Suites: []m.SuiteResult{{
		SuiteName: "./geometry", PassedCount: 1, TotalCount: 1,
		Cases: []m.CaseOutcome{{CaseName: "TestArea", Passed: true}},
	}}}

	require.NoError(t, tui.DisplayReport(ctx, report, ""))
	tui.Close(ctx)

	assert.Contains(t, buf.String(), "PASS")
	assert.NotContains(t, buf.String(), "Failing cases:")
}

func TestTUI_ProgressIsImmediate(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer
	tui := NewTUI(&buf)

	tui.DisplayRunInfo(ctx, "run-1", []m.SuiteHandle{{Name: "./a"}})
	tui.DisplayResolutionError(ctx, "./missing", errors.New("suite not found"))
	tui.DisplayError(ctx, "failed to save report", errors.New("disk full"))
	tui.DisplayMessage(ctx, "No valid test suites provided")

	output := buf.String()
	assert.Contains(t, output, "Running")
	assert.Contains(t, output, "run-1")
	assert.Contains(t, output, "./missing: suite not found")
	assert.Contains(t, output, "failed to save report: disk full")
	assert.Contains(t, output, "No valid test suites provided")
}

func TestTUI_DocumentsSuitesAndComparison(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer
	tui := NewTUI(&buf)

	require.NoError(t, tui.DisplayDocument(ctx, sampleReport(), FormatJSON))
	require.NoError(t, tui.DisplaySuites(ctx, []m.SuiteHandle{{Name: "./calc", ImportPath: "example.com/calc"}}))
	require.NoError(t, tui.DisplayComparison(ctx, m.Comparison{Compared: 0}))
	tui.Wait(ctx)

	output := buf.String()
	assert.Contains(t, output, `"test_class_name": "./calc"`)
	assert.Contains(t, output, "example.com/calc")
	assert.Contains(t, output, "Compared 0 case(s)")

	err := tui.DisplayDocument(ctx, sampleReport(), ReportFormat("xml"))
	require.Error(t, err)
}

func TestTUI_LongOutputUsesPager(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer
	tui := NewTUI(&buf)
	tui.size = func() (int, int) { return 80, 20 }

	var paged tea.Model

	tui.runPager = func(model tea.Model) error {
		paged = model
		return nil
	}

	require.NoError(t, tui.DisplayDocument(ctx, sampleReport(), FormatJSON))
	tui.Wait(ctx)

	require.NotNil(t, paged)
	assert.Contains(t, paged.View(), tuiTitle)
	assert.Empty(t, buf.String(), "paged output is not printed again")
}

func TestTUI_PagerFailureFallsBackToPlainOutput(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer
	tui := NewTUI(&buf)
	tui.size = func() (int, int) { return 80, 5 }

	tui.runPager = func(tea.Model) error {
		return errors.New("no tty")
	}

	content := strings.Repeat("line\n", 10)
	tui.collect(content)
	tui.Wait(ctx)

	assert.Equal(t, content, buf.String())
}

func TestNeedsPager(t *testing.T) {
	content := strings.Repeat("line\n", 50)

	assert.True(t, needsPager(content, 20))
	assert.False(t, needsPager(content, 0), "unknown height never pages")
	assert.False(t, needsPager(content, 100))
}

func TestPagerModel_Navigation(t *testing.T) {
	styles := newTUIStyles(lipgloss.NewRenderer(&bytes.Buffer{}))
	content := strings.Repeat("row\n", 100)

	model := newPagerModel(styles, "title", content, 40, 14)
	require.True(t, model.viewport.AtTop())

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	model = updated.(pagerModel)
	assert.True(t, model.viewport.AtBottom())

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	model = updated.(pagerModel)
	assert.True(t, model.viewport.AtTop())

	updated, _ = model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	model = updated.(pagerModel)
	assert.Equal(t, 100, model.viewport.Width)
	assert.Equal(t, 30-pagerChrome, model.viewport.Height)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	assert.Contains(t, model.View(), "q: quit")
}

func TestTUI_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	tui := NewTUI(&buf)

	require.Error(t, tui.Start(ctx))
	require.Error(t, tui.DisplayReport(ctx, sampleReport(), ""))
	tui.DisplayMessage(ctx, "hidden")
	tui.Wait(ctx)

	assert.Empty(t, buf.String())
}
