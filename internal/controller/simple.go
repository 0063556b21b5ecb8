package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	m "verdict.dev/pkg/verdict/internal/model"
)

const (
	noResultsMessage = "No test results recorded"
	noSuitesMessage  = "No test suites found"
	noChangesMessage = "No differences between baseline and candidate"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// DisplayRunInfo announces the suites about to run.
func (s *SimpleUI) DisplayRunInfo(ctx context.Context, runID string, suites []m.SuiteHandle) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Running %d suite(s) (run %s)\n", len(suites), runID)
}

// DisplayResolutionError reports a suite name that could not be resolved.
func (s *SimpleUI) DisplayResolutionError(ctx context.Context, name string, err error) {
	if ctx.Err() != nil {
		return
	}

	s.errorf("Skipping suite %s: %v\n", name, err)
}

// DisplayMessage prints an informational line.
func (s *SimpleUI) DisplayMessage(ctx context.Context, message string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", message)
}

// DisplayError prints an error with its cause.
func (s *SimpleUI) DisplayError(ctx context.Context, message string, err error) {
	if ctx.Err() != nil {
		return
	}

	if err == nil {
		s.errorf("Error: %s\n", message)
		return
	}

	s.errorf("Error: %s: %v\n", message, err)
}

// DisplayReport prints the run summary. location is omitted when empty.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.RunReport, location m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderReport(report, location))

	return nil
}

// DisplayDocument prints the report as JSON or YAML; tables fall back to DisplayReport.
func (s *SimpleUI) DisplayDocument(ctx context.Context, report m.RunReport, format ReportFormat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if format == FormatTable {
		return s.DisplayReport(ctx, report, "")
	}

	doc, err := encodeDocument(report, format)
	if err != nil {
		return err
	}

	s.printf("%s", doc)

	return nil
}

// DisplaySuites prints discovered suites with their test counts.
func (s *SimpleUI) DisplaySuites(ctx context.Context, suites []m.SuiteHandle) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(suites) == 0 {
		s.printf("%s\n", noSuitesMessage)
		return nil
	}

	s.printf("\n%s", renderSuitesTable(suites))

	return nil
}

// DisplayComparison prints the differences between two reports.
func (s *SimpleUI) DisplayComparison(ctx context.Context, comparison m.Comparison) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	out, err := renderComparison(comparison)
	if err != nil {
		return err
	}

	s.printf("%s", out)

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) errorf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}

func renderReport(report m.RunReport, location m.Path) string {
	var b strings.Builder

	if location != "" {
		fmt.Fprintf(&b, "Report: %s\n", location)
	}

	if len(report.Suites) == 0 {
		fmt.Fprintf(&b, "%s\n", noResultsMessage)
	} else {
		b.WriteString("\n")
		b.WriteString(renderSummaryTable(report))
	}

	if failures := renderFailures(report); failures != "" {
		b.WriteString("\n")
		b.WriteString(failures)
	}

	if !report.Compiled && report.CompileError != nil {
		b.WriteString("\nBuild failures:\n")

		for _, line := range strings.Split(*report.CompileError, "\n") {
			fmt.Fprintf(&b, "  %s\n", line)
		}
	}

	passed, failed, total := report.Totals()
	fmt.Fprintf(&b, "\nPassed %d, failed %d, total %d\n", passed, failed, total)

	return b.String()
}

func renderSummaryTable(report m.RunReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Suite", "Passed", "Failed", "Total"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	for _, suite := range report.Suites {
		table.Append([]string{
			suite.SuiteName,
			fmt.Sprintf("%d", suite.PassedCount),
			fmt.Sprintf("%d", suite.FailedCount),
			fmt.Sprintf("%d", suite.TotalCount),
		})
	}

	passed, failed, total := report.Totals()
	table.SetFooter([]string{
		fmt.Sprintf("%d suites", len(report.Suites)),
		fmt.Sprintf("%d", passed),
		fmt.Sprintf("%d", failed),
		fmt.Sprintf("%d", total),
	})

	table.Render()

	return tableBuffer.String()
}

// renderFailures lists every failing case identifier with its message.
func renderFailures(report m.RunReport) string {
	var b strings.Builder

	for _, suite := range report.Suites {
		for _, c := range suite.FailedCases() {
			if b.Len() == 0 {
				b.WriteString("Failing cases:\n")
			}

			fmt.Fprintf(&b, "  %s\n", c.Identifier)

			if c.ErrorMessage == nil {
				continue
			}

			for _, line := range strings.Split(*c.ErrorMessage, "\n") {
				fmt.Fprintf(&b, "      %s\n", line)
			}
		}
	}

	return b.String()
}

func renderSuitesTable(suites []m.SuiteHandle) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Suite", "Package", "Tests"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	totalTests := 0

	for _, suite := range suites {
		table.Append([]string{suite.Name, suite.ImportPath, fmt.Sprintf("%d", len(suite.Tests))})

		totalTests += len(suite.Tests)
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Suites %d", len(suites)),
		"",
		fmt.Sprintf("%d", totalTests),
	})

	table.Render()

	return tableBuffer.String()
}

func renderCaseTable(title string, changes []m.CaseChange, withMessage bool) string {
	if len(changes) == 0 {
		return ""
	}

	var tableBuffer bytes.Buffer

	fmt.Fprintf(&tableBuffer, "\n%s (%d):\n", title, len(changes))

	header := []string{"Suite", "Case"}
	if withMessage {
		header = append(header, "Message")
	}

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, change := range changes {
		row := []string{change.SuiteName, change.CaseName}

		if withMessage {
			msg := ""
			if change.ErrorMessage != nil {
				msg, _, _ = strings.Cut(*change.ErrorMessage, "\n")
			}

			row = append(row, msg)
		}

		table.Append(row)
	}

	table.Render()

	return tableBuffer.String()
}

func renderComparison(comparison m.Comparison) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "Compared %d case(s): %d detected, %d fixed, %d missing\n",
		comparison.Compared, len(comparison.Detected), len(comparison.Fixed), len(comparison.Missing))

	b.WriteString(renderCaseTable("Detected", comparison.Detected, true))
	b.WriteString(renderCaseTable("Fixed", comparison.Fixed, false))
	b.WriteString(renderCaseTable("Missing", comparison.Missing, false))

	diff, err := renderDiff(comparison)
	if err != nil {
		return "", err
	}

	if diff == "" {
		fmt.Fprintf(&b, "\n%s\n", noChangesMessage)
	} else {
		fmt.Fprintf(&b, "\n%s", diff)
	}

	fmt.Fprintf(&b, "\nDetection score: %.2f%%\n", comparison.Score*100)

	return b.String(), nil
}

func renderDiff(comparison m.Comparison) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        withNewlines(comparison.BaselineLines),
		B:        withNewlines(comparison.CandidateLines),
		FromFile: "baseline",
		ToFile:   "candidate",
		Context:  0,
	}

	out, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("render diff: %w", err)
	}

	return out, nil
}

func withNewlines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line + "\n"
	}

	return out
}

func encodeDocument(report m.RunReport, format ReportFormat) (string, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encode json: %w", err)
		}

		return string(data) + "\n", nil
	case FormatYAML:
		data, err := yaml.Marshal(report)
		if err != nil {
			return "", fmt.Errorf("encode yaml: %w", err)
		}

		return string(data), nil
	case FormatTable:
		return renderReport(report, ""), nil
	}

	return "", fmt.Errorf("unsupported report format %q", format)
}
