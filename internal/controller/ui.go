// Package controller provides output adapters for displaying test run results.
package controller

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	m "verdict.dev/pkg/verdict/internal/model"
)

// ReportFormat selects how a persisted report is shown.
type ReportFormat string

// Available ReportFormat values.
const (
	FormatTable ReportFormat = "table"
	FormatJSON  ReportFormat = "json"
	FormatYAML  ReportFormat = "yaml"
)

// ParseReportFormat validates a user supplied format name. Empty means table.
func ParseReportFormat(value string) (ReportFormat, error) {
	switch ReportFormat(strings.ToLower(strings.TrimSpace(value))) {
	case "", FormatTable:
		return FormatTable, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("unsupported report format %q (want table, json or yaml)", value)
}

// UI defines the interface for displaying run progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayRunInfo(ctx context.Context, runID string, suites []m.SuiteHandle)
	DisplayResolutionError(ctx context.Context, name string, err error)
	DisplayMessage(ctx context.Context, message string)
	DisplayError(ctx context.Context, message string, err error)
	DisplayReport(ctx context.Context, report m.RunReport, location m.Path) error
	DisplayDocument(ctx context.Context, report m.RunReport, format ReportFormat) error
	DisplaySuites(ctx context.Context, suites []m.SuiteHandle) error
	DisplayComparison(ctx context.Context, comparison m.Comparison) error
}

// NewUI picks the interactive UI for terminals and plain text otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
