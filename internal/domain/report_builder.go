package domain

import (
	"strings"
	"time"

	m "verdict.dev/pkg/verdict/internal/model"
)

// ReportBuilder turns an accumulator snapshot into a timestamped RunReport.
type ReportBuilder struct {
	now func() time.Time
}

// NewReportBuilder constructs a ReportBuilder that stamps reports with the wall clock in UTC.
func NewReportBuilder() *ReportBuilder {
	return &ReportBuilder{now: time.Now}
}

// NewReportBuilderWithClock constructs a ReportBuilder using the given clock.
func NewReportBuilderWithClock(now func() time.Time) *ReportBuilder {
	return &ReportBuilder{now: now}
}

// Build copies every suite by value, keeping first-seen order. An empty
// snapshot yields a report with an empty suite list.
func (b *ReportBuilder) Build(snapshot Snapshot) m.RunReport {
	suites := make([]m.SuiteResult, 0, len(snapshot.Suites))
	for _, suite := range snapshot.Suites {
		suites = append(suites, suite.Clone())
	}

	report := m.RunReport{
		Timestamp: b.now().UTC().Format(time.RFC3339),
		Suites:    suites,
		Compiled:  len(snapshot.CompileErrors) == 0,
	}

	if !report.Compiled {
		compileError := strings.Join(snapshot.CompileErrors, "\n")
		report.CompileError = &compileError
	}

	return report
}
