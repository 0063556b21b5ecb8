package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	m "verdict.dev/pkg/verdict/internal/model"
)

const (
	// DefaultReportDir is the directory reports are written to when none is configured.
	DefaultReportDir = "test-results"
	// DefaultReportName is the base name of the report document.
	DefaultReportName = "test_results"

	reportExt             = ".json"
	reportTimestampFormat = "20060102T150405"
)

// ReportStore persists and loads run reports.
type ReportStore interface {
	SaveReport(ctx context.Context, path m.Path, report m.RunReport) error
	LoadReport(ctx context.Context, path m.Path) (m.RunReport, error)
}

// ReportPath returns the location of a report inside dir. Empty values fall
// back to DefaultReportDir and DefaultReportName; withTimestamp appends a compact timestamp suffix.
func ReportPath(dir m.Path, name string, withTimestamp bool, now time.Time) m.Path {
	if strings.TrimSpace(string(dir)) == "" {
		dir = DefaultReportDir
	}

	name = strings.TrimSuffix(strings.TrimSpace(name), reportExt)
	if name == "" {
		name = DefaultReportName
	}

	if withTimestamp {
		name = name + "_" + now.Format(reportTimestampFormat)
	}

	return m.Path(filepath.Join(string(dir), name+reportExt))
}

// LocalReportStore stores reports as indented JSON files.
type LocalReportStore struct{}

// NewReportStore constructs a LocalReportStore.
func NewReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// SaveReport writes report to path, replacing any previous file atomically.
func (s *LocalReportStore) SaveReport(ctx context.Context, path m.Path, report m.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	dir := filepath.Dir(string(path))
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".report-*.json")
	if err != nil {
		return fmt.Errorf("create temp report: %w", err)
	}

	tmpName := tmp.Name()

	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write report: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close report: %w", err)
	}

	// #nosec G302 - reports are meant to be read by other tools
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod report: %w", err)
	}

	if err := os.Rename(tmpName, string(path)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	slog.Info("Report saved", "path", path, "suites", len(report.Suites))

	return nil
}

// LoadReport reads a report previously written by SaveReport.
func (s *LocalReportStore) LoadReport(ctx context.Context, path m.Path) (m.RunReport, error) {
	if err := ctx.Err(); err != nil {
		return m.RunReport{}, err
	}

	// #nosec G304 - path is a report location chosen by the user
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.RunReport{}, fmt.Errorf("read report: %w", err)
	}

	var report m.RunReport
	if err := json.Unmarshal(data, &report); err != nil {
		return m.RunReport{}, fmt.Errorf("parse report %s: %w", path, err)
	}

	return report, nil
}
