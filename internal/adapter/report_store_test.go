package adapter

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "verdict.dev/pkg/verdict/internal/model"
)

func sampleReport() m.RunReport {
	msg := "expected 2, got 3"

	return m.RunReport{
		Timestamp: "2026-01-02T03:04:05Z",
		Compiled:  true,
		Suites: []m.SuiteResult{
			{
				SuiteName:   "./calc",
				PassedCount: 1,
				FailedCount: 1,
				TotalCount:  2,
				Cases: []m.CaseOutcome{
					{CaseName: "TestAdd", Identifier: string(FormatTestIdentifier("./calc", "TestAdd")), Passed: true},
					{CaseName: "TestDiv", Identifier: string(FormatTestIdentifier("./calc", "TestDiv")), ErrorMessage: &msg},
				},
			},
		},
	}
}

func TestLocalReportStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := NewReportStore()

	path := m.Path(filepath.Join(t.TempDir(), "nested", "out", "test_results.json"))
	report := sampleReport()

	require.NoError(t, store.SaveReport(ctx, path, report))

	loaded, err := store.LoadReport(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, report, loaded)

	entries, err := os.ReadDir(filepath.Dir(string(path)))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestLocalReportStore_SaveWritesDocumentFields(t *testing.T) {
	ctx := context.Background()
	path := m.Path(filepath.Join(t.TempDir(), "test_results.json"))

	require.NoError(t, NewReportStore().SaveReport(ctx, path, sampleReport()))

	data, err := os.ReadFile(string(path))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "2026-01-02T03:04:05Z", doc["timestamp"])

	classes, ok := doc["test_classes"].([]any)
	require.True(t, ok)
	require.Len(t, classes, 1)

	class := classes[0].(map[string]any)
	assert.Equal(t, "./calc", class["test_class_name"])
	assert.EqualValues(t, 1, class["passed_tests"])
	assert.EqualValues(t, 1, class["failed_tests"])
	assert.EqualValues(t, 2, class["total_tests"])

	cases := class["test_results"].([]any)
	passed := cases[0].(map[string]any)
	assert.Equal(t, "TestAdd", passed["test_name"])
	assert.Equal(t, "[engine:go-test]/[class:./calc]/[method:TestAdd()]", passed["test_unique_id"])
	assert.Equal(t, true, passed["is_passed"])
	assert.Contains(t, passed, "error_message")
	assert.Nil(t, passed["error_message"])

	failed := cases[1].(map[string]any)
	assert.Equal(t, "expected 2, got 3", failed["error_message"])
}

func TestLocalReportStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	store := NewReportStore()
	path := m.Path(filepath.Join(t.TempDir(), "test_results.json"))

	require.NoError(t, store.SaveReport(ctx, path, sampleReport()))
	require.NoError(t, store.SaveReport(ctx, path, m.RunReport{Timestamp: "later", Suites: []m.SuiteResult{}, Compiled: true}))

	loaded, err := store.LoadReport(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "later", loaded.Timestamp)
	assert.Empty(t, loaded.Suites)
}

func TestLocalReportStore_Errors(t *testing.T) {
	ctx := context.Background()
	store := NewReportStore()

	t.Run("missing file", func(t *testing.T) {
		_, err := store.LoadReport(ctx, m.Path(filepath.Join(t.TempDir(), "missing.json")))
		require.Error(t, err)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		writeTestFile(t, path, "{not json")

		_, err := store.LoadReport(ctx, m.Path(path))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse report")
	})

	t.Run("unwritable location", func(t *testing.T) {
		blocker := filepath.Join(t.TempDir(), "file")
		writeTestFile(t, blocker, "x")

		err := store.SaveReport(ctx, m.Path(filepath.Join(blocker, "report.json")), sampleReport())
		require.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		err := store.SaveReport(cancelled, m.Path(filepath.Join(t.TempDir(), "r.json")), sampleReport())
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestReportPath(t *testing.T) {
	now := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	tests := []struct {
		name          string
		reportName    string
		withTimestamp bool
		want          string
	}{
		{name: "default", want: filepath.Join("test-results", "test_results.json")},
		{name: "custom name", reportName: "nightly", want: filepath.Join("test-results", "nightly.json")},
		{name: "strips extension", reportName: "run.json", want: filepath.Join("test-results", "run.json")},
		{name: "timestamp suffix", withTimestamp: true, want: filepath.Join("test-results", "test_results_20260304T050607.json")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReportPath("test-results", tt.reportName, tt.withTimestamp, now)
			assert.Equal(t, m.Path(tt.want), got)
		})
	}
}
