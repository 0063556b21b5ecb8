package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	m "verdict.dev/pkg/verdict/internal/model"
)

func strPtr(s string) *string {
	return &s
}

func sampleReport() m.RunReport {
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
					{CaseName: "TestAdd", Identifier: "[engine:go-test]/[class:./calc]/[method:TestAdd()]", Passed: true},
					{
						CaseName:     "TestDiv",
						Identifier:   "[engine:go-test]/[class:./calc]/[method:TestDiv()]",
						ErrorMessage: strPtr("calc_test.go:12: expected 2, got 3"),
					},
				},
			},
			{
				SuiteName:   "./geometry",
				PassedCount: 1,
				TotalCount:  1,
				Cases: []m.CaseOutcome{
					{CaseName: "TestArea", Identifier: "[engine:go-test]/[class:./geometry]/[method:TestArea()]", Passed: true},
				},
			},
		},
	}
}

func newTestCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	return cmd, &out, &errOut
}

func TestSimpleUI_DisplayReport(t *testing.T) {
	tests := []struct {
		name         string
		report       m.RunReport
		location     m.Path
		wantContains []string
		wantMissing  []string
	}{
		{
			name:     "mixed results",
			report:   sampleReport(),
			location: "test-results/test_results.json",
			wantContains: []string{
				"Report: test-results/test_results.json",
				"./calc", "./geometry",
				"Failing cases:",
				"[engine:go-test]/[class:./calc]/[method:TestDiv()]",
				"calc_test.go:12: expected 2, got 3",
				"Passed 2, failed 1, total 3",
			},
			wantMissing: []string{"[method:TestAdd()]", "Build failures"},
		},
		{
			name:         "empty report",
			report:       m.RunReport{Timestamp: "t", Suites: []m.SuiteResult{}, Compiled: true},
			wantContains: []string{noResultsMessage, "Passed 0, failed 0, total 0"},
			wantMissing:  []string{"Report:", "Failing cases:"},
		},
		{
			name: "failure without message",
			report: m.RunReport{Compiled: true, Suites: []m.SuiteResult{{
				SuiteName: "./x", FailedCount: 1, TotalCount: 1,
				Cases: []m.CaseOutcome{{CaseName: "TestX", Identifier: "[class:./x]/[method:TestX()]"}},
			}}},
			wantContains: []string{"Failing cases:", "[class:./x]/[method:TestX()]", "failed 1"},
		},
		{
			name:         "build failure",
			report:       m.RunReport{Suites: []m.SuiteResult{}, CompileError: strPtr("./broken: undefined: Missing")},
			wantContains: []string{"Build failures:", "./broken: undefined: Missing"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, out, _ := newTestCmd()
			ui := NewSimpleUI(cmd)

			if err := ui.DisplayReport(context.Background(), tt.report, tt.location); err != nil {
				t.Fatalf("DisplayReport() error = %v", err)
			}

			output := out.String()
			for _, want := range tt.wantContains {
				if !strings.Contains(output, want) {
					t.Errorf("DisplayReport() output missing %q\n%s", want, output)
				}
			}

			for _, unwanted := range tt.wantMissing {
				if strings.Contains(output, unwanted) {
					t.Errorf("DisplayReport() output unexpectedly contains %q\n%s", unwanted, output)
				}
			}
		})
	}
}

func TestSimpleUI_DisplayDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("json", func(t *testing.T) {
		cmd, out, _ := newTestCmd()

		if err := NewSimpleUI(cmd).DisplayDocument(ctx, sampleReport(), FormatJSON); err != nil {
			t.Fatalf("DisplayDocument() error = %v", err)
		}

		var decoded m.RunReport
		if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
			t.Fatalf("output is not JSON: %v", err)
		}

		if len(decoded.Suites) != 2 || decoded.Suites[0].SuiteName != "./calc" {
			t.Fatalf("unexpected decoded report: %+v", decoded)
		}

		if !strings.Contains(out.String(), `"test_classes"`) {
			t.Fatalf("JSON output should use report field names: %s", out.String())
		}
	})

	t.Run("yaml", func(t *testing.T) {
		cmd, out, _ := newTestCmd()

		if err := NewSimpleUI(cmd).DisplayDocument(ctx, sampleReport(), FormatYAML); err != nil {
			t.Fatalf("DisplayDocument() error = %v", err)
		}

		var decoded m.RunReport
		if err := yaml.Unmarshal(out.Bytes(), &decoded); err != nil {
			t.Fatalf("output is not YAML: %v", err)
		}

		if decoded.Suites[0].Cases[1].ErrorMessage == nil {
			t.Fatalf("error message lost in YAML output")
		}

		if !strings.Contains(out.String(), "test_class_name: ./calc") {
			t.Fatalf("YAML output should use report field names: %s", out.String())
		}
	})

	t.Run("table", func(t *testing.T) {
		cmd, out, _ := newTestCmd()

		if err := NewSimpleUI(cmd).DisplayDocument(ctx, sampleReport(), FormatTable); err != nil {
			t.Fatalf("DisplayDocument() error = %v", err)
		}

		if !strings.Contains(out.String(), "Failing cases:") {
			t.Fatalf("table output missing summary: %s", out.String())
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		cmd, _, _ := newTestCmd()

		if err := NewSimpleUI(cmd).DisplayDocument(ctx, sampleReport(), ReportFormat("xml")); err == nil {
			t.Fatalf("DisplayDocument() expected error for unknown format")
		}
	})
}

func TestSimpleUI_DisplaySuites(t *testing.T) {
	ctx := context.Background()

	t.Run("lists suites with counts", func(t *testing.T) {
		cmd, out, _ := newTestCmd()

		err := NewSimpleUI(cmd).DisplaySuites(ctx, []m.SuiteHandle{
			{Name: "./calc", ImportPath: "example.com/calc", Tests: []string{"TestAdd", "TestDiv"}},
			{Name: "./geometry", ImportPath: "example.com/geometry", Tests: []string{"TestArea"}},
		})
		if err != nil {
			t.Fatalf("DisplaySuites() error = %v", err)
		}

		for _, want := range []string{"./calc", "example.com/calc", "./geometry", "2", "3"} {
			if !strings.Contains(out.String(), want) {
				t.Errorf("DisplaySuites() output missing %q\n%s", want, out.String())
			}
		}
	})

	t.Run("empty", func(t *testing.T) {
		cmd, out, _ := newTestCmd()

		if err := NewSimpleUI(cmd).DisplaySuites(ctx, nil); err != nil {
			t.Fatalf("DisplaySuites() error = %v", err)
		}

		if !strings.Contains(out.String(), noSuitesMessage) {
			t.Errorf("DisplaySuites() output = %q", out.String())
		}
	})
}

func TestSimpleUI_DisplayComparison(t *testing.T) {
	cmd, out, _ := newTestCmd()

	comparison := m.Comparison{
		Detected: []m.CaseChange{{SuiteName: "./calc", CaseName: "TestAdd", ErrorMessage: strPtr("got 4\nmore")}},
		Fixed:    []m.CaseChange{{SuiteName: "./calc", CaseName: "TestDiv"}},
		Missing:  []m.CaseChange{{SuiteName: "./geometry", CaseName: "TestArea"}},
		Compared: 2,
		Score:    1,
		BaselineLines: []string{
			"PASS ./calc TestAdd",
			"FAIL ./calc TestDiv",
			"PASS ./geometry TestArea",
		},
		CandidateLines: []string{
			"FAIL ./calc TestAdd",
			"PASS ./calc TestDiv",
		},
	}

	if err := NewSimpleUI(cmd).DisplayComparison(context.Background(), comparison); err != nil {
		t.Fatalf("DisplayComparison() error = %v", err)
	}

	output := out.String()
	for _, want := range []string{
		"Compared 2 case(s): 1 detected, 1 fixed, 1 missing",
		"Detected (1):", "Fixed (1):", "Missing (1):",
		"got 4",
		"--- baseline", "+++ candidate",
		"-PASS ./calc TestAdd", "+FAIL ./calc TestAdd",
		"Detection score: 100.00%",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("DisplayComparison() output missing %q\n%s", want, output)
		}
	}

	if strings.Contains(output, "more") {
		t.Errorf("DisplayComparison() should only show the first message line\n%s", output)
	}
}

func TestSimpleUI_DisplayComparison_NoChanges(t *testing.T) {
	cmd, out, _ := newTestCmd()

	lines := []string{"PASS ./calc TestAdd"}
	err := NewSimpleUI(cmd).DisplayComparison(context.Background(), m.Comparison{
		Compared: 1, BaselineLines: lines, CandidateLines: lines,
	})
	if err != nil {
		t.Fatalf("DisplayComparison() error = %v", err)
	}

	if !strings.Contains(out.String(), noChangesMessage) {
		t.Errorf("DisplayComparison() output = %q", out.String())
	}
}

func TestSimpleUI_Messages(t *testing.T) {
	ctx := context.Background()
	cmd, out, errOut := newTestCmd()
	ui := NewSimpleUI(cmd)

	ui.DisplayRunInfo(ctx, "run-1", []m.SuiteHandle{{Name: "./a"}, {Name: "./b"}})
	ui.DisplayMessage(ctx, "No valid test suites provided")
	ui.DisplayResolutionError(ctx, "./missing", errors.New("suite not found"))
	ui.DisplayError(ctx, "failed to save report", errors.New("disk full"))

	if !strings.Contains(out.String(), "Running 2 suite(s) (run run-1)") {
		t.Errorf("stdout = %q", out.String())
	}

	if !strings.Contains(out.String(), "No valid test suites provided") {
		t.Errorf("stdout = %q", out.String())
	}

	if !strings.Contains(errOut.String(), "Skipping suite ./missing: suite not found") {
		t.Errorf("stderr = %q", errOut.String())
	}

	if !strings.Contains(errOut.String(), "Error: failed to save report: disk full") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestSimpleUI_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd, out, _ := newTestCmd()
	ui := NewSimpleUI(cmd)

	if err := ui.Start(ctx); err == nil {
		t.Errorf("Start() expected context error")
	}

	if err := ui.DisplayReport(ctx, sampleReport(), ""); err == nil {
		t.Errorf("DisplayReport() expected context error")
	}

	ui.DisplayMessage(ctx, "hidden")
	ui.Wait(ctx)
	ui.Close(ctx)

	if out.Len() != 0 {
		t.Errorf("expected no output after cancellation, got %q", out.String())
	}
}
