package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	"verdict.dev/pkg/verdict/internal/adapter"
	"verdict.dev/pkg/verdict/internal/controller"
	m "verdict.dev/pkg/verdict/internal/model"
)

// NoValidSuitesMessage is shown when a run is requested but no suite resolves.
const NoValidSuitesMessage = "No valid test suites provided"

// TestArgs contains the arguments for running test suites.
type TestArgs struct {
	Suites []string
	// Output is the directory the report is written to.
	Output          m.Path
	Name            string
	TimestampSuffix bool
	// Timeout bounds the engine run; zero means no limit.
	Timeout time.Duration
}

// ListArgs contains the arguments for discovering suites.
type ListArgs struct {
	Paths   []m.Path
	Exclude []string
}

// ViewArgs contains the arguments for showing a persisted report.
type ViewArgs struct {
	Report m.Path
	Format controller.ReportFormat
}

// CompareArgs names the two reports to compare.
type CompareArgs struct {
	Baseline  m.Path
	Candidate m.Path
}

// Workflow defines the command-level use cases of the tool.
type Workflow interface {
	Test(ctx context.Context, args TestArgs) error
	List(ctx context.Context, args ListArgs) error
	View(ctx context.Context, args ViewArgs) error
	Compare(ctx context.Context, args CompareArgs) error
}

type workflow struct {
	adapter.SuiteResolverAdapter
	adapter.ReportStore
	controller.UI
	Orchestrator

	now func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	resolver adapter.SuiteResolverAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	orchestrator Orchestrator,
) Workflow {
	return &workflow{
		SuiteResolverAdapter: resolver,
		ReportStore:          reportStore,
		UI:                   ui,
		Orchestrator:         orchestrator,
		now:                  time.Now,
	}
}

// Test runs the suites, persists the report and prints the summary. A failed
// save is reported but does not fail the command.
func (w *workflow) Test(ctx context.Context, args TestArgs) error {
	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.Close(ctx)

	runCtx := ctx

	if args.Timeout > 0 {
		var cancel context.CancelFunc

		runCtx, cancel = context.WithTimeout(ctx, args.Timeout)
		defer cancel()
	}

	report, err := w.Run(runCtx, args.Suites)
	if errors.Is(err, ErrNoValidSuites) {
		w.DisplayMessage(ctx, NoValidSuitesMessage)
		return nil
	}

	if err != nil {
		return err
	}

	location := adapter.ReportPath(args.Output, args.Name, args.TimestampSuffix, w.now())

	if err := w.SaveReport(ctx, location, *report); err != nil {
		slog.Error("Failed to save report", "path", location, "error", err)
		w.DisplayError(ctx, "failed to save report", err)

		location = ""
	}

	if err := w.DisplayReport(ctx, *report, location); err != nil {
		return fmt.Errorf("display report: %w", err)
	}

	w.Wait(ctx)

	return nil
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.Close(ctx)

	suites, err := w.Discover(ctx, args.Paths, args.Exclude)
	if err != nil {
		return fmt.Errorf("discover suites: %w", err)
	}

	if err := w.DisplaySuites(ctx, suites); err != nil {
		return fmt.Errorf("display suites: %w", err)
	}

	w.Wait(ctx)

	return nil
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	report, err := w.LoadReport(ctx, args.Report)
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.Close(ctx)

	switch args.Format {
	case "", controller.FormatTable:
		err = w.DisplayReport(ctx, report, args.Report)
	default:
		err = w.DisplayDocument(ctx, report, args.Format)
	}

	if err != nil {
		return fmt.Errorf("display report: %w", err)
	}

	w.Wait(ctx)

	return nil
}

// Compare loads both reports concurrently and shows the cases whose outcome changed.
func (w *workflow) Compare(ctx context.Context, args CompareArgs) error {
	var baseline, candidate m.RunReport

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		report, err := w.LoadReport(groupCtx, args.Baseline)
		if err != nil {
			return fmt.Errorf("load baseline: %w", err)
		}

		baseline = report

		return nil
	})

	group.Go(func() error {
		report, err := w.LoadReport(groupCtx, args.Candidate)
		if err != nil {
			return fmt.Errorf("load candidate: %w", err)
		}

		candidate = report

		return nil
	})

	if err := group.Wait(); err != nil {
		return err
	}

	comparison := CompareReports(baseline, candidate)

	slog.Info("Compared reports",
		"baseline", args.Baseline, "candidate", args.Candidate,
		"detected", len(comparison.Detected), "fixed", len(comparison.Fixed), "missing", len(comparison.Missing))

	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.Close(ctx)

	if err := w.DisplayComparison(ctx, comparison); err != nil {
		return fmt.Errorf("display comparison: %w", err)
	}

	w.Wait(ctx)

	return nil
}
